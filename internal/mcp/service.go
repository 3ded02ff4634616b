package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"mathmcp/internal/core/tool"
	"mathmcp/internal/store/audit"
	"mathmcp/internal/utils"
)

func NewMcpService(registry tool.RegistryHandler, auditHandler audit.AuditStoreHandler) *Service {
	if auditHandler == nil {
		auditHandler = audit.NopStore{}
	}
	return &Service{
		registry:     registry,
		sessions:     NewSessionManager(),
		auditHandler: auditHandler,
	}
}

type Service struct {
	registry     tool.RegistryHandler
	sessions     *SessionManager
	auditHandler audit.AuditStoreHandler
}

func (s *Service) Sessions() *SessionManager {
	return s.sessions
}

func (s *Service) CatalogDigest() (string, error) {
	return s.registry.Digest()
}

// Handle processes one JSON-RPC message and returns the response, if any.
// Transport concerns (headers, upgrade, session resolution) stay with the
// caller.
func (s *Service) Handle(raw []byte, session *Session) HandleResult {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return errorResult(nil, CodeParseError, "parse error: "+err.Error())
	}
	if req.JsonRpc != "2.0" || req.Method == "" {
		return errorResult(req.Id, CodeInvalidRequest, "invalid request")
	}

	if session != nil {
		s.sessions.Touch(session.Id)
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		if session != nil {
			session.Initialized = true
		}
		return HandleResult{}
	case "ping":
		return resultOf(req.Id, struct{}{})
	case "tools/list":
		if session == nil {
			return errorResult(req.Id, CodeInvalidRequest, "session not initialized")
		}
		return s.handleListTools(req)
	case "tools/call":
		if session == nil {
			return errorResult(req.Id, CodeInvalidRequest, "session not initialized")
		}
		return s.handleCallTool(req, session)
	case "logging/setLevel":
		if session == nil {
			return errorResult(req.Id, CodeInvalidRequest, "session not initialized")
		}
		return s.handleSetLevel(req, session)
	default:
		if req.IsNotification() {
			// unknown notifications are dropped per json-rpc
			return HandleResult{}
		}
		return errorResult(req.Id, CodeMethodNotFound, "method not found: "+req.Method)
	}
}

func (s *Service) handleInitialize(req Request) HandleResult {
	var params InitializeParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errorResult(req.Id, CodeInvalidParams, "invalid initialize params: "+err.Error())
		}
	}

	version := negotiateVersion(params.ProtocolVersion)
	session := s.sessions.Create(version, params.ClientInfo.Name, params.ClientInfo.Version)

	result := InitializeResult{
		ProtocolVersion: version,
		Capabilities: ServerCapabilities{
			Tools:   &ToolsCapability{ListChanged: false},
			Logging: &struct{}{},
		},
		ServerInfo: Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
	}

	out := resultOf(req.Id, result)
	out.NewSession = session
	return out
}

func (s *Service) handleListTools(req Request) HandleResult {
	descriptors := s.registry.List()
	tools := make([]ToolDescriptor, 0, len(descriptors))
	for _, d := range descriptors {
		tools = append(tools, ToolDescriptor{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.InputSchema,
		})
	}
	return resultOf(req.Id, ListToolsResult{Tools: tools})
}

func (s *Service) handleCallTool(req Request, session *Session) HandleResult {
	var params CallToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResult(req.Id, CodeInvalidParams, "invalid tools/call params: "+err.Error())
	}
	if params.Name == "" {
		return errorResult(req.Id, CodeInvalidParams, "tool name is required")
	}

	start := time.Now()
	value, err := s.registry.Call(params.Name, tool.Args(params.Arguments))
	duration := time.Since(start)

	s.appendAudit(session, params, duration, err)

	if err != nil {
		var argErr *tool.ArgumentError
		if errors.As(err, &argErr) {
			return errorResult(req.Id, CodeInvalidParams, argErr.Error())
		}
		if strings.HasPrefix(err.Error(), "unknown tool") {
			return errorResult(req.Id, CodeInvalidParams, err.Error())
		}
		// tool-level failure: reported in-band, not as a protocol error
		return resultOf(req.Id, CallToolResult{
			Content: []Content{{Type: "text", Text: err.Error()}},
			IsError: true,
		})
	}

	text, structured := renderValue(value)
	return resultOf(req.Id, CallToolResult{
		Content:           []Content{{Type: "text", Text: text}},
		StructuredContent: structured,
	})
}

func (s *Service) handleSetLevel(req Request, session *Session) HandleResult {
	var params SetLevelParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResult(req.Id, CodeInvalidParams, "invalid logging/setLevel params: "+err.Error())
	}
	if _, ok := logLevels[params.Level]; !ok {
		return errorResult(req.Id, CodeInvalidParams, "unknown log level: "+params.Level)
	}
	session.LogLevel = params.Level
	return resultOf(req.Id, struct{}{})
}

func (s *Service) appendAudit(session *Session, params CallToolParams, duration time.Duration, callErr error) {
	rec := audit.Record{
		CallId:     utils.NewUlid(),
		Tool:       params.Name,
		DurationMs: duration.Milliseconds(),
		CalledAt:   time.Now().UTC(),
	}
	if session != nil {
		rec.SessionId = session.Id
	}
	if digest, err := utils.JcsDigest(params.Arguments); err == nil {
		rec.ArgsDigest = digest
	}
	if callErr != nil {
		rec.IsError = true
		rec.Error = callErr.Error()
	}
	if err := s.auditHandler.Append(rec); err != nil {
		log.Printf("[!] audit append failed: %v", err)
	}
}

// renderValue produces the text content for a tool result. Strings pass
// through bare the way the original server returned them; everything else
// is JSON. Objects and arrays additionally go out as structuredContent.
func renderValue(v any) (text string, structured any) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v), nil
	}
	switch {
	case len(b) > 0 && (b[0] == '{' || b[0] == '['):
		return string(b), v
	default:
		return string(b), nil
	}
}

func negotiateVersion(requested string) string {
	for _, v := range SupportedProtocolVersions {
		if requested == v {
			return requested
		}
	}
	return LatestProtocolVersion
}

func resultOf(id json.RawMessage, result any) HandleResult {
	return HandleResult{Response: &Response{JsonRpc: "2.0", Id: id, Result: result}}
}

func errorResult(id json.RawMessage, code int, message string) HandleResult {
	if len(id) == 0 {
		id = json.RawMessage("null")
	}
	return HandleResult{Response: &Response{
		JsonRpc: "2.0",
		Id:      id,
		Error:   &ErrorObject{Code: code, Message: message},
	}}
}
