package http

import (
	"encoding/json"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"mathmcp/internal/api/http/logger"
	"mathmcp/internal/buildspec"
	"mathmcp/internal/core/tool"
	"mathmcp/internal/mcp"
	"mathmcp/internal/utils"
)

const sessionHeader = "Mcp-Session-Id"

func NewRequestHandler(mcpHandler mcp.ServiceHandler, registryHandler tool.RegistryHandler) *RequestHandler {
	return &RequestHandler{
		mcpHandler:      mcpHandler,
		registryHandler: registryHandler,
	}
}

type RequestHandler struct {
	mcpHandler      mcp.ServiceHandler
	registryHandler tool.RegistryHandler
}

// Health godoc
// @Summary Health check
// @Description liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *RequestHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// McpMessage godoc
// @Summary MCP endpoint
// @Description JSON-RPC 2.0 message for the Model Context Protocol (streamable HTTP)
// @Tags mcp
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /mcp [post]
func (h *RequestHandler) McpMessage(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "read body failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	var session *mcp.Session
	if id := r.Header.Get(sessionHeader); id != "" {
		s, ok := h.mcpHandler.Sessions().Get(id)
		if !ok {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		session = s
	}

	h.annotateMcpEvent(r, body, session)

	result := h.mcpHandler.Handle(body, session)
	if result.NewSession != nil {
		w.Header().Set(sessionHeader, result.NewSession.Id)
	}
	if result.Response == nil {
		// notification: nothing to send back
		w.WriteHeader(http.StatusAccepted)
		return
	}
	h.writeJson(w, http.StatusOK, result.Response)
}

// McpClose godoc
// @Summary End an MCP session
// @Tags mcp
// @Success 204
// @Router /mcp [delete]
func (h *RequestHandler) McpClose(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return
	}
	h.mcpHandler.Sessions().Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// ListTools godoc
// @Summary List the tool catalog
// @Description names and descriptions of every registered tool plus the catalog digest
// @Tags tools
// @Produce json
// @Success 200 {object} ApiResponse
// @Router /v1/tools [get]
func (h *RequestHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	digest, err := h.mcpHandler.CatalogDigest()
	if err != nil {
		h.respondFail(w, http.StatusInternalServerError, "catalog digest failed: "+err.Error(), nil)
		return
	}

	descriptors := h.registryHandler.List()
	tools := make([]ToolSummary, 0, len(descriptors))
	for _, d := range descriptors {
		tools = append(tools, ToolSummary{Name: d.Name, Description: d.Description})
	}

	h.respondSuccess(w, http.StatusOK, "tool catalog", ListToolsResponse{
		Digest: digest,
		Tools:  tools,
	})
}

// ValidateBuildSpec godoc
// @Summary Validate a build definition
// @Description parse a Dockerfile-style build definition and check its invariants
// @Tags buildspec
// @Accept json
// @Produce json
// @Param request body ValidateBuildSpecRequest true "Build definition"
// @Success 200 {object} ApiResponse
// @Router /v1/buildspecs/validate [post]
func (h *RequestHandler) ValidateBuildSpec(w http.ResponseWriter, r *http.Request) {
	var req ValidateBuildSpecRequest
	if err := h.decodeRequestBody(r, &req); err != nil {
		h.respondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}
	if req.Content == "" {
		h.respondFail(w, http.StatusBadRequest, "content is required", nil)
		return
	}

	spec, err := buildspec.Parse(strings.NewReader(req.Content))
	if err != nil {
		h.respondFail(w, http.StatusUnprocessableEntity, "parse failed: "+err.Error(), nil)
		return
	}

	findings := buildspec.Validate(spec, buildspecContext(req.ContextDir))

	summaries := make([]FindingSummary, 0, len(findings))
	for _, f := range findings {
		summaries = append(summaries, FindingSummary{Code: f.Code, Message: f.Message, Line: f.Line})
	}

	logger.SetTarget(r.Context(), logger.Target{Findings: len(findings)})

	h.respondSuccess(w, http.StatusOK, "build definition checked", ValidateBuildSpecResponse{
		Valid:    len(findings) == 0,
		Findings: summaries,
	})
}

// annotateMcpEvent lifts the MCP method and tool name into the audit event
// without re-dispatching.
func (h *RequestHandler) annotateMcpEvent(r *http.Request, body []byte, session *mcp.Session) {
	var peek struct {
		Method string `json:"method"`
		Params struct {
			Name      string         `json:"name"`
			Arguments map[string]any `json:"arguments"`
		} `json:"params"`
	}
	if err := json.Unmarshal(body, &peek); err != nil || peek.Method == "" {
		return
	}

	logger.SetAction(r.Context(), "mcp."+peek.Method)
	target := logger.Target{McpMethod: peek.Method}
	if session != nil {
		target.SessionId = session.Id
	}
	if peek.Method == "tools/call" {
		target.Tool = peek.Params.Name
		if digest, err := utils.JcsDigest(peek.Params.Arguments); err == nil {
			target.ArgsDigest = digest
		}
	}
	logger.SetTarget(r.Context(), target)
}

func buildspecContext(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	return os.DirFS(dir)
}

func (h *RequestHandler) decodeRequestBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	return nil
}

func (h *RequestHandler) writeJson(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *RequestHandler) respondSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	h.writeJson(w, statusCode, ApiResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func (h *RequestHandler) respondFail(w http.ResponseWriter, statusCode int, message string, data any) {
	h.writeJson(w, statusCode, ApiResponse{
		Status:  "fail",
		Message: message,
		Data:    data,
	})
}
