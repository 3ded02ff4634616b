package mcp

import (
	"encoding/json"
	"strings"
	"testing"

	"mathmcp/internal/core/mathtool"
	"mathmcp/internal/core/tool"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	registry := tool.NewRegistry()
	if err := mathtool.RegisterAll(registry); err != nil {
		t.Fatalf("register tools: %v", err)
	}
	return NewMcpService(registry, nil)
}

func initialize(t *testing.T, s *Service) *Session {
	t.Helper()
	raw := []byte(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-06-18","clientInfo":{"name":"test","version":"0.1"},"capabilities":{}}}`)
	result := s.Handle(raw, nil)
	if result.Response == nil || result.Response.Error != nil {
		t.Fatalf("initialize failed: %+v", result.Response)
	}
	if result.NewSession == nil {
		t.Fatalf("initialize did not create a session")
	}
	return result.NewSession
}

func TestInitializeNegotiatesVersion(t *testing.T) {
	s := newTestService(t)

	raw := []byte(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","clientInfo":{"name":"old","version":"0.1"}}}`)
	result := s.Handle(raw, nil)
	init, ok := result.Response.Result.(InitializeResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result.Response.Result)
	}
	if init.ProtocolVersion != "2024-11-05" {
		t.Fatalf("expected echoed version, got %s", init.ProtocolVersion)
	}
	if init.ServerInfo.Name != ServerName {
		t.Fatalf("unexpected server name %q", init.ServerInfo.Name)
	}

	// unknown requested version falls back to the latest supported
	raw = []byte(`{"jsonrpc":"2.0","id":2,"method":"initialize","params":{"protocolVersion":"1999-01-01"}}`)
	result = s.Handle(raw, nil)
	init = result.Response.Result.(InitializeResult)
	if init.ProtocolVersion != LatestProtocolVersion {
		t.Fatalf("expected %s, got %s", LatestProtocolVersion, init.ProtocolVersion)
	}
}

func TestHandleParseError(t *testing.T) {
	s := newTestService(t)
	result := s.Handle([]byte(`{not json`), nil)
	if result.Response == nil || result.Response.Error == nil {
		t.Fatalf("expected error response")
	}
	if result.Response.Error.Code != CodeParseError {
		t.Fatalf("expected %d, got %d", CodeParseError, result.Response.Error.Code)
	}
}

func TestHandleRequiresSession(t *testing.T) {
	s := newTestService(t)
	result := s.Handle([]byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`), nil)
	if result.Response.Error == nil || result.Response.Error.Code != CodeInvalidRequest {
		t.Fatalf("expected invalid request, got %+v", result.Response)
	}
}

func TestToolsList(t *testing.T) {
	s := newTestService(t)
	sess := initialize(t, s)

	result := s.Handle([]byte(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`), sess)
	list, ok := result.Response.Result.(ListToolsResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result.Response.Result)
	}
	if len(list.Tools) != 45 {
		t.Fatalf("expected 45 tools, got %d", len(list.Tools))
	}
	for _, d := range list.Tools {
		if d.Name == "" || len(d.InputSchema) == 0 {
			t.Fatalf("incomplete descriptor: %+v", d)
		}
	}
}

func TestToolsCall(t *testing.T) {
	s := newTestService(t)
	sess := initialize(t, s)

	raw := []byte(`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"add","arguments":{"a":2,"b":40}}}`)
	result := s.Handle(raw, sess)
	call, ok := result.Response.Result.(CallToolResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result.Response.Result)
	}
	if call.IsError {
		t.Fatalf("unexpected tool error: %+v", call)
	}
	if len(call.Content) != 1 || call.Content[0].Text != "42" {
		t.Fatalf("unexpected content: %+v", call.Content)
	}
}

func TestToolsCallToolFailureIsInBand(t *testing.T) {
	s := newTestService(t)
	sess := initialize(t, s)

	raw := []byte(`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"divide","arguments":{"a":1,"b":0}}}`)
	result := s.Handle(raw, sess)
	if result.Response.Error != nil {
		t.Fatalf("tool failure must not be a protocol error: %+v", result.Response.Error)
	}
	call := result.Response.Result.(CallToolResult)
	if !call.IsError {
		t.Fatalf("expected isError content")
	}
	if !strings.Contains(call.Content[0].Text, "zero") {
		t.Fatalf("unexpected message: %s", call.Content[0].Text)
	}
}

func TestToolsCallInvalidArguments(t *testing.T) {
	s := newTestService(t)
	sess := initialize(t, s)

	raw := []byte(`{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"add","arguments":{"a":"two"}}}`)
	result := s.Handle(raw, sess)
	if result.Response.Error == nil || result.Response.Error.Code != CodeInvalidParams {
		t.Fatalf("expected invalid params, got %+v", result.Response)
	}

	raw = []byte(`{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{"name":"no_such_tool"}}`)
	result = s.Handle(raw, sess)
	if result.Response.Error == nil || result.Response.Error.Code != CodeInvalidParams {
		t.Fatalf("expected invalid params for unknown tool, got %+v", result.Response)
	}
}

func TestPingAndNotifications(t *testing.T) {
	s := newTestService(t)
	sess := initialize(t, s)

	result := s.Handle([]byte(`{"jsonrpc":"2.0","id":7,"method":"ping"}`), sess)
	if result.Response == nil || result.Response.Error != nil {
		t.Fatalf("ping failed: %+v", result.Response)
	}

	result = s.Handle([]byte(`{"jsonrpc":"2.0","method":"notifications/initialized"}`), sess)
	if result.Response != nil {
		t.Fatalf("notification must not produce a response")
	}
	if !sess.Initialized {
		t.Fatalf("session should be marked initialized")
	}

	// unknown notification is dropped, unknown request errors
	result = s.Handle([]byte(`{"jsonrpc":"2.0","method":"notifications/does-not-exist"}`), sess)
	if result.Response != nil {
		t.Fatalf("unknown notification must be dropped")
	}
	result = s.Handle([]byte(`{"jsonrpc":"2.0","id":8,"method":"does/notExist"}`), sess)
	if result.Response.Error == nil || result.Response.Error.Code != CodeMethodNotFound {
		t.Fatalf("expected method not found, got %+v", result.Response)
	}
}

func TestSetLevel(t *testing.T) {
	s := newTestService(t)
	sess := initialize(t, s)

	result := s.Handle([]byte(`{"jsonrpc":"2.0","id":9,"method":"logging/setLevel","params":{"level":"warning"}}`), sess)
	if result.Response.Error != nil {
		t.Fatalf("unexpected error: %+v", result.Response.Error)
	}
	if sess.LogLevel != "warning" {
		t.Fatalf("expected warning, got %s", sess.LogLevel)
	}

	result = s.Handle([]byte(`{"jsonrpc":"2.0","id":10,"method":"logging/setLevel","params":{"level":"loud"}}`), sess)
	if result.Response.Error == nil || result.Response.Error.Code != CodeInvalidParams {
		t.Fatalf("expected invalid params, got %+v", result.Response)
	}
}

func TestSessionManager(t *testing.T) {
	m := NewSessionManager()
	s := m.Create("2025-06-18", "client", "1.0")
	if s.Id == "" || s.LogLevel != "info" {
		t.Fatalf("unexpected session: %+v", s)
	}
	if _, ok := m.Get(s.Id); !ok {
		t.Fatalf("session not found")
	}
	if m.Count() != 1 {
		t.Fatalf("expected 1 session, got %d", m.Count())
	}
	m.Delete(s.Id)
	if _, ok := m.Get(s.Id); ok {
		t.Fatalf("session should be gone")
	}
}

func TestResponseSerialization(t *testing.T) {
	s := newTestService(t)
	sess := initialize(t, s)

	result := s.Handle([]byte(`{"jsonrpc":"2.0","id":11,"method":"tools/call","params":{"name":"solve_quadratic","arguments":{"a":1,"b":-3,"c":2}}}`), sess)
	b, err := json.Marshal(result.Response)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded struct {
		Result struct {
			Content           []Content `json:"content"`
			StructuredContent any       `json:"structuredContent"`
		} `json:"result"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.Result.StructuredContent == nil {
		t.Fatalf("expected structured content for array result")
	}
	if !strings.Contains(decoded.Result.Content[0].Text, `"real":2`) {
		t.Fatalf("unexpected text: %s", decoded.Result.Content[0].Text)
	}
}
