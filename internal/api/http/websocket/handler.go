package websocket

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"mathmcp/internal/mcp"
)

func NewRequestHandler(mcpHandler mcp.ServiceHandler) *Handler {
	return &Handler{
		mcpHandler: mcpHandler,
		Upgrader:   websocket.Upgrader{},
	}
}

type Handler struct {
	mcpHandler mcp.ServiceHandler
	Upgrader   websocket.Upgrader
}

// ServeHTTP handles GET /mcp/ws. Each connection carries one MCP session:
// the client sends initialize first, and every later message rides the
// session created there. The connection closing ends the session.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	up := h.Upgrader
	if up.CheckOrigin == nil {
		up.CheckOrigin = func(r *http.Request) bool { return true }
	}

	ws, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer ws.Close()

	var session *mcp.Session
	defer func() {
		if session != nil {
			h.mcpHandler.Sessions().Delete(session.Id)
		}
	}()

	for {
		msgType, raw, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[!] mcp websocket read: %v", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		result := h.mcpHandler.Handle(raw, session)
		if result.NewSession != nil {
			// a repeated initialize replaces the session for this connection
			if session != nil {
				h.mcpHandler.Sessions().Delete(session.Id)
			}
			session = result.NewSession
		}
		if result.Response == nil {
			continue
		}
		if err := ws.WriteJSON(result.Response); err != nil {
			log.Printf("[!] mcp websocket write: %v", err)
			return
		}
	}
}
