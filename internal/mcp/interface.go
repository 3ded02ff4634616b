package mcp

type ServiceHandler interface {
	// Handle processes one JSON-RPC message. session is nil until the
	// transport has resolved one; initialize creates it.
	Handle(raw []byte, session *Session) HandleResult
	Sessions() *SessionManager
	CatalogDigest() (string, error)
}

// HandleResult carries the response (nil for notifications) and, for
// initialize, the freshly created session the transport must advertise.
type HandleResult struct {
	Response   *Response
	NewSession *Session
}
