package logger

type Logger interface {
	Write(event Event)
}

type Event struct {
	TS            string `json:"ts"`
	EventId       string `json:"event_id"`
	CorrelationId string `json:"correlation_id,omitempty"`
	Severity      string `json:"severity"`

	Actor Actor `json:"actor"`

	Action string `json:"action,omitempty"`
	Target Target `json:"target,omitempty"`

	Request Request `json:"request"`
	Result  Result  `json:"result"`

	Runtime Runtime `json:"runtime"`

	Extra map[string]any `json:"extra,omitempty"`
}

type Actor struct {
	PeerIp    string `json:"peer_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

type Target struct {
	// mcp
	McpMethod  string `json:"mcp_method,omitempty"`
	SessionId  string `json:"session_id,omitempty"`
	Tool       string `json:"tool,omitempty"`
	ArgsDigest string `json:"args_digest,omitempty"`

	// buildspec
	File     string `json:"file,omitempty"`
	Findings int    `json:"findings,omitempty"`
}

type Request struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Host   string `json:"host,omitempty"`
}

type Result struct {
	Status    string `json:"status"`
	Code      int    `json:"code"`
	Reason    string `json:"reason,omitempty"`
	Bytes     int    `json:"bytes,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type Runtime struct {
	Component string `json:"component,omitempty"`
	Node      string `json:"node,omitempty"`
}

type ctxKey int

var Severity = map[int]string{
	0: "information",
	1: "low",
	2: "medium",
	3: "high",
	4: "critical",
}

const (
	SEV_INFO     = 0
	SEV_LOW      = 1
	SEV_MEDIUM   = 2
	SEV_HIGH     = 3
	SEV_CRITICAL = 4
)

type Rule struct {
	Method   string
	Pattern  string
	Action   string
	Severity int
}

var rules = []Rule{
	// health
	{"GET", "/health", "health.check", SEV_INFO},

	// mcp
	{"POST", "/mcp", "mcp.message", SEV_INFO},
	{"DELETE", "/mcp", "mcp.close", SEV_LOW},
	{"GET", "/mcp/ws", "ws.attach", SEV_LOW},

	// tools
	{"GET", "/v1/tools", "tool.list", SEV_INFO},

	// buildspec
	{"POST", "/v1/buildspecs/validate", "buildspec.validate", SEV_LOW},
}

var actionSeverity = map[string]int{
	"mcp.initialize":       SEV_LOW,
	"mcp.tools/list":       SEV_INFO,
	"mcp.tools/call":       SEV_LOW,
	"mcp.logging/setLevel": SEV_MEDIUM,
	"mcp.ping":             SEV_INFO,
}
