package audit

import "time"

// Record is one tool invocation, persisted as a JSON line.
type Record struct {
	CallId     string    `json:"callId"`
	SessionId  string    `json:"sessionId,omitempty"`
	Tool       string    `json:"tool"`
	ArgsDigest string    `json:"argsDigest,omitempty"`
	IsError    bool      `json:"isError,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"durationMs"`
	CalledAt   time.Time `json:"calledAt"`
}
