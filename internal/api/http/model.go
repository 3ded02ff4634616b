package http

// == tools ==
type ListToolsResponse struct {
	Digest string        `json:"digest"`
	Tools  []ToolSummary `json:"tools"`
}

type ToolSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// == buildspec ==
type ValidateBuildSpecRequest struct {
	Content    string `json:"content" example:"FROM alpine\nEXPOSE 8000\nCMD [\"server\",\"--port\",\"8000\"]"`
	ContextDir string `json:"contextDir,omitempty" example:"/srv/app"`
}

type ValidateBuildSpecResponse struct {
	Valid    bool             `json:"valid"`
	Findings []FindingSummary `json:"findings"`
}

type FindingSummary struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

type ApiResponse struct {
	Status  string `json:"status"` // success | fail
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
