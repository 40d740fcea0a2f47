package arcade

import (
	"net/http"
	"time"
)

// Config defines Arcade API client settings
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	// PollWait is the long-poll window of one auth status request
	PollWait time.Duration
}

// Client calls the Arcade tool authorization and execution API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	pollWait   time.Duration
}

// Authorization status values
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// AuthorizationResponse describes the state of a tool authorization
type AuthorizationResponse struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	URL    string   `json:"url,omitempty"`
	UserID string   `json:"user_id,omitempty"`
	Scopes []string `json:"scopes,omitempty"`
}

type authorizeRequest struct {
	ToolName string `json:"tool_name"`
	UserID   string `json:"user_id"`
}

type executeRequest struct {
	ToolName string         `json:"tool_name"`
	Input    map[string]any `json:"input"`
	UserID   string         `json:"user_id"`
}

// ExecuteResponse is the result of one tool execution
type ExecuteResponse struct {
	ID          string         `json:"id"`
	ExecutionID string         `json:"execution_id"`
	Status      string         `json:"status"`
	Success     bool           `json:"success"`
	Duration    float64        `json:"duration"`
	Output      *ExecuteOutput `json:"output,omitempty"`
}

type ExecuteOutput struct {
	Value any `json:"value,omitempty"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
