package types

// QueryResponse is the normalized query record returned to the UI
type QueryResponse struct {
	Text       string `json:"text"`
	ResponseID string `json:"response_id,omitempty"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// SimpleResponse carries only the reply text
type SimpleResponse struct {
	Text string `json:"text"`
}

// ClassifyResponse reports whether a message concerns the agent's subject
type ClassifyResponse struct {
	Related bool `json:"related"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
