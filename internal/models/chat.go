package models

// ChatTurn is one role/content message in a conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PageContent carries the page the user is looking at, for prompt grounding.
type PageContent struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"` // raw markup, cleaned before prompting
}

// ChatRequest represents the request body for POST /chat
type ChatRequest struct {
	Message     string       `json:"message"`
	PageContent *PageContent `json:"pageContent,omitempty"`
}

// ChatResult is the normalized outcome of a completion-API call. Failures
// carry a user-safe Response alongside the Error detail.
type ChatResult struct {
	Success  bool           `json:"success"`
	Response string         `json:"response,omitempty"`
	Error    string         `json:"error,omitempty"`
	Usage    map[string]any `json:"usage,omitempty"`
	Model    string         `json:"model,omitempty"`
}
