package llm

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest contains the parameters for a chat-completion request.
type CompletionRequest struct {
	Model    string
	Messages []Message
}

// CompletionResponse contains the result of a non-streaming completion.
type CompletionResponse struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	FinishReason     string
}

// Chunk is one incremental fragment of a streamed completion. Content is
// empty for chunks that carry no text (role preludes, finish markers).
type Chunk struct {
	Content string
}

// Model describes one model advertised by the gateway.
type Model struct {
	ID      string `json:"id"`
	OwnedBy string `json:"owned_by,omitempty"`
}
