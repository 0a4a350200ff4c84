package types

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
}

// SourceRecord is one retrieved document in the shape shared by all
// collections. Metadata keys depend on the originating collection but are
// always present, with placeholder values when the hit lacked them.
type SourceRecord struct {
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Metadata   map[string]any `json:"metadata"`
	Collection string         `json:"collection"`
}

type ChatResponse struct {
	Response string         `json:"response"`
	Sources  []SourceRecord `json:"sources"`
}
