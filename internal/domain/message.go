package domain

// ChatMessage is immutable once appended to the log. There are no
// timestamps: insertion order in the log is the only ordering.
type ChatMessage struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}
