package conversation

import "strings"

// Turn is a single message within a conversation. Turns are immutable once
// loaded and their position within the conversation is meaningful: evidence
// grounding binds claims to turn indices.
type Turn struct {
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Conversation is a normalized chat transcript.
type Conversation struct {
	ID    string `json:"conversation_id"`
	Turns []Turn `json:"turns"`
}

// Format renders the conversation as "speaker: text" lines for prompt
// substitution.
func (c *Conversation) Format() string {
	var b strings.Builder
	for i, turn := range c.Turns {
		if i > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(turn.Speaker)
		b.WriteString(": ")
		b.WriteString(turn.Text)
	}

	return b.String()
}
