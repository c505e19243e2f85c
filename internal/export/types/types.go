package types

// Instance records one conversation that substantiated a YES answer.
type Instance struct {
	ConversationID string `json:"conversation_id"`
	Evidence       string `json:"evidence"`
	Turns          []int  `json:"turns"`
}

// QuestionSummary is the file-level verdict for one question: YES when any
// conversation in the file answered YES, with one instance per such
// conversation.
type QuestionSummary struct {
	QuestionNumber string     `json:"question_number"`
	Question       string     `json:"question"`
	Answer         string     `json:"answer"`
	Evidence       string     `json:"evidence"`
	Instances      []Instance `json:"instances"`
}

// Analysis wraps the ordered question summaries.
type Analysis struct {
	Questions []QuestionSummary `json:"questions"`
}

// FileAnalysis is the JSON artifact written per input file.
type FileAnalysis struct {
	FilePath        string   `json:"file_path"`
	ConversationIDs []string `json:"conversation_ids"`
	Analysis        Analysis `json:"analysis"`
}

// AnswerRow is one (conversation, question) outcome flattened for tabular
// exports.
type AnswerRow struct {
	SourceFile     string
	ConversationID string
	QuestionID     string
	Answer         string
	Evidence       string
	Turns          []int
}
