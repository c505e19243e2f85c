package ai

import (
	"context"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/chatsafety/sentinel/internal/ai/client"
	"github.com/chatsafety/sentinel/internal/conversation"
)

// evidenceMarker separates the model's preamble from the quoted evidence.
const evidenceMarker = "Evidence:"

// Answer is the binary outcome of a classification question.
type Answer string

const (
	AnswerYes Answer = "YES"
	AnswerNo  Answer = "NO"
)

// AnswerRecord is the final outcome for one (conversation, question) pair.
// Invariant: Answer is NO exactly when EvidenceTurns is empty, and Evidence
// then holds the canonical not-found string.
type AnswerRecord struct {
	QuestionID    string `json:"question_id"`
	Answer        Answer `json:"answer"`
	Evidence      string `json:"evidence"`
	EvidenceTurns []int  `json:"evidence_turns,omitempty"`
}

// AnalysisResult holds one AnswerRecord per catalog question, in catalog
// order, for a single conversation.
type AnalysisResult struct {
	ConversationID string         `json:"conversation_id"`
	Answers        []AnswerRecord `json:"answers"`
}

// Answer returns the record for a question id, or nil when absent.
func (r *AnalysisResult) Answer(questionID string) *AnswerRecord {
	for i := range r.Answers {
		if r.Answers[i].QuestionID == questionID {
			return &r.Answers[i]
		}
	}

	return nil
}

// ConversationAnalyzer runs the question catalog over conversations.
type ConversationAnalyzer struct {
	oracle          client.Oracle
	catalog         *Catalog
	questionWorkers int
	logger          *zap.Logger
}

// NewConversationAnalyzer creates a new analyzer. questionWorkers bounds how
// many questions of one conversation run concurrently; 1 keeps them serial.
func NewConversationAnalyzer(
	oracle client.Oracle, catalog *Catalog, questionWorkers int, logger *zap.Logger,
) *ConversationAnalyzer {
	if questionWorkers < 1 {
		questionWorkers = 1
	}

	return &ConversationAnalyzer{
		oracle:          oracle,
		catalog:         catalog,
		questionWorkers: questionWorkers,
		logger:          logger.Named("analyzer"),
	}
}

// Analyze produces one AnalysisResult for the conversation. Oracle failures
// degrade the affected question to NO and never abort the other questions;
// output order always matches catalog order regardless of completion order.
func (a *ConversationAnalyzer) Analyze(ctx context.Context, conv *conversation.Conversation) *AnalysisResult {
	formatted := conv.Format()
	questions := a.catalog.Questions()
	records := make([]AnswerRecord, len(questions))

	p := pool.New().WithMaxGoroutines(a.questionWorkers)

	for i := range questions {
		p.Go(func() {
			records[i] = a.analyzeQuestion(ctx, conv, &questions[i], formatted)
		})
	}

	p.Wait()

	return &AnalysisResult{
		ConversationID: conv.ID,
		Answers:        records,
	}
}

// analyzeQuestion runs the classify call and, on YES, the evidence call plus
// grounding for a single question.
func (a *ConversationAnalyzer) analyzeQuestion(
	ctx context.Context, conv *conversation.Conversation, question *Question, formatted string,
) AnswerRecord {
	response, err := a.oracle.Generate(ctx, question.ClassifyPrompt(formatted))
	if err != nil {
		a.logger.Warn("Classify call failed, degrading question to NO",
			zap.String("conversation_id", conv.ID),
			zap.String("question_id", question.ID),
			zap.Error(err))

		return negativeRecord(question.ID)
	}

	// Permissive parse: the oracle is not guaranteed to emit exactly YES/NO.
	if !strings.Contains(strings.ToUpper(response), "YES") {
		return negativeRecord(question.ID)
	}

	// Evidence is only generated for positive signals
	evidenceResponse, err := a.oracle.Generate(ctx, question.EvidencePrompt(formatted))
	if err != nil {
		a.logger.Warn("Evidence call failed, degrading question to NO",
			zap.String("conversation_id", conv.ID),
			zap.String("question_id", question.ID),
			zap.Error(err))

		return negativeRecord(question.ID)
	}

	evidence := extractEvidence(evidenceResponse)

	matched := GroundEvidence(evidence, conv.Turns)
	if len(matched) == 0 {
		// Unverifiable claim is treated as absence of evidence
		a.logger.Debug("Evidence claim did not match any turn, downgrading to NO",
			zap.String("conversation_id", conv.ID),
			zap.String("question_id", question.ID),
			zap.String("claim", evidence))

		return negativeRecord(question.ID)
	}

	return AnswerRecord{
		QuestionID:    question.ID,
		Answer:        AnswerYes,
		Evidence:      evidence,
		EvidenceTurns: matched,
	}
}

// extractEvidence pulls the raw evidence string out of an oracle response:
// everything after the first "Evidence:" marker.
func extractEvidence(response string) string {
	_, after, found := strings.Cut(response, evidenceMarker)
	if !found {
		return EvidenceMarkerMissing
	}

	return strings.TrimSpace(after)
}

func negativeRecord(questionID string) AnswerRecord {
	return AnswerRecord{
		QuestionID: questionID,
		Answer:     AnswerNo,
		Evidence:   NoEvidenceFound,
	}
}
