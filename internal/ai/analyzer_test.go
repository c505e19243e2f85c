package ai_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/chatsafety/sentinel/internal/ai"
	"github.com/chatsafety/sentinel/internal/conversation"
)

var errOracleDown = errors.New("oracle down")

// scriptedOracle answers classify prompts per question id and serves one
// evidence response for all questions.
type scriptedOracle struct {
	mu        sync.Mutex
	classify  map[string]string
	evidence  string
	failAll   bool
	callCount int
}

func (o *scriptedOracle) Generate(_ context.Context, prompt string) (string, error) {
	o.mu.Lock()
	o.callCount++
	o.mu.Unlock()

	if o.failAll {
		return "", errOracleDown
	}

	// Classify prompts ask for a bare verdict, evidence prompts ask for a
	// quote.
	if strings.Contains(prompt, `Respond with only "YES"`) {
		for marker, response := range o.classify {
			if strings.Contains(prompt, marker) {
				return response, nil
			}
		}
	}

	return o.evidence, nil
}

func testConversation() *conversation.Conversation {
	return &conversation.Conversation{
		ID: "conv-1",
		Turns: []conversation.Turn{
			{Speaker: "adult", Text: "how old are you"},
			{Speaker: "minor", Text: "im 13"},
		},
	}
}

// classifyMarkers are fragments unique to each question's classify template.
var classifyMarkers = map[string]string{
	"Q1": "mentions their age",
	"Q2": "asks another speaker for their age",
	"Q3": "meet up in person",
	"Q4": "giving a gift",
	"Q5": "producing or requesting videos or photos",
}

func newScriptedOracle(answers map[string]string, evidence string) *scriptedOracle {
	classify := make(map[string]string, len(answers))
	for id, answer := range answers {
		classify[classifyMarkers[id]] = answer
	}

	return &scriptedOracle{classify: classify, evidence: evidence}
}

func TestAnalyzeGroundedYes(t *testing.T) {
	t.Parallel()

	oracle := newScriptedOracle(map[string]string{
		"Q1": "YES", "Q2": "YES", "Q3": "NO", "Q4": "NO", "Q5": "NO",
	}, `Evidence: "im 13"`)

	analyzer := ai.NewConversationAnalyzer(oracle, ai.DefaultCatalog(), 2, zaptest.NewLogger(t))
	result := analyzer.Analyze(t.Context(), testConversation())

	require.Len(t, result.Answers, 5)
	assert.Equal(t, "conv-1", result.ConversationID)

	q1 := result.Answer("Q1")
	require.NotNil(t, q1)
	assert.Equal(t, ai.AnswerYes, q1.Answer)
	assert.Equal(t, `"im 13"`, q1.Evidence)
	assert.Equal(t, []int{1}, q1.EvidenceTurns)

	q3 := result.Answer("Q3")
	require.NotNil(t, q3)
	assert.Equal(t, ai.AnswerNo, q3.Answer)
	assert.Equal(t, ai.NoEvidenceFound, q3.Evidence)
	assert.Empty(t, q3.EvidenceTurns)
}

func TestAnalyzeOrderMatchesCatalog(t *testing.T) {
	t.Parallel()

	oracle := newScriptedOracle(map[string]string{
		"Q1": "NO", "Q2": "NO", "Q3": "NO", "Q4": "NO", "Q5": "NO",
	}, "")

	catalog := ai.DefaultCatalog()
	analyzer := ai.NewConversationAnalyzer(oracle, catalog, 5, zaptest.NewLogger(t))
	result := analyzer.Analyze(t.Context(), testConversation())

	ids := make([]string, len(result.Answers))
	for i, answer := range result.Answers {
		ids[i] = answer.QuestionID
	}

	assert.Equal(t, catalog.QuestionIDs(), ids)
}

func TestAnalyzeUngroundedYesDowngrades(t *testing.T) {
	t.Parallel()

	oracle := newScriptedOracle(map[string]string{
		"Q1": "YES", "Q2": "NO", "Q3": "NO", "Q4": "NO", "Q5": "NO",
	}, "Evidence: the adult requested a photograph")

	analyzer := ai.NewConversationAnalyzer(oracle, ai.DefaultCatalog(), 1, zaptest.NewLogger(t))
	result := analyzer.Analyze(t.Context(), testConversation())

	q1 := result.Answer("Q1")
	require.NotNil(t, q1)
	assert.Equal(t, ai.AnswerNo, q1.Answer)
	assert.Equal(t, ai.NoEvidenceFound, q1.Evidence)
	assert.Empty(t, q1.EvidenceTurns)
}

func TestAnalyzeMissingEvidenceMarkerDowngrades(t *testing.T) {
	t.Parallel()

	oracle := newScriptedOracle(map[string]string{
		"Q1": "YES", "Q2": "NO", "Q3": "NO", "Q4": "NO", "Q5": "NO",
	}, "the minor said im 13")

	analyzer := ai.NewConversationAnalyzer(oracle, ai.DefaultCatalog(), 1, zaptest.NewLogger(t))
	result := analyzer.Analyze(t.Context(), testConversation())

	q1 := result.Answer("Q1")
	require.NotNil(t, q1)
	assert.Equal(t, ai.AnswerNo, q1.Answer)
}

func TestAnalyzePermissiveYesParse(t *testing.T) {
	t.Parallel()

	oracle := newScriptedOracle(map[string]string{
		"Q1": "yes, the minor stated their age.",
		"Q2": "Answer: NO", "Q3": "NO", "Q4": "NO", "Q5": "NO",
	}, `Evidence: "im 13"`)

	analyzer := ai.NewConversationAnalyzer(oracle, ai.DefaultCatalog(), 1, zaptest.NewLogger(t))
	result := analyzer.Analyze(t.Context(), testConversation())

	q1 := result.Answer("Q1")
	require.NotNil(t, q1)
	assert.Equal(t, ai.AnswerYes, q1.Answer)
}

func TestAnalyzeOracleFailureDegradesToNo(t *testing.T) {
	t.Parallel()

	oracle := &scriptedOracle{failAll: true}

	analyzer := ai.NewConversationAnalyzer(oracle, ai.DefaultCatalog(), 3, zaptest.NewLogger(t))
	result := analyzer.Analyze(t.Context(), testConversation())

	require.Len(t, result.Answers, 5)

	for _, answer := range result.Answers {
		assert.Equal(t, ai.AnswerNo, answer.Answer)
		assert.Equal(t, ai.NoEvidenceFound, answer.Evidence)
	}
}

func TestAnalyzeSkipsEvidenceCallOnNo(t *testing.T) {
	t.Parallel()

	oracle := newScriptedOracle(map[string]string{
		"Q1": "NO", "Q2": "NO", "Q3": "NO", "Q4": "NO", "Q5": "NO",
	}, "")

	analyzer := ai.NewConversationAnalyzer(oracle, ai.DefaultCatalog(), 1, zaptest.NewLogger(t))
	analyzer.Analyze(t.Context(), testConversation())

	assert.Equal(t, 5, oracle.callCount, "NO answers must not trigger evidence calls")
}
