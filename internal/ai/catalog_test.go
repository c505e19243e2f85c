package ai_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatsafety/sentinel/internal/ai"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	catalog := ai.DefaultCatalog()

	assert.Equal(t, 5, catalog.Len())
	assert.Equal(t, []string{"Q1", "Q2", "Q3", "Q4", "Q5"}, catalog.QuestionIDs())

	q3, err := catalog.Question("Q3")
	require.NoError(t, err)
	assert.Equal(t, "Q3: Meet up request", q3.Label)

	_, err = catalog.Question("Q9")
	assert.ErrorIs(t, err, ai.ErrUnknownQuestion)
}

func TestPromptRendering(t *testing.T) {
	t.Parallel()

	catalog := ai.DefaultCatalog()
	transcript := "alice: hi\nbob: hello"

	for _, question := range catalog.Questions() {
		classify := question.ClassifyPrompt(transcript)
		evidence := question.EvidencePrompt(transcript)

		assert.Contains(t, classify, transcript, question.ID)
		assert.Contains(t, evidence, transcript, question.ID)

		// Templates carry exactly one substitution slot.
		assert.NotContains(t, classify, "%s", question.ID)
		assert.NotContains(t, evidence, "%s", question.ID)
		assert.False(t, strings.Contains(classify, "%!"), question.ID)
		assert.False(t, strings.Contains(evidence, "%!"), question.ID)
	}
}
