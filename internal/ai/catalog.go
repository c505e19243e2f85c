package ai

import (
	"errors"
	"fmt"
)

// ErrUnknownQuestion is returned when a question id outside the catalog is requested.
var ErrUnknownQuestion = errors.New("unknown question id")

// Question pairs a grooming indicator with its classify and evidence prompt
// templates. Both templates carry a single substitution slot for the
// formatted conversation.
type Question struct {
	// ID is the short identifier (e.g. "Q1") used across results and reports.
	ID string
	// Label is the column header used in labeled ground-truth files.
	Label string
	// Text is the human-readable question.
	Text string

	classifyTemplate string
	evidenceTemplate string
}

// ClassifyPrompt renders the YES/NO classification prompt for a conversation.
func (q *Question) ClassifyPrompt(conversationText string) string {
	return fmt.Sprintf(q.classifyTemplate, conversationText)
}

// EvidencePrompt renders the evidence-extraction prompt for a conversation.
func (q *Question) EvidencePrompt(conversationText string) string {
	return fmt.Sprintf(q.evidenceTemplate, conversationText)
}

// Catalog is an ordered, immutable set of questions. Catalog order defines
// output order everywhere downstream.
type Catalog struct {
	questions []Question
	byID      map[string]int
}

// NewCatalog creates a catalog from an ordered question list.
func NewCatalog(questions []Question) *Catalog {
	byID := make(map[string]int, len(questions))
	for i, q := range questions {
		byID[q.ID] = i
	}

	return &Catalog{
		questions: questions,
		byID:      byID,
	}
}

// DefaultCatalog returns the five standard grooming-indicator questions.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Question{
		{
			ID:               "Q1",
			Label:            "Q1: Age given",
			Text:             "Has any person given their age? (and what age was given)",
			classifyTemplate: AgeGivenClassifyPrompt,
			evidenceTemplate: AgeGivenEvidencePrompt,
		},
		{
			ID:               "Q2",
			Label:            "Q2: Age asked",
			Text:             "Has any person asked the other for their age?",
			classifyTemplate: AgeAskedClassifyPrompt,
			evidenceTemplate: AgeAskedEvidencePrompt,
		},
		{
			ID:               "Q3",
			Label:            "Q3: Meet up request",
			Text:             "Has any person asked to meet up in person? Where?",
			classifyTemplate: MeetupClassifyPrompt,
			evidenceTemplate: MeetupEvidencePrompt,
		},
		{
			ID:               "Q4",
			Label:            "Q4: Gift/Purchase",
			Text:             "Has any person given a gift to the other? Or bought something from a list like an amazon wish list?",
			classifyTemplate: GiftClassifyPrompt,
			evidenceTemplate: GiftEvidencePrompt,
		},
		{
			ID:               "Q5",
			Label:            "Q5: Videos/Photos",
			Text:             "Have any videos or photos been produced? Requested?",
			classifyTemplate: MediaClassifyPrompt,
			evidenceTemplate: MediaEvidencePrompt,
		},
	})
}

// Questions returns the catalog's questions in order.
func (c *Catalog) Questions() []Question {
	return c.questions
}

// Question looks up a question by id.
func (c *Catalog) Question(id string) (*Question, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}

	return &c.questions[idx], nil
}

// QuestionIDs returns the ordered question ids.
func (c *Catalog) QuestionIDs() []string {
	ids := make([]string, len(c.questions))
	for i, q := range c.questions {
		ids[i] = q.ID
	}

	return ids
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}
