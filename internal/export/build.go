package export

import (
	"strconv"

	"github.com/chatsafety/sentinel/internal/ai"
	"github.com/chatsafety/sentinel/internal/export/types"
	"github.com/chatsafety/sentinel/internal/runner"
)

// BuildFileAnalysis folds one file's conversation results into the per-file
// JSON artifact shape. A question is YES at file level when any conversation
// answered YES; the file-level evidence is the first such conversation's and
// every YES conversation contributes an instance.
func BuildFileAnalysis(result *runner.FileResult, catalog *ai.Catalog) *types.FileAnalysis {
	ids := make([]string, len(result.Results))
	for i, r := range result.Results {
		ids[i] = r.ConversationID
	}

	questions := make([]types.QuestionSummary, 0, catalog.Len())

	for i, question := range catalog.Questions() {
		summary := types.QuestionSummary{
			QuestionNumber: strconv.Itoa(i + 1),
			Question:       question.Text,
			Answer:         string(ai.AnswerNo),
			Evidence:       ai.NoEvidenceFound,
			Instances:      []types.Instance{},
		}

		for _, r := range result.Results {
			record := r.Answer(question.ID)
			if record == nil || record.Answer != ai.AnswerYes {
				continue
			}

			if summary.Answer != string(ai.AnswerYes) {
				summary.Answer = string(ai.AnswerYes)
				summary.Evidence = record.Evidence
			}

			summary.Instances = append(summary.Instances, types.Instance{
				ConversationID: r.ConversationID,
				Evidence:       record.Evidence,
				Turns:          record.EvidenceTurns,
			})
		}

		questions = append(questions, summary)
	}

	return &types.FileAnalysis{
		FilePath:        result.Path,
		ConversationIDs: ids,
		Analysis:        types.Analysis{Questions: questions},
	}
}

// flattenAnswers turns file results into one AnswerRow per (conversation,
// question) pair for the CSV and SQLite exports.
func flattenAnswers(results []*runner.FileResult) []types.AnswerRow {
	var rows []types.AnswerRow

	for _, file := range results {
		for _, result := range file.Results {
			for _, answer := range result.Answers {
				rows = append(rows, types.AnswerRow{
					SourceFile:     file.Path,
					ConversationID: result.ConversationID,
					QuestionID:     answer.QuestionID,
					Answer:         string(answer.Answer),
					Evidence:       answer.Evidence,
					Turns:          answer.EvidenceTurns,
				})
			}
		}
	}

	return rows
}
