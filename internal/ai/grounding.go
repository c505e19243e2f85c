package ai

import (
	"sort"
	"strings"

	"github.com/chatsafety/sentinel/internal/conversation"
	"github.com/chatsafety/sentinel/pkg/utils"
)

// Canonical evidence strings.
const (
	// NoEvidenceFound is recorded whenever a question's final answer is NO.
	NoEvidenceFound = "No evidence found in conversation"
	// EvidenceMarkerMissing is recorded when the evidence response lacks the
	// "Evidence:" marker; grounding necessarily fails for it.
	EvidenceMarkerMissing = "Evidence not found"
)

// conjunctionSeparators are tried in priority order when splitting a fused
// evidence claim. The model tends to join multiple quotes with "and".
var conjunctionSeparators = []string{" and ", " as well as ", ", and ", ", "}

// GroundEvidence maps a claimed evidence quote onto the conversation turns
// that substantiate it. The result is a sorted set of turn indices; an empty
// result means the claim could not be verified against the transcript.
//
// Matching is lexical, not semantic: a turn matches a sub-claim when either
// normalized text contains the other. Paraphrased evidence with no lexical
// overlap will not match; that is a deliberate precision-over-recall policy.
func GroundEvidence(claim string, turns []conversation.Turn) []int {
	candidates := splitClaims(normalizeClaim(claim))
	if len(candidates) == 0 {
		return nil
	}

	normalizer := utils.NewTextNormalizer()
	matched := make(map[int]struct{})

	for _, candidate := range candidates {
		for i, turn := range turns {
			// Substring either way: the model truncates quotes and sometimes
			// wraps a whole turn in extra words.
			if normalizer.Contains(turn.Text, candidate) || normalizer.Contains(candidate, turn.Text) {
				matched[i] = struct{}{}
			}
		}
	}

	if len(matched) == 0 {
		return nil
	}

	indices := make([]int, 0, len(matched))
	for i := range matched {
		indices = append(indices, i)
	}

	sort.Ints(indices)

	return indices
}

// normalizeClaim strips surrounding quotes and whitespace and removes a
// leading `speaker:` prefix when present.
func normalizeClaim(claim string) string {
	claim = stripQuotes(claim)

	// Drop a speaker prefix such as `Alice: "..."`. A colon inside the quoted
	// text itself comes after a quote character, so only strip when the
	// prefix is plain.
	if idx := strings.Index(claim, ":"); idx >= 0 {
		prefix := claim[:idx]
		if !strings.ContainsAny(prefix, `"'`) && len(strings.Fields(prefix)) <= 4 {
			claim = claim[idx+1:]
		}
	}

	return stripQuotes(claim)
}

// splitClaims breaks a fused claim into sub-claims at the first conjunction
// separator found, in priority order. Without a separator the whole claim is
// the single candidate.
func splitClaims(claim string) []string {
	if claim == "" {
		return nil
	}

	for _, sep := range conjunctionSeparators {
		if !strings.Contains(claim, sep) {
			continue
		}

		pieces := strings.Split(claim, sep)
		candidates := make([]string, 0, len(pieces))

		for _, piece := range pieces {
			if piece = stripQuotes(piece); piece != "" {
				candidates = append(candidates, piece)
			}
		}

		if len(candidates) > 0 {
			return candidates
		}

		return nil
	}

	return []string{claim}
}

func stripQuotes(s string) string {
	s = strings.Trim(strings.TrimSpace(s), "\"'“”‘’")
	return strings.TrimSpace(s)
}
