package format

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tubenotes/tubenotes/errors"
	"github.com/tubenotes/tubenotes/internal/domain/entities"
)

// keywordSampleSize is how much of the transcript is classified.
const keywordSampleSize = 1000

const keywordPrompt = `Classify the following transcript sample and respond with a short comma-separated list of descriptive keywords (for example: technical, business, educational, interview). Respond with the keywords only.

Sample:
%s`

// Suggestion is a template ranked by keyword overlap with the transcript.
type Suggestion struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Score       int    `json:"score"`
}

func (s *service) Suggest(ctx context.Context, transcript string) ([]Suggestion, error) {
	raw, err := s.generator.Generate(ctx, fmt.Sprintf(keywordPrompt, sampleText(transcript, keywordSampleSize)))
	if err != nil {
		s.logger.Error("❌ Keyword classification failed", zap.Error(err))
		return nil, errors.ErrGenerationFailed(err)
	}

	keywords := parseKeywords(raw)

	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("list templates", err)
	}

	suggestions := scoreTemplates(templates, keywords)

	s.logger.Info("✅ Templates scored",
		zap.Int("keyword_count", len(keywords)),
		zap.Int("match_count", len(suggestions)),
	)

	return suggestions, nil
}

// sampleText returns the first n characters of text.
func sampleText(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

// parseKeywords splits a comma-separated keyword response into lowercase,
// trimmed tokens, dropping empties.
func parseKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		kw := strings.ToLower(strings.TrimSpace(p))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// scoreTemplates counts, per template, the keywords matching its lowercased
// name or description. A keyword counts once no matter how often it matches
// across the two fields. Templates with score 0 are dropped; equal scores
// keep the input order.
func scoreTemplates(templates []entities.FormatTemplate, keywords []string) []Suggestion {
	suggestions := make([]Suggestion, 0, len(templates))
	for _, t := range templates {
		name := strings.ToLower(t.Name)
		description := strings.ToLower(t.Description)

		score := 0
		for _, kw := range keywords {
			if matchKeyword(kw, name, description) {
				score++
			}
		}

		if score > 0 {
			suggestions = append(suggestions, Suggestion{
				ID:          t.ID,
				Name:        t.Name,
				Description: t.Description,
				Score:       score,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	return suggestions
}

// matchKeyword reports whether a keyword relates to a template: either the
// keyword appears inside the name or description, or a word of the name
// appears inside the keyword ("tech" matching "technical").
func matchKeyword(kw, name, description string) bool {
	if strings.Contains(name, kw) || strings.Contains(description, kw) {
		return true
	}
	for _, word := range strings.Fields(name) {
		if strings.Contains(kw, word) {
			return true
		}
	}
	return false
}
