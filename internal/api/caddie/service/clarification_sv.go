package caddieService

import (
	"sort"
	"strings"

	"ProjectCaddie/internal/api/caddie"
	"ProjectCaddie/internal/entity"
)

const maxSuggestions = 3

type scoredIntent struct {
	intentType entity.IntentType
	score      float64
}

// GenerateClarification ranks every known intent against the input and returns
// the top suggestions with a prompt shaped by how the user phrased things.
func (s *caddieService) GenerateClarification(input string, parsed *entity.ParsedIntent, sctx *entity.SessionContext) caddie.ClarificationResponse {
	inputWords := wordSet(input)
	roundActive := sctx != nil && sctx.RoundActive()

	var scored []scoredIntent
	for intentType, def := range s.registry.Definitions {
		if intentType == entity.IntentUnknown {
			continue
		}

		score := 0.0
		if parsed != nil && parsed.Type == intentType {
			score += 2.0
		}

		for word := range inputWords {
			for _, example := range def.Examples {
				if phraseContainsWord(example, word) {
					score += 0.5
				}
			}
			if phraseContainsWord(def.Description, word) {
				score += 0.3
			}
			for _, keyword := range def.Keywords {
				if word == keyword {
					score += 1.5
				}
			}
		}

		if def.RoundScoped && roundActive {
			score += 1.0
		}
		if intentType == entity.IntentStartRound && !roundActive {
			score += 1.0
		}

		scored = append(scored, scoredIntent{intentType: intentType, score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].intentType < scored[j].intentType
	})

	count := maxSuggestions
	if len(scored) < count {
		count = len(scored)
	}

	suggestions := make([]caddie.Suggestion, 0, count)
	for _, sc := range scored[:count] {
		def := s.registry.Definitions[sc.intentType]
		suggestions = append(suggestions, caddie.Suggestion{
			Intent:      sc.intentType,
			Label:       strings.ReplaceAll(string(sc.intentType), "_", " "),
			Description: def.Description,
		})
	}

	return caddie.ClarificationResponse{
		Message:       clarificationPrompt(input),
		Suggestions:   suggestions,
		OriginalInput: input,
	}
}

func clarificationPrompt(input string) string {
	trimmed := strings.TrimSpace(input)
	words := wordSet(input)

	switch {
	case len(trimmed) < 5:
		return "Tell me a bit more about what you need."
	case containsAny(words, "it", "this", "that", "something"):
		return "I want to make sure I get this right. Did you want to:"
	case hasFeelingWord(words):
		return "Got it. Are you looking to:"
	case containsAny(words, "what", "how", "where", "when", "why", "which", "can", "should"):
		return "I can help with that. Did you want to:"
	default:
		return "I didn't quite catch that. Did you mean one of these?"
	}
}

func wordSet(text string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?'\"")
		if word != "" {
			out[word] = struct{}{}
		}
	}
	return out
}

func phraseContainsWord(phrase, word string) bool {
	for _, pw := range strings.Fields(strings.ToLower(phrase)) {
		if strings.Trim(pw, ".,!?'\"") == word {
			return true
		}
	}
	return false
}

func containsAny(words map[string]struct{}, candidates ...string) bool {
	for _, c := range candidates {
		if _, ok := words[c]; ok {
			return true
		}
	}
	return false
}

func hasFeelingWord(words map[string]struct{}) bool {
	for word := range words {
		if word == "feel" || word == "feels" || word == "feeling" {
			return true
		}
	}
	return false
}
