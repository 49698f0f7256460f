package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type normalizer struct {
	slang       map[string]string
	numberWords map[string]int
	clubPattern *regexp.Regexp
}

func NewNormalizer() INormalizer {
	slang := map[string]string{
		"rec":      "recommendation",
		"reco":     "recommendation",
		"recs":     "recommendations",
		"yds":      "yards",
		"yd":       "yard",
		"mph":      "miles per hour",
		"dl":       "downhill lie",
		"ul":       "uphill lie",
		"fw":       "fairway",
		"gir":      "green in regulation",
		"ob":       "out of bounds",
		"lw":       "lob wedge",
		"sw":       "sand wedge",
		"gw":       "gap wedge",
		"pw":       "pitching wedge",
		"bday":     "birdie",
		"dbl":      "double bogey",
		"b4":       "before",
		"rn":       "right now",
		"tmrw":     "tomorrow",
		"hcp":      "handicap",
		"whats":    "what is",
		"im":       "i am",
		"ive":      "i have",
		"dont":     "do not",
		"cant":     "cannot",
	}

	numberWords := map[string]int{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
		"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
		"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
		"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
		"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
		"hundred": 100,
	}

	return &normalizer{
		slang:       slang,
		numberWords: numberWords,
		clubPattern: regexp.MustCompile(`^([3-9])(i|w|h)$`),
	}
}

func (n *normalizer) Normalize(text string) NormalizationResult {
	metadata := make(map[string]string)
	metadata["original_length"] = strconv.Itoa(len(text))

	cleaned := n.cleanText(text)

	words := strings.Fields(cleaned)
	rewrites := 0
	out := make([]string, 0, len(words))
	for _, word := range words {
		expanded, changed := n.rewriteWord(word)
		if changed {
			rewrites++
		}
		out = append(out, expanded...)
	}

	folded, numFolds := n.foldNumberWords(out)
	rewrites += numFolds

	metadata["rewrites"] = strconv.Itoa(rewrites)

	return NormalizationResult{
		NormalizedInput: strings.Join(folded, " "),
		Metadata:        metadata,
	}
}

func (n *normalizer) rewriteWord(word string) ([]string, bool) {
	if replacement, ok := n.slang[word]; ok {
		return strings.Fields(replacement), true
	}

	// Club shorthand: "7i" -> "7 iron", "3w" -> "3 wood", "4h" -> "4 hybrid".
	if m := n.clubPattern.FindStringSubmatch(word); m != nil {
		suffix := map[string]string{"i": "iron", "w": "wood", "h": "hybrid"}[m[2]]
		return []string{m[1], suffix}, true
	}

	return []string{word}, false
}

// foldNumberWords rewrites spelled-out quantities into digits, so "one fifty"
// becomes "150" and "seven" becomes "7" before classification.
func (n *normalizer) foldNumberWords(words []string) ([]string, int) {
	var out []string
	folds := 0

	for i := 0; i < len(words); i++ {
		val, ok := n.numberWords[words[i]]
		if !ok {
			out = append(out, words[i])
			continue
		}

		total := val
		consumed := 1
		for i+consumed < len(words) {
			next, ok := n.numberWords[words[i+consumed]]
			if !ok {
				break
			}
			switch {
			case next == 100:
				total *= 100
			case total%100 == 0 && next < 100:
				total += next
			case total < 10 && next%10 == 0:
				// "one fifty" style shorthand for 150
				total = total*100 + next
			default:
				total += next
			}
			consumed++
		}

		out = append(out, strconv.Itoa(total))
		folds++
		i += consumed - 1
	}

	return out, folds
}

func (n *normalizer) cleanText(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ := transform.String(t, text)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	words := strings.Fields(result)
	return strings.Join(words, " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
