// Package textfilter softens graphic gore vocabulary in narrator output
// when the player has disabled mature content.
package textfilter

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Graphic terms softened when gore is disabled. The narrator is told to
// respect the flag, but LLM output drifts; this is the backstop.
var goreTerms = []string{
	"entrails", "viscera", "disemboweled", "disembowel", "eviscerated",
	"eviscerate", "decapitated", "decapitate", "dismembered", "dismember",
	"mutilated", "mutilate", "flayed", "flay", "gore", "gory",
	"blood-soaked", "bloodsoaked", "splatter", "splattered",
}

// goreReplacements maps graphic terms to muted alternatives.
var goreReplacements = map[string]string{
	"entrails":     "wounds",
	"viscera":      "remains",
	"disemboweled": "gravely wounded",
	"disembowel":   "gravely wound",
	"eviscerated":  "cut down",
	"eviscerate":   "cut down",
	"decapitated":  "slain",
	"decapitate":   "slay",
	"dismembered":  "maimed",
	"dismember":    "maim",
	"mutilated":    "broken",
	"mutilate":     "break",
	"flayed":       "scarred",
	"flay":         "scar",
	"gore":         "carnage",
	"gory":         "grim",
	"blood-soaked": "battle-worn",
	"bloodsoaked":  "battle-worn",
	"splatter":     "stain",
	"splattered":   "stained",
}

// GoreFilter softens graphic descriptions.
type GoreFilter struct {
	regexes map[string]*regexp.Regexp
}

// NewGoreFilter creates a new gore filter
func NewGoreFilter() *GoreFilter {
	gf := &GoreFilter{
		regexes: make(map[string]*regexp.Regexp),
	}

	// Pre-compile regex patterns for each term
	for _, word := range goreTerms {
		pattern := `\b` + regexp.QuoteMeta(word) + `\b`
		gf.regexes[word] = regexp.MustCompile(`(?i)` + pattern)
	}

	return gf
}

// Soften replaces graphic terms in the input text with muted alternatives
func (gf *GoreFilter) Soften(text string) string {
	result := text

	for _, word := range goreTerms {
		if regex, exists := gf.regexes[word]; exists {
			if replacement, hasReplacement := goreReplacements[word]; hasReplacement {
				result = regex.ReplaceAllStringFunc(result, func(match string) string {
					return preserveCase(match, replacement)
				})
			}
		}
	}

	return result
}

// ContainsGore checks if the text contains any graphic terms
func (gf *GoreFilter) ContainsGore(text string) bool {
	for _, word := range goreTerms {
		if regex, exists := gf.regexes[word]; exists {
			if regex.MatchString(text) {
				return true
			}
		}
	}
	return false
}

// preserveCase applies the case pattern of the original word to the replacement
func preserveCase(original, replacement string) string {
	if len(original) == 0 {
		return replacement
	}

	// All uppercase
	if strings.ToUpper(original) == original {
		return strings.ToUpper(replacement)
	}

	// All lowercase
	if strings.ToLower(original) == original {
		return strings.ToLower(replacement)
	}

	// Title case (first letter uppercase, rest lowercase)
	titleCaser := cases.Title(language.English)
	if titleCaser.String(strings.ToLower(original)) == original {
		return titleCaser.String(replacement)
	}

	// Mixed case - preserve the pattern character by character
	result := make([]rune, 0, len(replacement))
	originalRunes := []rune(original)

	for i, r := range replacement {
		if i < len(originalRunes) {
			if unicode.IsUpper(originalRunes[i]) {
				result = append(result, unicode.ToUpper(r))
			} else {
				result = append(result, unicode.ToLower(r))
			}
		} else {
			result = append(result, unicode.ToLower(r))
		}
	}

	return string(result)
}
