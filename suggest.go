package commandline

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultSuggestionThreshold is the minimum score of a suggested name.
const DefaultSuggestionThreshold = 0.5

// Suggestion is a candidate name scored against an unrecognized token.
type Suggestion struct {
	Name string
	// Score is in range 0..1, 1 being a perfect match.
	Score float64
}

// SuggestionProvider suggests declared names for unrecognized tokens.
//
// A name is scored by its edit distance to the token normalized by the
// length of the longer of the two, compared case insensitively. Names the
// token abbreviates, i.e. contain all of its characters in order, score at
// least Threshold if the token is longer than a single rune.
type SuggestionProvider struct {
	// Threshold is the minimum score of a suggested name.
	Threshold float64
}

// NewSuggestionProvider returns a new *SuggestionProvider with threshold.
// If threshold is not positive DefaultSuggestionThreshold is used.
func NewSuggestionProvider(threshold float64) *SuggestionProvider {
	if threshold <= 0 {
		threshold = DefaultSuggestionThreshold
	}
	return &SuggestionProvider{Threshold: threshold}
}

// Rank scores all candidates against token and returns them sorted by
// descending score. Candidates with equal scores keep their order.
func (sp *SuggestionProvider) Rank(token string, candidates []string) []Suggestion {
	ranked := make([]Suggestion, 0, len(candidates))
	for _, name := range candidates {
		ranked = append(ranked, Suggestion{Name: name, Score: sp.score(token, name)})
	}
	slices.SortStableFunc(ranked, func(a, b Suggestion) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ranked
}

// Suggest returns candidates scoring at least Threshold against token,
// best first. Returns nil for an empty token.
func (sp *SuggestionProvider) Suggest(token string, candidates []string) (out []string) {
	if token == "" {
		return nil
	}
	for _, s := range sp.Rank(token, candidates) {
		if s.Score < sp.Threshold {
			break
		}
		out = append(out, s.Name)
	}
	return
}

// GetSuggestions returns names registered in scope that token might have
// meant, best first. Help names are candidates if help is enabled.
func (sp *SuggestionProvider) GetSuggestions(token string, scope *Command) []string {
	return sp.Suggest(token, scope.scopeNames())
}

// score returns the similarity of token and name. Tokens of at least two
// runes that name abbreviates score at least Threshold.
func (sp *SuggestionProvider) score(token, name string) float64 {
	s := similarity(token, name)
	if s < sp.Threshold && utf8.RuneCountInString(token) >= 2 && fuzzy.MatchFold(token, name) {
		s = sp.Threshold
	}
	return s
}

// similarity returns 1 minus the edit distance of a and b divided by the
// rune length of the longer one.
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.Distance(a, b, nil))/float64(longest)
}
