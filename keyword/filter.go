package keyword

import (
	"medical-panel/domain/specialist"
	"sort"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Filter matches a static, ordered list of terms against free text.
// Matching is case-insensitive substring containment, nothing fuzzier.
// A Filter is immutable once built and safe for concurrent use.
type Filter struct {
	terms   []string
	index   map[string]int
	matcher *goahocorasick.Machine
}

// NewFilter builds the Aho-Corasick automaton for the given terms.
// Blank terms and case-insensitive duplicates are dropped, the first occurrence keeps its position.
func NewFilter(terms []string) (Filter, error) {
	kept := make([]string, 0, len(terms))
	index := make(map[string]int, len(terms))
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			continue
		}
		key := string(normalize(term))
		if _, duplicate := index[key]; duplicate {
			continue
		}
		index[key] = len(kept)
		kept = append(kept, term)
	}

	f := Filter{terms: kept, index: index}
	if len(kept) == 0 {
		return f, nil
	}

	// The double-array trie underneath expects sorted, unique keys.
	keys := lo.Keys(index)
	sort.Strings(keys)
	patterns := lo.Map(keys, func(key string, _ int) []rune {
		return []rune(key)
	})

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Filter{}, err
	}
	f.matcher = m
	return f, nil
}

// Terms returns the effective term list in match order.
func (f Filter) Terms() []string {
	return append([]string(nil), f.terms...)
}

// Match returns the listed terms found in text, in list order.
// Scores decrease with the term position: the first term scores 1.
func (f Filter) Match(text string) []specialist.Term {
	if f.matcher == nil || text == "" {
		return nil
	}

	hits := f.matcher.MultiPatternSearch(normalize(text), false)
	if len(hits) == 0 {
		return nil
	}

	found := make([]bool, len(f.terms))
	for _, hit := range hits {
		if i, ok := f.index[string(hit.Word)]; ok {
			found[i] = true
		}
	}

	var matched []specialist.Term
	for i, term := range f.terms {
		if found[i] {
			matched = append(matched, specialist.Term{Text: term, Score: f.score(i)})
		}
	}
	return matched
}

func (f Filter) score(position int) float64 {
	n := len(f.terms)
	return float64(n-position) / float64(n)
}

// normalize lower-cases rune by rune so that positions line up with the input.
func normalize(s string) []rune {
	runes := []rune(s)
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = unicode.ToLower(r)
	}
	return out
}
