// Package stopwords exposes the English stopword list used by the frequency
// statistics.
package stopwords

import (
	_ "embed"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

//go:embed data/english.txt
var englishRaw string

var english = parse(englishRaw)

func parse(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

// English returns a fresh set holding the English stopwords.
func English() mapset.Set[string] {
	return mapset.NewThreadUnsafeSet(english...)
}

// Count reports the size of the English list. It does not depend on any corpus.
func Count() int { return len(english) }

// List provides the Count used by nlp.Frame.
type List struct{}

// Count implements the stopword capability over the embedded English list.
func (List) Count() int { return Count() }
