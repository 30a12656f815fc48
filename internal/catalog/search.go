package catalog

import (
	"sort"
	"strings"

	"yojana-sahayak/internal/models"
)

// Search scores built-in schemes against a free-text query and returns
// the top k matches. Scoring is plain term counting over every localized
// field, which is enough for a three-scheme corpus.
func Search(query string, k int) []models.Scheme {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}
	if k <= 0 {
		k = 3
	}

	type scored struct {
		scheme models.Scheme
		score  int
	}

	var hits []scored
	for _, s := range All() {
		text := searchText(&s)
		score := 0
		for _, term := range terms {
			score += strings.Count(text, term)
		}
		if score > 0 {
			hits = append(hits, scored{scheme: s, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if len(hits) > k {
		hits = hits[:k]
	}
	out := make([]models.Scheme, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.scheme)
	}
	return out
}

func searchText(s *models.Scheme) string {
	var b strings.Builder
	b.WriteString(s.SchemeID)
	b.WriteString(" ")
	b.WriteString(string(s.Category))
	for _, t := range []models.LocalizedText{s.Name, s.Eligibility, s.Benefit} {
		for _, v := range t {
			b.WriteString(" ")
			b.WriteString(v)
		}
	}
	for _, doc := range s.Documents {
		for _, v := range doc {
			b.WriteString(" ")
			b.WriteString(v)
		}
	}
	for _, step := range s.Steps {
		for _, v := range step.Description {
			b.WriteString(" ")
			b.WriteString(v)
		}
	}
	return strings.ToLower(b.String())
}
