// Package retrieve ranks FAQ candidates against a free-text query.
package retrieve

import (
	"math"
	"sort"
	"strings"

	"github.com/tmahmud/uttor/internal/bangla"
	"github.com/tmahmud/uttor/internal/model"
)

// Scoring weights. The keyword bonus is capped so the final score stays
// in [0, 1] no matter how many keywords match.
const (
	questionWeight  = 0.7
	keywordPerMatch = 0.3
	keywordCap      = 0.3
)

// Retriever performs brute-force lexical ranking over the in-memory
// corpus. There is no index; the corpus is small and static per session.
type Retriever struct {
	faqs []model.FAQ
}

// NewRetriever creates a retriever over the full corpus
func NewRetriever(faqs []model.FAQ) *Retriever {
	return &Retriever{faqs: faqs}
}

// Rank scores every candidate against the query and returns the matches
// sorted by score descending. Ties keep the original candidate order.
func Rank(query string, candidates []model.FAQ) []model.Match {
	results := make([]model.Match, 0, len(candidates))
	queryLower := strings.ToLower(query)

	for _, faq := range candidates {
		questionSim := bangla.Similarity(query, faq.Question)

		// The bonus sums over the literal keyword list: a keyword listed
		// twice counts twice before the cap.
		keywordScore := 0.0
		for _, kw := range faq.Keywords {
			if kw != "" && strings.Contains(queryLower, strings.ToLower(kw)) {
				keywordScore += keywordPerMatch
			}
		}

		score := questionWeight*questionSim + math.Min(keywordScore, keywordCap)
		results = append(results, model.Match{FAQ: faq, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Retrieve returns the top-k matches for the query. A nil candidate slice
// means "search the whole corpus"; an empty non-nil slice yields an empty
// result, not an error.
func (r *Retriever) Retrieve(query string, candidates []model.FAQ, topK int) []model.Match {
	if candidates == nil {
		candidates = r.faqs
	}
	if len(candidates) == 0 {
		return nil
	}

	ranked := Rank(query, candidates)
	if topK >= 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}
