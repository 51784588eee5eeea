// Package chat orchestrates the answer pipeline: validate, filter,
// retrieve, gate on confidence, assemble.
package chat

import (
	"crypto/sha256"
	"encoding/hex"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/tmahmud/uttor/internal/corpus"
	"github.com/tmahmud/uttor/internal/filter"
	"github.com/tmahmud/uttor/internal/model"
	"github.com/tmahmud/uttor/internal/respond"
	"github.com/tmahmud/uttor/internal/retrieve"
)

// Bot answers user questions over the loaded corpus. It is stateless per
// query; the corpus is read-only for the process lifetime.
type Bot struct {
	store     *corpus.Store
	retriever *retrieve.Retriever
	answers   *gocache.Cache // nil when caching is disabled
	cfg       *model.Config
	log       zerolog.Logger
}

// NewBot creates a bot over a loaded corpus
func NewBot(store *corpus.Store, cfg *model.Config, log zerolog.Logger) *Bot {
	var answers *gocache.Cache
	if cfg.Cache.Enabled {
		answers = gocache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	return &Bot{
		store:     store,
		retriever: retrieve.NewRetriever(store.All()),
		answers:   answers,
		cfg:       cfg,
		log:       log,
	}
}

// AnswerQuestion runs the retrieval pipeline and returns the ranked
// matches plus a fallback flag. A true flag means no candidate met the
// confidence threshold (or the topic was unusable) and the caller should
// render a fallback message. It never returns an error: every failure
// degrades to the fallback path.
func (b *Bot) AnswerQuestion(query, topic, difficulty string, topK int) ([]model.Match, bool) {
	// 1. Validate topic
	if !model.ValidTopic(topic) {
		b.log.Debug().Str("topic", topic).Msg("unknown topic, falling back")
		return nil, true
	}

	// 2. Filter by topic
	candidates, err := filter.ByTopic(b.store.All(), topic)
	if err != nil {
		b.log.Warn().Err(err).Msg("topic filter failed, falling back")
		return nil, true
	}

	// 3. Difficulty filter only when supplied and valid; an invalid
	// difficulty is ignored rather than surfaced.
	if difficulty != "" && model.ValidDifficulty(difficulty) {
		candidates, err = filter.ByDifficulty(candidates, difficulty)
		if err != nil {
			b.log.Warn().Err(err).Msg("difficulty filter failed, falling back")
			return nil, true
		}
	}

	if len(candidates) == 0 {
		return nil, true
	}

	// 4. Rank
	results := b.retriever.Retrieve(query, candidates, topK)

	// 5. Gate on the confidence threshold
	if len(results) > 0 && results[0].Score >= b.cfg.Retrieval.Threshold {
		return results, false
	}

	return nil, true
}

// GenerateAnswer produces the final user-facing answer for a query,
// consulting the in-session answer cache first.
func (b *Bot) GenerateAnswer(query, topic, difficulty string) model.Answer {
	key := answerKey(topic, difficulty, query)
	if b.answers != nil {
		if cached, found := b.answers.Get(key); found {
			if ans, ok := cached.(model.Answer); ok {
				b.log.Debug().Str("topic", topic).Msg("answer cache hit")
				return ans
			}
		}
	}

	results, isFallback := b.AnswerQuestion(query, topic, difficulty, 1)

	var answer model.Answer
	if isFallback || len(results) == 0 {
		answer = model.Answer{
			Text:     respond.Fallback(topic),
			Fallback: true,
			Topic:    topic,
		}
	} else {
		top := results[0]
		answer = model.Answer{
			Text: respond.FormatWithContext(
				top.FAQ.Answer, topic, top.FAQ.Difficulty, top.Score, false),
			Fallback: false,
			Topic:    topic,
			Score:    top.Score,
		}
	}

	if b.answers != nil {
		b.answers.Set(key, answer, gocache.DefaultExpiration)
	}

	return answer
}

// SearchSimilar ranks the whole corpus against the query with no topic
// filter and returns the matching records.
func (b *Bot) SearchSimilar(query string, topK int) []model.FAQ {
	results := b.retriever.Retrieve(query, nil, topK)
	faqs := make([]model.FAQ, 0, len(results))
	for _, m := range results {
		faqs = append(faqs, m.FAQ)
	}
	return faqs
}

// Stats summarizes the loaded corpus
func (b *Bot) Stats() model.Stats {
	stats := model.Stats{
		TotalFAQs:    b.store.Count(),
		Topics:       model.TopicNames(),
		Difficulties: model.DifficultyNames(),
		PerTopic:     make(map[string]int),
	}

	all := b.store.All()
	for _, topic := range stats.Topics {
		count := 0
		for _, faq := range all {
			if faq.Topic == topic {
				count++
			}
		}
		stats.PerTopic[topic] = count
	}

	return stats
}

// answerKey builds the cache key for one (topic, difficulty, query) tuple
func answerKey(topic, difficulty, query string) string {
	hash := sha256.Sum256([]byte(topic + "\x00" + difficulty + "\x00" + query))
	return "uttor:v1:" + hex.EncodeToString(hash[:])
}
