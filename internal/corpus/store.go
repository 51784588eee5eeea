// Package corpus loads and holds the FAQ database.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/tmahmud/uttor/internal/model"
)

// ErrEmptyCorpus indicates the database file parsed to zero records
var ErrEmptyCorpus = errors.New("faq database is empty")

// Store holds the FAQ corpus in memory. It is populated once by Load and
// read-only afterwards, so it may be shared without synchronization.
type Store struct {
	faqs []model.FAQ
	log  zerolog.Logger
}

// Load reads the FAQ database from a JSON file. A missing file or an
// empty record list is a fatal startup error.
func Load(path string, log zerolog.Logger) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read faq database %s: %w", path, err)
	}

	var faqs []model.FAQ
	if err := json.Unmarshal(data, &faqs); err != nil {
		return nil, fmt.Errorf("parse faq database %s: %w", path, err)
	}

	if len(faqs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyCorpus)
	}

	// Records with unknown topics load fine but are unreachable through
	// topic filtering, so flag them for the corpus maintainer.
	for _, faq := range faqs {
		if !model.ValidTopic(faq.Topic) {
			log.Warn().Str("id", faq.ID).Str("topic", faq.Topic).
				Msg("faq record has unknown topic")
		}
	}

	log.Info().Int("faqs", len(faqs)).Str("path", path).Msg("faq database loaded")

	return &Store{faqs: faqs, log: log}, nil
}

// All returns a copy of the full corpus
func (s *Store) All() []model.FAQ {
	out := make([]model.FAQ, len(s.faqs))
	copy(out, s.faqs)
	return out
}

// Count returns the number of records in the corpus
func (s *Store) Count() int {
	return len(s.faqs)
}

// ByID returns the record with the given id, or false if absent
func (s *Store) ByID(id string) (model.FAQ, bool) {
	for _, faq := range s.faqs {
		if faq.ID == id {
			return faq, true
		}
	}
	return model.FAQ{}, false
}

// SearchByKeywords returns records that list at least one of the given
// keywords, in corpus order.
func (s *Store) SearchByKeywords(keywords []string) []model.FAQ {
	var out []model.FAQ
	for _, faq := range s.faqs {
		listed := make(map[string]struct{}, len(faq.Keywords))
		for _, kw := range faq.Keywords {
			listed[kw] = struct{}{}
		}
		for _, kw := range keywords {
			if _, ok := listed[kw]; ok {
				out = append(out, faq)
				break
			}
		}
	}
	return out
}
