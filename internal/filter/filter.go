// Package filter narrows FAQ candidate sets by topic and difficulty.
package filter

import (
	"fmt"

	"github.com/tmahmud/uttor/internal/model"
)

// ByTopic returns the records whose topic exactly equals topic, in their
// original order. An unknown topic is a usage error.
func ByTopic(faqs []model.FAQ, topic string) ([]model.FAQ, error) {
	if !model.ValidTopic(topic) {
		return nil, fmt.Errorf("invalid topic: %s", topic)
	}

	var out []model.FAQ
	for _, faq := range faqs {
		if faq.Topic == topic {
			out = append(out, faq)
		}
	}
	return out, nil
}

// ByDifficulty returns the records whose difficulty exactly equals
// difficulty, in their original order. An unknown level is a usage error.
func ByDifficulty(faqs []model.FAQ, difficulty string) ([]model.FAQ, error) {
	if !model.ValidDifficulty(difficulty) {
		return nil, fmt.Errorf("invalid difficulty: %s", difficulty)
	}

	var out []model.FAQ
	for _, faq := range faqs {
		if faq.Difficulty == difficulty {
			out = append(out, faq)
		}
	}
	return out, nil
}

// Apply runs the topic filter and then the difficulty filter, each only if
// its value is non-empty. Passing neither returns the input unchanged.
// The topic-before-difficulty order is a documented contract.
func Apply(faqs []model.FAQ, topic, difficulty string) ([]model.FAQ, error) {
	filtered := faqs
	var err error

	if topic != "" {
		filtered, err = ByTopic(filtered, topic)
		if err != nil {
			return nil, err
		}
	}

	if difficulty != "" {
		filtered, err = ByDifficulty(filtered, difficulty)
		if err != nil {
			return nil, err
		}
	}

	return filtered, nil
}
