package model

// Canonical topic labels (Bangla key, English gloss for display).
// The set is closed: filtering on anything else is a usage error.
var Topics = map[string]string{
	"শিক্ষা":    "Education",
	"স্বাস্থ্য": "Health",
	"ভ্রমণ":     "Travel",
	"প্রযুক্তি": "Technology",
	"খেলাধুলা":  "Sports",
}

// topicOrder fixes the display order of topics in menus and tables
var topicOrder = []string{"শিক্ষা", "স্বাস্থ্য", "ভ্রমণ", "প্রযুক্তি", "খেলাধুলা"}

// Canonical difficulty labels (Bangla key, English gloss)
var Difficulties = map[string]string{
	"সহজ":    "Easy",
	"মাঝারি": "Medium",
	"কঠিন":   "Hard",
}

var difficultyOrder = []string{"সহজ", "মাঝারি", "কঠিন"}

// ValidTopic reports whether topic is one of the canonical topics
func ValidTopic(topic string) bool {
	_, ok := Topics[topic]
	return ok
}

// ValidDifficulty reports whether difficulty is one of the canonical levels
func ValidDifficulty(difficulty string) bool {
	_, ok := Difficulties[difficulty]
	return ok
}

// TopicNames returns the canonical topics in fixed display order
func TopicNames() []string {
	out := make([]string, len(topicOrder))
	copy(out, topicOrder)
	return out
}

// DifficultyNames returns the canonical difficulty levels in fixed display order
func DifficultyNames() []string {
	out := make([]string, len(difficultyOrder))
	copy(out, difficultyOrder)
	return out
}
