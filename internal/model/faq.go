package model

// FAQ represents a single question/answer record from the corpus file
type FAQ struct {
	ID         string   `json:"id"`                   // Unique record identifier
	Topic      string   `json:"topic"`                // One of the canonical topics
	Difficulty string   `json:"difficulty,omitempty"` // One of the canonical difficulty levels
	Question   string   `json:"question"`             // Source question text (Bangla)
	Answer     string   `json:"answer"`               // Response text
	Keywords   []string `json:"keywords,omitempty"`   // Ordered keyword list used for the ranking bonus
}

// Match pairs a FAQ with its relevance score for a query.
// Score is always in [0, 1].
type Match struct {
	FAQ   FAQ     `json:"faq"`
	Score float64 `json:"score"`
}

// Answer is the final user-facing result for one query
type Answer struct {
	Text     string  `json:"text"`            // Formatted answer or fallback message
	Fallback bool    `json:"fallback"`        // Whether Text is a fallback rather than a match
	Topic    string  `json:"topic,omitempty"` // Topic the query was asked under
	Score    float64 `json:"score,omitempty"` // Confidence of the accepted match (0 for fallback)
}

// Stats summarizes the loaded corpus
type Stats struct {
	TotalFAQs    int            `json:"total_faqs"`
	Topics       []string       `json:"topics"`
	Difficulties []string       `json:"difficulties"`
	PerTopic     map[string]int `json:"per_topic"`
}
