// Package respond turns ranked matches into user-facing answer text.
package respond

import (
	"fmt"
	"strings"

	"github.com/tmahmud/uttor/internal/model"
)

// Per-topic fallback messages. Static lookup, no behavioral variation
// between topics beyond the text itself.
var fallbackMessages = map[string]string{
	"শিক্ষা":    "দুঃখিত, শিক্ষা সংক্রান্ত এই প্রশ্নের উত্তর আমার কাছে নেই। অনুগ্রহ করে অন্য কিছু জিজ্ঞাসা করুন।",
	"স্বাস্থ্য": "দুঃখিত, স্বাস্থ্য সংক্রান্ত এই প্রশ্নের উত্তর আমার কাছে নেই। একজন ডাক্তারের সাথে পরামর্শ করার পরামর্শ দিচ্ছি।",
	"ভ্রমণ":     "দুঃখিত, ভ্রমণ সংক্রান্ত এই প্রশ্নের উত্তর আমার কাছে নেই। অনুগ্রহ করে অন্য কিছু জিজ্ঞাসা করুন।",
	"প্রযুক্তি": "দুঃখিত, প্রযুক্তি সংক্রান্ত এই প্রশ্নের উত্তর আমার কাছে নেই। অনুগ্রহ করে অন্য কিছু জিজ্ঞাসা করুন।",
	"খেলাধুলা":  "দুঃখিত, খেলাধুলা সংক্রান্ত এই প্রশ্নের উত্তর আমার কাছে নেই। অনুগ্রহ করে অন্য কিছু জিজ্ঞাসা করুন।",
}

// GenericFallback is returned when no topic-specific message applies
const GenericFallback = "দুঃখিত, এই প্রশ্নের উত্তর আমার কাছে এখন নেই। অনুগ্রহ করে অন্য কিছু জিজ্ঞাসা করুন।"

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// FormatMatch renders the answer text of a match, optionally appending a
// relevance footer with the difficulty, confidence and source question.
func FormatMatch(m model.Match, includeMetadata bool) string {
	response := m.FAQ.Answer

	if includeMetadata {
		difficulty := m.FAQ.Difficulty
		if difficulty == "" {
			difficulty = "অজানা"
		}
		response += fmt.Sprintf("\n\n[প্রাসঙ্গিকতা স্তর: %s | আত্মবিশ্বাস: %.0f%%]", difficulty, m.Score*100)
		if m.FAQ.Question != "" {
			response += fmt.Sprintf("\n[মূল প্রশ্ন: %s]", m.FAQ.Question)
		}
	}

	return response
}

// Fallback returns the topic-specific apology, or the generic one when
// the topic is absent or unmapped. Never fails.
func Fallback(topic string) string {
	if msg, ok := fallbackMessages[topic]; ok {
		return msg
	}
	return GenericFallback
}

// FormatWithContext wraps an answer with a topic/difficulty/confidence
// banner. Fallback text already stands alone and is returned unchanged.
func FormatWithContext(text, topic, difficulty string, confidence float64, isFallback bool) string {
	if isFallback {
		return text
	}

	var b strings.Builder
	fmt.Fprintf(&b, "উত্তর:\n%s\n\n%s\n", text, divider)
	fmt.Fprintf(&b, "বিষয়: %s | স্তর: %s | আত্মবিশ্বাস: %.0f%%", topic, difficulty, confidence*100)
	return b.String()
}

// FormatMultiple renders up to topK ranked matches as a numbered list for
// diagnostic multi-result display.
func FormatMultiple(results []model.Match, topK int) string {
	if len(results) == 0 {
		return GenericFallback
	}
	if topK >= 0 && len(results) > topK {
		results = results[:topK]
	}

	var b strings.Builder
	b.WriteString("সম্ভাব্য উত্তরগুলি:\n\n")
	for i, m := range results {
		fmt.Fprintf(&b, "%d. প্রশ্ন: %s\n", i+1, m.FAQ.Question)
		fmt.Fprintf(&b, "   উত্তর: %s\n", m.FAQ.Answer)
		fmt.Fprintf(&b, "   আত্মবিশ্বাস: %.0f%% | স্তর: %s\n\n", m.Score*100, m.FAQ.Difficulty)
	}
	return b.String()
}
