// Package bangla provides Unicode-aware normalization, tokenization and
// lexical similarity for Bangla text.
package bangla

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Bangla Unicode block boundaries
const (
	banglaRangeLo = 0x0980
	banglaRangeHi = 0x09FF
)

// Common Bangla function words excluded from keyword extraction
var stopwords = map[string]struct{}{
	"এ": {}, "এর": {}, "অন": {}, "একটি": {}, "কোন": {}, "কিছু": {}, "যা": {}, "যে": {}, "যদি": {}, "তবে": {},
	"এবং": {}, "কিংবা": {}, "অথবা": {}, "না": {}, "নয়": {}, "সঙ্গে": {}, "থেকে": {}, "পর্যন্ত": {},
	"সাথে": {}, "মধ্যে": {}, "জন্য": {}, "দ্বারা": {}, "দ্বারার": {}, "করে": {}, "করা": {}, "করেন": {},
	"হয়": {}, "হয়েছে": {}, "হবে": {}, "আছে": {}, "আছেন": {}, "ছিল": {}, "ছিলেন": {}, "আছিল": {},
	"আমি": {}, "আপনি": {}, "তিনি": {}, "সে": {}, "আমরা": {}, "তারা": {}, "এটি": {}, "এগুলি": {},
}

// stripMarks decomposes, drops marks with a nonzero canonical combining
// class (nukta, hasanta), then recomposes. Bangla vowel signs carry
// combining class 0 and survive, so a written word stays one unit.
var stripMarks = transform.Chain(
	norm.NFD,
	runes.Remove(runes.Predicate(isNonzeroCCC)),
	norm.NFC,
)

func isNonzeroCCC(r rune) bool {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return norm.NFD.Properties(buf[:n]).CCC() != 0
}

// IsBangla reports whether r falls in the Bangla Unicode block
func IsBangla(r rune) bool {
	return r >= banglaRangeLo && r <= banglaRangeHi
}

// Normalize canonicalizes Bangla text: combining diacritics with a nonzero
// combining class are removed and whitespace runs collapse to single
// spaces. Empty input is returned unchanged. Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return text
	}
	out, _, err := transform.String(stripMarks, text)
	if err != nil {
		out = text
	}
	return strings.Join(strings.Fields(out), " ")
}

// Tokenize normalizes text and splits it into word tokens. A word rune is
// a letter, digit, mark or underscore, so Bangla vowel signs and conjunct
// remnants stay inside their token. Order is preserved, no deduplication.
func Tokenize(text string) []string {
	return strings.FieldsFunc(Normalize(text), func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

// RemoveStopwords drops tokens whose lowercase form is a known Bangla
// function word, preserving the relative order of the rest.
func RemoveStopwords(tokens []string) []string {
	var kept []string
	for _, tok := range tokens {
		if _, ok := stopwords[strings.ToLower(tok)]; !ok {
			kept = append(kept, tok)
		}
	}
	return kept
}

// Preprocess runs the full pipeline: normalize, tokenize, strip stopwords
func Preprocess(text string) []string {
	return RemoveStopwords(Tokenize(text))
}

// ExtractKeywords returns up to topN content tokens ranked by frequency,
// ties broken by first appearance in the text.
func ExtractKeywords(text string, topN int) []string {
	tokens := Preprocess(text)

	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for i, tok := range tokens {
		if _, ok := freq[tok]; !ok {
			firstSeen[tok] = i
			order = append(order, tok)
		}
		freq[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if freq[order[i]] != freq[order[j]] {
			return freq[order[i]] > freq[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if topN >= 0 && len(order) > topN {
		order = order[:topN]
	}
	return order
}

// Similarity computes the Jaccard similarity between the lowercased token
// sets of two texts. Returns 0 if either token set is empty.
func Similarity(text1, text2 string) float64 {
	set1 := tokenSet(text1)
	set2 := tokenSet(text2)

	if len(set1) == 0 || len(set2) == 0 {
		return 0.0
	}

	intersection := 0
	for tok := range set1 {
		if _, ok := set2[tok]; ok {
			intersection++
		}
	}
	union := len(set1) + len(set2) - intersection

	return float64(intersection) / float64(union)
}

func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(strings.ToLower(text)) {
		set[tok] = struct{}{}
	}
	return set
}
