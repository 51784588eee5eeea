package retrieve

import (
	"testing"

	"github.com/tmahmud/uttor/internal/model"
)

func testFAQs() []model.FAQ {
	return []model.FAQ{
		{
			ID: "edu_1", Topic: "শিক্ষা", Difficulty: "সহজ",
			Question: "স্কুলে ভর্তির বয়স কত?",
			Answer:   "৬ বছর",
			Keywords: []string{"ভর্তি", "বয়স"},
		},
		{
			ID: "edu_2", Topic: "শিক্ষা", Difficulty: "মাঝারি",
			Question: "বিশ্ববিদ্যালয়ে ভর্তি পরীক্ষা কখন হয়?",
			Answer:   "জুলাই মাসে",
			Keywords: []string{"বিশ্ববিদ্যালয়", "পরীক্ষা"},
		},
		{
			ID: "travel_1", Topic: "ভ্রমণ", Difficulty: "সহজ",
			Question: "কক্সবাজার কীভাবে যাব?",
			Answer:   "বাসে বা বিমানে",
			Keywords: []string{"কক্সবাজার"},
		},
	}
}

func TestRank_ScoreBounds(t *testing.T) {
	queries := []string{
		"ভর্তির বয়স কত",
		"আবহাওয়া কেমন",
		"",
		"ভর্তি বয়স ভর্তি বয়স ভর্তি",
	}

	for _, q := range queries {
		for _, m := range Rank(q, testFAQs()) {
			if m.Score < 0.0 || m.Score > 1.0 {
				t.Errorf("query %q: score %v for %s out of [0,1]", q, m.Score, m.FAQ.ID)
			}
		}
	}
}

func TestRank_SortedDescending(t *testing.T) {
	ranked := Rank("ভর্তির বয়স কত", testFAQs())
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("results not sorted descending at %d: %v > %v", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
	if ranked[0].FAQ.ID != "edu_1" {
		t.Errorf("expected edu_1 on top, got %s", ranked[0].FAQ.ID)
	}
}

func TestRank_StableForTies(t *testing.T) {
	// An unrelated query scores every candidate 0; original order must hold
	ranked := Rank("সম্পূর্ণ অপ্রাসঙ্গিক", testFAQs())
	want := []string{"edu_1", "edu_2", "travel_1"}
	for i, m := range ranked {
		if m.Score != 0.0 {
			t.Errorf("expected zero score for %s, got %v", m.FAQ.ID, m.Score)
		}
		if m.FAQ.ID != want[i] {
			t.Errorf("tie order broken at %d: expected %s, got %s", i, want[i], m.FAQ.ID)
		}
	}
}

func TestRank_KeywordBonusCapped(t *testing.T) {
	faqs := []model.FAQ{{
		ID: "kw", Topic: "শিক্ষা",
		Question: "সম্পূর্ণ ভিন্ন প্রশ্ন লেখা",
		Keywords: []string{"ক", "খ", "গ", "ঘ", "ঙ"},
	}}

	// Query contains all five keywords but shares no question tokens, so
	// the whole score is the capped bonus.
	ranked := Rank("কখগঘঙ", faqs)
	if got := ranked[0].Score; got != 0.3 {
		t.Errorf("expected capped keyword bonus 0.3, got %v", got)
	}
}

func TestRank_DuplicateKeywordsCountTwice(t *testing.T) {
	single := []model.FAQ{{ID: "a", Question: "অমিল", Keywords: []string{"ভর্তি"}}}
	double := []model.FAQ{{ID: "b", Question: "অমিল", Keywords: []string{"ভর্তি", "ভর্তি"}}}

	s1 := Rank("ভর্তি হতে চাই", single)[0].Score
	s2 := Rank("ভর্তি হতে চাই", double)[0].Score

	// Both cap at 0.3 here; the duplicate entry must not be deduplicated
	// away before capping, so the scores are equal, not lower.
	if s2 < s1 {
		t.Errorf("duplicate keyword lowered score: %v < %v", s2, s1)
	}
	if s2 != 0.3 {
		t.Errorf("expected capped score 0.3, got %v", s2)
	}
}

func TestRetrieve_TopK(t *testing.T) {
	r := NewRetriever(testFAQs())

	got := r.Retrieve("ভর্তি", nil, 2)
	if len(got) != 2 {
		t.Errorf("expected 2 results, got %d", len(got))
	}

	got = r.Retrieve("ভর্তি", nil, 10)
	if len(got) != 3 {
		t.Errorf("expected all 3 results when topK exceeds corpus, got %d", len(got))
	}
}

func TestRetrieve_NilCandidatesSearchCorpus(t *testing.T) {
	r := NewRetriever(testFAQs())
	got := r.Retrieve("কক্সবাজার", nil, 1)
	if len(got) != 1 || got[0].FAQ.ID != "travel_1" {
		t.Errorf("expected travel_1 from full-corpus search, got %v", got)
	}
}

func TestRetrieve_EmptyCandidates(t *testing.T) {
	r := NewRetriever(testFAQs())
	if got := r.Retrieve("ভর্তি", []model.FAQ{}, 1); len(got) != 0 {
		t.Errorf("expected empty result for empty candidate set, got %v", got)
	}
}

func TestRetrieve_AcceptScenario(t *testing.T) {
	r := NewRetriever(testFAQs())
	got := r.Retrieve("ভর্তির বয়স কত", []model.FAQ{testFAQs()[0]}, 1)
	if len(got) != 1 {
		t.Fatalf("expected one result, got %d", len(got))
	}
	if got[0].Score < 0.1 {
		t.Errorf("expected score >= 0.1 for matching query, got %v", got[0].Score)
	}
}

func TestRetrieve_BelowThresholdScenario(t *testing.T) {
	r := NewRetriever(testFAQs())
	got := r.Retrieve("আবহাওয়া কেমন", []model.FAQ{testFAQs()[0]}, 1)
	if len(got) != 1 {
		t.Fatalf("expected one result, got %d", len(got))
	}
	if got[0].Score >= 0.1 {
		t.Errorf("expected score < 0.1 for unrelated query, got %v", got[0].Score)
	}
}
