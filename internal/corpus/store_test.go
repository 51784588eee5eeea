package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faqs.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write test corpus: %v", err)
	}
	return path
}

const testCorpus = `[
  {"id": "edu_1", "topic": "শিক্ষা", "difficulty": "সহজ",
   "question": "স্কুলে ভর্তির বয়স কত?", "answer": "৬ বছর",
   "keywords": ["ভর্তি", "বয়স"]},
  {"id": "health_1", "topic": "স্বাস্থ্য", "difficulty": "মাঝারি",
   "question": "জ্বর হলে কী করব?", "answer": "বিশ্রাম নিন",
   "keywords": ["জ্বর"]}
]`

func TestLoad(t *testing.T) {
	path := writeCorpus(t, testCorpus)
	store, err := Load(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if store.Count() != 2 {
		t.Errorf("expected 2 records, got %d", store.Count())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop()); err == nil {
		t.Error("expected error for missing database file")
	}
}

func TestLoad_EmptyCorpus(t *testing.T) {
	path := writeCorpus(t, `[]`)
	_, err := Load(path, zerolog.Nop())
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeCorpus(t, `{"not": "a list"`)
	if _, err := Load(path, zerolog.Nop()); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestByID(t *testing.T) {
	store, err := Load(writeCorpus(t, testCorpus), zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	faq, ok := store.ByID("health_1")
	if !ok {
		t.Fatal("expected to find health_1")
	}
	if faq.Topic != "স্বাস্থ্য" {
		t.Errorf("expected topic স্বাস্থ্য, got %q", faq.Topic)
	}

	if _, ok := store.ByID("missing"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	store, err := Load(writeCorpus(t, testCorpus), zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	all := store.All()
	all[0].Answer = "mutated"

	again := store.All()
	if again[0].Answer == "mutated" {
		t.Error("All must return a copy, not the backing slice")
	}
}

func TestSearchByKeywords(t *testing.T) {
	store, err := Load(writeCorpus(t, testCorpus), zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := store.SearchByKeywords([]string{"জ্বর", "অনুপস্থিত"})
	if len(got) != 1 || got[0].ID != "health_1" {
		t.Errorf("expected [health_1], got %v", got)
	}

	if got := store.SearchByKeywords([]string{"নেই"}); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}
