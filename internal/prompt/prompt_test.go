package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/petpsych/behavior-analysis-api/internal/models"
)

var frozen = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func record() models.PetRecord {
	return models.PetRecord{
		Name:         "Whiskers",
		Species:      "cat",
		Breed:        "Siamese",
		BehaviorDesc: "kneading the couch and purring loudly",
		VocalCues:    "long meows at night",
		UserQuery:    "is she stressed?",
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := Build(record(), "", frozen)
	b := Build(record(), "", frozen)
	if a != b {
		t.Fatal("prompt should be byte-identical for identical inputs and clock")
	}
}

func TestBuild_InterpolatesRecord(t *testing.T) {
	p := Build(record(), "", frozen)

	for _, want := range []string{
		"Name: Whiskers",
		"Species: Cat",
		"Breed: Siamese",
		"Analysis Date: 2025-06-15 14:30",
		"Primary Behavior: kneading the couch and purring loudly",
		"Vocal Cues: long meows at night",
		"What user wants to know: is she stressed?",
		"purring intensity",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuild_EmptyFieldsNotSpecified(t *testing.T) {
	rec := record()
	rec.BehaviorDesc = ""
	rec.VocalCues = ""
	rec.UserQuery = ""

	p := Build(rec, "", frozen)
	if strings.Count(p, "Not specified") != 3 {
		t.Errorf("expected 3 Not specified placeholders, got %d", strings.Count(p, "Not specified"))
	}
}

func TestBuild_VideoSummaryLine(t *testing.T) {
	withVideo := Build(record(), "Brief video clip analyzed providing supplementary visual context.", frozen)
	if !strings.Contains(withVideo, "VIDEO ANALYSIS: Brief video clip analyzed") {
		t.Error("expected video analysis line when summary is non-empty")
	}

	withoutVideo := Build(record(), "", frozen)
	if strings.Contains(withoutVideo, "VIDEO ANALYSIS") {
		t.Error("video analysis line must be omitted for empty summary")
	}
}

func TestBuild_Trimmed(t *testing.T) {
	p := Build(record(), "", frozen)
	if p != strings.TrimSpace(p) {
		t.Error("prompt must be trimmed")
	}
}

func TestVocabularyFor_DefaultsToDog(t *testing.T) {
	dog := VocabularyFor("dog")

	for _, species := range []string{"hamster", "ferret", "other", "guinea pig"} {
		if VocabularyFor(species) != dog {
			t.Errorf("species %q should fall back to the dog vocabulary", species)
		}
	}

	if VocabularyFor("CAT") == dog {
		t.Error("cat lookup should be case-insensitive, not fall back to dog")
	}
}
