package validation

import (
	"strings"
	"testing"

	"github.com/petpsych/behavior-analysis-api/internal/models"
)

func validRecord() models.PetRecord {
	return models.PetRecord{
		Name:    "Rex",
		Species: "dog",
		Breed:   "Lab",
	}
}

func TestValidateRecord_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.PetRecord)
		field  string
	}{
		{"missing name", func(r *models.PetRecord) { r.Name = "" }, "pet_name"},
		{"whitespace name", func(r *models.PetRecord) { r.Name = "   " }, "pet_name"},
		{"missing species", func(r *models.PetRecord) { r.Species = "" }, "pet_type"},
		{"missing breed", func(r *models.PetRecord) { r.Breed = "\t" }, "pet_breed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validRecord()
			tc.mutate(&rec)

			_, err := ValidateRecord(rec)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if err.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, err.Field)
			}
			if !strings.Contains(err.Message, "Missing required field: "+tc.field) {
				t.Errorf("unexpected message: %q", err.Message)
			}
		})
	}
}

func TestValidateRecord_InvalidSpecies(t *testing.T) {
	for _, species := range []string{"lizard", "snake", "dinosaur", "doggo"} {
		rec := validRecord()
		rec.Species = species

		_, err := ValidateRecord(rec)
		if err == nil {
			t.Fatalf("species %q: expected error, got nil", species)
		}
		if err.Message != "Invalid pet type" {
			t.Errorf("species %q: unexpected message %q", species, err.Message)
		}
	}
}

func TestValidateRecord_SpeciesCaseInsensitive(t *testing.T) {
	for _, species := range []string{"DOG", "Cat", "GUINEA PIG", "Ferret"} {
		rec := validRecord()
		rec.Species = species

		if _, err := ValidateRecord(rec); err != nil {
			t.Errorf("species %q: unexpected error %v", species, err)
		}
	}
}

func TestValidateRecord_LengthBounds(t *testing.T) {
	rec := validRecord()
	rec.Name = strings.Repeat("a", 51)
	if _, err := ValidateRecord(rec); err == nil || !strings.Contains(err.Message, "Pet name too long") {
		t.Errorf("expected name-too-long error, got %v", err)
	}

	rec = validRecord()
	rec.Name = strings.Repeat("a", 50)
	if _, err := ValidateRecord(rec); err != nil {
		t.Errorf("50-char name should pass, got %v", err)
	}

	rec = validRecord()
	rec.BehaviorDesc = strings.Repeat("b", 2001)
	if _, err := ValidateRecord(rec); err == nil || !strings.Contains(err.Message, "Behavior description too long") {
		t.Errorf("expected description-too-long error, got %v", err)
	}
}

func TestValidateRecord_TrimsFields(t *testing.T) {
	rec := validRecord()
	rec.Name = "  Rex  "
	rec.BehaviorDesc = " pacing \n"

	out, err := ValidateRecord(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != "Rex" {
		t.Errorf("expected trimmed name, got %q", out.Name)
	}
	if out.BehaviorDesc != "pacing" {
		t.Errorf("expected trimmed description, got %q", out.BehaviorDesc)
	}
}
