package validation

import (
	"fmt"
	"strings"

	"github.com/petpsych/behavior-analysis-api/internal/models"
)

const (
	maxNameLength         = 50
	maxBehaviorDescLength = 2000
)

// validSpecies is the fixed set of accepted pet types, matched case-insensitively.
var validSpecies = map[string]bool{
	"dog":        true,
	"cat":        true,
	"bird":       true,
	"rabbit":     true,
	"hamster":    true,
	"guinea pig": true,
	"ferret":     true,
	"other":      true,
}

// Error reports which field failed and why. The message is user-facing.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ValidateRecord checks required fields, the species enum, and length bounds.
// It returns the record with surrounding whitespace trimmed from every field.
func ValidateRecord(rec models.PetRecord) (models.PetRecord, *Error) {
	rec.Name = strings.TrimSpace(rec.Name)
	rec.Species = strings.TrimSpace(rec.Species)
	rec.Breed = strings.TrimSpace(rec.Breed)
	rec.BehaviorDesc = strings.TrimSpace(rec.BehaviorDesc)
	rec.VocalCues = strings.TrimSpace(rec.VocalCues)
	rec.UserQuery = strings.TrimSpace(rec.UserQuery)

	required := []struct {
		field string
		value string
	}{
		{"pet_name", rec.Name},
		{"pet_type", rec.Species},
		{"pet_breed", rec.Breed},
	}
	for _, f := range required {
		if f.value == "" {
			return rec, &Error{Field: f.field, Message: fmt.Sprintf("Missing required field: %s", f.field)}
		}
	}

	if !validSpecies[strings.ToLower(rec.Species)] {
		return rec, &Error{Field: "pet_type", Message: "Invalid pet type"}
	}

	if len(rec.Name) > maxNameLength {
		return rec, &Error{Field: "pet_name", Message: fmt.Sprintf("Pet name too long (max %d characters)", maxNameLength)}
	}

	if len(rec.BehaviorDesc) > maxBehaviorDescLength {
		return rec, &Error{Field: "behavior_desc", Message: fmt.Sprintf("Behavior description too long (max %d characters)", maxBehaviorDescLength)}
	}

	return rec, nil
}
