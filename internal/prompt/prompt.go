// Package prompt assembles the single natural-language instruction string sent
// to the generation service. Assembly is deterministic given the record, the
// video summary, and the supplied clock time.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/petpsych/behavior-analysis-api/internal/models"
)

// Vocabulary is the species-specific framing inserted into the analysis prompt.
type Vocabulary struct {
	Behaviors        string
	Emotions         string
	HealthIndicators string
}

// speciesVocabulary maps a lowercase species to its framing terms. Species
// without a row fall back to the dog entry via VocabularyFor.
var speciesVocabulary = map[string]Vocabulary{
	"dog": {
		Behaviors:        "tail wagging patterns, ear positioning, play bows, panting, barking types",
		Emotions:         "excitement, anxiety, fear, dominance, submission, contentment",
		HealthIndicators: "gait analysis, breathing patterns, appetite changes, energy levels",
	},
	"cat": {
		Behaviors:        "purring intensity, tail movements, ear positioning, kneading, vocalizations",
		Emotions:         "contentment, stress, territorial behavior, affection seeking, hunting instincts",
		HealthIndicators: "grooming habits, litter box behavior, appetite, hiding patterns",
	},
	"bird": {
		Behaviors:        "wing positioning, head movements, vocalizations, preening, perching habits",
		Emotions:         "excitement, stress, bonding behaviors, territorial displays",
		HealthIndicators: "feather condition, breathing patterns, eating habits, activity levels",
	},
	"rabbit": {
		Behaviors:        "binky movements, thumping, grooming, digging, chinning",
		Emotions:         "happiness, fear, territorial behavior, social bonding",
		HealthIndicators: "eating patterns, litter habits, mobility, alertness",
	},
}

// VocabularyFor returns the vocabulary row for a species, defaulting to dog.
func VocabularyFor(species string) Vocabulary {
	if v, ok := speciesVocabulary[strings.ToLower(species)]; ok {
		return v
	}
	return speciesVocabulary["dog"]
}

const analysisTemplate = `1. 👀 What I Saw (Behavior)

Short list of the key behaviors (e.g., pacing near door, whining, no tail wagging).

Simple context (when, where).

2. 🧠 What It Could Mean (Possible Reasons)

Emotional state (happy, anxious, restless, curious).

Everyday needs (bathroom, food, play, comfort).

Possible health-related concerns (if relevant).

3. 💡 What You Should Try (Next Steps)

2–4 clear, actionable suggestions.

Split into: "Do Now" ✅ and "Optional/Extra" 🌟.

4. ⚠️ Watch Out For (Red Flags)

Quick bullet list of signs that mean: "Time to see a vet/behaviorist."`

// Build produces the full analysis prompt for a validated record. The video
// summary line is appended only when videoSummary is non-empty.
func Build(rec models.PetRecord, videoSummary string, now time.Time) string {
	vocab := VocabularyFor(rec.Species)

	videoLine := ""
	if videoSummary != "" {
		videoLine = fmt.Sprintf("🎥 VIDEO ANALYSIS: %s", videoSummary)
	}

	p := fmt.Sprintf(`
You are PetPsych AI, an advanced animal behavior analyst with expertise in veterinary psychology, ethology, and animal cognition. Analyze the following pet's behavioral patterns with scientific rigor and compassionate understanding.

🐾 SUBJECT PROFILE:
• Name: %s
• Species: %s
• Breed: %s
• Analysis Date: %s

📋 BEHAVIORAL OBSERVATIONS:
Primary Behavior: %s
Vocal Cues: %s
What user wants to know: %s

%s

🧠 ANALYSIS FRAMEWORK:
For %s behavioral analysis, focus on:
• Key Behaviors: %s
• Emotional States: %s
• Health Indicators: %s

%s

Please provide a thorough, compassionate analysis that helps %s's human understand their behavioral patterns and strengthens their bond through better communication.
`,
		rec.Name,
		titleCase(rec.Species),
		rec.Breed,
		now.Format("2006-01-02 15:04"),
		orNotSpecified(rec.BehaviorDesc),
		orNotSpecified(rec.VocalCues),
		orNotSpecified(rec.UserQuery),
		videoLine,
		rec.Species,
		vocab.Behaviors,
		vocab.Emotions,
		vocab.HealthIndicators,
		analysisTemplate,
		rec.Name,
	)

	return strings.TrimSpace(p)
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

// titleCase uppercases the first letter of each space-separated word, so
// "guinea pig" renders as "Guinea Pig" in the subject profile.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
