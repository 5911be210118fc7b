package validate

import (
	"regexp"
	"strings"

	"digitaltwin-rag-be/internal/entity"
	"digitaltwin-rag-be/pkg/rag/intent"
)

// Validator runs the issue-list quality checks on a generated response.
// It is text-heuristic only and deliberately independent of the weighted
// Scorer: the two can disagree about the same response and consumers read
// them as separate signals.
type Validator struct {
	specificPatterns []*regexp.Regexp
	experienceYears  *regexp.Regexp
}

// firstPersonIndicators are matched case-sensitively against the raw
// response; the trailing spaces distinguish the pronoun "I" from words that
// merely start with it.
var firstPersonIndicators = []string{"I ", "my ", "me ", "myself", "I'm ", "I've "}

var honestIndicators = []string{"challenging", "difficult", "learned", "mistake", "improved"}

var personalIndicators = []string{"my experience", "when I", "I worked", "I built", "I learned"}

var conversationalMarkers = []string{"I'd", "that's", "it's", "really"}

// knownEmployers anchors the hallucination check: naming a big-tech company
// is only flagged when none of the subject's real employers appear alongside.
var knownEmployers = []string{"ausbiz Consulting", "Victoria University", "Royal Albert Hotel"}

var bigTechDenylist = []string{"Google", "Microsoft", "Amazon"}

func NewValidator() *Validator {
	return &Validator{
		specificPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\d+`),
			regexp.MustCompile(`React|Next\.js|Python|JavaScript|Vercel|AWS`),
			regexp.MustCompile(`ausbiz|Victoria University|Food RAG Explorer`),
			regexp.MustCompile(`\b\d{4}\b`),
			regexp.MustCompile(`weeks?|months?|days?`),
		},
		experienceYears: regexp.MustCompile(`(\d+)\s*years? of experience`),
	}
}

func (v *Validator) Validate(response string, queryIntent intent.QueryIntent) entity.ValidationResult {
	var issues, suggestions []string

	if !v.hasFirstPersonPerspective(response) {
		issues = append(issues, "Response lacks first-person perspective")
		suggestions = append(suggestions, "Use 'I', 'my', 'me' to personalize the response")
	}

	if !v.hasSpecificDetails(response) {
		issues = append(issues, "Response lacks specific details")
		suggestions = append(suggestions, "Add specific examples, numbers, or concrete details")
	}

	if lengthIssue := v.checkResponseLength(response, queryIntent); lengthIssue != "" {
		issues = append(issues, lengthIssue)
		suggestions = append(suggestions, "Adjust response length to match question complexity")
	}

	if queryIntent == intent.IntentBehavioral && !v.hasStarStructure(response) {
		issues = append(issues, "Behavioral response missing STAR structure")
		suggestions = append(suggestions, "Include Situation, Task, Action, Result elements")
	}

	// Hallucination findings carry no paired suggestion.
	issues = append(issues, v.checkForHallucinations(response)...)

	return entity.ValidationResult{
		IsValid:           len(issues) == 0,
		Issues:            issues,
		Suggestions:       suggestions,
		AuthenticityScore: v.calculateAuthenticityScore(response),
	}
}

func (v *Validator) hasFirstPersonPerspective(response string) bool {
	for _, indicator := range firstPersonIndicators {
		if strings.Contains(response, indicator) {
			return true
		}
	}
	return false
}

func (v *Validator) hasSpecificDetails(response string) bool {
	for _, pattern := range v.specificPatterns {
		if pattern.MatchString(response) {
			return true
		}
	}
	return false
}

func (v *Validator) checkResponseLength(response string, queryIntent intent.QueryIntent) string {
	wordCount := len(strings.Fields(response))

	switch queryIntent {
	case intent.IntentBehavioral:
		if wordCount < 80 {
			return "Behavioral response too short (should be 120-200 words)"
		}
		if wordCount > 250 {
			return "Behavioral response too long (should be 120-200 words)"
		}
	case intent.IntentTechnical:
		if wordCount < 60 {
			return "Technical response too short (should be 80-150 words)"
		}
		if wordCount > 200 {
			return "Technical response too long (should be 80-150 words)"
		}
	}
	return ""
}

// hasStarStructure accepts either explicit STAR markers or an implicit
// four-part story flow (context, challenge, action, outcome).
func (v *Validator) hasStarStructure(response string) bool {
	lower := strings.ToLower(response)

	explicitMarkers := 0
	for _, indicator := range []string{"situation", "task", "action", "result"} {
		if strings.Contains(lower, indicator) {
			explicitMarkers++
		}
	}
	if explicitMarkers >= 2 {
		return true
	}

	hasContext := containsAny(lower, "when i", "during my", "at the time")
	hasChallenge := containsAny(lower, "needed to", "had to", "challenge was")
	hasAction := containsAny(lower, "i did", "i implemented", "i decided")
	hasOutcome := containsAny(lower, "result", "outcome", "success", "learned")

	return hasContext && hasChallenge && hasAction && hasOutcome
}

func (v *Validator) calculateAuthenticityScore(response string) float64 {
	score := 0.0

	for _, indicator := range personalIndicators {
		if strings.Contains(response, indicator) {
			score += 0.2
		}
	}

	if v.hasSpecificDetails(response) {
		score += 0.3
	}

	for _, indicator := range honestIndicators {
		if strings.Contains(response, indicator) {
			score += 0.1
		}
	}

	for _, phrase := range conversationalMarkers {
		if strings.Contains(response, phrase) {
			score += 0.2
			break
		}
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

func (v *Validator) checkForHallucinations(response string) []string {
	var issues []string

	namesBigTech := false
	for _, name := range bigTechDenylist {
		if strings.Contains(response, name) {
			namesBigTech = true
			break
		}
	}
	if namesBigTech {
		namesEmployer := false
		for _, employer := range knownEmployers {
			if strings.Contains(response, employer) {
				namesEmployer = true
				break
			}
		}
		if !namesEmployer {
			issues = append(issues, "Potential hallucination: Unknown company mentioned")
		}
	}

	if v.experienceYears.MatchString(response) {
		issues = append(issues, "Check experience timeframe accuracy")
	}

	return issues
}

func containsAny(s string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
