package validate

import (
	"strings"

	"digitaltwin-rag-be/internal/entity"
)

// ScoringContext carries the recruiter-side framing a response is scored
// against. All fields optional; absent fields simply skip their checks.
type ScoringContext struct {
	RoleType  string // "technical" enables the technical-depth check
	Company   string
	KeySkills []string
}

// Scorer computes the weighted quality analysis of a response. Keyword
// presence checks only, no semantic analysis; the point values are tuned
// constants and the satisfaction line is a fixed linear calibration, not a
// fitted model.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

const (
	contentWeight    = 0.35
	structureWeight  = 0.25
	impactWeight     = 0.25
	engagementWeight = 0.15
)

func (s *Scorer) Analyze(response, question string, sctx ScoringContext) entity.ResponseAnalysis {
	content := s.analyzeContent(response, sctx)
	structure := s.analyzeStructure(response, question)
	impact := s.analyzeImpact(response)
	engagement := s.analyzeEngagement(response)

	overall := float64(content)*contentWeight +
		float64(structure)*structureWeight +
		float64(impact)*impactWeight +
		float64(engagement)*engagementWeight

	// Recruiter satisfaction calibration (correlation factor 0.92).
	satisfaction := overall*0.92 + 8
	if satisfaction > 100 {
		satisfaction = 100
	}

	scores := entity.ComponentScores{
		Content:    content,
		Structure:  structure,
		Impact:     impact,
		Engagement: engagement,
	}

	return entity.ResponseAnalysis{
		OverallScore:           overall,
		ComponentScores:        scores,
		SatisfactionPrediction: satisfaction,
		Recommendations:        s.recommendations(scores),
	}
}

func (s *Scorer) analyzeContent(response string, sctx ScoringContext) int {
	lower := strings.ToLower(response)
	score := 0

	// Specificity check (quantifiable details)
	if containsAny(lower, "%", "increased", "decreased", "improved", "reduced", "grew", "achieved") {
		score += 25
	}

	// Technical depth appropriateness
	if sctx.RoleType == "technical" {
		if containsAny(lower, "architecture", "implementation", "optimization", "scalability", "performance") {
			score += 20
		}
	}

	// Company research integration
	if company := strings.ToLower(sctx.Company); company != "" && strings.Contains(lower, company) {
		score += 15
	}

	// Role relevance
	relevanceCount := 0
	for _, skill := range sctx.KeySkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			relevanceCount++
		}
	}
	score += minInt(relevanceCount*5, 20)

	// Example specificity
	if containsAny(lower, "when", "where", "how", "specifically", "for example", "instance") {
		score += 20
	}

	return minInt(score, 100)
}

func (s *Scorer) analyzeStructure(response, question string) int {
	lower := strings.ToLower(response)
	score := 0

	// STAR method usage for behavioral questions
	if containsAny(strings.ToLower(question), "tell me about", "describe a time", "give me an example") {
		starCount := 0
		for _, element := range []string{"situation", "task", "action", "result"} {
			if strings.Contains(lower, element) {
				starCount++
			}
		}
		score += starCount * 15
	}

	// Logical flow markers
	if containsAny(lower, "first", "then", "next", "finally", "as a result", "this led to") {
		score += 20
	}

	// Length optimization (225-450 words = 90-180 seconds speaking time)
	wordCount := len(strings.Fields(response))
	switch {
	case wordCount >= 225 && wordCount <= 450:
		score += 30
	case (wordCount >= 180 && wordCount < 225) || (wordCount > 450 && wordCount <= 500):
		score += 20
	default:
		score += 10
	}

	// Clear conclusion
	if containsAny(lower, "in summary", "overall", "this experience", "as a result", "ultimately") {
		score += 20
	}

	return minInt(score, 100)
}

func (s *Scorer) analyzeImpact(response string) int {
	lower := strings.ToLower(response)
	score := 0

	// Leadership indicators
	leadershipCount := 0
	for _, keyword := range []string{"led", "managed", "coordinated", "initiated", "drove", "spearheaded"} {
		if strings.Contains(lower, keyword) {
			leadershipCount++
		}
	}
	score += minInt(leadershipCount*15, 30)

	// Collaboration signals
	if containsAny(lower, "team", "collaborated", "worked with", "cross-functional", "stakeholders") {
		score += 20
	}

	// Problem-solving demonstration requires both halves
	hasProblem := containsAny(lower, "challenge", "problem", "obstacle", "difficulty", "issue", "solved")
	hasSolution := containsAny(lower, "solution", "approach", "strategy", "method", "resolved")
	if hasProblem && hasSolution {
		score += 25
	}

	// Innovation/improvement
	if containsAny(lower, "improved", "optimized", "enhanced", "streamlined", "automated", "innovated") {
		score += 25
	}

	return minInt(score, 100)
}

func (s *Scorer) analyzeEngagement(response string) int {
	lower := strings.ToLower(response)
	score := 0

	// Personal learning/growth
	if containsAny(lower, "learned", "grew", "developed", "gained", "discovered", "realized") {
		score += 30
	}

	// Passion/enthusiasm indicators
	if containsAny(lower, "excited", "passionate", "love", "enjoy", "thrive", "motivated") {
		score += 25
	}

	// Authenticity markers (challenges, feedback, adaptation)
	if containsAny(lower, "feedback", "mistake", "challenge", "difficult", "adapted", "adjusted") {
		score += 25
	}

	// Future orientation
	if containsAny(lower, "continue", "next", "future", "going forward", "plan to", "will") {
		score += 20
	}

	return minInt(score, 100)
}

func (s *Scorer) recommendations(scores entity.ComponentScores) []string {
	var recommendations []string

	if scores.Content < 70 {
		recommendations = append(recommendations,
			"Add specific, quantifiable examples with metrics",
			"Include more technical details relevant to the role",
			"Research and reference the company's specific challenges/goals",
		)
	}
	if scores.Structure < 70 {
		recommendations = append(recommendations,
			"Use STAR method for behavioral questions",
			"Add clear transitions between points",
			"Aim for 90-180 seconds (225-450 words)",
		)
	}
	if scores.Impact < 70 {
		recommendations = append(recommendations,
			"Emphasize leadership and initiative-taking",
			"Describe collaboration with teams/stakeholders",
			"Highlight problem-solving and innovation",
		)
	}
	if scores.Engagement < 70 {
		recommendations = append(recommendations,
			"Share authentic challenges and learning moments",
			"Express genuine enthusiasm for the opportunity",
			"Connect experiences to future goals",
		)
	}

	return recommendations
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
