package intent

import (
	"regexp"
	"strings"
)

// QueryIntent is the category an interview question is routed as.
type QueryIntent string

const (
	IntentBehavioral      QueryIntent = "behavioral"
	IntentTechnical       QueryIntent = "technical"
	IntentProjectSpecific QueryIntent = "project_specific"
	IntentCompanySpecific QueryIntent = "company_specific"
	IntentSalaryLocation  QueryIntent = "salary_location"
	IntentAvailability    QueryIntent = "availability"
	IntentPersonalStory   QueryIntent = "personal_story"
	IntentGeneral         QueryIntent = "general"
)

type ruleGroup struct {
	intent   QueryIntent
	patterns []*regexp.Regexp
}

// Classifier routes questions by ordered pattern matching: groups are checked
// in a fixed priority order and the first group with any matching pattern
// wins. Ambiguous questions that could match several groups resolve purely by
// this order; that tie-break is part of the contract, not a heuristic to tune.
type Classifier struct {
	groups []ruleGroup
}

func NewClassifier() *Classifier {
	return &Classifier{
		groups: []ruleGroup{
			{IntentBehavioral, compileAll(
				`tell me about (a time|when|yourself)`,
				`describe (a situation|an experience|how you)`,
				`give me an example`,
				`walk me through`,
				`how do you (handle|deal with|approach)`,
				`what would you do if`,
				`challenging (project|situation|experience)`,
				`difficult (customer|situation|decision)`,
				`conflict|disagreement|problem`,
				`leadership|mentor|team`,
				`failure|mistake|learn from`,
				`strength|weakness|improve`,
				`motivation|passion|drive`,
			)},
			{IntentTechnical, compileAll(
				`explain (your experience with|how.*works?)`,
				`what is|how does.*work`,
				`difference between`,
				`implement|build|develop|code`,
				`algorithm|data structure`,
				`database|API|framework`,
				`deployment|cloud|architecture`,
				`testing|debugging|optimization`,
				`RAG|AI|ML|vector|embedding`,
				`React|Next\.js|Python|JavaScript`,
				`full.?stack|frontend|backend`,
			)},
			{IntentProjectSpecific, compileAll(
				`Food RAG Explorer`,
				`digital twin|personal digital twin`,
				`full.?stack.*application`,
				`portfolio|github|project`,
				`internship.*project`,
				`ausbiz.*project`,
			)},
			{IntentCompanySpecific, compileAll(
				`why.*company|why.*us`,
				`what do you know about`,
				`research.*company`,
				`fit.*culture|culture.*fit`,
				`contribute.*team|add.*value`,
			)},
			{IntentSalaryLocation, compileAll(
				`salary|compensation|pay|money`,
				`expectations.*salary`,
				`budget|rate|cost`,
				`relocate|location|remote|hybrid`,
				`visa|authorization|eligibility`,
			)},
			{IntentAvailability, compileAll(
				`start date|when.*start|availability`,
				`notice.*period|current.*job`,
				`graduate|graduation|finish.*degree`,
				`part.?time|full.?time|hours.*week`,
			)},
		},
	}
}

// Classify returns the intent of a question. The question is lower-cased
// once and the patterns are matched case-sensitively against that form, so
// upper-case alternations in a pattern only fire through their lower-case
// siblings. That asymmetry is long-standing, observable behavior.
func (c *Classifier) Classify(question string) QueryIntent {
	lower := strings.ToLower(question)
	for _, group := range c.groups {
		for _, pattern := range group.patterns {
			if pattern.MatchString(lower) {
				return group.intent
			}
		}
	}
	return IntentGeneral
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}
