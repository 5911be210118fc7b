package company

import "digitaltwin-rag-be/internal/entity"

// knownCompanies is the hand-researched Brisbane employer catalog. The slice
// is ordered so context matching is deterministic when more than one key
// appears in the same context string.
var knownCompanies = []struct {
	key     string
	profile entity.CompanyProfile
}{
	{
		key: "suncorp",
		profile: entity.CompanyProfile{
			Name:            "Suncorp Group",
			Industry:        "Financial Services/Insurance",
			TechStack:       []string{"Java", "Python", "AWS", "Microservices", "React", "API Gateway"},
			Values:          []string{"Customer First", "Own It", "Be Bold", "Stay Curious"},
			Size:            "Large Enterprise (14,000+ employees)",
			CultureKeywords: []string{"innovation", "digital transformation", "customer-centric", "agile"},
			RecentNews:      []string{"Digital banking transformation", "Cloud-first strategy", "AI/ML initiatives"},
		},
	},
	{
		key: "flight_centre",
		profile: entity.CompanyProfile{
			Name:            "Flight Centre Travel Group",
			Industry:        "Travel Technology",
			TechStack:       []string{"Java", "JavaScript", "React", "Node.js", "AWS", "Microservices"},
			Values:          []string{"People First", "Customer Focused", "Bright Future", "Ownership"},
			Size:            "Large Enterprise (18,000+ employees)",
			CultureKeywords: []string{"innovation", "travel tech", "customer experience", "global"},
			RecentNews:      []string{"Travel recovery technology", "Digital experience platforms", "Mobile innovation"},
		},
	},
	{
		key: "xero",
		profile: entity.CompanyProfile{
			Name:            "Xero",
			Industry:        "FinTech/SaaS",
			TechStack:       []string{"C#", "React", "AWS", "Microservices", "TypeScript", "GraphQL"},
			Values:          []string{"Human", "Purposeful", "Adventurous"},
			Size:            "Large (4,000+ employees)",
			CultureKeywords: []string{"small business", "beautiful software", "innovation", "human"},
			RecentNews:      []string{"AI automation features", "Small business platform expansion", "Developer API growth"},
		},
	},
	{
		key: "technologyone",
		profile: entity.CompanyProfile{
			Name:            "TechnologyOne",
			Industry:        "Enterprise Software/SaaS",
			TechStack:       []string{"Java", "React", "Angular", "AWS", "Microservices", "REST APIs"},
			Values:          []string{"Innovation", "Quality", "Service", "People"},
			Size:            "Large (1,300+ employees)",
			CultureKeywords: []string{"enterprise software", "innovation", "continuous improvement", "customer success"},
			RecentNews:      []string{"SaaS transformation", "AI-powered solutions", "Government sector growth"},
		},
	},
}

type industryPattern struct {
	name     string
	keywords []string
}

// industryPatterns drives the fallback inference when the company itself is
// unrecognized. Ordered for deterministic matching.
var industryPatterns = []industryPattern{
	{"fintech", []string{"financial", "banking", "payments", "investment", "trading"}},
	{"consulting", []string{"consulting", "advisory", "transformation", "strategy"}},
	{"startup", []string{"startup", "scale-up", "growth", "agile"}},
}

// myTechStack is the subject's own stack, used for overlap call-outs.
var myTechStack = []string{"Python", "JavaScript", "TypeScript", "React", "Next.js", "AWS", "Node.js"}
