package company

import (
	"fmt"
	"strings"
	"time"

	"digitaltwin-rag-be/internal/entity"
	"digitaltwin-rag-be/pkg/rag/intent"

	gocache "github.com/patrickmn/go-cache"
)

// Customizer appends company-tailored sentences to a base response. The
// customization is strictly additive: the base response text is never
// rewritten or trimmed, only extended.
type Customizer struct {
	lookupCache *gocache.Cache
}

func NewCustomizer() *Customizer {
	return &Customizer{
		lookupCache: gocache.New(30*time.Minute, 10*time.Minute),
	}
}

func (c *Customizer) Customize(baseResponse, companyContext string, queryIntent intent.QueryIntent) string {
	if companyContext == "" {
		return baseResponse
	}

	if profile := c.IdentifyCompany(companyContext); profile != nil {
		return c.customizeForKnownCompany(baseResponse, profile, queryIntent)
	}
	return c.customizeForIndustry(baseResponse, companyContext, queryIntent)
}

// IdentifyCompany resolves a free-text company context to a known profile by
// case-insensitive substring match over keys and display names. Lookups are
// memoized per context string.
func (c *Customizer) IdentifyCompany(companyContext string) *entity.CompanyProfile {
	contextLower := strings.ToLower(companyContext)

	if cached, found := c.lookupCache.Get(contextLower); found {
		profile, _ := cached.(*entity.CompanyProfile)
		return profile
	}

	var match *entity.CompanyProfile
	for i := range knownCompanies {
		kc := &knownCompanies[i]
		if strings.Contains(contextLower, kc.key) || strings.Contains(contextLower, strings.ToLower(kc.profile.Name)) {
			match = &kc.profile
			break
		}
	}

	c.lookupCache.Set(contextLower, match, gocache.DefaultExpiration)
	return match
}

func (c *Customizer) customizeForKnownCompany(baseResponse string, company *entity.CompanyProfile, queryIntent intent.QueryIntent) string {
	var customizations []string

	matchingTech := intersect(company.TechStack, myTechStack)
	if len(matchingTech) > 0 && queryIntent == intent.IntentTechnical {
		if len(matchingTech) > 3 {
			matchingTech = matchingTech[:3]
		}
		customizations = append(customizations, fmt.Sprintf(
			"\nWhat's particularly exciting about %s is your tech stack - I have hands-on experience with %s, which aligns well with your technology choices.",
			company.Name, strings.Join(matchingTech, ", ")))
	}

	if queryIntent == intent.IntentCompanySpecific {
		if hasValue(company.Values, "customer") {
			customizations = append(customizations,
				"\nYour focus on customer-centricity really resonates with me. Through my mentoring work supporting 100+ students and my hospitality experience, I've learned that understanding user needs is fundamental to building great solutions.")
		}
		if hasValue(company.Values, "innovation") {
			customizations = append(customizations, fmt.Sprintf(
				"\nI'm particularly drawn to %s's emphasis on innovation. Building cutting-edge AI systems like my RAG implementation and digital twin projects has shown me how exciting it is to work with emerging technologies that solve real problems.",
				company.Name))
		}
	}

	if company.Industry == "Financial Services/Insurance" &&
		(queryIntent == intent.IntentBehavioral || queryIntent == intent.IntentCompanySpecific) {
		customizations = append(customizations,
			"\nWhile I don't have direct financial services experience, I'm genuinely interested in how technology can improve financial accessibility and user experience. My systematic approach to learning - demonstrated through mastering AI/ML technologies - would help me quickly understand your domain and contribute meaningfully.")
	}

	if company.Industry == "Travel Technology" {
		customizations = append(customizations,
			"\nThe travel industry's focus on user experience and seamless digital interactions aligns perfectly with my full-stack development background and AI integration experience.")
	}

	if strings.Contains(company.Size, "Large Enterprise") {
		customizations = append(customizations,
			"\nI'm excited about the opportunity to work at enterprise scale - my experience building production systems has shown me the importance of scalability, reliability, and collaboration in larger organizations.")
	}

	return baseResponse + strings.Join(customizations, "")
}

func (c *Customizer) customizeForIndustry(baseResponse, companyContext string, queryIntent intent.QueryIntent) string {
	contextLower := strings.ToLower(companyContext)

	for _, pattern := range industryPatterns {
		matched := false
		for _, kw := range pattern.keywords {
			if strings.Contains(contextLower, kw) {
				matched = true
				break
			}
		}
		if matched {
			return baseResponse + industryAddition(pattern.name, queryIntent)
		}
	}

	if queryIntent == intent.IntentCompanySpecific {
		return baseResponse + "\n\nI'd love to learn more about your specific challenges and how I could contribute to your team's success. Based on my research and what we've discussed, it sounds like there's a great alignment between my technical skills and growth mindset and what you're looking for."
	}
	return baseResponse
}

func industryAddition(industry string, queryIntent intent.QueryIntent) string {
	switch {
	case industry == "fintech" && (queryIntent == intent.IntentBehavioral || queryIntent == intent.IntentCompanySpecific):
		return "\nI'm particularly interested in fintech because of the intersection of technology and quantitative problem-solving. While I don't have direct finance experience, my systematic approach to learning complex technologies and my attention to detail in AI system development demonstrate the analytical thinking that's valuable in financial technology."
	case industry == "consulting" && queryIntent == intent.IntentBehavioral:
		return "\nMy mentoring experience has taught me how to understand different client needs and adapt my communication style accordingly - skills that translate well to consulting environments where you need to quickly understand client contexts and deliver tailored solutions."
	case industry == "startup" && (queryIntent == intent.IntentBehavioral || queryIntent == intent.IntentCompanySpecific):
		return "\nI'm excited about startup environments because of the opportunity to wear multiple hats and have direct impact. My experience managing multiple responsibilities - internship, mentoring, studies, and part-time work - has taught me how to be adaptable and take ownership."
	}
	return ""
}

func intersect(theirs, mine []string) []string {
	mineSet := make(map[string]bool, len(mine))
	for _, t := range mine {
		mineSet[t] = true
	}
	var common []string
	for _, t := range theirs {
		if mineSet[t] {
			common = append(common, t)
		}
	}
	return common
}

// hasValue matches whole value strings only; "Customer First" is not a
// match for "customer".
func hasValue(values []string, needle string) bool {
	for _, v := range values {
		if strings.EqualFold(v, needle) {
			return true
		}
	}
	return false
}
