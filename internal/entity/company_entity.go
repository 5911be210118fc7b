package entity

// CompanyProfile is static reference data about a known employer. Profiles
// are immutable and looked up by case-insensitive substring match against a
// free-text company context; first match by registration order wins.
type CompanyProfile struct {
	Name            string
	Industry        string
	TechStack       []string
	Values          []string
	Size            string
	CultureKeywords []string
	RecentNews      []string
}
