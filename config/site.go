package config

// SiteInfo centralizes the site identity and contact details consumed
// by multiple public pages.
type SiteInfo struct {
	Name        string            `json:"name"`
	Tagline     string            `json:"tagline"`
	Description string            `json:"description"`
	Emails      []string          `json:"emails"`
	Phones      []string          `json:"phones"`
	Address     string            `json:"address"`
	SocialLinks map[string]string `json:"social_links"`
}

// Site returns the static site identity configuration.
func Site() SiteInfo {
	return SiteInfo{
		Name:        "GlobalEdge Overseas Education",
		Tagline:     "Your gateway to studying abroad",
		Description: "Overseas-education consulting: colleges, entrance exams, countries and expert guidance for students planning to study abroad.",
		Emails:      []string{"info@globaledge.example", "admissions@globaledge.example"},
		Phones:      []string{"+91 98765 43210", "+91 98765 43211"},
		Address:     "2nd Floor, Lakeview Tower, MG Road, Bengaluru 560001",
		SocialLinks: map[string]string{
			"facebook":  "https://facebook.com/globaledge.education",
			"instagram": "https://instagram.com/globaledge.education",
			"youtube":   "https://youtube.com/@globaledge-education",
		},
	}
}
