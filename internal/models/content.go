package models

type Branding struct {
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Logo     string `json:"logo"`
}

type HeroContent struct {
	Title       string `json:"title"`
	Highlight   string `json:"highlight"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type NewsItem struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

type MissionContent struct {
	Title      string     `json:"title"`
	Text       string     `json:"text"`
	Values     []string   `json:"values"`
	LatestNews []NewsItem `json:"latestNews"`
}

type GalleryContent struct {
	VideoURL string   `json:"videoUrl"`
	Images   []string `json:"images"`
}

type CommitteeMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
	Bio   string `json:"bio"`
}

type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	Address string `json:"address"`
}

// SiteContent is the single aggregate document holding every editable
// non-collection part of the site. It is always read and written as one
// unit; the store never patches individual domains.
type SiteContent struct {
	Branding             Branding          `json:"branding"`
	HeroContent          HeroContent       `json:"heroContent"`
	MissionContent       MissionContent    `json:"missionContent"`
	GalleryContent       GalleryContent    `json:"galleryContent"`
	CommitteeLeadership  []CommitteeMember `json:"committeeLeadership"`
	CommitteeMembersList []string          `json:"committeeMembersList"`
	ContactInfo          ContactInfo       `json:"contactInfo"`
	ShopItems            []MerchandiseItem `json:"shopItems"`
}

// DefaultSiteContent is served while the store has no document yet,
// so a fresh deployment still renders a complete site.
func DefaultSiteContent() SiteContent {
	return SiteContent{
		Branding: Branding{
			Name:     "MSVOSA",
			FullName: "Old Students Association",
			Logo:     "public/images/logo.png",
		},
		HeroContent: HeroContent{
			Title:       "Welcome to",
			Highlight:   "MSVOSA",
			Description: "Reconnect with old friends, support the next generation, and keep the school spirit alive. Join the Old Students' Association today.",
			Image:       "https://picsum.photos/1200/800?grayscale&blur=2",
		},
		MissionContent: MissionContent{
			Title:  "Our Mission",
			Text:   "MSVOSA is dedicated to fostering a lifelong connection between the institution and its alumni, promoting unity and pride while contributing to the development of the school and its current students through mentorship, scholarships, and infrastructure development.",
			Values: []string{"✨ Unity", "🎓 Pride", "🤝 Contribution"},
			LatestNews: []NewsItem{
				{Title: "Scholarship Fund Reaches $50k Milestone", Date: "2 days ago"},
				{Title: "New Science Lab Inaugurated by Batch '95", Date: "1 week ago"},
			},
		},
		GalleryContent: GalleryContent{
			VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Images: []string{
				"https://picsum.photos/400/300?random=20",
				"https://picsum.photos/400/300?random=21",
				"https://picsum.photos/400/300?random=22",
				"https://picsum.photos/400/300?random=23",
			},
		},
		CommitteeLeadership: []CommitteeMember{
			{Name: "John Anderson", Role: "President", Image: "https://picsum.photos/300/300?random=101", Bio: "Leading with vision to unite our alumni community."},
			{Name: "Robert Smith", Role: "Vice President", Image: "https://picsum.photos/300/300?random=105", Bio: "Supporting leadership and strategic initiatives."},
			{Name: "Sarah Williams", Role: "Secretary", Image: "https://picsum.photos/300/300?random=102", Bio: "Ensuring smooth operations and communication."},
			{Name: "Michael Chen", Role: "Treasurer", Image: "https://picsum.photos/300/300?random=103", Bio: "Managing the association's funds and scholarships."},
		},
		CommitteeMembersList: []string{
			"Robert Wilson", "Jennifer Lo", "David Miller", "Jessica Taylor", "Mark Thompson", "Lisa Wong",
		},
		ContactInfo: ContactInfo{
			Email:   "alumni@school.edu",
			Phone:   "+1 (555) 123-4567",
			Website: "www.msvosa.org",
			Address: "123 School Lane, Cityville",
		},
		ShopItems: DefaultShopItems(),
	}
}
