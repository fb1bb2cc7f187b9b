package wire

type PersonalInfo struct {
	FullName string      `json:"full_name"`
	Title    Opt[string] `json:"title"`
	Email    string      `json:"email"`
	Phone    Opt[string] `json:"phone"`
	Location Opt[string] `json:"location"`
	Website  Opt[string] `json:"website"`
	Summary  Opt[string] `json:"summary"`
	PhotoURL Opt[string] `json:"photo_url"`
}

type WorkExperience struct {
	ID           Nat         `json:"id"`
	Company      string      `json:"company"`
	Position     string      `json:"position"`
	Location     Opt[string] `json:"location"`
	StartDate    string      `json:"start_date"`
	EndDate      Opt[string] `json:"end_date"`
	Current      bool        `json:"current"`
	Description  Opt[string] `json:"description"`
	Achievements []string    `json:"achievements"`
}

type Education struct {
	ID          Nat         `json:"id"`
	Institution string      `json:"institution"`
	Degree      string      `json:"degree"`
	Field       Opt[string] `json:"field"`
	Location    Opt[string] `json:"location"`
	StartDate   Opt[string] `json:"start_date"`
	EndDate     Opt[string] `json:"end_date"`
	GPA         Opt[string] `json:"gpa"`
	Description Opt[string] `json:"description"`
}

type Skill struct {
	ID       Nat         `json:"id"`
	Name     string      `json:"name"`
	Level    Level       `json:"level"`
	Category Opt[string] `json:"category"`
}

type Certification struct {
	ID            Nat         `json:"id"`
	Name          string      `json:"name"`
	Issuer        string      `json:"issuer"`
	IssueDate     Opt[string] `json:"issue_date"`
	ExpiryDate    Opt[string] `json:"expiry_date"`
	CredentialID  Opt[string] `json:"credential_id"`
	CredentialURL Opt[string] `json:"credential_url"`
}

type SocialLink struct {
	ID       Nat    `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type CustomItem struct {
	Title       string      `json:"title"`
	Subtitle    Opt[string] `json:"subtitle"`
	Date        Opt[string] `json:"date"`
	Description Opt[string] `json:"description"`
}

type CustomSection struct {
	ID    Nat          `json:"id"`
	Title string       `json:"title"`
	Items []CustomItem `json:"items"`
}

type CoverLetter struct {
	ID             Nat         `json:"id"`
	Title          Opt[string] `json:"title"`
	CompanyName    string      `json:"company_name"`
	Position       string      `json:"position"`
	HiringManager  Opt[string] `json:"hiring_manager"`
	Tone           Opt[string] `json:"tone"`
	Highlights     []string    `json:"highlights"`
	JobDescription Opt[string] `json:"job_description"`
	Content        string      `json:"content"`
	UpdatedAt      Time        `json:"updated_at"`
}

type ResumeLink struct {
	ID                Nat       `json:"id"`
	Path              string    `json:"path"`
	URL               string    `json:"url"`
	Template          string    `json:"template"`
	Active            bool      `json:"active"`
	ExpiresAt         Opt[Time] `json:"expires_at"`
	Views             Nat       `json:"views"`
	PasswordProtected bool      `json:"password_protected"`
	CreatedAt         Time      `json:"created_at"`
}

type CategoryScore struct {
	Name  string `json:"name"`
	Score Nat    `json:"score"`
	Max   Nat    `json:"max"`
}

type ATSReport struct {
	ID              Nat             `json:"id"`
	Total           Nat             `json:"total"`
	Label           string          `json:"label"`
	Categories      []CategoryScore `json:"categories"`
	MatchedKeywords []string        `json:"matched_keywords"`
	MissingKeywords []string        `json:"missing_keywords"`
	Suggestions     []string        `json:"suggestions"`
	CreatedAt       Time            `json:"created_at"`
}

type ScoreReport struct {
	ID          Nat             `json:"id"`
	Total       Nat             `json:"total"`
	Label       string          `json:"label"`
	Categories  []CategoryScore `json:"categories"`
	Suggestions []string        `json:"suggestions"`
	CreatedAt   Time            `json:"created_at"`
}

type AssessmentResult struct {
	ID        Nat    `json:"id"`
	Category  string `json:"category"`
	Correct   Nat    `json:"correct"`
	Total     Nat    `json:"total"`
	Score     Nat    `json:"score"`
	Label     string `json:"label"`
	CreatedAt Time   `json:"created_at"`
}

type PrivacySettings struct {
	PublicProfile         bool     `json:"public_profile"`
	ShowContact           bool     `json:"show_contact"`
	AllowAnalytics        bool     `json:"allow_analytics"`
	DefaultLinkExpiryDays Opt[Nat] `json:"default_link_expiry_days"`
}

// Resume is the aggregate of every section owned by one user.
type Resume struct {
	PersonalInfo   Opt[PersonalInfo] `json:"personal_info"`
	Experiences    []WorkExperience  `json:"experiences"`
	Education      []Education       `json:"education"`
	Skills         []Skill           `json:"skills"`
	Certifications []Certification   `json:"certifications"`
	SocialLinks    []SocialLink      `json:"social_links"`
	CustomSections []CustomSection   `json:"custom_sections"`
}
