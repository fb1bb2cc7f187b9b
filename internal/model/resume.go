// Package model holds the plain resume records exchanged with the editor client.
// Absent optional values are empty strings; ID is the backend id rendered as a
// decimal string and is empty until the record is persisted. ClientID is the
// temporary id the editor assigns before the first save.
package model

import "time"

// PersonalInfo is the header block of a resume. There is one per owner.
type PersonalInfo struct {
	FullName string `json:"fullName" validate:"required"`
	Title    string `json:"title"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website" validate:"omitempty,httpurl"`
	Summary  string `json:"summary"`
	PhotoURL string `json:"photoUrl" validate:"omitempty,httpurl"`
}

// WorkExperience is one position held. EndDate is empty while Current is true.
type WorkExperience struct {
	ID           string   `json:"id,omitempty"`
	ClientID     string   `json:"clientId,omitempty"`
	Company      string   `json:"company" validate:"required"`
	Position     string   `json:"position" validate:"required"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate" validate:"required"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	ID          string `json:"id,omitempty"`
	ClientID    string `json:"clientId,omitempty"`
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

// Skill levels, lowest to highest.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

// SkillLevels lists the accepted levels in ascending order.
var SkillLevels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

type Skill struct {
	ID       string `json:"id,omitempty"`
	ClientID string `json:"clientId,omitempty"`
	Name     string `json:"name" validate:"required"`
	Level    string `json:"level" validate:"required,oneof=beginner intermediate advanced expert"`
	Category string `json:"category"`
}

type Certification struct {
	ID            string `json:"id,omitempty"`
	ClientID      string `json:"clientId,omitempty"`
	Name          string `json:"name" validate:"required"`
	Issuer        string `json:"issuer" validate:"required"`
	IssueDate     string `json:"issueDate"`
	ExpiryDate    string `json:"expiryDate"`
	CredentialID  string `json:"credentialId"`
	CredentialURL string `json:"credentialUrl" validate:"omitempty,httpurl"`
}

type SocialLink struct {
	ID       string `json:"id,omitempty"`
	ClientID string `json:"clientId,omitempty"`
	Platform string `json:"platform" validate:"required"`
	URL      string `json:"url" validate:"required,httpurl"`
}

type CustomItem struct {
	Title       string `json:"title" validate:"required"`
	Subtitle    string `json:"subtitle"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// CustomSection is a user-titled section such as "Projects" or "Volunteering".
type CustomSection struct {
	ID       string       `json:"id,omitempty"`
	ClientID string       `json:"clientId,omitempty"`
	Title    string       `json:"title" validate:"required"`
	Items    []CustomItem `json:"items" validate:"dive"`
}

// Resume is the aggregate document edited by the user.
type Resume struct {
	PersonalInfo   *PersonalInfo    `json:"personalInfo,omitempty"`
	Experiences    []WorkExperience `json:"experiences" validate:"dive"`
	Education      []Education      `json:"education" validate:"dive"`
	Skills         []Skill          `json:"skills" validate:"dive"`
	Certifications []Certification  `json:"certifications" validate:"dive"`
	SocialLinks    []SocialLink     `json:"socialLinks" validate:"dive"`
	CustomSections []CustomSection  `json:"customSections" validate:"dive"`
}

// DocumentVersion is the current export format version.
const DocumentVersion = 1

// Document is the JSON export/import envelope of a resume.
type Document struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exportedAt"`
	Template   string    `json:"template"`
	Resume     Resume    `json:"resume"`
}
