package model

import "time"

// ResumeLink is a shareable public path to a rendered resume.
type ResumeLink struct {
	ID                string     `json:"id,omitempty"`
	Path              string     `json:"path"`
	URL               string     `json:"url"`
	Template          string     `json:"template"`
	Active            bool       `json:"active"`
	ExpiresAt         *time.Time `json:"expiresAt,omitempty"`
	Views             int64      `json:"views"`
	PasswordProtected bool       `json:"passwordProtected"`
	PasswordHash      string     `json:"-"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// Expired reports whether the link is past its expiry at now.
func (l *ResumeLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && !now.Before(*l.ExpiresAt)
}

// CreateLinkRequest asks for a new shareable link.
type CreateLinkRequest struct {
	Path          string `json:"path" validate:"required,alphanum,min=3,max=100"`
	Template      string `json:"template" validate:"omitempty,oneof=minimal modern professional"`
	Password      string `json:"password" validate:"omitempty,min=4,max=72"`
	ExpiresInDays int    `json:"expiresInDays" validate:"min=0,max=365"`
}

// SharedResume is what a visitor of a resume link receives.
type SharedResume struct {
	Path     string `json:"path"`
	Template string `json:"template"`
	Resume   Resume `json:"resume"`
}

// PrivacySettings controls what shared links expose and whether views are tracked.
type PrivacySettings struct {
	PublicProfile         bool `json:"publicProfile"`
	ShowContact           bool `json:"showContact"`
	AllowAnalytics        bool `json:"allowAnalytics"`
	DefaultLinkExpiryDays int  `json:"defaultLinkExpiryDays" validate:"min=0,max=365"`
}

// DefaultPrivacySettings applies to owners who never saved their settings.
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		PublicProfile:  true,
		ShowContact:    true,
		AllowAnalytics: true,
	}
}
