package postgres

import (
	"context"
	"database/sql"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// PersonalInfoPostgres stores one personal info row per owner.
type PersonalInfoPostgres struct {
	db *sql.DB
}

func NewPersonalInfoPostgres(db *sql.DB) *PersonalInfoPostgres {
	return &PersonalInfoPostgres{db: db}
}

var _ repository.PersonalInfoRepository = (*PersonalInfoPostgres)(nil)

func (r *PersonalInfoPostgres) Get(ctx context.Context, owner string) (*model.PersonalInfo, error) {
	const q = `
		SELECT full_name, title, email, phone, location, website, summary, photo_url
		FROM resumes_personal_info
		WHERE owner = $1
	`
	var p model.PersonalInfo
	if err := r.db.QueryRowContext(ctx, q, owner).Scan(
		&p.FullName,
		&p.Title,
		&p.Email,
		&p.Phone,
		&p.Location,
		&p.Website,
		&p.Summary,
		&p.PhotoURL,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonalInfoPostgres) Upsert(ctx context.Context, owner string, p *model.PersonalInfo) (*model.PersonalInfo, error) {
	const q = `
		INSERT INTO resumes_personal_info
			(owner, full_name, title, email, phone, location, website, summary, photo_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (owner) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			title = EXCLUDED.title,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			website = EXCLUDED.website,
			summary = EXCLUDED.summary,
			photo_url = EXCLUDED.photo_url,
			updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, q,
		owner,
		p.FullName,
		p.Title,
		p.Email,
		p.Phone,
		p.Location,
		p.Website,
		p.Summary,
		p.PhotoURL,
	); err != nil {
		return nil, err
	}
	out := *p
	return &out, nil
}

// Delete removes the owner's personal info. Missing rows are not an error.
func (r *PersonalInfoPostgres) Delete(ctx context.Context, owner string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM resumes_personal_info WHERE owner = $1`, owner)
	return err
}

// PrivacyPostgres stores privacy settings per owner.
type PrivacyPostgres struct {
	db *sql.DB
}

func NewPrivacyPostgres(db *sql.DB) *PrivacyPostgres {
	return &PrivacyPostgres{db: db}
}

var _ repository.PrivacyRepository = (*PrivacyPostgres)(nil)

func (r *PrivacyPostgres) Get(ctx context.Context, owner string) (*model.PrivacySettings, error) {
	const q = `
		SELECT public_profile, show_contact, allow_analytics, default_link_expiry_days
		FROM privacy_settings
		WHERE owner = $1
	`
	var s model.PrivacySettings
	if err := r.db.QueryRowContext(ctx, q, owner).Scan(
		&s.PublicProfile,
		&s.ShowContact,
		&s.AllowAnalytics,
		&s.DefaultLinkExpiryDays,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PrivacyPostgres) Upsert(ctx context.Context, owner string, s *model.PrivacySettings) (*model.PrivacySettings, error) {
	const q = `
		INSERT INTO privacy_settings
			(owner, public_profile, show_contact, allow_analytics, default_link_expiry_days, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (owner) DO UPDATE SET
			public_profile = EXCLUDED.public_profile,
			show_contact = EXCLUDED.show_contact,
			allow_analytics = EXCLUDED.allow_analytics,
			default_link_expiry_days = EXCLUDED.default_link_expiry_days,
			updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, q,
		owner,
		s.PublicProfile,
		s.ShowContact,
		s.AllowAnalytics,
		s.DefaultLinkExpiryDays,
	); err != nil {
		return nil, err
	}
	out := *s
	return &out, nil
}
