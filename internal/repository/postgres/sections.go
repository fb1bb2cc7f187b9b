package postgres

import (
	"database/sql"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// ExperiencePostgres stores work experience rows.
type ExperiencePostgres struct {
	collection[model.WorkExperience]
}

func NewExperiencePostgres(db *sql.DB) *ExperiencePostgres {
	return &ExperiencePostgres{newCollection(db, tableSpec[model.WorkExperience]{
		table: "resumes_experiences",
		columns: []string{
			"company", "position", "location", "start_date", "end_date",
			"is_current", "description", "achievements",
		},
		values: func(e *model.WorkExperience) ([]any, error) {
			achievements, err := jsonValue(strs(e.Achievements))
			if err != nil {
				return nil, err
			}
			return []any{e.Company, e.Position, e.Location, e.StartDate, e.EndDate,
				e.Current, e.Description, achievements}, nil
		},
		scan: func(s scanner) (model.WorkExperience, error) {
			var (
				e            model.WorkExperience
				id           int64
				achievements []byte
			)
			if err := s.Scan(&id, &e.Company, &e.Position, &e.Location, &e.StartDate,
				&e.EndDate, &e.Current, &e.Description, &achievements); err != nil {
				return e, err
			}
			e.ID = formatID(id)
			e.Achievements = []string{}
			return e, jsonScan(achievements, &e.Achievements)
		},
		getID: func(e *model.WorkExperience) string { return e.ID },
		setID: func(e *model.WorkExperience, id string) { e.ID = id },
	})}
}

// EducationPostgres stores education rows.
type EducationPostgres struct {
	collection[model.Education]
}

func NewEducationPostgres(db *sql.DB) *EducationPostgres {
	return &EducationPostgres{newCollection(db, tableSpec[model.Education]{
		table: "resumes_education",
		columns: []string{
			"institution", "degree", "field", "location", "start_date", "end_date",
			"gpa", "description",
		},
		values: func(e *model.Education) ([]any, error) {
			return []any{e.Institution, e.Degree, e.Field, e.Location, e.StartDate,
				e.EndDate, e.GPA, e.Description}, nil
		},
		scan: func(s scanner) (model.Education, error) {
			var (
				e  model.Education
				id int64
			)
			err := s.Scan(&id, &e.Institution, &e.Degree, &e.Field, &e.Location,
				&e.StartDate, &e.EndDate, &e.GPA, &e.Description)
			e.ID = formatID(id)
			return e, err
		},
		getID: func(e *model.Education) string { return e.ID },
		setID: func(e *model.Education, id string) { e.ID = id },
	})}
}

// SkillPostgres stores skill rows.
type SkillPostgres struct {
	collection[model.Skill]
}

func NewSkillPostgres(db *sql.DB) *SkillPostgres {
	return &SkillPostgres{newCollection(db, tableSpec[model.Skill]{
		table:   "resumes_skills",
		columns: []string{"name", "level", "category"},
		values: func(s *model.Skill) ([]any, error) {
			return []any{s.Name, s.Level, s.Category}, nil
		},
		scan: func(s scanner) (model.Skill, error) {
			var (
				sk model.Skill
				id int64
			)
			err := s.Scan(&id, &sk.Name, &sk.Level, &sk.Category)
			sk.ID = formatID(id)
			return sk, err
		},
		getID: func(s *model.Skill) string { return s.ID },
		setID: func(s *model.Skill, id string) { s.ID = id },
	})}
}

// CertificationPostgres stores certification rows.
type CertificationPostgres struct {
	collection[model.Certification]
}

func NewCertificationPostgres(db *sql.DB) *CertificationPostgres {
	return &CertificationPostgres{newCollection(db, tableSpec[model.Certification]{
		table: "resumes_certifications",
		columns: []string{
			"name", "issuer", "issue_date", "expiry_date", "credential_id", "credential_url",
		},
		values: func(c *model.Certification) ([]any, error) {
			return []any{c.Name, c.Issuer, c.IssueDate, c.ExpiryDate, c.CredentialID, c.CredentialURL}, nil
		},
		scan: func(s scanner) (model.Certification, error) {
			var (
				c  model.Certification
				id int64
			)
			err := s.Scan(&id, &c.Name, &c.Issuer, &c.IssueDate, &c.ExpiryDate,
				&c.CredentialID, &c.CredentialURL)
			c.ID = formatID(id)
			return c, err
		},
		getID: func(c *model.Certification) string { return c.ID },
		setID: func(c *model.Certification, id string) { c.ID = id },
	})}
}

// SocialLinkPostgres stores social profile links.
type SocialLinkPostgres struct {
	collection[model.SocialLink]
}

func NewSocialLinkPostgres(db *sql.DB) *SocialLinkPostgres {
	return &SocialLinkPostgres{newCollection(db, tableSpec[model.SocialLink]{
		table:   "resumes_social_links",
		columns: []string{"platform", "url"},
		values: func(l *model.SocialLink) ([]any, error) {
			return []any{l.Platform, l.URL}, nil
		},
		scan: func(s scanner) (model.SocialLink, error) {
			var (
				l  model.SocialLink
				id int64
			)
			err := s.Scan(&id, &l.Platform, &l.URL)
			l.ID = formatID(id)
			return l, err
		},
		getID: func(l *model.SocialLink) string { return l.ID },
		setID: func(l *model.SocialLink, id string) { l.ID = id },
	})}
}

// CustomSectionPostgres stores custom sections with their items as JSONB.
type CustomSectionPostgres struct {
	collection[model.CustomSection]
}

func NewCustomSectionPostgres(db *sql.DB) *CustomSectionPostgres {
	return &CustomSectionPostgres{newCollection(db, tableSpec[model.CustomSection]{
		table:   "resumes_custom_sections",
		columns: []string{"title", "items"},
		values: func(c *model.CustomSection) ([]any, error) {
			items := c.Items
			if items == nil {
				items = []model.CustomItem{}
			}
			b, err := jsonValue(items)
			if err != nil {
				return nil, err
			}
			return []any{c.Title, b}, nil
		},
		scan: func(s scanner) (model.CustomSection, error) {
			var (
				c     model.CustomSection
				id    int64
				items []byte
			)
			if err := s.Scan(&id, &c.Title, &items); err != nil {
				return c, err
			}
			c.ID = formatID(id)
			c.Items = []model.CustomItem{}
			return c, jsonScan(items, &c.Items)
		},
		getID: func(c *model.CustomSection) string { return c.ID },
		setID: func(c *model.CustomSection, id string) { c.ID = id },
	})}
}

// CoverLetterPostgres stores cover letters.
type CoverLetterPostgres struct {
	collection[model.CoverLetter]
}

func NewCoverLetterPostgres(db *sql.DB) *CoverLetterPostgres {
	return &CoverLetterPostgres{newCollection(db, tableSpec[model.CoverLetter]{
		table: "cover_letters",
		columns: []string{
			"title", "company_name", "position", "hiring_manager", "tone",
			"highlights", "job_description", "content", "updated_at",
		},
		values: func(c *model.CoverLetter) ([]any, error) {
			highlights, err := jsonValue(strs(c.Highlights))
			if err != nil {
				return nil, err
			}
			return []any{c.Title, c.CompanyName, c.Position, c.HiringManager, c.Tone,
				highlights, c.JobDescription, c.Content, c.UpdatedAt}, nil
		},
		scan: func(s scanner) (model.CoverLetter, error) {
			var (
				c          model.CoverLetter
				id         int64
				highlights []byte
			)
			if err := s.Scan(&id, &c.Title, &c.CompanyName, &c.Position, &c.HiringManager,
				&c.Tone, &highlights, &c.JobDescription, &c.Content, &c.UpdatedAt); err != nil {
				return c, err
			}
			c.ID = formatID(id)
			c.Highlights = []string{}
			return c, jsonScan(highlights, &c.Highlights)
		},
		getID: func(c *model.CoverLetter) string { return c.ID },
		setID: func(c *model.CoverLetter, id string) { c.ID = id },
	})}
}

var (
	_ repository.ExperienceRepository    = (*ExperiencePostgres)(nil)
	_ repository.EducationRepository     = (*EducationPostgres)(nil)
	_ repository.SkillRepository         = (*SkillPostgres)(nil)
	_ repository.CertificationRepository = (*CertificationPostgres)(nil)
	_ repository.SocialLinkRepository    = (*SocialLinkPostgres)(nil)
	_ repository.CustomSectionRepository = (*CustomSectionPostgres)(nil)
	_ repository.CoverLetterRepository   = (*CoverLetterPostgres)(nil)
)
