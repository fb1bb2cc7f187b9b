package adapter

import (
	"fmt"

	"resumeapi/internal/model"
	"resumeapi/internal/wire"
)

func PersonalInfoToWire(p model.PersonalInfo) wire.PersonalInfo {
	return wire.PersonalInfo{
		FullName: p.FullName,
		Title:    opt(p.Title),
		Email:    p.Email,
		Phone:    opt(p.Phone),
		Location: opt(p.Location),
		Website:  opt(p.Website),
		Summary:  opt(p.Summary),
		PhotoURL: opt(p.PhotoURL),
	}
}

func PersonalInfoFromWire(w wire.PersonalInfo) model.PersonalInfo {
	return model.PersonalInfo{
		FullName: w.FullName,
		Title:    w.Title.OrZero(),
		Email:    w.Email,
		Phone:    w.Phone.OrZero(),
		Location: w.Location.OrZero(),
		Website:  w.Website.OrZero(),
		Summary:  w.Summary.OrZero(),
		PhotoURL: w.PhotoURL.OrZero(),
	}
}

func WorkExperienceToWire(e model.WorkExperience) (wire.WorkExperience, error) {
	id, err := ParseID(e.ID)
	if err != nil {
		return wire.WorkExperience{}, err
	}
	endDate := e.EndDate
	if e.Current {
		endDate = ""
	}
	return wire.WorkExperience{
		ID:           id,
		Company:      e.Company,
		Position:     e.Position,
		Location:     opt(e.Location),
		StartDate:    e.StartDate,
		EndDate:      opt(endDate),
		Current:      e.Current,
		Description:  opt(e.Description),
		Achievements: nonNil(e.Achievements),
	}, nil
}

func WorkExperienceFromWire(w wire.WorkExperience) model.WorkExperience {
	return model.WorkExperience{
		ID:           FormatID(w.ID),
		Company:      w.Company,
		Position:     w.Position,
		Location:     w.Location.OrZero(),
		StartDate:    w.StartDate,
		EndDate:      w.EndDate.OrZero(),
		Current:      w.Current,
		Description:  w.Description.OrZero(),
		Achievements: nonNil(w.Achievements),
	}
}

func EducationToWire(e model.Education) (wire.Education, error) {
	id, err := ParseID(e.ID)
	if err != nil {
		return wire.Education{}, err
	}
	return wire.Education{
		ID:          id,
		Institution: e.Institution,
		Degree:      e.Degree,
		Field:       opt(e.Field),
		Location:    opt(e.Location),
		StartDate:   opt(e.StartDate),
		EndDate:     opt(e.EndDate),
		GPA:         opt(e.GPA),
		Description: opt(e.Description),
	}, nil
}

func EducationFromWire(w wire.Education) model.Education {
	return model.Education{
		ID:          FormatID(w.ID),
		Institution: w.Institution,
		Degree:      w.Degree,
		Field:       w.Field.OrZero(),
		Location:    w.Location.OrZero(),
		StartDate:   w.StartDate.OrZero(),
		EndDate:     w.EndDate.OrZero(),
		GPA:         w.GPA.OrZero(),
		Description: w.Description.OrZero(),
	}
}

func SkillToWire(s model.Skill) (wire.Skill, error) {
	id, err := ParseID(s.ID)
	if err != nil {
		return wire.Skill{}, err
	}
	level, err := LevelToWire(s.Level)
	if err != nil {
		return wire.Skill{}, err
	}
	return wire.Skill{ID: id, Name: s.Name, Level: level, Category: opt(s.Category)}, nil
}

func SkillFromWire(w wire.Skill) model.Skill {
	return model.Skill{
		ID:       FormatID(w.ID),
		Name:     w.Name,
		Level:    LevelFromWire(w.Level),
		Category: w.Category.OrZero(),
	}
}

func CertificationToWire(c model.Certification) (wire.Certification, error) {
	id, err := ParseID(c.ID)
	if err != nil {
		return wire.Certification{}, err
	}
	return wire.Certification{
		ID:            id,
		Name:          c.Name,
		Issuer:        c.Issuer,
		IssueDate:     opt(c.IssueDate),
		ExpiryDate:    opt(c.ExpiryDate),
		CredentialID:  opt(c.CredentialID),
		CredentialURL: opt(c.CredentialURL),
	}, nil
}

func CertificationFromWire(w wire.Certification) model.Certification {
	return model.Certification{
		ID:            FormatID(w.ID),
		Name:          w.Name,
		Issuer:        w.Issuer,
		IssueDate:     w.IssueDate.OrZero(),
		ExpiryDate:    w.ExpiryDate.OrZero(),
		CredentialID:  w.CredentialID.OrZero(),
		CredentialURL: w.CredentialURL.OrZero(),
	}
}

func SocialLinkToWire(s model.SocialLink) (wire.SocialLink, error) {
	id, err := ParseID(s.ID)
	if err != nil {
		return wire.SocialLink{}, err
	}
	return wire.SocialLink{ID: id, Platform: s.Platform, URL: s.URL}, nil
}

func SocialLinkFromWire(w wire.SocialLink) model.SocialLink {
	return model.SocialLink{ID: FormatID(w.ID), Platform: w.Platform, URL: w.URL}
}

func CustomSectionToWire(s model.CustomSection) (wire.CustomSection, error) {
	id, err := ParseID(s.ID)
	if err != nil {
		return wire.CustomSection{}, err
	}
	items := make([]wire.CustomItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, wire.CustomItem{
			Title:       it.Title,
			Subtitle:    opt(it.Subtitle),
			Date:        opt(it.Date),
			Description: opt(it.Description),
		})
	}
	return wire.CustomSection{ID: id, Title: s.Title, Items: items}, nil
}

func CustomSectionFromWire(w wire.CustomSection) model.CustomSection {
	items := make([]model.CustomItem, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, model.CustomItem{
			Title:       it.Title,
			Subtitle:    it.Subtitle.OrZero(),
			Date:        it.Date.OrZero(),
			Description: it.Description.OrZero(),
		})
	}
	return model.CustomSection{ID: FormatID(w.ID), Title: w.Title, Items: items}
}

func CoverLetterToWire(c model.CoverLetter) (wire.CoverLetter, error) {
	id, err := ParseID(c.ID)
	if err != nil {
		return wire.CoverLetter{}, err
	}
	return wire.CoverLetter{
		ID:             id,
		Title:          opt(c.Title),
		CompanyName:    c.CompanyName,
		Position:       c.Position,
		HiringManager:  opt(c.HiringManager),
		Tone:           opt(c.Tone),
		Highlights:     nonNil(c.Highlights),
		JobDescription: opt(c.JobDescription),
		Content:        c.Content,
		UpdatedAt:      wire.FromTime(c.UpdatedAt),
	}, nil
}

func CoverLetterFromWire(w wire.CoverLetter) model.CoverLetter {
	return model.CoverLetter{
		ID:    FormatID(w.ID),
		Title: w.Title.OrZero(),
		CoverLetterBuilder: model.CoverLetterBuilder{
			CompanyName:    w.CompanyName,
			Position:       w.Position,
			HiringManager:  w.HiringManager.OrZero(),
			Tone:           w.Tone.OrZero(),
			Highlights:     nonNil(w.Highlights),
			JobDescription: w.JobDescription.OrZero(),
		},
		Content:   w.Content,
		UpdatedAt: w.UpdatedAt.Time(),
	}
}

// convertAll applies fn to every element, stopping at the first failure.
func convertAll[P, W any](in []P, fn func(P) (W, error)) ([]W, error) {
	out := make([]W, 0, len(in))
	for i, v := range in {
		w, err := fn(v)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, w)
	}
	return out, nil
}

func mapAll[W, P any](in []W, fn func(W) P) []P {
	out := make([]P, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

// Slice helpers used by the client for collection endpoints.

func WorkExperiencesToWire(in []model.WorkExperience) ([]wire.WorkExperience, error) {
	return convertAll(in, WorkExperienceToWire)
}

func WorkExperiencesFromWire(in []wire.WorkExperience) []model.WorkExperience {
	return mapAll(in, WorkExperienceFromWire)
}

func EducationListToWire(in []model.Education) ([]wire.Education, error) {
	return convertAll(in, EducationToWire)
}

func EducationListFromWire(in []wire.Education) []model.Education {
	return mapAll(in, EducationFromWire)
}

func SkillsToWire(in []model.Skill) ([]wire.Skill, error) { return convertAll(in, SkillToWire) }

func SkillsFromWire(in []wire.Skill) []model.Skill { return mapAll(in, SkillFromWire) }

func CertificationsToWire(in []model.Certification) ([]wire.Certification, error) {
	return convertAll(in, CertificationToWire)
}

func CertificationsFromWire(in []wire.Certification) []model.Certification {
	return mapAll(in, CertificationFromWire)
}

func SocialLinksToWire(in []model.SocialLink) ([]wire.SocialLink, error) {
	return convertAll(in, SocialLinkToWire)
}

func SocialLinksFromWire(in []wire.SocialLink) []model.SocialLink {
	return mapAll(in, SocialLinkFromWire)
}

func CustomSectionsToWire(in []model.CustomSection) ([]wire.CustomSection, error) {
	return convertAll(in, CustomSectionToWire)
}

func CustomSectionsFromWire(in []wire.CustomSection) []model.CustomSection {
	return mapAll(in, CustomSectionFromWire)
}

func CoverLettersToWire(in []model.CoverLetter) ([]wire.CoverLetter, error) {
	return convertAll(in, CoverLetterToWire)
}

func CoverLettersFromWire(in []wire.CoverLetter) []model.CoverLetter {
	return mapAll(in, CoverLetterFromWire)
}

func ResumeToWire(r model.Resume) (wire.Resume, error) {
	var (
		out wire.Resume
		err error
	)
	if r.PersonalInfo != nil {
		out.PersonalInfo = wire.Some(PersonalInfoToWire(*r.PersonalInfo))
	}
	if out.Experiences, err = WorkExperiencesToWire(r.Experiences); err != nil {
		return wire.Resume{}, fmt.Errorf("experiences: %w", err)
	}
	if out.Education, err = EducationListToWire(r.Education); err != nil {
		return wire.Resume{}, fmt.Errorf("education: %w", err)
	}
	if out.Skills, err = SkillsToWire(r.Skills); err != nil {
		return wire.Resume{}, fmt.Errorf("skills: %w", err)
	}
	if out.Certifications, err = CertificationsToWire(r.Certifications); err != nil {
		return wire.Resume{}, fmt.Errorf("certifications: %w", err)
	}
	if out.SocialLinks, err = SocialLinksToWire(r.SocialLinks); err != nil {
		return wire.Resume{}, fmt.Errorf("social links: %w", err)
	}
	if out.CustomSections, err = CustomSectionsToWire(r.CustomSections); err != nil {
		return wire.Resume{}, fmt.Errorf("custom sections: %w", err)
	}
	return out, nil
}

func ResumeFromWire(w wire.Resume) model.Resume {
	r := model.Resume{
		Experiences:    WorkExperiencesFromWire(w.Experiences),
		Education:      EducationListFromWire(w.Education),
		Skills:         SkillsFromWire(w.Skills),
		Certifications: CertificationsFromWire(w.Certifications),
		SocialLinks:    SocialLinksFromWire(w.SocialLinks),
		CustomSections: CustomSectionsFromWire(w.CustomSections),
	}
	if p, ok := w.PersonalInfo.Get(); ok {
		info := PersonalInfoFromWire(p)
		r.PersonalInfo = &info
	}
	return r
}
