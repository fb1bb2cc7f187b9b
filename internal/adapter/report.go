package adapter

import (
	"resumeapi/internal/model"
	"resumeapi/internal/wire"
)

func ResumeLinkToWire(l model.ResumeLink) (wire.ResumeLink, error) {
	id, err := ParseID(l.ID)
	if err != nil {
		return wire.ResumeLink{}, err
	}
	return wire.ResumeLink{
		ID:                id,
		Path:              l.Path,
		URL:               l.URL,
		Template:          l.Template,
		Active:            l.Active,
		ExpiresAt:         timePtrToWire(l.ExpiresAt),
		Views:             wire.Nat(max(l.Views, 0)),
		PasswordProtected: l.PasswordProtected,
		CreatedAt:         wire.FromTime(l.CreatedAt),
	}, nil
}

func ResumeLinkFromWire(w wire.ResumeLink) model.ResumeLink {
	return model.ResumeLink{
		ID:                FormatID(w.ID),
		Path:              w.Path,
		URL:               w.URL,
		Template:          w.Template,
		Active:            w.Active,
		ExpiresAt:         timePtrFromWire(w.ExpiresAt),
		Views:             int64(w.Views),
		PasswordProtected: w.PasswordProtected,
		CreatedAt:         w.CreatedAt.Time(),
	}
}

func categoriesToWire(in []model.CategoryScore) []wire.CategoryScore {
	out := make([]wire.CategoryScore, 0, len(in))
	for _, c := range in {
		out = append(out, wire.CategoryScore{Name: c.Name, Score: toNat(c.Score), Max: toNat(c.Max)})
	}
	return out
}

func categoriesFromWire(in []wire.CategoryScore) []model.CategoryScore {
	out := make([]model.CategoryScore, 0, len(in))
	for _, c := range in {
		out = append(out, model.CategoryScore{Name: c.Name, Score: toInt(c.Score), Max: toInt(c.Max)})
	}
	return out
}

func ATSReportToWire(r model.ATSReport) (wire.ATSReport, error) {
	id, err := ParseID(r.ID)
	if err != nil {
		return wire.ATSReport{}, err
	}
	return wire.ATSReport{
		ID:              id,
		Total:           toNat(r.Total),
		Label:           r.Label,
		Categories:      categoriesToWire(r.Categories),
		MatchedKeywords: nonNil(r.MatchedKeywords),
		MissingKeywords: nonNil(r.MissingKeywords),
		Suggestions:     nonNil(r.Suggestions),
		CreatedAt:       wire.FromTime(r.CreatedAt),
	}, nil
}

func ATSReportFromWire(w wire.ATSReport) model.ATSReport {
	return model.ATSReport{
		ID:              FormatID(w.ID),
		Total:           toInt(w.Total),
		Label:           w.Label,
		Categories:      categoriesFromWire(w.Categories),
		MatchedKeywords: nonNil(w.MatchedKeywords),
		MissingKeywords: nonNil(w.MissingKeywords),
		Suggestions:     nonNil(w.Suggestions),
		CreatedAt:       w.CreatedAt.Time(),
	}
}

func ScoreReportToWire(r model.ScoreReport) (wire.ScoreReport, error) {
	id, err := ParseID(r.ID)
	if err != nil {
		return wire.ScoreReport{}, err
	}
	return wire.ScoreReport{
		ID:          id,
		Total:       toNat(r.Total),
		Label:       r.Label,
		Categories:  categoriesToWire(r.Categories),
		Suggestions: nonNil(r.Suggestions),
		CreatedAt:   wire.FromTime(r.CreatedAt),
	}, nil
}

func ScoreReportFromWire(w wire.ScoreReport) model.ScoreReport {
	return model.ScoreReport{
		ID:          FormatID(w.ID),
		Total:       toInt(w.Total),
		Label:       w.Label,
		Categories:  categoriesFromWire(w.Categories),
		Suggestions: nonNil(w.Suggestions),
		CreatedAt:   w.CreatedAt.Time(),
	}
}

func AssessmentResultToWire(r model.AssessmentResult) (wire.AssessmentResult, error) {
	id, err := ParseID(r.ID)
	if err != nil {
		return wire.AssessmentResult{}, err
	}
	return wire.AssessmentResult{
		ID:        id,
		Category:  r.Category,
		Correct:   toNat(r.Correct),
		Total:     toNat(r.Total),
		Score:     toNat(r.Score),
		Label:     r.Label,
		CreatedAt: wire.FromTime(r.CreatedAt),
	}, nil
}

func AssessmentResultFromWire(w wire.AssessmentResult) model.AssessmentResult {
	return model.AssessmentResult{
		ID:        FormatID(w.ID),
		Category:  w.Category,
		Correct:   toInt(w.Correct),
		Total:     toInt(w.Total),
		Score:     toInt(w.Score),
		Label:     w.Label,
		CreatedAt: w.CreatedAt.Time(),
	}
}

func PrivacyToWire(p model.PrivacySettings) wire.PrivacySettings {
	return wire.PrivacySettings{
		PublicProfile:         p.PublicProfile,
		ShowContact:           p.ShowContact,
		AllowAnalytics:        p.AllowAnalytics,
		DefaultLinkExpiryDays: wire.FromZero(toNat(p.DefaultLinkExpiryDays)),
	}
}

func PrivacyFromWire(w wire.PrivacySettings) model.PrivacySettings {
	return model.PrivacySettings{
		PublicProfile:         w.PublicProfile,
		ShowContact:           w.ShowContact,
		AllowAnalytics:        w.AllowAnalytics,
		DefaultLinkExpiryDays: toInt(w.DefaultLinkExpiryDays.OrZero()),
	}
}

func ResumeLinksFromWire(in []wire.ResumeLink) []model.ResumeLink {
	return mapAll(in, ResumeLinkFromWire)
}

func ResumeLinksToWire(in []model.ResumeLink) ([]wire.ResumeLink, error) {
	return convertAll(in, ResumeLinkToWire)
}

func ATSReportsToWire(in []model.ATSReport) ([]wire.ATSReport, error) {
	return convertAll(in, ATSReportToWire)
}

func ATSReportsFromWire(in []wire.ATSReport) []model.ATSReport {
	return mapAll(in, ATSReportFromWire)
}

func ScoreReportsToWire(in []model.ScoreReport) ([]wire.ScoreReport, error) {
	return convertAll(in, ScoreReportToWire)
}

func ScoreReportsFromWire(in []wire.ScoreReport) []model.ScoreReport {
	return mapAll(in, ScoreReportFromWire)
}

func AssessmentResultsToWire(in []model.AssessmentResult) ([]wire.AssessmentResult, error) {
	return convertAll(in, AssessmentResultToWire)
}

func AssessmentResultsFromWire(in []wire.AssessmentResult) []model.AssessmentResult {
	return mapAll(in, AssessmentResultFromWire)
}
