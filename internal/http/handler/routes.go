package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/adapter"
	"resumeapi/internal/http/middleware"
	"resumeapi/internal/model"
	"resumeapi/internal/service"
	"resumeapi/internal/wire"
)

// Services groups the domain services behind the HTTP surface.
type Services struct {
	PersonalInfo   service.PersonalInfoService
	Experiences    service.ExperienceService
	Education      service.EducationService
	Skills         service.SkillService
	Certifications service.CertificationService
	SocialLinks    service.SocialLinkService
	CustomSections service.CustomSectionService
	CoverLetters   service.CoverLetterService
	Resume         service.ResumeService
	Links          service.LinkService
	Scoring        service.ScoringService
	Assessments    service.AssessmentService
	Analytics      service.AnalyticsService
	Privacy        service.PrivacyService
}

// Options configures authentication and rate limiting of the API routes.
type Options struct {
	Verifier middleware.TokenVerifier
	// Issuer mounts POST /auth/token when set.
	Issuer     TokenIssuer
	RateMax    int
	RateWindow time.Duration
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services, opts Options) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/templates", ListTemplates())
	if opts.Issuer != nil {
		app.Post("/auth/token", IssueToken(opts.Issuer))
	}

	links := linkHandlers{links: svc.Links}
	app.Get("/r/:path", links.resolve)
	app.Get("/r/:path/html", links.renderShared)

	api := app.Group("/api/v1", middleware.RequireOwner(opts.Verifier))
	limited := middleware.RateLimiter(opts.RateMax, opts.RateWindow)

	res := resumeHandlers{
		personal:    svc.PersonalInfo,
		resumes:     svc.Resume,
		experiences: svc.Experiences,
		letters:     svc.CoverLetters,
	}
	api.Get("/personal-info", res.getPersonalInfo)
	api.Put("/personal-info", res.savePersonalInfo)

	api.Post("/experiences/generate-description", limited, res.generateDescription)
	registerSection(api, "/experiences", svc.Experiences, codec[model.WorkExperience, wire.WorkExperience]{adapter.WorkExperienceToWire, adapter.WorkExperienceFromWire})
	registerSection(api, "/education", svc.Education, codec[model.Education, wire.Education]{adapter.EducationToWire, adapter.EducationFromWire})
	registerSection(api, "/skills", svc.Skills, codec[model.Skill, wire.Skill]{adapter.SkillToWire, adapter.SkillFromWire})
	registerSection(api, "/certifications", svc.Certifications, codec[model.Certification, wire.Certification]{adapter.CertificationToWire, adapter.CertificationFromWire})
	registerSection(api, "/social-links", svc.SocialLinks, codec[model.SocialLink, wire.SocialLink]{adapter.SocialLinkToWire, adapter.SocialLinkFromWire})
	registerSection(api, "/custom-sections", svc.CustomSections, codec[model.CustomSection, wire.CustomSection]{adapter.CustomSectionToWire, adapter.CustomSectionFromWire})
	api.Post("/cover-letters/generate", limited, res.generateCoverLetter)
	registerSection(api, "/cover-letters", svc.CoverLetters, codec[model.CoverLetter, wire.CoverLetter]{adapter.CoverLetterToWire, adapter.CoverLetterFromWire})

	api.Get("/resume", res.getResume)
	api.Get("/resume/export", res.exportResume)
	api.Post("/resume/import", res.importResume)
	api.Get("/resume/render/:template", res.renderResume)
	api.Post("/resume/pdf/:template", res.exportPDF)

	api.Get("/links", links.list)
	api.Post("/links", links.create)
	api.Get("/links/check/:path", limited, links.check)
	api.Get("/links/suggest", limited, links.suggest)
	api.Delete("/links/:id", links.delete)

	rep := reportHandlers{
		scoring:     svc.Scoring,
		assessments: svc.Assessments,
		analytics:   svc.Analytics,
		privacy:     svc.Privacy,
	}
	api.Post("/ats/analyze", rep.analyzeATS)
	api.Get("/ats/reports", rep.atsReports)
	api.Post("/score", rep.score)
	api.Get("/score/reports", rep.scoreReports)
	api.Get("/assessments/categories", rep.categories)
	api.Get("/assessments/results", rep.results)
	api.Get("/assessments/:category/questions", rep.questions)
	api.Post("/assessments/:category/submit", rep.submit)
	api.Get("/analytics/dashboard", rep.dashboard)
	api.Get("/privacy", rep.getPrivacy)
	api.Put("/privacy", rep.updatePrivacy)
}
