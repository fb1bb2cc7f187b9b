package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"resumeapi/internal/events"
	"resumeapi/internal/model"
	"resumeapi/internal/render"
	"resumeapi/internal/repository"
	"resumeapi/internal/resumejson"
	"resumeapi/internal/storage"
)

// Sections groups the repositories a resume is assembled from.
type Sections struct {
	PersonalInfo   repository.PersonalInfoRepository
	Experiences    repository.ExperienceRepository
	Education      repository.EducationRepository
	Skills         repository.SkillRepository
	Certifications repository.CertificationRepository
	SocialLinks    repository.SocialLinkRepository
	CustomSections repository.CustomSectionRepository
}

// PDFExport points at a rendered PDF in object storage.
type PDFExport struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ResumeService works on the whole resume at once.
type ResumeService interface {
	Get(ctx context.Context, owner string) (*model.Resume, error)
	Export(ctx context.Context, owner, templateID string) (*model.Document, error)
	// Import replaces every section with the contents of a JSON export.
	Import(ctx context.Context, owner string, raw []byte) (*model.Resume, error)
	Render(ctx context.Context, owner, templateID string) ([]byte, error)
	ExportPDF(ctx context.Context, owner, templateID string) (*PDFExport, error)
}

// ResumeOptions carries the optional collaborators of the resume service.
// Without PDF or Store, ExportPDF returns ErrUnavailable.
type ResumeOptions struct {
	PDF           render.PDFRenderer
	Store         storage.Storage
	PresignExpiry time.Duration
	Events        events.Publisher
}

type resumeService struct {
	sections Sections
	opts     ResumeOptions
}

func NewResumeService(sections Sections, opts ResumeOptions) ResumeService {
	if opts.Events == nil {
		opts.Events = events.Noop{}
	}
	if opts.PresignExpiry <= 0 {
		opts.PresignExpiry = 15 * time.Minute
	}
	return &resumeService{sections: sections, opts: opts}
}

func (s *resumeService) Get(ctx context.Context, owner string) (*model.Resume, error) {
	var r model.Resume
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		info, err := s.sections.PersonalInfo.Get(ctx, owner)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("personal info: %w", err)
		}
		r.PersonalInfo = info
		return nil
	})
	load(g, ctx, "experiences", s.sections.Experiences, owner, &r.Experiences)
	load(g, ctx, "education", s.sections.Education, owner, &r.Education)
	load(g, ctx, "skills", s.sections.Skills, owner, &r.Skills)
	load(g, ctx, "certifications", s.sections.Certifications, owner, &r.Certifications)
	load(g, ctx, "social links", s.sections.SocialLinks, owner, &r.SocialLinks)
	load(g, ctx, "custom sections", s.sections.CustomSections, owner, &r.CustomSections)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &r, nil
}

// load lists one section into dst on the group.
func load[T any](g *errgroup.Group, ctx context.Context, name string, repo repository.Collection[T], owner string, dst *[]T) {
	g.Go(func() error {
		items, err := repo.List(ctx, owner)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = items
		return nil
	})
}

func templateOrDefault(id string) (string, error) {
	if id == "" {
		return render.DefaultTemplate, nil
	}
	if !render.Known(id) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return id, nil
}

func (s *resumeService) Export(ctx context.Context, owner, templateID string) (*model.Document, error) {
	tpl, err := templateOrDefault(templateID)
	if err != nil {
		return nil, err
	}
	r, err := s.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	doc := resumejson.NewDocument(*r, tpl, time.Now())
	return &doc, nil
}

func (s *resumeService) Import(ctx context.Context, owner string, raw []byte) (*model.Resume, error) {
	doc, err := resumejson.Decode(raw)
	if err != nil {
		return nil, invalid(err)
	}
	r := doc.Resume

	if r.PersonalInfo != nil {
		if _, err := s.sections.PersonalInfo.Upsert(ctx, owner, r.PersonalInfo); err != nil {
			return nil, fmt.Errorf("import personal info: %w", err)
		}
	} else if err := s.sections.PersonalInfo.Delete(ctx, owner); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("import personal info: %w", err)
	}

	steps := []func() error{
		replace(ctx, "experiences", s.sections.Experiences, owner, r.Experiences),
		replace(ctx, "education", s.sections.Education, owner, r.Education),
		replace(ctx, "skills", s.sections.Skills, owner, r.Skills),
		replace(ctx, "certifications", s.sections.Certifications, owner, r.Certifications),
		replace(ctx, "social links", s.sections.SocialLinks, owner, r.SocialLinks),
		replace(ctx, "custom sections", s.sections.CustomSections, owner, r.CustomSections),
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	stored, err := s.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	s.opts.Events.Publish(ctx, events.Event{
		Type:       events.ResumeImported,
		Owner:      owner,
		OccurredAt: time.Now().UTC(),
		Data: map[string]any{
			"experiences": len(stored.Experiences),
			"skills":      len(stored.Skills),
		},
	})
	return stored, nil
}

func replace[T any](ctx context.Context, name string, repo repository.Collection[T], owner string, items []T) func() error {
	return func() error {
		if items == nil {
			items = []T{}
		}
		if _, err := repo.ReplaceAll(ctx, owner, items); err != nil {
			return fmt.Errorf("import %s: %w", name, err)
		}
		return nil
	}
}

func (s *resumeService) Render(ctx context.Context, owner, templateID string) ([]byte, error) {
	tpl, err := templateOrDefault(templateID)
	if err != nil {
		return nil, err
	}
	r, err := s.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	return render.HTML(tpl, *r)
}

func (s *resumeService) ExportPDF(ctx context.Context, owner, templateID string) (*PDFExport, error) {
	if s.opts.PDF == nil || s.opts.Store == nil {
		return nil, ErrUnavailable
	}
	tpl, err := templateOrDefault(templateID)
	if err != nil {
		return nil, err
	}
	html, err := s.Render(ctx, owner, tpl)
	if err != nil {
		return nil, err
	}
	pdf, err := s.opts.PDF.PDF(ctx, html)
	if err != nil {
		return nil, err
	}

	key := storage.ExportKey(owner, tpl, "pdf")
	info, err := s.opts.Store.Put(ctx, key, bytes.NewReader(pdf), storage.PutObjectOptions{
		Size:        int64(len(pdf)),
		ContentType: "application/pdf",
		Metadata:    map[string]string{"template": tpl},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	url, err := s.opts.Store.PresignGet(ctx, info.Key, s.opts.PresignExpiry)
	if err != nil {
		if delErr := s.opts.Store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}
	return &PDFExport{
		Key:       info.Key,
		URL:       url,
		Size:      info.Size,
		ExpiresAt: time.Now().UTC().Add(s.opts.PresignExpiry),
	}, nil
}
