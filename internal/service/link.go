package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resumeapi/internal/events"
	"resumeapi/internal/metrics"
	"resumeapi/internal/model"
	"resumeapi/internal/render"
	"resumeapi/internal/repository"
)

// Path length bounds for shareable links.
const (
	MinPathLen = 3
	MaxPathLen = 100
)

// suggestAttempts bounds how many suffixed candidates Suggest tries.
const suggestAttempts = 5

// ValidatePath accepts 3 to 100 ASCII letters or digits.
func ValidatePath(path string) error {
	if len(path) < MinPathLen || len(path) > MaxPathLen {
		return ErrInvalidPath
	}
	for _, r := range path {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return ErrInvalidPath
		}
	}
	return nil
}

// LinkService manages shareable resume links and serves them to visitors.
type LinkService interface {
	CheckAvailability(ctx context.Context, path string) (*model.PathAvailability, error)
	Create(ctx context.Context, owner string, req model.CreateLinkRequest) (*model.ResumeLink, error)
	List(ctx context.Context, owner string) ([]model.ResumeLink, error)
	Delete(ctx context.Context, owner, id string) error
	// Resolve is the public lookup of a link. It counts a view unless the
	// owner disabled analytics.
	Resolve(ctx context.Context, path, password string) (*model.SharedResume, error)
	// RenderShared resolves a link and renders it with templateID, or with
	// the link's own template when templateID is empty.
	RenderShared(ctx context.Context, path, password, templateID string) ([]byte, error)
	// Suggest derives an available path from seed.
	Suggest(ctx context.Context, seed string) (string, error)
}

// LinkOptions configures the link service.
type LinkOptions struct {
	PublicBaseURL string
	BcryptCost    int
	Events        events.Publisher
	Metrics       *metrics.Metrics
	Now           func() time.Time
}

type linkService struct {
	repo    repository.LinkRepository
	privacy PrivacyService
	resumes ResumeReader
	opts    LinkOptions
}

func NewLinkService(repo repository.LinkRepository, privacy PrivacyService, resumes ResumeReader, opts LinkOptions) LinkService {
	if opts.Events == nil {
		opts.Events = events.Noop{}
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.PublicBaseURL = strings.TrimRight(opts.PublicBaseURL, "/")
	return &linkService{repo: repo, privacy: privacy, resumes: resumes, opts: opts}
}

func (s *linkService) withURL(l *model.ResumeLink) *model.ResumeLink {
	l.URL = s.opts.PublicBaseURL + "/r/" + l.Path
	return l
}

func (s *linkService) CheckAvailability(ctx context.Context, path string) (*model.PathAvailability, error) {
	out := &model.PathAvailability{Path: path}
	if err := ValidatePath(path); err != nil {
		out.Reason = err.Error()
		return out, nil
	}
	out.Valid = true

	taken, err := s.repo.PathExists(ctx, path)
	if err != nil {
		return nil, err
	}
	out.Available = !taken
	if taken {
		out.Reason = ErrPathTaken.Error()
	}
	return out, nil
}

func (s *linkService) Create(ctx context.Context, owner string, req model.CreateLinkRequest) (*model.ResumeLink, error) {
	if err := ValidatePath(req.Path); err != nil {
		return nil, err
	}
	if err := model.Validate(&req); err != nil {
		return nil, invalid(err)
	}

	taken, err := s.repo.PathExists(ctx, req.Path)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPathTaken
	}

	link := &model.ResumeLink{
		Path:     req.Path,
		Template: req.Template,
		Active:   true,
	}
	if link.Template == "" {
		link.Template = render.DefaultTemplate
	}

	days := req.ExpiresInDays
	if days == 0 {
		settings, err := s.privacy.Get(ctx, owner)
		if err != nil {
			return nil, fmt.Errorf("load privacy settings: %w", err)
		}
		days = settings.DefaultLinkExpiryDays
	}
	if days > 0 {
		exp := s.opts.Now().UTC().AddDate(0, 0, days)
		link.ExpiresAt = &exp
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.opts.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash link password: %w", err)
		}
		link.PasswordHash = string(hash)
	}

	stored, err := s.repo.Create(ctx, owner, link)
	if errors.Is(err, repository.ErrConflict) {
		return nil, ErrPathTaken
	}
	if err != nil {
		return nil, err
	}

	s.opts.Events.Publish(ctx, events.Event{
		Type:       events.LinkCreated,
		Owner:      owner,
		OccurredAt: s.opts.Now().UTC(),
		Data:       map[string]any{"path": stored.Path, "template": stored.Template},
	})
	return s.withURL(stored), nil
}

func (s *linkService) List(ctx context.Context, owner string) ([]model.ResumeLink, error) {
	links, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	for i := range links {
		s.withURL(&links[i])
	}
	return links, nil
}

func (s *linkService) Delete(ctx context.Context, owner, id string) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}
	return notFound(s.repo.Delete(ctx, owner, n))
}

func (s *linkService) Resolve(ctx context.Context, path, password string) (*model.SharedResume, error) {
	if err := ValidatePath(path); err != nil {
		return nil, ErrNotFound
	}
	link, owner, err := s.repo.FindByPath(ctx, path)
	if err != nil {
		return nil, notFound(err)
	}
	if !link.Active {
		return nil, ErrNotFound
	}

	// A private owner's links answer 404 before expiry or password checks.
	settings, err := s.privacy.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("load privacy settings: %w", err)
	}
	if !settings.PublicProfile {
		return nil, ErrNotFound
	}

	if link.Expired(s.opts.Now()) {
		return nil, ErrLinkExpired
	}
	if link.PasswordHash != "" {
		if password == "" {
			return nil, ErrPasswordRequired
		}
		if bcrypt.CompareHashAndPassword([]byte(link.PasswordHash), []byte(password)) != nil {
			return nil, ErrForbidden
		}
	}

	r, err := s.resumes.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	shared := *r
	if !settings.ShowContact && shared.PersonalInfo != nil {
		info := *shared.PersonalInfo
		info.Email, info.Phone = "", ""
		shared.PersonalInfo = &info
	}

	if settings.AllowAnalytics {
		id, _ := parseID(link.ID)
		if err := s.repo.IncrementViews(ctx, id); err != nil {
			return nil, fmt.Errorf("count view: %w", err)
		}
		s.opts.Metrics.LinkViewed(link.Template)
		s.opts.Events.Publish(ctx, events.Event{
			Type:       events.LinkViewed,
			Owner:      owner,
			OccurredAt: s.opts.Now().UTC(),
			Data:       map[string]any{"path": link.Path, "views": link.Views + 1},
		})
	}

	return &model.SharedResume{Path: link.Path, Template: link.Template, Resume: shared}, nil
}

func (s *linkService) RenderShared(ctx context.Context, path, password, templateID string) ([]byte, error) {
	shared, err := s.Resolve(ctx, path, password)
	if err != nil {
		return nil, err
	}
	if templateID == "" {
		templateID = shared.Template
	}
	tpl, err := templateOrDefault(templateID)
	if err != nil {
		return nil, err
	}
	return render.HTML(tpl, shared.Resume)
}

func (s *linkService) Suggest(ctx context.Context, seed string) (string, error) {
	base := slug(seed)

	candidate := base
	for i := 0; i < suggestAttempts; i++ {
		taken, err := s.repo.PathExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
		candidate = base + suffix
	}
	return "", ErrPathTaken
}

// slug keeps the letters and digits of seed, lower-cased, padded to the
// minimum length and cut to leave room for a suffix.
func slug(seed string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(seed) {
		if r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if len(s) < MinPathLen {
		s += "resume"
	}
	if limit := MaxPathLen - 6; len(s) > limit {
		s = s[:limit]
	}
	return s
}
