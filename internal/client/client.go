// Package client is a typed HTTP client for the resume API. It decodes the
// ok/err response discriminant and converts wire records to plain models.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"resumeapi/internal/adapter"
	"resumeapi/internal/model"
	"resumeapi/internal/wire"
)

// ErrRemote reports a call that never produced an API answer: the
// connection failed or the body was not a response envelope.
var ErrRemote = errors.New("remote call failed")

// RemoteError is the err arm of an API response.
type RemoteError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Client calls one API server on behalf of one owner token.
type Client struct {
	http *resty.Client

	Experiences    Section[model.WorkExperience, wire.WorkExperience]
	Education      Section[model.Education, wire.Education]
	Skills         Section[model.Skill, wire.Skill]
	Certifications Section[model.Certification, wire.Certification]
	SocialLinks    Section[model.SocialLink, wire.SocialLink]
	CustomSections Section[model.CustomSection, wire.CustomSection]
	CoverLetters   Section[model.CoverLetter, wire.CoverLetter]
}

// New returns a client for baseURL. An empty token sends no Authorization header.
func New(baseURL, token string) *Client {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   30 * time.Second,
	}
	rc := resty.NewWithClient(httpClient).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")
	if token != "" {
		rc.SetAuthToken(token)
	}

	c := &Client{http: rc}
	c.Experiences = newSection(c, "/experiences", adapter.WorkExperienceToWire, adapter.WorkExperienceFromWire)
	c.Education = newSection(c, "/education", adapter.EducationToWire, adapter.EducationFromWire)
	c.Skills = newSection(c, "/skills", adapter.SkillToWire, adapter.SkillFromWire)
	c.Certifications = newSection(c, "/certifications", adapter.CertificationToWire, adapter.CertificationFromWire)
	c.SocialLinks = newSection(c, "/social-links", adapter.SocialLinkToWire, adapter.SocialLinkFromWire)
	c.CustomSections = newSection(c, "/custom-sections", adapter.CustomSectionToWire, adapter.CustomSectionFromWire)
	c.CoverLetters = newSection(c, "/cover-letters", adapter.CoverLetterToWire, adapter.CoverLetterFromWire)
	return c
}

const apiPrefix = "/api/v1"

// send performs one call and returns the raw response after mapping
// transport failures and error envelopes.
func (c *Client) send(ctx context.Context, method, path string, body any) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrRemote, method, path, err)
	}
	if resp.IsError() {
		return nil, remoteError(resp)
	}
	return resp, nil
}

func remoteError(resp *resty.Response) error {
	body := resp.Body()
	code := gjson.GetBytes(body, "err.code")
	if !code.Exists() {
		return fmt.Errorf("%w: unexpected status %s", ErrRemote, resp.Status())
	}
	return &RemoteError{
		Status:    resp.StatusCode(),
		Code:      code.String(),
		Message:   gjson.GetBytes(body, "err.message").String(),
		RequestID: gjson.GetBytes(body, "request_id").String(),
	}
}

// call decodes the ok arm of the response into T.
func call[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return zero, err
	}
	var env wire.Result[T]
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return zero, fmt.Errorf("%w: malformed response: %v", ErrRemote, err)
	}
	if env.Err != nil {
		return zero, &RemoteError{Status: resp.StatusCode(), Code: env.Err.Code, Message: env.Err.Message, RequestID: env.RequestID}
	}
	if env.Ok == nil {
		return zero, fmt.Errorf("%w: response has neither ok nor err", ErrRemote)
	}
	return *env.Ok, nil
}

func (c *Client) Resume(ctx context.Context) (model.Resume, error) {
	w, err := call[wire.Resume](ctx, c, http.MethodGet, apiPrefix+"/resume", nil)
	if err != nil {
		return model.Resume{}, err
	}
	return adapter.ResumeFromWire(w), nil
}

func (c *Client) PersonalInfo(ctx context.Context) (model.PersonalInfo, error) {
	w, err := call[wire.PersonalInfo](ctx, c, http.MethodGet, apiPrefix+"/personal-info", nil)
	if err != nil {
		return model.PersonalInfo{}, err
	}
	return adapter.PersonalInfoFromWire(w), nil
}

func (c *Client) SavePersonalInfo(ctx context.Context, info model.PersonalInfo) (model.PersonalInfo, error) {
	w, err := call[wire.PersonalInfo](ctx, c, http.MethodPut, apiPrefix+"/personal-info", adapter.PersonalInfoToWire(info))
	if err != nil {
		return model.PersonalInfo{}, err
	}
	return adapter.PersonalInfoFromWire(w), nil
}

// Export fetches the JSON export document. An empty template uses the server default.
func (c *Client) Export(ctx context.Context, template string) (model.Document, error) {
	path := apiPrefix + "/resume/export"
	if template != "" {
		path += "?template=" + url.QueryEscape(template)
	}
	return call[model.Document](ctx, c, http.MethodGet, path, nil)
}

// Import uploads an export document, replacing the stored resume.
func (c *Client) Import(ctx context.Context, raw []byte) (model.Resume, error) {
	w, err := call[wire.Resume](ctx, c, http.MethodPost, apiPrefix+"/resume/import", raw)
	if err != nil {
		return model.Resume{}, err
	}
	return adapter.ResumeFromWire(w), nil
}

// Render returns the resume as HTML.
func (c *Client) Render(ctx context.Context, template string) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, apiPrefix+"/resume/render/"+url.PathEscape(template), nil)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// PDFExport points at a rendered PDF.
type PDFExport struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (c *Client) ExportPDF(ctx context.Context, template string) (PDFExport, error) {
	return call[PDFExport](ctx, c, http.MethodPost, apiPrefix+"/resume/pdf/"+url.PathEscape(template), nil)
}

func (c *Client) CheckPath(ctx context.Context, path string) (model.PathAvailability, error) {
	return call[model.PathAvailability](ctx, c, http.MethodGet, apiPrefix+"/links/check/"+url.PathEscape(path), nil)
}

func (c *Client) SuggestPath(ctx context.Context, seed string) (string, error) {
	out, err := call[struct {
		Path string `json:"path"`
	}](ctx, c, http.MethodGet, apiPrefix+"/links/suggest?seed="+url.QueryEscape(seed), nil)
	return out.Path, err
}

func (c *Client) CreateLink(ctx context.Context, req model.CreateLinkRequest) (model.ResumeLink, error) {
	w, err := call[wire.ResumeLink](ctx, c, http.MethodPost, apiPrefix+"/links", req)
	if err != nil {
		return model.ResumeLink{}, err
	}
	return adapter.ResumeLinkFromWire(w), nil
}

func (c *Client) Links(ctx context.Context) ([]model.ResumeLink, error) {
	w, err := call[[]wire.ResumeLink](ctx, c, http.MethodGet, apiPrefix+"/links", nil)
	if err != nil {
		return nil, err
	}
	return adapter.ResumeLinksFromWire(w), nil
}

func (c *Client) AnalyzeATS(ctx context.Context, jobDescription string) (model.ATSReport, error) {
	w, err := call[wire.ATSReport](ctx, c, http.MethodPost, apiPrefix+"/ats/analyze", model.AnalyzeRequest{JobDescription: jobDescription})
	if err != nil {
		return model.ATSReport{}, err
	}
	return adapter.ATSReportFromWire(w), nil
}

func (c *Client) ScoreResume(ctx context.Context) (model.ScoreReport, error) {
	w, err := call[wire.ScoreReport](ctx, c, http.MethodPost, apiPrefix+"/score", nil)
	if err != nil {
		return model.ScoreReport{}, err
	}
	return adapter.ScoreReportFromWire(w), nil
}
