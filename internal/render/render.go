// Package render turns a resume into HTML with one of the built-in templates
// and prints that HTML to PDF.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"sort"
	"strings"
	"time"

	"resumeapi/internal/model"
)

// Template ids.
const (
	Minimal      = "minimal"
	Modern       = "modern"
	Professional = "professional"
)

// DefaultTemplate is used when a link or request names none.
const DefaultTemplate = Modern

//go:embed templates/*.html
var templateFS embed.FS

var templates = mustParse()

var funcs = template.FuncMap{
	"date":   FormatDate,
	"period": Period,
	"level":  levelPercent,
	"title":  levelTitle,
	"join":   strings.Join,
}

func mustParse() map[string]*template.Template {
	out := map[string]*template.Template{}
	for _, id := range []string{Minimal, Modern, Professional} {
		t := template.Must(template.New(id+".html").Funcs(funcs).
			ParseFS(templateFS, "templates/base.html", "templates/"+id+".html"))
		out[id] = t
	}
	return out
}

// Templates lists the available template ids.
func Templates() []string {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Known reports whether id names a template.
func Known(id string) bool {
	_, ok := templates[id]
	return ok
}

// Render writes the resume as a standalone HTML page.
func Render(w io.Writer, templateID string, r model.Resume) error {
	t, ok := templates[templateID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, templateID)
	}
	if err := t.ExecuteTemplate(w, templateID+".html", r); err != nil {
		return &RenderError{Message: "failed to execute template " + templateID, Cause: err}
	}
	return nil
}

// HTML renders into memory.
func HTML(templateID string, r model.Resume) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, templateID, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatDate renders YYYY-MM and YYYY-MM-DD as "Jan 2006". Anything else is
// returned unchanged.
func FormatDate(s string) string {
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return s
}

// Period renders "start - end", using "Present" for current positions.
func Period(start, end string, current bool) string {
	to := FormatDate(end)
	if current {
		to = "Present"
	}
	from := FormatDate(start)
	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return to
	case to == "":
		return from
	}
	return from + " - " + to
}

func levelPercent(level string) int {
	for i, l := range model.SkillLevels {
		if l == level {
			return (i + 1) * 100 / len(model.SkillLevels)
		}
	}
	return 0
}

func levelTitle(level string) string {
	if level == "" {
		return ""
	}
	return strings.ToUpper(level[:1]) + level[1:]
}
