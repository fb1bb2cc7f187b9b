// Package resumejson reads and writes the resume export document.
package resumejson

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"resumeapi/internal/model"
)

//go:embed document.schema.json
var schemaJSON string

var schema = mustSchema()

func mustSchema() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("resumejson: invalid embedded schema: %v", err))
	}
	return s
}

// Validate checks raw JSON against the document schema. Schema violations
// are returned as *model.ValidationError.
func Validate(raw []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &model.ValidationError{Errors: make([]model.FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, model.FieldError{
			Field:   fieldName(desc),
			Rule:    desc.Type(),
			Message: desc.Description(),
		})
	}
	return verr
}

// fieldName joins the error context and, for missing properties, the
// property name: "resume.skills.0.level".
func fieldName(desc gojsonschema.ResultError) string {
	path := strings.TrimPrefix(desc.Context().String(), "(root)")
	path = strings.TrimPrefix(path, ".")
	if prop, ok := desc.Details()["property"].(string); ok && prop != "" {
		if path == "" {
			return prop
		}
		return path + "." + prop
	}
	if path == "" {
		return "(root)"
	}
	return path
}

// Decode validates raw against the schema and the record rules and returns
// the document. Backend ids are dropped: an imported document always
// creates new records.
func Decode(raw []byte) (model.Document, error) {
	if err := Validate(raw); err != nil {
		return model.Document{}, err
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Document{}, fmt.Errorf("decode document: %w", err)
	}
	if err := model.Validate(&doc.Resume); err != nil {
		return model.Document{}, err
	}
	StripIDs(&doc.Resume)
	return doc, nil
}

// Encode wraps a resume in an export document.
func Encode(r model.Resume, template string, now time.Time) ([]byte, error) {
	return json.MarshalIndent(NewDocument(r, template, now), "", "  ")
}

func NewDocument(r model.Resume, template string, now time.Time) model.Document {
	return model.Document{
		Version:    model.DocumentVersion,
		ExportedAt: now.UTC(),
		Template:   template,
		Resume:     r,
	}
}

// StripIDs clears backend and client ids from every section record.
func StripIDs(r *model.Resume) {
	for i := range r.Experiences {
		r.Experiences[i].ID, r.Experiences[i].ClientID = "", ""
	}
	for i := range r.Education {
		r.Education[i].ID, r.Education[i].ClientID = "", ""
	}
	for i := range r.Skills {
		r.Skills[i].ID, r.Skills[i].ClientID = "", ""
	}
	for i := range r.Certifications {
		r.Certifications[i].ID, r.Certifications[i].ClientID = "", ""
	}
	for i := range r.SocialLinks {
		r.SocialLinks[i].ID, r.SocialLinks[i].ClientID = "", ""
	}
	for i := range r.CustomSections {
		r.CustomSections[i].ID, r.CustomSections[i].ClientID = "", ""
	}
}
