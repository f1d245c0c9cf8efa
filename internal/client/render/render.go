// Package render turns view models into HTML fragments or terminal text
// using templates embedded in the binary.
package render

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	texttemplate "text/template"
)

//go:embed templates
var templates embed.FS

// Template names shared by both renderers.
const (
	Result     = "result"
	ScanList   = "scans"
	ScanDetail = "scan"
	Welcome    = "welcome"
	Nav        = "nav"
	Message    = "message"
)

const (
	FormatText = "text"
	FormatHTML = "html"
)

type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

var funcs = map[string]any{
	"join":  strings.Join,
	"upper": strings.ToUpper,
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

type HTML struct {
	t *htmltemplate.Template
}

func NewHTML() (*HTML, error) {
	t, err := htmltemplate.New("html").Funcs(funcs).ParseFS(templates, "templates/html/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	return &HTML{t: t}, nil
}

func (h *HTML) Render(w io.Writer, name string, data any) error {
	return h.t.ExecuteTemplate(w, name, data)
}

type Text struct {
	t *texttemplate.Template
}

func NewText() (*Text, error) {
	t, err := texttemplate.New("text").Funcs(funcs).ParseFS(templates, "templates/text/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &Text{t: t}, nil
}

func (x *Text) Render(w io.Writer, name string, data any) error {
	return x.t.ExecuteTemplate(w, name, data)
}

// New returns the renderer for an output format.
func New(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return NewText()
	case FormatHTML:
		return NewHTML()
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// String renders into a string.
func String(r Renderer, name string, data any) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb, name, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
