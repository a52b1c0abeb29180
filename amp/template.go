package amp

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"ia2amp/article"
	"ia2amp/config"
	"ia2amp/style"
)

// DateValues are available to date template.
type DateValues struct {
	Published time.Time
	Modified  time.Time
	// Format is Go time layout from style description.
	Format   string
	Title    string
	Language string
}

func expandDate(field string, values DateValues) (string, error) {
	tmpl, err := template.New(string(config.DateTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", config.DateTemplateFieldName, err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// formatDate renders publish date with configured template, plain layout
// formatting is used when template is absent or broken.
func (rc *RenderContext) formatDate(a *article.Article, format string) string {
	if format == "" {
		format = style.DefaultDateFormat
	}
	published := *a.Header.Published
	if strings.TrimSpace(rc.cfg.DateTemplate) == "" {
		return published.Format(format)
	}

	values := DateValues{
		Published: published,
		Format:    format,
		Title:     a.Header.Title.AsPlainText(),
		Language:  a.Language,
	}
	if a.Header.Modified != nil {
		values.Modified = *a.Header.Modified
	}
	text, err := expandDate(rc.cfg.DateTemplate, values)
	if err != nil {
		rc.warn("unable to expand date template", rc.cfg.DateTemplate, err)
		return published.Format(format)
	}
	return text
}
