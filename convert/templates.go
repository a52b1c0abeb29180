package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"ia2amp/article"
	"ia2amp/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	ID         string
	Title      string
	Kicker     string
	Style      string
	Language   string
	Date       string
	Authors    []string
	SourceFile string
}

func buildDate(a *article.Article) string {
	if a.Header.Published == nil {
		return ""
	}
	return a.Header.Published.Format("2006-01-02")
}

func buildAuthors(authors []article.Author) []string {
	result := make([]string, 0, len(authors))
	for _, a := range authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			result = append(result, name)
		}
	}
	return result
}

func expandTemplate(a *article.Article, src string, name config.TemplateFieldName, field string) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		ID:         a.ID,
		Title:      a.Header.Title.AsPlainText(),
		Kicker:     a.Header.Kicker.AsPlainText(),
		Style:      a.StyleName(),
		Language:   a.Language,
		Date:       buildDate(a),
		Authors:    buildAuthors(a.Header.Authors),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
