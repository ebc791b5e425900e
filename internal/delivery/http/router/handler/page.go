package handler

import (
	"bytes"
	"embed"
	"html/template"

	"kuttyport/internal/mapview"

	"github.com/pkg/errors"
)

//go:embed templates/map_page.html
var pageFS embed.FS

type pageData struct {
	DeliveryID  string
	Version     int64
	TrackingURL string
	View        *mapview.View
}

type pageRenderer struct {
	tmpl *template.Template
}

func newPageRenderer() (*pageRenderer, error) {
	tmpl, err := template.ParseFS(pageFS, "templates/map_page.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse map page template")
	}

	return &pageRenderer{tmpl: tmpl}, nil
}

func (p *pageRenderer) render(data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return nil, errors.WithStack(err)
	}

	return buf.Bytes(), nil
}
