// Package assets keeps track of the stylesheets that rendered templates
// depend on, so page composition can emit each one exactly once.
package assets

import (
	"bytes"
	"context"
	"html/template"
	"path"
	"strings"

	apperrors "privatemsg/pkg/errors"
	"privatemsg/pkg/logger"
)

var log = logger.Named("assets")

// Registrar is the capability templates use to declare their stylesheet.
// Register must be idempotent: registering the same path twice has the
// same effect as registering it once.
type Registrar interface {
	Register(ctx context.Context, path string) error
}

// Registry is a Registrar that can also list what has been registered, in
// first-registration order.
type Registry interface {
	Registrar
	Paths(ctx context.Context) ([]string, error)
}

// StylesheetPath builds the module-relative location of a stylesheet,
// e.g. StylesheetPath("privatemsg", "privatemsg-view") is
// "privatemsg/styles/privatemsg-view.css".
func StylesheetPath(module, name string) string {
	return path.Join(module, "styles", name+".css")
}

var linkTmpl = template.Must(template.New("links").Parse(
	`{{range .}}<link rel="stylesheet" href="{{.}}">
{{end}}`))

// StylesheetLinks renders one <link> tag per distinct path, prefixed with
// baseURL.
func StylesheetLinks(paths []string, baseURL string) (template.HTML, error) {
	base := strings.TrimRight(baseURL, "/")
	seen := make(map[string]struct{}, len(paths))
	hrefs := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		hrefs = append(hrefs, base+"/"+strings.TrimLeft(p, "/"))
	}

	var buf bytes.Buffer
	if err := linkTmpl.Execute(&buf, hrefs); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func validatePath(p string) error {
	if strings.TrimSpace(p) == "" {
		return apperrors.New(apperrors.ErrValidation, "stylesheet path is empty")
	}
	return nil
}
