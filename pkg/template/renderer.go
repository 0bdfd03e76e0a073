package template

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"privatemsg/assets"
	"privatemsg/pkg/logger"
)

const (
	DefaultModule  = "privatemsg"
	DefaultVariant = "privatemsg-view"
)

//go:embed templates/cards/*.html templates/layout.html
var builtin embed.FS

var log = logger.Named("template")

// Options control where card templates come from.
type Options struct {
	// Module is the module path stylesheets are resolved against.
	Module string
	// OverrideDir, when set, is scanned for *.html card templates. Each file
	// becomes a variant named after its base name and replaces a built-in
	// variant of the same name.
	OverrideDir string
}

type variant struct {
	tmpl       *template.Template
	stylesheet string
}

// Renderer renders message cards. It is safe for concurrent use; the parsed
// templates are never modified after NewRenderer returns.
type Renderer struct {
	module   string
	variants map[string]variant
	layout   *template.Template
	assets   assets.Registrar
}

// NewRenderer parses the built-in card templates plus any overrides. The
// registrar receives each variant's stylesheet when that variant renders; a
// nil registrar is allowed and makes every render report a
// ResourceRegistrationError.
func NewRenderer(registrar assets.Registrar, opts Options) (*Renderer, error) {
	log.Info("🚀 Initializing message card templates...")

	module := strings.TrimSpace(opts.Module)
	if module == "" {
		module = DefaultModule
	}

	sources, err := builtinSources()
	if err != nil {
		return nil, err
	}
	if opts.OverrideDir != "" {
		overrides, err := overrideSources(opts.OverrideDir)
		if err != nil {
			return nil, err
		}
		for name, src := range overrides {
			if _, exists := sources[name]; exists {
				log.WithField("variant", name).Info("Overriding built-in card template")
			}
			sources[name] = src
		}
	}

	r := &Renderer{
		module:   module,
		variants: make(map[string]variant, len(sources)),
		assets:   registrar,
	}
	for name, src := range sources {
		tmpl, err := template.New(name).Parse(src)
		if err != nil {
			return nil, errors.Wrapf(err, "parse card template %s", name)
		}
		r.variants[name] = variant{
			tmpl:       tmpl,
			stylesheet: assets.StylesheetPath(module, name),
		}
	}

	layoutSrc, err := fs.ReadFile(builtin, "templates/layout.html")
	if err != nil {
		return nil, errors.Wrap(err, "read layout template")
	}
	r.layout, err = template.New("layout").Parse(string(layoutSrc))
	if err != nil {
		return nil, errors.Wrap(err, "parse layout template")
	}

	log.WithField("variants", r.Variants()).Info("✅ Message card templates initialized")
	return r, nil
}

// Module returns the module path stylesheets are resolved against.
func (r *Renderer) Module() string {
	return r.module
}

// Variants lists the available card variants, sorted.
func (r *Renderer) Variants() []string {
	names := make([]string, 0, len(r.variants))
	for name := range r.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stylesheet returns the stylesheet path owned by a variant.
func (r *Renderer) Stylesheet(name string) (string, bool) {
	v, ok := r.variants[name]
	return v.stylesheet, ok
}

// Page is the data for the minimal page layout.
type Page struct {
	Title       string
	Stylesheets template.HTML
	Body        template.HTML
}

// RenderPage writes a full HTML document around an already rendered body.
func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	if err := r.layout.Execute(w, page); err != nil {
		return errors.Wrap(err, "render page layout")
	}
	return nil
}

func builtinSources() (map[string]string, error) {
	entries, err := fs.ReadDir(builtin, "templates/cards")
	if err != nil {
		return nil, errors.Wrap(err, "read built-in card templates")
	}

	sources := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".html" {
			continue
		}
		content, err := fs.ReadFile(builtin, path.Join("templates/cards", entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", entry.Name())
		}
		sources[strings.TrimSuffix(entry.Name(), ".html")] = string(content)
	}
	return sources, nil
}

func overrideSources(dir string) (map[string]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, errors.Wrapf(err, "scan %s", dir)
	}

	sources := make(map[string]string, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", file)
		}
		sources[strings.TrimSuffix(filepath.Base(file), ".html")] = string(content)
	}
	return sources, nil
}
