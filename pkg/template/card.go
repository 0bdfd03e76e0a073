package template

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/pkg/errors"

	apperrors "privatemsg/pkg/errors"
	"privatemsg/pkg/views"
)

// RenderMessageCard renders the default card variant.
func (r *Renderer) RenderMessageCard(ctx context.Context, vm views.MessageViewModel) (template.HTML, error) {
	return r.RenderVariant(ctx, DefaultVariant, vm)
}

// RenderVariant renders one message card and registers the variant's
// stylesheet. Each template brings its own stylesheet because the caller
// can't know in advance which variant ends up on the page.
//
// Registration and rendering are independent: when registration fails the
// fragment is still returned, together with a
// *errors.ResourceRegistrationError.
func (r *Renderer) RenderVariant(ctx context.Context, name string, vm views.MessageViewModel) (template.HTML, error) {
	v, ok := r.variants[name]
	if !ok {
		return "", apperrors.New(apperrors.ErrNotFound, fmt.Sprintf("unknown message card variant %q", name))
	}

	regErr := r.register(ctx, v.stylesheet)

	var buf bytes.Buffer
	if err := v.tmpl.Execute(&buf, vm); err != nil {
		log.WithField("variant", name).Errorf("❌ Error rendering message card: %v", err)
		return "", errors.Wrapf(err, "render message card %s", name)
	}

	if regErr != nil {
		return template.HTML(buf.String()), regErr
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) register(ctx context.Context, stylesheet string) error {
	var regErr *apperrors.ResourceRegistrationError
	if r.assets == nil {
		regErr = &apperrors.ResourceRegistrationError{Path: stylesheet}
	} else if err := r.assets.Register(ctx, stylesheet); err != nil {
		regErr = &apperrors.ResourceRegistrationError{Path: stylesheet, Err: err}
	}

	if regErr != nil {
		log.WithField("path", stylesheet).Warnf("Stylesheet registration failed: %v", regErr)
		return regErr
	}
	return nil
}
