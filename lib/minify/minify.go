// Package minify shrinks script text on a best-effort basis. A failing or
// empty minification never reaches the caller, the original text is
// returned instead.
package minify

import (
	"context"

	tdewolff "github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/js"
)

const mimeJS = "application/javascript"

// Service is the external minification boundary. Implementations may fail,
// the adapter swallows the failure.
type Service interface {
	Minify(ctx context.Context, code string) (string, error)
}

// Result of a best-effort minification. Code is always usable. Minified
// tells whether Code is the service output or the original fallback, and
// Err records why the fallback was taken.
type Result struct {
	Code     string
	Minified bool
	Err      error
}

type jsService struct {
	m *tdewolff.M
}

// NewService returns the default Service backed by the tdewolff JS
// minifier.
func NewService() Service {
	m := tdewolff.New()
	m.AddFunc(mimeJS, js.Minify)
	return &jsService{m: m}
}

// Minify interface
func (s *jsService) Minify(ctx context.Context, code string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.m.String(mimeJS, code)
}

// Code minifies through svc, falling back to the original text when the
// service fails or returns nothing. The error is recorded on the Result,
// never propagated.
func Code(ctx context.Context, svc Service, code string) Result {
	out, err := svc.Minify(ctx, code)
	if err != nil {
		return Result{Code: code, Err: err}
	}
	if out == "" {
		return Result{Code: code}
	}
	return Result{Code: out, Minified: true}
}

var defaultService = NewService()

// Default is Code with the default service.
func Default(ctx context.Context, code string) Result {
	return Code(ctx, defaultService, code)
}
