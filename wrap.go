package orch

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dop251/goja"
)

// bindingPrefix is the namespace for wrapper bindings so injected copies
// don't collide with the page's own globals.
const bindingPrefix = "scrp_orch_"

var bindingSeq uint64

// bindingName returns a fresh name, unix-millis plus a process-wide
// counter so two calls within the same millisecond still differ.
func bindingName() string {
	n := atomic.AddUint64(&bindingSeq, 1)
	return fmt.Sprintf("%s%d%03d", bindingPrefix, time.Now().UnixMilli(), n%1000)
}

// WrapperOption configures the template wrapper.
type WrapperOption func(*wrapper)

type wrapper struct {
	token string
}

// WithToken replaces the generated digits of the binding name with a
// caller-supplied token, for reproducible output.
func WithToken(token string) WrapperOption {
	return func(w *wrapper) { w.token = token }
}

// WrapFnCode embeds function source text into a uniquely named binding
// followed by a guarded self-invocation, so the result can be injected as
// inline script text. The source is not validated, wrapping a non-function
// produces text that fails at evaluation time, not here.
func WrapFnCode(src string, opts ...WrapperOption) string {
	w := &wrapper{}
	for _, opt := range opts {
		opt(w)
	}

	name := bindingName()
	if w.token != "" {
		name = bindingPrefix + w.token
	}

	return fmt.Sprintf("var %s = (%s);\n%s?.();", name, src, name)
}

// StringifyFunction returns the source text of a runtime function value,
// as the runtime renders it. The value must be callable, check with
// Callable first.
func StringifyFunction(fn goja.Value) (string, error) {
	if !Callable(fn) {
		return "", &Error{Code: ErrExpectFunction, Details: fn}
	}
	return fn.String(), nil
}

// WrapFunction is StringifyFunction followed by WrapFnCode.
func WrapFunction(fn goja.Value, opts ...WrapperOption) (string, error) {
	src, err := StringifyFunction(fn)
	if err != nil {
		return "", err
	}
	return WrapFnCode(src, opts...), nil
}
