package orch

import (
	"github.com/dop251/goja"
)

// Absent reports whether a runtime value counts as "not defined":
// undefined, null, a NaN number, or the empty string. Note 0 and false are
// defined values, only the four cases above are treated as absence.
func Absent(v goja.Value) bool {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return true
	}
	// NaN never equals itself, it needs its own check.
	if goja.IsNaN(v) {
		return true
	}
	if s, ok := v.Export().(string); ok && s == "" {
		return true
	}
	return false
}

// DefinedString reports whether the value is a non-absent string.
func DefinedString(v goja.Value) bool {
	if Absent(v) {
		return false
	}
	_, ok := v.Export().(string)
	return ok
}

// Callable reports whether the value is a non-absent function.
func Callable(v goja.Value) bool {
	if Absent(v) {
		return false
	}
	_, ok := goja.AssertFunction(v)
	return ok
}
