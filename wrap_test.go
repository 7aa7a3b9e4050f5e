package orch_test

import (
	"regexp"

	"github.com/scriptorch/orch"
)

var reBinding = regexp.MustCompile(`scrp_orch_\d+`)

func (s *S) TestWrapFnCode() {
	code := orch.WrapFnCode(`() => { globalThis.hits = (globalThis.hits || 0) + 1 }`)

	s.Regexp(reBinding, code)

	s.eval(code)
	s.EqualValues(1, s.eval(`globalThis.hits`).ToInteger())
}

func (s *S) TestWrapFnCodeUniqueNames() {
	src := `() => 1`

	a := reBinding.FindString(orch.WrapFnCode(src))
	b := reBinding.FindString(orch.WrapFnCode(src))

	s.NotEmpty(a)
	s.NotEqual(a, b)
}

func (s *S) TestWrapFnCodeToken() {
	code := orch.WrapFnCode(`() => 1`, orch.WithToken("813947"))
	s.Contains(code, "scrp_orch_813947")
}

// the self-invocation is guarded, a nullish binding is a no-op
func (s *S) TestWrapFnCodeNullish() {
	s.eval(orch.WrapFnCode(`null`, orch.WithToken("294051")))
}

func (s *S) TestStringifyFunction() {
	fn := s.eval(`(function add(a, b) { return a + b })`)

	src, err := orch.StringifyFunction(fn)
	s.NoError(err)
	s.Contains(src, "a, b")
	s.Contains(src, "return a + b")

	// the text round-trips through the runtime
	s.EqualValues(3, s.eval(`(`+src+`)(1, 2)`).ToInteger())
}

func (s *S) TestStringifyFunctionNotCallable() {
	_, err := orch.StringifyFunction(s.vm.ToValue(10))
	s.True(orch.IsError(err, orch.ErrExpectFunction))

	_, err = orch.StringifyFunction(nil)
	s.Error(err)
}

func (s *S) TestWrapFunction() {
	fn := s.eval(`() => { globalThis.n = (globalThis.n || 0) + 1 }`)

	code, err := orch.WrapFunction(fn)
	s.NoError(err)
	s.Regexp(reBinding, code)

	s.eval(code)
	s.EqualValues(1, s.eval(`globalThis.n`).ToInteger())
}

func (s *S) TestWrapFunctionNotCallable() {
	_, err := orch.WrapFunction(s.vm.ToValue("nope"))
	s.True(orch.IsError(err, orch.ErrExpectFunction))
}
