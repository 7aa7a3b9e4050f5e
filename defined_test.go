package orch_test

import (
	"math"

	"github.com/dop251/goja"
	"github.com/scriptorch/orch"
)

func (s *S) TestAbsent() {
	s.True(orch.Absent(nil))
	s.True(orch.Absent(goja.Undefined()))
	s.True(orch.Absent(goja.Null()))
	s.True(orch.Absent(s.vm.ToValue(math.NaN())))
	s.True(orch.Absent(s.eval(`0 / 0`)))
	s.True(orch.Absent(s.vm.ToValue("")))

	// falsy but defined
	s.False(orch.Absent(s.vm.ToValue(0)))
	s.False(orch.Absent(s.vm.ToValue(false)))

	s.False(orch.Absent(s.vm.ToValue(" ")))
	s.False(orch.Absent(s.vm.ToValue("a")))
	s.False(orch.Absent(s.vm.ToValue(42)))
	s.False(orch.Absent(s.eval(`({})`)))
	s.False(orch.Absent(s.eval(`() => 1`)))
}

func (s *S) TestDefinedString() {
	s.True(orch.DefinedString(s.vm.ToValue("a")))
	s.True(orch.DefinedString(s.vm.ToValue(" ")))

	s.False(orch.DefinedString(s.vm.ToValue("")))
	s.False(orch.DefinedString(goja.Undefined()))
	s.False(orch.DefinedString(goja.Null()))
	s.False(orch.DefinedString(s.vm.ToValue(1)))
	s.False(orch.DefinedString(s.eval(`() => 1`)))
}

func (s *S) TestCallable() {
	s.True(orch.Callable(s.eval(`() => 1`)))
	s.True(orch.Callable(s.eval(`(function named() {})`)))

	s.False(orch.Callable(goja.Undefined()))
	s.False(orch.Callable(goja.Null()))
	s.False(orch.Callable(s.vm.ToValue("() => 1")))
	s.False(orch.Callable(s.vm.ToValue(1)))
}

// a purely textual or purely callable value never satisfies both guards
func (s *S) TestGuardsExclusive() {
	str := s.vm.ToValue("abc")
	fn := s.eval(`() => 1`)

	s.True(orch.DefinedString(str) && !orch.Callable(str))
	s.True(orch.Callable(fn) && !orch.DefinedString(fn))
}
