package orch_test

import (
	"github.com/scriptorch/orch"
)

func (s *S) TestClassifiers() {
	s.True(orch.ScriptEntry{Src: "a.js"}.IsExternal())
	s.False(orch.ScriptEntry{}.IsExternal())

	s.True(orch.ScriptEntry{InlineCode: "x = 1"}.IsInline())
	s.False(orch.ScriptEntry{}.IsInline())

	// the classifiers are independent
	both := orch.ScriptEntry{Src: "a.js", InlineCode: "x = 1"}
	s.True(both.IsExternal())
	s.True(both.IsInline())
}

func (s *S) TestRender() {
	s.Equal(`<script src="a.js"></script>`, orch.ScriptEntry{Src: "a.js"}.Render())
	s.Equal(`<script>x = 1</script>`, orch.ScriptEntry{InlineCode: "x = 1"}.Render())
	s.Equal("", orch.ScriptEntry{}.Render())

	// external wins when both fields are set
	both := orch.ScriptEntry{Src: "a.js", InlineCode: "x = 1"}
	s.Equal(`<script src="a.js"></script>`, both.Render())

	// the src attribute is escaped
	s.Equal(
		`<script src="a.js?v=&#34;1&#34;"></script>`,
		orch.ScriptEntry{Src: `a.js?v="1"`}.Render(),
	)

	// a close tag inside inline code can't terminate the tag early
	s.Equal(
		`<script>x = "<\/script>"</script>`,
		orch.ScriptEntry{InlineCode: `x = "</script>"`}.Render(),
	)
}

func (s *S) TestSet() {
	set := orch.NewSet(orch.ScriptEntry{Src: "a.js"})
	s.Equal(1, set.Len())

	set.Add(orch.ScriptEntry{InlineCode: "x = 1"}, orch.ScriptEntry{Src: "b.js"})
	s.Equal(3, set.Len())

	list := set.List()
	s.Equal("a.js", list[0].Src)

	// List returns a copy
	list[0].Src = "mutated.js"
	s.Equal("a.js", set.List()[0].Src)
}
