package poet

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockOfVerbs(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
	}{
		{"literal", "return %L;", []interface{}{42}, "return 42;"},
		{"name", "this.%N = %N;", []interface{}{"x", "x"}, "this.x = x;"},
		{"string quoted", "label: %S", []interface{}{"hi \"there\""}, `label: "hi \"there\""`},
		{"type", "value: %T", []interface{}{NewType("Map", NewType("string"), NewType("number"))}, "value: Map<string, number>"},
		{"percent escape", "100%%", nil, "100%"},
		{"unknown verb passes through", "%d items", []interface{}{}, "%d items"},
		{"trailing percent", "100%", nil, "100%"},
		{"no reparse of literal text", "%L", []interface{}{"width: 100%; height: 50%"}, "width: 100%; height: 50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BlockOf(tt.format, tt.args...).String())
		})
	}
}

func TestCodeBlockEmptiness(t *testing.T) {
	var zero CodeBlock
	assert.True(t, zero.IsEmpty())
	assert.False(t, zero.IsNotEmpty())
	assert.True(t, EmptyBlock().IsEmpty())

	b := BlockOf("x")
	assert.False(t, b.IsEmpty())
	assert.True(t, b.IsNotEmpty())
}

func TestCodeBlockAppendReturnsNewValue(t *testing.T) {
	a := BlockOf("first")
	b := a.Append("; %L", "second")

	assert.Equal(t, "first", a.String())
	assert.Equal(t, "first; second", b.String())

	c := a.AppendBlock(BlockOf(" and more"))
	assert.Equal(t, "first", a.String())
	assert.Equal(t, "first and more", c.String())
}

func TestRemoveMatching(t *testing.T) {
	b := BlockOf("%L", "this.x = x;\nfoo();\n")
	out := b.RemoveMatching(regexp.MustCompile(`this\.x = x;`))

	assert.Equal(t, "\nfoo();\n", out.String())
	assert.Equal(t, "this.x = x;\nfoo();\n", b.String())
}

func TestReplaceMatching(t *testing.T) {
	b := BlockOf("%L", "a();this.x = x;b();")
	out := b.ReplaceMatching(regexp.MustCompile(`(;)this\.x = x;`), "$1")

	assert.Equal(t, "a();b();", out.String())
	assert.Equal(t, "a();this.x = x;b();", b.String())
}

func TestJoinBlocks(t *testing.T) {
	t.Run("skips empty fragments", func(t *testing.T) {
		out := JoinBlocks([]CodeBlock{BlockOf("a"), EmptyBlock(), BlockOf("b")}, ", ", "")
		assert.Equal(t, "a, b", out.String())
	})

	t.Run("prefix only when non-empty", func(t *testing.T) {
		out := JoinBlocks([]CodeBlock{BlockOf("A"), BlockOf("B")}, ", ", "implements ")
		assert.Equal(t, "implements A, B", out.String())

		assert.True(t, JoinBlocks(nil, ", ", "implements ").IsEmpty())
		assert.True(t, JoinBlocks([]CodeBlock{EmptyBlock()}, ", ", "implements ").IsEmpty())
	})
}
