package poet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyEmitAsField(t *testing.T) {
	t.Run("default modifier substituted", func(t *testing.T) {
		w := NewCodeWriter()
		NewProperty("x", tsNumber).Emit(w, []Modifier{ModifierPublic}, true)
		assert.Equal(t, "public x: number;\n", w.String())
	})

	t.Run("declared modifiers win", func(t *testing.T) {
		w := NewCodeWriter()
		NewProperty("x", tsNumber).
			WithAddedModifiers(ModifierPrivate, ModifierReadonly).
			Emit(w, []Modifier{ModifierPublic}, true)
		assert.Equal(t, "private readonly x: number;\n", w.String())
	})

	t.Run("optional with initializer", func(t *testing.T) {
		w := NewCodeWriter()
		NewProperty("retries", tsNumber).
			AsOptional().
			WithInitializer("%L", 3).
			Emit(w, []Modifier{ModifierPublic}, true)
		assert.Equal(t, "public retries?: number = 3;\n", w.String())
	})

	t.Run("doc and decorators", func(t *testing.T) {
		w := NewCodeWriter()
		NewProperty("id", tsString).
			WithDoc("Unique identifier.").
			AddDecorators(NewDecorator("Input")).
			Emit(w, []Modifier{ModifierPublic}, true)
		assert.Equal(t, "/**\n * Unique identifier.\n */\n@Input\npublic id: string;\n", w.String())
	})
}

func TestPropertyEmitAsParameter(t *testing.T) {
	t.Run("default prepended when no field modifier", func(t *testing.T) {
		w := NewCodeWriter()
		NewProperty("x", tsNumber).Emit(w, []Modifier{ModifierPublic}, false)
		assert.Equal(t, "public x: number", w.String())
	})

	t.Run("field modifier stands alone", func(t *testing.T) {
		w := NewCodeWriter()
		NewProperty("x", tsNumber).
			WithAddedModifiers(ModifierReadonly).
			Emit(w, []Modifier{ModifierPublic}, false)
		assert.Equal(t, "readonly x: number", w.String())
	})

	t.Run("initializer and terminator omitted", func(t *testing.T) {
		w := NewCodeWriter()
		NewProperty("x", tsNumber).
			WithInitializer("%L", 0).
			Emit(w, []Modifier{ModifierPublic}, false)
		assert.Equal(t, "public x: number", w.String())
	})
}

func TestPropertyBuildersDoNotMutateReceiver(t *testing.T) {
	base := NewProperty("x", tsNumber)
	forked := base.AsOptional().WithAddedModifiers(ModifierPrivate).WithInitializer("%L", 1)

	w := NewCodeWriter()
	base.Emit(w, []Modifier{ModifierPublic}, true)
	assert.Equal(t, "public x: number;\n", w.String())

	w = NewCodeWriter()
	forked.Emit(w, []Modifier{ModifierPublic}, true)
	assert.Equal(t, "private x?: number = 1;\n", w.String())
}
