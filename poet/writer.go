package poet

import "strings"

// DefaultIndent is the indentation unit used when none is configured.
const DefaultIndent = "  "

// CodeWriter converts declaration specs into indented source text. It
// tracks the current indentation level and applies it at the start of
// every non-blank line. A writer serves exactly one emission at a time;
// it is not safe for concurrent use.
type CodeWriter struct {
	out         strings.Builder
	indent      string
	level       int
	atLineStart bool
}

// NewCodeWriter creates a writer with the default two-space indent.
func NewCodeWriter() *CodeWriter {
	return NewCodeWriterIndent(DefaultIndent)
}

// NewCodeWriterIndent creates a writer with a custom indentation unit.
func NewCodeWriterIndent(indent string) *CodeWriter {
	return &CodeWriter{indent: indent, atLineStart: true}
}

// Indent increases the indentation level for subsequent lines.
func (w *CodeWriter) Indent() {
	w.level++
}

// Unindent decreases the indentation level. Indent and Unindent calls
// must nest correctly; unbalanced Unindent is ignored at level zero.
func (w *CodeWriter) Unindent() {
	if w.level > 0 {
		w.level--
	}
}

// Emit writes raw text, applying the current indentation at the start of
// every non-blank line.
func (w *CodeWriter) Emit(s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			w.out.WriteByte('\n')
			w.atLineStart = true
		}
		if line == "" {
			continue
		}
		if w.atLineStart {
			for j := 0; j < w.level; j++ {
				w.out.WriteString(w.indent)
			}
			w.atLineStart = false
		}
		w.out.WriteString(line)
	}
}

// Emitf writes formatted text using CodeBlock placeholder verbs.
func (w *CodeWriter) Emitf(format string, args ...interface{}) {
	w.Emit(formatBlock(format, args))
}

// EmitBlock writes a pre-built fragment.
func (w *CodeWriter) EmitBlock(b CodeBlock) {
	w.Emit(b.text)
}

// EmitDoc writes a doc comment block. Empty fragments emit nothing.
func (w *CodeWriter) EmitDoc(doc CodeBlock) {
	if doc.IsEmpty() {
		return
	}
	w.Emit("/**\n")
	for _, line := range strings.Split(strings.TrimSuffix(doc.text, "\n"), "\n") {
		if line == "" {
			w.Emit(" *\n")
		} else {
			w.Emit(" * " + line + "\n")
		}
	}
	w.Emit(" */\n")
}

// EmitDecorators writes decorators in block form (one per line) or inline
// form (space-separated, on the current line).
func (w *CodeWriter) EmitDecorators(decorators []DecoratorSpec, inline bool) {
	for _, d := range decorators {
		d.Emit(w)
		if inline {
			w.Emit(" ")
		} else {
			w.Emit("\n")
		}
	}
}

// EmitModifiers writes modifier tokens in declaration order, each followed
// by a space. When the spec declares no modifiers the caller-supplied
// defaults are substituted.
func (w *CodeWriter) EmitModifiers(modifiers []Modifier, defaults ...Modifier) {
	if len(modifiers) == 0 {
		modifiers = defaults
	}
	for _, m := range modifiers {
		w.Emit(string(m))
		w.Emit(" ")
	}
}

// EmitTypeVariables writes a generic parameter list, e.g. "<T, R extends Base>".
// An empty list emits nothing.
func (w *CodeWriter) EmitTypeVariables(vars []TypeVariable) {
	if len(vars) == 0 {
		return
	}
	w.Emit("<")
	for i, v := range vars {
		if i > 0 {
			w.Emit(", ")
		}
		w.Emit(v.String())
	}
	w.Emit(">")
}

// String returns everything emitted so far.
func (w *CodeWriter) String() string {
	return w.out.String()
}
