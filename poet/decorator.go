package poet

// DecoratorSpec describes a single decorator application, e.g.
// "@Component({ selector: "point" })".
type DecoratorSpec struct {
	name string
	args []CodeBlock
}

// NewDecorator creates a decorator reference without arguments.
func NewDecorator(name string) DecoratorSpec {
	return DecoratorSpec{name: name}
}

// Name returns the decorator name.
func (d DecoratorSpec) Name() string {
	return d.name
}

// AddArgument returns a copy with a formatted argument appended.
func (d DecoratorSpec) AddArgument(format string, args ...interface{}) DecoratorSpec {
	d.args = appendCopy(d.args, BlockOf(format, args...))
	return d
}

// Emit writes the decorator. Argument parentheses appear only when the
// decorator has arguments.
func (d DecoratorSpec) Emit(w *CodeWriter) {
	w.Emit("@" + d.name)
	if len(d.args) == 0 {
		return
	}
	w.Emit("(")
	for i, a := range d.args {
		if i > 0 {
			w.Emit(", ")
		}
		w.EmitBlock(a)
	}
	w.Emit(")")
}
