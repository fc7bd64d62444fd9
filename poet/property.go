package poet

// PropertySpec is an immutable record of one declared class field: name,
// type, optionality, initializer, doc, decorators and modifiers. All
// builder methods return a new value.
type PropertySpec struct {
	name        string
	typ         TypeName
	optional    bool
	modifiers   []Modifier
	initializer CodeBlock
	doc         CodeBlock
	decorators  []DecoratorSpec
}

// NewProperty creates a required property of the given type.
func NewProperty(name string, typ TypeName) PropertySpec {
	return PropertySpec{name: name, typ: typ}
}

// Name returns the property name.
func (p PropertySpec) Name() string {
	return p.name
}

// Type returns the declared type.
func (p PropertySpec) Type() TypeName {
	return p.typ
}

// Optional reports whether the property is declared optional.
func (p PropertySpec) Optional() bool {
	return p.optional
}

// AsOptional returns a copy marked optional ("name?: type").
func (p PropertySpec) AsOptional() PropertySpec {
	p.optional = true
	return p
}

// WithAddedModifiers returns a copy with modifiers appended in call order.
func (p PropertySpec) WithAddedModifiers(mods ...Modifier) PropertySpec {
	p.modifiers = appendCopy(p.modifiers, mods...)
	return p
}

// WithInitializer returns a copy carrying an initializer expression. A
// property with an initializer is never collapsed into constructor
// parameter shorthand.
func (p PropertySpec) WithInitializer(format string, args ...interface{}) PropertySpec {
	p.initializer = BlockOf(format, args...)
	return p
}

// WithDoc returns a copy with doc comment text appended.
func (p PropertySpec) WithDoc(format string, args ...interface{}) PropertySpec {
	p.doc = p.doc.Append(format, args...)
	return p
}

// AddDecorators returns a copy with decorators appended.
func (p PropertySpec) AddDecorators(ds ...DecoratorSpec) PropertySpec {
	p.decorators = appendCopy(p.decorators, ds...)
	return p
}

// Emit writes the property. With asField true it renders as a standalone
// field declaration terminated by ";" and a newline, substituting
// defaultModifiers when the property declares none. With asField false it
// renders as a constructor parameter property: defaultModifiers are
// prepended when the property carries no access or readonly modifier, so
// the target language still treats the parameter as field-producing; doc,
// decorators, initializer and terminator are omitted.
func (p PropertySpec) Emit(w *CodeWriter, defaultModifiers []Modifier, asField bool) {
	if asField {
		w.EmitDoc(p.doc)
		w.EmitDecorators(p.decorators, false)
		w.EmitModifiers(p.modifiers, defaultModifiers...)
	} else {
		mods := p.modifiers
		if !declaresField(mods) {
			mods = append(appendCopy(defaultModifiers), mods...)
		}
		w.EmitModifiers(mods)
	}
	w.Emit(p.name)
	if p.optional {
		w.Emit("?")
	}
	w.Emitf(": %T", p.typ)
	if asField {
		if p.initializer.IsNotEmpty() {
			w.Emit(" = ")
			w.EmitBlock(p.initializer)
		}
		w.Emit(";\n")
	}
}
