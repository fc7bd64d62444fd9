package poet

import "strings"

// constructorName is the reserved member name whose presence marks a
// FunctionSpec as a constructor.
const constructorName = "constructor"

// ParameterSpec is an immutable record of one callable parameter.
type ParameterSpec struct {
	name         string
	typ          TypeName
	optional     bool
	modifiers    []Modifier
	defaultValue CodeBlock
}

// NewParameter creates a required parameter of the given type.
func NewParameter(name string, typ TypeName) ParameterSpec {
	return ParameterSpec{name: name, typ: typ}
}

// Name returns the parameter name.
func (p ParameterSpec) Name() string {
	return p.name
}

// Type returns the declared type.
func (p ParameterSpec) Type() TypeName {
	return p.typ
}

// Optional reports whether the parameter is declared optional.
func (p ParameterSpec) Optional() bool {
	return p.optional
}

// AsOptional returns a copy marked optional ("name?: type").
func (p ParameterSpec) AsOptional() ParameterSpec {
	p.optional = true
	return p
}

// WithAddedModifiers returns a copy with modifiers appended in call order.
func (p ParameterSpec) WithAddedModifiers(mods ...Modifier) ParameterSpec {
	p.modifiers = appendCopy(p.modifiers, mods...)
	return p
}

// WithDefault returns a copy carrying a default-value expression.
func (p ParameterSpec) WithDefault(format string, args ...interface{}) ParameterSpec {
	p.defaultValue = BlockOf(format, args...)
	return p
}

// Emit writes the parameter as "name?: type", preceded by its modifiers
// and followed by its default-value fragment when includeDefault is set.
func (p ParameterSpec) Emit(w *CodeWriter, includeDefault bool) {
	w.EmitModifiers(p.modifiers)
	w.Emit(p.name)
	if p.optional {
		w.Emit("?")
	}
	w.Emitf(": %T", p.typ)
	if includeDefault {
		p.EmitDefaultValue(w)
	}
}

// EmitDefaultValue writes the " = <expr>" fragment, or nothing when the
// parameter has no default.
func (p ParameterSpec) EmitDefaultValue(w *CodeWriter) {
	if p.defaultValue.IsNotEmpty() {
		w.Emit(" = ")
		w.EmitBlock(p.defaultValue)
	}
}

// FunctionSpec is an immutable record of one callable member: name,
// parameters (with an optional final rest parameter), modifiers,
// decorators, return type and body. A FunctionSpec named "constructor" is
// constructor-marked; without a body it renders as a bare signature
// (constructor overload or abstract method).
type FunctionSpec struct {
	name          string
	doc           CodeBlock
	decorators    []DecoratorSpec
	modifiers     []Modifier
	typeVariables []TypeVariable
	returnType    *TypeName
	parameters    []ParameterSpec
	restParameter *ParameterSpec
	body          CodeBlock
	hasBody       bool
}

// NewFunction creates a function or method spec.
func NewFunction(name string) FunctionSpec {
	return FunctionSpec{name: name}
}

// NewConstructor creates a constructor-marked spec.
func NewConstructor() FunctionSpec {
	return NewFunction(constructorName)
}

// Name returns the member name.
func (f FunctionSpec) Name() string {
	return f.name
}

// IsConstructor reports whether the spec carries the constructor marker.
func (f FunctionSpec) IsConstructor() bool {
	return f.name == constructorName
}

// WithDoc returns a copy with doc comment text appended.
func (f FunctionSpec) WithDoc(format string, args ...interface{}) FunctionSpec {
	f.doc = f.doc.Append(format, args...)
	return f
}

// AddDecorators returns a copy with decorators appended.
func (f FunctionSpec) AddDecorators(ds ...DecoratorSpec) FunctionSpec {
	f.decorators = appendCopy(f.decorators, ds...)
	return f
}

// AddModifiers returns a copy with modifiers appended in call order.
func (f FunctionSpec) AddModifiers(mods ...Modifier) FunctionSpec {
	f.modifiers = appendCopy(f.modifiers, mods...)
	return f
}

// AddTypeVariables returns a copy with type variables appended.
func (f FunctionSpec) AddTypeVariables(vs ...TypeVariable) FunctionSpec {
	f.typeVariables = appendCopy(f.typeVariables, vs...)
	return f
}

// AddParameters returns a copy with parameters appended in call order.
func (f FunctionSpec) AddParameters(ps ...ParameterSpec) FunctionSpec {
	f.parameters = appendCopy(f.parameters, ps...)
	return f
}

// WithRestParameter returns a copy with the final variadic parameter set.
// The rest parameter is never eligible for property promotion.
func (f FunctionSpec) WithRestParameter(p ParameterSpec) FunctionSpec {
	rest := p
	f.restParameter = &rest
	return f
}

// WithReturnType returns a copy with the return type set.
func (f FunctionSpec) WithReturnType(t TypeName) FunctionSpec {
	rt := t
	f.returnType = &rt
	return f
}

// AddStatement returns a copy with one formatted statement appended to the
// body, terminated by a newline.
func (f FunctionSpec) AddStatement(format string, args ...interface{}) FunctionSpec {
	f.body = f.body.Append(format, args...).Append("\n")
	f.hasBody = true
	return f
}

// WithBody returns a copy with the body replaced by a pre-built fragment.
func (f FunctionSpec) WithBody(body CodeBlock) FunctionSpec {
	f.body = body
	f.hasBody = true
	return f
}

// HasBody reports whether the spec carries a body. Specs without a body
// render as bare signatures.
func (f FunctionSpec) HasBody() bool {
	return f.hasBody
}

// Body returns the body fragment.
func (f FunctionSpec) Body() CodeBlock {
	return f.body
}

// Parameter looks up a declared parameter by name. The rest parameter is
// excluded from lookup.
func (f FunctionSpec) Parameter(name string) (ParameterSpec, bool) {
	for _, p := range f.parameters {
		if p.name == name {
			return p, true
		}
	}
	return ParameterSpec{}, false
}

// Emit writes the full declaration. enclosingName names the surrounding
// class when the function is emitted as a member; when empty the function
// is standalone and rendered with the "function" keyword. defaultModifiers
// are substituted when the spec declares none.
func (f FunctionSpec) Emit(w *CodeWriter, enclosingName string, defaultModifiers ...Modifier) {
	w.EmitDoc(f.doc)
	w.EmitDecorators(f.decorators, false)
	w.EmitModifiers(f.modifiers, defaultModifiers...)
	switch {
	case f.IsConstructor():
		w.Emit(constructorName)
	case enclosingName == "":
		w.Emit("function " + f.name)
	default:
		w.Emit(f.name)
	}
	w.EmitTypeVariables(f.typeVariables)
	f.EmitParameterList(w, true, nil)
	if f.returnType != nil && !f.IsConstructor() {
		w.Emitf(": %T", *f.returnType)
	}
	if !f.hasBody {
		w.Emit(";\n")
		return
	}
	f.EmitBody(w, f.body)
}

// EmitParameterList writes the parameter list, invoking each per
// parameter; a nil callback renders parameters plainly with their default
// values. The rest parameter is written last with the "..." prefix.
func (f FunctionSpec) EmitParameterList(w *CodeWriter, wrapParens bool, each func(param ParameterSpec, isRest bool)) {
	if each == nil {
		each = func(p ParameterSpec, _ bool) {
			p.Emit(w, true)
		}
	}
	if wrapParens {
		w.Emit("(")
	}
	for i, p := range f.parameters {
		if i > 0 {
			w.Emit(", ")
		}
		each(p, false)
	}
	if f.restParameter != nil {
		if len(f.parameters) > 0 {
			w.Emit(", ")
		}
		w.Emit("...")
		each(*f.restParameter, true)
	}
	if wrapParens {
		w.Emit(")")
	}
}

// EmitBody writes the body inside braces, indented one level. The body
// may differ from the spec's own when the caller has rewritten it
// (promoted constructor properties). Leading blank lines left behind by
// statement removal are trimmed; blank bodies render as "{\n}".
func (f FunctionSpec) EmitBody(w *CodeWriter, body CodeBlock) {
	w.Emit(" {\n")
	w.Indent()
	text := strings.TrimLeft(body.String(), "\n")
	if strings.TrimSpace(text) != "" {
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		w.Emit(text)
	}
	w.Unindent()
	w.Emit("}\n")
}
