// Package poet models TypeScript class declarations as immutable,
// composable values and renders them into correctly ordered source text.
//
// A ClassSpec is assembled through a fluent "add/with" API where every
// call returns a new value; prior values are never mutated, so builder
// chains may be forked and reused freely. Emission drives a CodeWriter
// through a single linear pass and collapses eligible declared properties
// into constructor parameter shorthand, rewriting the constructor body to
// drop the now-redundant `this.<name> = <name>` statements.
package poet

import (
	"regexp"

	"github.com/teranos/tspoet/errors"
)

// ClassSpec is the immutable aggregate holding all parts of one class
// declaration. Create it with NewClass and extend it through the add/with
// methods; pass it to Emit (or String) once assembly is complete.
type ClassSpec struct {
	name          string
	doc           CodeBlock
	decorators    []DecoratorSpec
	modifiers     []Modifier
	typeVariables []TypeVariable
	superClass    *TypeName
	interfaces    []TypeName
	properties    []PropertySpec
	constructor   *FunctionSpec
	functions     []FunctionSpec
}

// NewClass creates a minimal class declaration with the given name and
// empty collections.
func NewClass(name string) ClassSpec {
	return ClassSpec{name: name}
}

// Name returns the class name.
func (c ClassSpec) Name() string {
	return c.name
}

// WithDoc returns a copy with doc comment text appended.
func (c ClassSpec) WithDoc(format string, args ...interface{}) ClassSpec {
	c.doc = c.doc.Append(format, args...)
	return c
}

// AddDecorators returns a copy with decorators appended in call order.
func (c ClassSpec) AddDecorators(ds ...DecoratorSpec) ClassSpec {
	c.decorators = appendCopy(c.decorators, ds...)
	return c
}

// AddModifiers returns a copy with modifiers appended in call order.
// Emission substitutes public when no modifier was added.
func (c ClassSpec) AddModifiers(mods ...Modifier) ClassSpec {
	c.modifiers = appendCopy(c.modifiers, mods...)
	return c
}

// AddTypeVariables returns a copy with generic type variables appended.
func (c ClassSpec) AddTypeVariables(vs ...TypeVariable) ClassSpec {
	c.typeVariables = appendCopy(c.typeVariables, vs...)
	return c
}

// Extends returns a copy with the superclass set. Setting the superclass
// twice is an invariant violation and fails with ErrInvalidSpec.
func (c ClassSpec) Extends(t TypeName) (ClassSpec, error) {
	if c.superClass != nil {
		return c, errors.NewInvalidSpecError(
			"class %s: superclass already set to %s", c.name, c.superClass.String())
	}
	super := t
	c.superClass = &super
	return c, nil
}

// AddImplements returns a copy with implemented interfaces appended.
func (c ClassSpec) AddImplements(ts ...TypeName) ClassSpec {
	c.interfaces = appendCopy(c.interfaces, ts...)
	return c
}

// AddProperties returns a copy with properties appended in call order.
// Names need not be unique; promotion and lookup use the first match.
func (c ClassSpec) AddProperties(ps ...PropertySpec) ClassSpec {
	c.properties = appendCopy(c.properties, ps...)
	return c
}

// AddNamedProperty builds a property from primitive parts and appends it.
func (c ClassSpec) AddNamedProperty(name string, typ TypeName, optional bool, mods ...Modifier) ClassSpec {
	p := NewProperty(name, typ)
	if optional {
		p = p.AsOptional()
	}
	return c.AddProperties(p.WithAddedModifiers(mods...))
}

// WithConstructor returns a copy with the primary constructor set; nil
// means "no constructor". A spec without the constructor marker fails
// with ErrInvalidSpec.
func (c ClassSpec) WithConstructor(fn *FunctionSpec) (ClassSpec, error) {
	if fn == nil {
		c.constructor = nil
		return c, nil
	}
	if !fn.IsConstructor() {
		return c, errors.NewInvalidSpecError(
			"class %s: primary constructor must be constructor-marked, got function %q", c.name, fn.name)
	}
	ctor := *fn
	c.constructor = &ctor
	return c, nil
}

// AddFunctions returns a copy with methods appended in call order.
// Constructor-marked specs must not pass through this path; they fail
// with ErrInvalidSpec. Use AddConstructorOverload for overload signatures.
func (c ClassSpec) AddFunctions(fns ...FunctionSpec) (ClassSpec, error) {
	for _, fn := range fns {
		if fn.IsConstructor() {
			return c, errors.NewInvalidSpecError(
				"class %s: constructor-marked declarations must be added with AddConstructorOverload", c.name)
		}
	}
	c.functions = appendCopy(c.functions, fns...)
	return c, nil
}

// AddConstructorOverload returns a copy with a constructor overload
// signature appended, distinct from the primary constructor. The spec
// must carry the constructor marker.
func (c ClassSpec) AddConstructorOverload(fn FunctionSpec) (ClassSpec, error) {
	if !fn.IsConstructor() {
		return c, errors.NewInvalidSpecError(
			"class %s: constructor overload must be constructor-marked, got function %q", c.name, fn.name)
	}
	c.functions = appendCopy(c.functions, fn)
	return c, nil
}

// constructorProperties decides which declared properties collapse into
// constructor parameter shorthand. A property is promotable only if the
// primary constructor has a body, declares a non-rest parameter with the
// identical name, type and optionality, the property carries no
// initializer, and the body contains the canonical `this.<name> = <name>`
// statement on its own statement boundary. Any mismatch means the
// property renders as an ordinary field, with no diagnostic. For
// duplicate property names the first declaration wins.
func (c ClassSpec) constructorProperties() map[string]PropertySpec {
	if c.constructor == nil || !c.constructor.hasBody {
		return nil
	}
	body := c.constructor.body.String()
	promoted := make(map[string]PropertySpec)
	for _, p := range c.properties {
		if _, seen := promoted[p.name]; seen {
			continue
		}
		param, ok := c.constructor.Parameter(p.name)
		if !ok {
			continue
		}
		if !param.typ.Equals(p.typ) {
			continue
		}
		if param.optional != p.optional {
			continue
		}
		if p.initializer.IsNotEmpty() {
			continue
		}
		if !propertyInitPattern(p.name).MatchString(body) {
			continue
		}
		promoted[p.name] = p
	}
	return promoted
}

// propertyInitPattern matches the canonical field-initialization statement
// `this.<name> = <name>` as a standalone statement: a statement boundary
// (start of body, newline or semicolon) before, optional non-newline
// whitespace around the tokens, and the statement's own terminator after.
// The leading boundary belongs to the preceding statement and is captured
// so removal can restore it; the trailing terminator is consumed with the
// match, taking a semicolon together with its line break when both follow.
func propertyInitPattern(name string) *regexp.Regexp {
	q := regexp.QuoteMeta(name)
	return regexp.MustCompile(`(\A|[;\n])[ \t]*this\.` + q + `[ \t]*=[ \t]*` + q + `[ \t]*(?:;[ \t]*\n|;|\n|\z)`)
}

// Emit writes the complete class declaration in one linear pass:
// doc comment, decorators, modifiers (public by default), header with
// "extends"/"implements" fragments, non-promoted fields, the primary
// constructor with promoted parameter properties and a rewritten body,
// constructor overload signatures, then ordinary methods.
func (c ClassSpec) Emit(w *CodeWriter) {
	promoted := c.constructorProperties()

	w.EmitDoc(c.doc)
	w.EmitDecorators(c.decorators, false)
	w.EmitModifiers(c.modifiers, ModifierPublic)
	w.Emit("class " + c.name)
	w.EmitTypeVariables(c.typeVariables)

	var headerParts []CodeBlock
	if c.superClass != nil {
		headerParts = append(headerParts, BlockOf("extends %T", *c.superClass))
	}
	if len(c.interfaces) > 0 {
		names := make([]CodeBlock, len(c.interfaces))
		for i, iface := range c.interfaces {
			names[i] = BlockOf("%T", iface)
		}
		headerParts = append(headerParts, JoinBlocks(names, ", ", "implements "))
	}
	if tail := JoinBlocks(headerParts, " ", ""); tail.IsNotEmpty() {
		w.Emit(" ")
		w.EmitBlock(tail)
	}

	w.Emit(" {\n")
	w.Indent()

	for _, p := range c.properties {
		if _, ok := promoted[p.name]; ok {
			continue
		}
		w.Emit("\n")
		p.Emit(w, []Modifier{ModifierPublic}, true)
	}

	if ctor := c.constructor; ctor != nil {
		w.Emit("\n")
		w.EmitDecorators(ctor.decorators, true)
		w.EmitModifiers(ctor.modifiers)
		w.Emit(constructorName)
		ctor.EmitParameterList(w, true, func(param ParameterSpec, isRest bool) {
			if prop, ok := promoted[param.name]; ok && !isRest {
				prop.Emit(w, []Modifier{ModifierPublic}, false)
				param.EmitDefaultValue(w)
				return
			}
			param.Emit(w, true)
		})
		if ctor.hasBody {
			body := ctor.body
			for _, p := range c.properties {
				if _, ok := promoted[p.name]; ok {
					body = body.ReplaceMatching(propertyInitPattern(p.name), "$1")
				}
			}
			ctor.EmitBody(w, body)
		} else {
			w.Emit(";\n")
		}
	}

	for _, fn := range c.functions {
		if !fn.IsConstructor() {
			continue
		}
		w.Emit("\n")
		fn.Emit(w, c.name, ModifierPublic)
	}

	for _, fn := range c.functions {
		if fn.IsConstructor() {
			continue
		}
		w.Emit("\n")
		fn.Emit(w, c.name, ModifierPublic)
	}

	w.Unindent()
	if !c.hasEmptyBody(promoted) {
		w.Emit("\n")
	}
	w.Emit("}\n")
}

// hasEmptyBody reports whether nothing will render between the braces:
// no primary constructor, no members, and every declared property in the
// promotable set. Controls only the pre-closing blank line.
func (c ClassSpec) hasEmptyBody(promoted map[string]PropertySpec) bool {
	if c.constructor != nil || len(c.functions) > 0 {
		return false
	}
	for _, p := range c.properties {
		if _, ok := promoted[p.name]; !ok {
			return false
		}
	}
	return true
}

// String renders the declaration through a fresh writer with the default
// indent.
func (c ClassSpec) String() string {
	w := NewCodeWriter()
	c.Emit(w)
	return w.String()
}

// appendCopy appends items to a freshly allocated copy of dst so forked
// builder chains never share a writable backing array.
func appendCopy[T any](dst []T, items ...T) []T {
	out := make([]T, 0, len(dst)+len(items))
	out = append(out, dst...)
	return append(out, items...)
}
