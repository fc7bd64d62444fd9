package poet

import "strings"

// TypeName references a named or generic TypeScript type, usable as a
// superclass, implemented interface, field type or parameter type.
type TypeName struct {
	name string
	args []TypeName
}

// NewType creates a type reference. Type arguments produce a generic
// reference, e.g. NewType("Map", NewType("string"), NewType("number"))
// renders as "Map<string, number>".
func NewType(name string, args ...TypeName) TypeName {
	return TypeName{name: name, args: args}
}

// Name returns the base type name without type arguments.
func (t TypeName) Name() string {
	return t.name
}

// Equals reports whether two type references render identically.
func (t TypeName) Equals(other TypeName) bool {
	return t.String() == other.String()
}

func (t TypeName) String() string {
	if len(t.args) == 0 {
		return t.name
	}
	var sb strings.Builder
	sb.WriteString(t.name)
	sb.WriteByte('<')
	for i, a := range t.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte('>')
	return sb.String()
}

// TypeVariable is a generic type-variable descriptor, e.g. the T in
// "class Box<T extends Item>".
type TypeVariable struct {
	name  string
	bound *TypeName
}

// NewTypeVariable creates an unbounded type variable.
func NewTypeVariable(name string) TypeVariable {
	return TypeVariable{name: name}
}

// WithBound returns a copy constrained to extend the given type.
func (v TypeVariable) WithBound(bound TypeName) TypeVariable {
	b := bound
	v.bound = &b
	return v
}

// Name returns the variable name.
func (v TypeVariable) Name() string {
	return v.name
}

func (v TypeVariable) String() string {
	if v.bound == nil {
		return v.name
	}
	return v.name + " extends " + v.bound.String()
}
