// Package manifest loads YAML class manifests and builds the declaration
// values they describe. A manifest is the batch input format for the
// tspoet CLI: one document listing classes with their properties,
// constructor, overloads and methods.
package manifest

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/teranos/tspoet/errors"
	"github.com/teranos/tspoet/poet"
)

// Manifest is the root of a class-manifest document.
type Manifest struct {
	// Indent overrides the writer indentation unit; empty means the
	// default two spaces
	Indent  string  `yaml:"indent"`
	Classes []Class `yaml:"classes"`
}

// Class describes one class declaration.
type Class struct {
	Name                 string          `yaml:"name"`
	Doc                  string          `yaml:"doc"`
	Modifiers            []string        `yaml:"modifiers"`
	Extends              string          `yaml:"extends"`
	Implements           []string        `yaml:"implements"`
	TypeParameters       []TypeParameter `yaml:"typeParameters"`
	Decorators           []Decorator     `yaml:"decorators"`
	Properties           []Property      `yaml:"properties"`
	Constructor          *Constructor    `yaml:"constructor"`
	ConstructorOverloads []Constructor   `yaml:"constructorOverloads"`
	Methods              []Method        `yaml:"methods"`
}

// TypeParameter describes one generic type variable.
type TypeParameter struct {
	Name    string `yaml:"name"`
	Extends string `yaml:"extends"`
}

// Decorator describes one decorator application. Arguments are emitted
// verbatim.
type Decorator struct {
	Name      string   `yaml:"name"`
	Arguments []string `yaml:"arguments"`
}

// Property describes one declared field.
type Property struct {
	Name        string      `yaml:"name"`
	Type        string      `yaml:"type"`
	Optional    bool        `yaml:"optional"`
	Modifiers   []string    `yaml:"modifiers"`
	Initializer string      `yaml:"initializer"`
	Doc         string      `yaml:"doc"`
	Decorators  []Decorator `yaml:"decorators"`
}

// Constructor describes the primary constructor or one overload
// signature. Overloads must not carry a body.
type Constructor struct {
	Modifiers  []string    `yaml:"modifiers"`
	Decorators []Decorator `yaml:"decorators"`
	Parameters []Parameter `yaml:"parameters"`
	Rest       *Parameter  `yaml:"rest"`
	Body       string      `yaml:"body"`
}

// Method describes one ordinary method. An empty body renders a bare
// signature.
type Method struct {
	Name           string          `yaml:"name"`
	Doc            string          `yaml:"doc"`
	Modifiers      []string        `yaml:"modifiers"`
	ReturnType     string          `yaml:"returnType"`
	TypeParameters []TypeParameter `yaml:"typeParameters"`
	Decorators     []Decorator     `yaml:"decorators"`
	Parameters     []Parameter     `yaml:"parameters"`
	Rest           *Parameter      `yaml:"rest"`
	Body           string          `yaml:"body"`
}

// Parameter describes one callable parameter.
type Parameter struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Optional  bool     `yaml:"optional"`
	Modifiers []string `yaml:"modifiers"`
	Default   string   `yaml:"default"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest %s", path)
	}
	return Parse(data)
}

// Parse parses manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to parse manifest")
	}
	return &m, nil
}

// Build converts the manifest into declaration values, one per class,
// in document order.
func (m *Manifest) Build() ([]poet.ClassSpec, error) {
	specs := make([]poet.ClassSpec, 0, len(m.Classes))
	for i, c := range m.Classes {
		if c.Name == "" {
			return nil, errors.NewInvalidManifestError("class %d: name is required", i)
		}
		spec, err := c.build()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build class %s", c.Name)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (c Class) build() (poet.ClassSpec, error) {
	spec := poet.NewClass(c.Name)

	if c.Doc != "" {
		spec = spec.WithDoc("%L", c.Doc)
	}
	mods, err := parseModifiers(c.Modifiers)
	if err != nil {
		return spec, err
	}
	spec = spec.AddModifiers(mods...)

	for _, tp := range c.TypeParameters {
		v := poet.NewTypeVariable(tp.Name)
		if tp.Extends != "" {
			v = v.WithBound(poet.NewType(tp.Extends))
		}
		spec = spec.AddTypeVariables(v)
	}
	for _, d := range c.Decorators {
		spec = spec.AddDecorators(buildDecorator(d))
	}
	if c.Extends != "" {
		spec, err = spec.Extends(poet.NewType(c.Extends))
		if err != nil {
			return spec, err
		}
	}
	for _, iface := range c.Implements {
		spec = spec.AddImplements(poet.NewType(iface))
	}

	for _, p := range c.Properties {
		prop, err := p.build()
		if err != nil {
			return spec, err
		}
		spec = spec.AddProperties(prop)
	}

	if c.Constructor != nil {
		ctor, err := c.Constructor.build(true)
		if err != nil {
			return spec, err
		}
		spec, err = spec.WithConstructor(&ctor)
		if err != nil {
			return spec, err
		}
	}
	for i, o := range c.ConstructorOverloads {
		if o.Body != "" {
			return spec, errors.NewInvalidManifestError(
				"constructor overload %d: overloads are bare signatures and must not carry a body", i)
		}
		overload, err := o.build(false)
		if err != nil {
			return spec, err
		}
		spec, err = spec.AddConstructorOverload(overload)
		if err != nil {
			return spec, err
		}
	}

	for _, mtd := range c.Methods {
		fn, err := mtd.build()
		if err != nil {
			return spec, err
		}
		spec, err = spec.AddFunctions(fn)
		if err != nil {
			return spec, err
		}
	}
	return spec, nil
}

func (p Property) build() (poet.PropertySpec, error) {
	if p.Name == "" || p.Type == "" {
		return poet.PropertySpec{}, errors.NewInvalidManifestError(
			"property %q: name and type are required", p.Name)
	}
	prop := poet.NewProperty(p.Name, poet.NewType(p.Type))
	if p.Optional {
		prop = prop.AsOptional()
	}
	mods, err := parseModifiers(p.Modifiers)
	if err != nil {
		return prop, errors.Wrapf(err, "property %s", p.Name)
	}
	prop = prop.WithAddedModifiers(mods...)
	if p.Initializer != "" {
		prop = prop.WithInitializer("%L", p.Initializer)
	}
	if p.Doc != "" {
		prop = prop.WithDoc("%L", p.Doc)
	}
	for _, d := range p.Decorators {
		prop = prop.AddDecorators(buildDecorator(d))
	}
	return prop, nil
}

// build assembles a constructor spec. Only the primary constructor gets
// a body; withBody false yields a bare overload signature.
func (c Constructor) build(withBody bool) (poet.FunctionSpec, error) {
	fn := poet.NewConstructor()
	mods, err := parseModifiers(c.Modifiers)
	if err != nil {
		return fn, errors.Wrap(err, "constructor")
	}
	fn = fn.AddModifiers(mods...)
	for _, d := range c.Decorators {
		fn = fn.AddDecorators(buildDecorator(d))
	}
	fn, err = addParameters(fn, c.Parameters, c.Rest)
	if err != nil {
		return fn, errors.Wrap(err, "constructor")
	}
	if withBody {
		fn = fn.WithBody(poet.BlockOf("%L", c.Body))
	}
	return fn, nil
}

func (m Method) build() (poet.FunctionSpec, error) {
	if m.Name == "" {
		return poet.FunctionSpec{}, errors.NewInvalidManifestError("method: name is required")
	}
	fn := poet.NewFunction(m.Name)
	if m.Doc != "" {
		fn = fn.WithDoc("%L", m.Doc)
	}
	mods, err := parseModifiers(m.Modifiers)
	if err != nil {
		return fn, errors.Wrapf(err, "method %s", m.Name)
	}
	fn = fn.AddModifiers(mods...)
	for _, tp := range m.TypeParameters {
		v := poet.NewTypeVariable(tp.Name)
		if tp.Extends != "" {
			v = v.WithBound(poet.NewType(tp.Extends))
		}
		fn = fn.AddTypeVariables(v)
	}
	for _, d := range m.Decorators {
		fn = fn.AddDecorators(buildDecorator(d))
	}
	if m.ReturnType != "" {
		fn = fn.WithReturnType(poet.NewType(m.ReturnType))
	}
	fn, err = addParameters(fn, m.Parameters, m.Rest)
	if err != nil {
		return fn, errors.Wrapf(err, "method %s", m.Name)
	}
	if m.Body != "" {
		fn = fn.WithBody(poet.BlockOf("%L", m.Body))
	}
	return fn, nil
}

func addParameters(fn poet.FunctionSpec, params []Parameter, rest *Parameter) (poet.FunctionSpec, error) {
	for _, p := range params {
		param, err := p.build()
		if err != nil {
			return fn, err
		}
		fn = fn.AddParameters(param)
	}
	if rest != nil {
		param, err := rest.build()
		if err != nil {
			return fn, err
		}
		fn = fn.WithRestParameter(param)
	}
	return fn, nil
}

func (p Parameter) build() (poet.ParameterSpec, error) {
	if p.Name == "" || p.Type == "" {
		return poet.ParameterSpec{}, errors.NewInvalidManifestError(
			"parameter %q: name and type are required", p.Name)
	}
	param := poet.NewParameter(p.Name, poet.NewType(p.Type))
	if p.Optional {
		param = param.AsOptional()
	}
	mods, err := parseModifiers(p.Modifiers)
	if err != nil {
		return param, errors.Wrapf(err, "parameter %s", p.Name)
	}
	param = param.WithAddedModifiers(mods...)
	if p.Default != "" {
		param = param.WithDefault("%L", p.Default)
	}
	return param, nil
}

func buildDecorator(d Decorator) poet.DecoratorSpec {
	spec := poet.NewDecorator(d.Name)
	for _, a := range d.Arguments {
		spec = spec.AddArgument("%L", a)
	}
	return spec
}

var knownModifiers = map[string]poet.Modifier{
	"export":    poet.ModifierExport,
	"declare":   poet.ModifierDeclare,
	"abstract":  poet.ModifierAbstract,
	"public":    poet.ModifierPublic,
	"protected": poet.ModifierProtected,
	"private":   poet.ModifierPrivate,
	"readonly":  poet.ModifierReadonly,
	"static":    poet.ModifierStatic,
	"async":     poet.ModifierAsync,
	"get":       poet.ModifierGet,
	"set":       poet.ModifierSet,
}

func parseModifiers(names []string) ([]poet.Modifier, error) {
	if len(names) == 0 {
		return nil, nil
	}
	mods := make([]poet.Modifier, 0, len(names))
	for _, n := range names {
		m, ok := knownModifiers[n]
		if !ok {
			return nil, errors.NewInvalidManifestError("unknown modifier %q", n)
		}
		mods = append(mods, m)
	}
	return mods, nil
}
