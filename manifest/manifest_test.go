package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tspoet/errors"
)

const pointManifest = `
classes:
  - name: Point
    properties:
      - name: x
        type: number
      - name: y
        type: number
    constructor:
      parameters:
        - name: x
          type: number
        - name: y
          type: number
      body: |
        this.x = x;
        this.y = y;
`

func TestBuildPromotesConstructorProperties(t *testing.T) {
	m, err := Parse([]byte(pointManifest))
	require.NoError(t, err)

	specs, err := m.Build()
	require.NoError(t, err)
	require.Len(t, specs, 1)

	expected := "public class Point {\n" +
		"\n" +
		"  constructor(public x: number, public y: number) {\n" +
		"  }\n" +
		"\n" +
		"}\n"
	assert.Equal(t, expected, specs[0].String())
}

func TestBuildFullyFeaturedClass(t *testing.T) {
	doc := `
classes:
  - name: Shape
    doc: Base shape type.
    modifiers: [export, abstract]
    extends: Entity
    implements: [Printable, Serializable]
    typeParameters:
      - name: T
        extends: Unit
    decorators:
      - name: Component
        arguments: ['{ selector: "shape" }']
    properties:
      - name: label
        type: string
        modifiers: [readonly]
      - name: area
        type: number
        optional: true
        initializer: "0"
    constructorOverloads:
      - parameters:
          - name: label
            type: string
    constructor:
      parameters:
        - name: label
          type: string
        - name: scale
          type: number
          optional: true
          default: "1"
      rest:
        name: tags
        type: string[]
      body: |
        this.label = label;
        this.tags = tags;
    methods:
      - name: print
        returnType: void
        body: |
          console.log(this.label);
      - name: describe
        modifiers: [abstract]
        returnType: string
`
	m, err := Parse([]byte(doc))
	require.NoError(t, err)

	specs, err := m.Build()
	require.NoError(t, err)
	require.Len(t, specs, 1)

	out := specs[0].String()
	assert.Contains(t, out, "/**\n * Base shape type.\n */")
	assert.Contains(t, out, "@Component({ selector: \"shape\" })")
	assert.Contains(t, out, "export abstract class Shape<T extends Unit> extends Entity implements Printable, Serializable {")
	// label is promoted with its readonly modifier, area stays a field
	assert.Contains(t, out, "public area?: number = 0;")
	assert.NotContains(t, out, "label: string;")
	assert.Contains(t, out, "public constructor(label: string);")
	assert.Contains(t, out, "constructor(readonly label: string, scale?: number = 1, ...tags: string[]) {")
	// tags assignment survives, label assignment is stripped
	assert.Contains(t, out, "this.tags = tags;")
	assert.NotContains(t, out, "this.label = label;")
	assert.Contains(t, out, "public print(): void {")
	assert.Contains(t, out, "abstract describe(): string;")
}

func TestBuildClassNameRequired(t *testing.T) {
	m, err := Parse([]byte("classes:\n  - doc: nameless\n"))
	require.NoError(t, err)

	_, err = m.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidManifestError(err))
	assert.Contains(t, err.Error(), "name is required")
}

func TestBuildUnknownModifier(t *testing.T) {
	m, err := Parse([]byte("classes:\n  - name: Foo\n    modifiers: [frozen]\n"))
	require.NoError(t, err)

	_, err = m.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidManifestError(err))
	assert.Contains(t, err.Error(), `unknown modifier "frozen"`)
	assert.Contains(t, err.Error(), "failed to build class Foo")
}

func TestBuildRejectsConstructorNamedMethod(t *testing.T) {
	doc := `
classes:
  - name: Foo
    methods:
      - name: constructor
        body: "super();"
`
	m, err := Parse([]byte(doc))
	require.NoError(t, err)

	_, err = m.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidSpecError(err))
	assert.Contains(t, err.Error(), "failed to build class Foo")
}

func TestBuildRejectsOverloadWithBody(t *testing.T) {
	doc := `
classes:
  - name: Foo
    constructorOverloads:
      - parameters:
          - name: n
            type: number
        body: "this.n = n;"
`
	m, err := Parse([]byte(doc))
	require.NoError(t, err)

	_, err = m.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidManifestError(err))
	assert.Contains(t, err.Error(), "must not carry a body")
}

func TestBuildPropertyRequiresNameAndType(t *testing.T) {
	doc := `
classes:
  - name: Foo
    properties:
      - name: x
`
	m, err := Parse([]byte(doc))
	require.NoError(t, err)

	_, err = m.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidManifestError(err))
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("classes: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pointManifest), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Classes, 1)
	assert.Equal(t, "Point", m.Classes[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestIndentField(t *testing.T) {
	m, err := Parse([]byte("indent: \"    \"\nclasses: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "    ", m.Indent)
	assert.Empty(t, m.Classes)
}
