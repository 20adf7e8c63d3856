package schema_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/finality/schema"
)

// TestLoad_FullDocument decodes a document exercising every declaration
// feature: bases, class seals, member kinds, and per-accessor marks.
func TestLoad_FullDocument(t *testing.T) {
	doc := `
classes:
  - name: Codec
    members:
      - name: encode
        final: true
      - name: decode
      - name: register
        kind: classmethod
      - name: magic
        kind: static
      - name: version
        kind: property
        getter: {final: true}
        setter: {}
  - name: JSONCodec
    bases: [Codec]
    final: true
`
	f, err := schema.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, f.Classes, 2)

	codec := f.Classes[0]
	assert.Equal(t, "Codec", codec.Name)
	assert.Empty(t, codec.Bases)
	assert.False(t, codec.Final)
	require.Len(t, codec.Members, 5)
	assert.Equal(t, "encode", codec.Members[0].Name)
	assert.True(t, codec.Members[0].Final)
	assert.Equal(t, "", codec.Members[1].Kind, "kind defaults to method")
	assert.Equal(t, "classmethod", codec.Members[2].Kind)
	assert.Equal(t, "static", codec.Members[3].Kind)

	version := codec.Members[4]
	assert.Equal(t, "property", version.Kind)
	require.NotNil(t, version.Getter)
	assert.True(t, version.Getter.Final)
	require.NotNil(t, version.Setter)
	assert.False(t, version.Setter.Final)
	assert.Nil(t, version.Deleter, "undeclared accessor stays absent")

	js := f.Classes[1]
	assert.Equal(t, []string{"Codec"}, js.Bases)
	assert.True(t, js.Final)
}

// TestLoad_EmptyInput verifies empty and comment-only inputs yield an
// empty, valid document.
func TestLoad_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "# nothing declared yet\n"} {
		f, err := schema.Load(strings.NewReader(in))
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Empty(t, f.Classes)
	}
}

// TestLoad_UnknownField verifies strict decoding: a typo in a field
// name is an error, not silence.
func TestLoad_UnknownField(t *testing.T) {
	doc := `
classes:
  - name: Codec
    finel: true
`
	f, err := schema.Load(strings.NewReader(doc))
	assert.Nil(t, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finel")
}

// TestLoad_MalformedYAML verifies syntax errors surface as decode errors.
func TestLoad_MalformedYAML(t *testing.T) {
	f, err := schema.Load(strings.NewReader("classes: ["))
	assert.Nil(t, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema: decode")
}

// TestLoad_UnknownKind verifies the kind vocabulary is closed.
func TestLoad_UnknownKind(t *testing.T) {
	doc := `
classes:
  - name: Codec
    members:
      - name: encode
        kind: procedure
`
	_, err := schema.Load(strings.NewReader(doc))
	assert.ErrorIs(t, err, schema.ErrUnknownKind)
}

// TestLoad_DuplicateClass verifies class names are unique per document.
func TestLoad_DuplicateClass(t *testing.T) {
	doc := `
classes:
  - name: Codec
  - name: Codec
`
	_, err := schema.Load(strings.NewReader(doc))
	assert.ErrorIs(t, err, schema.ErrDuplicateClass)
}

// TestLoad_DuplicateMember verifies member names are unique per class.
func TestLoad_DuplicateMember(t *testing.T) {
	doc := `
classes:
  - name: Codec
    members:
      - name: encode
      - name: encode
`
	_, err := schema.Load(strings.NewReader(doc))
	assert.ErrorIs(t, err, schema.ErrDuplicateMember)
}

// TestLoad_AccessorOnMethod verifies accessors are confined to
// properties.
func TestLoad_AccessorOnMethod(t *testing.T) {
	doc := `
classes:
  - name: Codec
    members:
      - name: encode
        getter: {final: true}
`
	_, err := schema.Load(strings.NewReader(doc))
	assert.ErrorIs(t, err, schema.ErrBadAccessor)
}

// TestLoad_PropertyWithoutAccessors verifies a property must declare at
// least one accessor.
func TestLoad_PropertyWithoutAccessors(t *testing.T) {
	doc := `
classes:
  - name: Codec
    members:
      - name: version
        kind: property
`
	_, err := schema.Load(strings.NewReader(doc))
	assert.ErrorIs(t, err, schema.ErrNoAccessors)
}

// TestLoad_EmptyNames verifies the empty-name guards for classes, bases,
// and members.
func TestLoad_EmptyNames(t *testing.T) {
	for _, doc := range []string{
		"classes:\n  - name: \"\"\n",
		"classes:\n  - name: Codec\n    bases: [\"\"]\n",
		"classes:\n  - name: Codec\n    members:\n      - name: \"\"\n",
	} {
		_, err := schema.Load(strings.NewReader(doc))
		assert.ErrorIs(t, err, schema.ErrEmptyName, "doc: %s", doc)
	}
}

// TestValidate_NilFile verifies the nil-document guard.
func TestValidate_NilFile(t *testing.T) {
	var f *schema.File
	assert.ErrorIs(t, f.Validate(), schema.ErrNilFile)
}

// TestLoadFile covers the file-path entry point and its error path.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hierarchy.yaml")
	doc := "classes:\n  - name: Codec\n    final: true\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	f, err := schema.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, f.Classes, 1)
	assert.True(t, f.Classes[0].Final)

	_, err = schema.LoadFile(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}
