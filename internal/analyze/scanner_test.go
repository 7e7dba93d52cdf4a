package analyze

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"valueobject-generator/internal/config"
	"valueobject-generator/internal/engine"
)

// parseTestPackage builds a syntax-only package from inline source. Type
// checker facts are absent, so qualifier resolution exercises the file
// import table fallback.
func parseTestPackage(t *testing.T, src string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "fixture.go", src, parser.ParseComments)
	require.NoError(t, err)

	return &packages.Package{
		Name:   file.Name.Name,
		Fset:   fset,
		Syntax: []*ast.File{file},
	}
}

func TestFindTargets(t *testing.T) {
	t.Parallel()

	pkg := parseTestPackage(t, `package fixtures

// Email is a validated address.
//
//valueobject:error_type=ValidationError load_fn=NewEmail
type Email struct {
	value string
}

// Plain carries no directive and is ignored.
type Plain struct {
	value string
}

//valueobject:error_type=RangeError load_fn=NewPort json=false
type Port struct {
	value uint16
}
`)

	targets := FindTargets(pkg, "")
	require.Len(t, targets, 2)

	email := targets[0]
	require.NoError(t, email.DirectiveErr)
	assert.Equal(t, "Email", email.Desc.Name)
	assert.Equal(t, "fixtures", email.PkgName)
	assert.Equal(t, "ValidationError", email.Directive.ErrorType)
	assert.Equal(t, "NewEmail", email.Directive.LoadFn)
	assert.Equal(t, "fixture.go", email.Pos.Filename)
	assert.Positive(t, email.Pos.Line)

	port := targets[1]
	assert.Equal(t, "Port", port.Desc.Name)
	require.NotNil(t, port.Directive.JSON)
	assert.False(t, *port.Directive.JSON)
}

func TestFindTargets_NameFilter(t *testing.T) {
	t.Parallel()

	pkg := parseTestPackage(t, `package fixtures

//valueobject:error_type=E load_fn=F
type A struct{ v string }

//valueobject:error_type=E load_fn=F
type B struct{ v string }
`)

	targets := FindTargets(pkg, "B")
	require.Len(t, targets, 1)
	assert.Equal(t, "B", targets[0].Desc.Name)

	assert.Empty(t, FindTargets(pkg, "Missing"))
}

func TestFindTargets_GroupedDecl(t *testing.T) {
	t.Parallel()

	// The directive sits on the grouped declaration, not the spec itself.
	pkg := parseTestPackage(t, `package fixtures

//valueobject:error_type=E load_fn=F
type (
	Token struct{ v string }
)
`)

	targets := FindTargets(pkg, "")
	require.Len(t, targets, 1)
	assert.Equal(t, "Token", targets[0].Desc.Name)
	assert.Equal(t, "E", targets[0].Directive.ErrorType)
}

func TestFindTargets_MalformedDirective(t *testing.T) {
	t.Parallel()

	pkg := parseTestPackage(t, `package fixtures

//valueobject:frobnicate=yes
type Broken struct{ v string }
`)

	targets := FindTargets(pkg, "")
	require.Len(t, targets, 1)

	var cfgErr *config.ConfigurationError
	require.ErrorAs(t, targets[0].DirectiveErr, &cfgErr)
}

func TestBuildDescriptor_Shapes(t *testing.T) {
	t.Parallel()

	pkg := parseTestPackage(t, `package fixtures

//valueobject:error_type=E load_fn=F
type Single struct{ value string }

//valueobject:error_type=E load_fn=F
type Multi struct {
	host string
	port uint16
}

//valueobject:error_type=E load_fn=F
type Wrapped struct{ string }

//valueobject:error_type=E load_fn=F
type Empty struct{}

//valueobject:error_type=E load_fn=F
type Status int

//valueobject:error_type=E load_fn=F
type Reader interface{ Read() }

//valueobject:error_type=E load_fn=F
type Box[T any] struct{ value T }
`)

	targets := FindTargets(pkg, "")
	byName := make(map[string]*engine.TypeDescriptor, len(targets))
	for _, target := range targets {
		byName[target.Desc.Name] = target.Desc
	}
	require.Len(t, byName, 7)

	single := byName["Single"]
	assert.Equal(t, engine.ShapeStruct, single.Shape)
	assert.Equal(t, engine.FieldsNamed, single.Style)
	require.Len(t, single.Fields, 1)
	assert.Equal(t, "value", single.Fields[0].Name)
	assert.Equal(t, "string", single.Fields[0].Type.Code)

	multi := byName["Multi"]
	assert.Equal(t, engine.FieldsNamed, multi.Style)
	assert.Len(t, multi.Fields, 2)

	wrapped := byName["Wrapped"]
	assert.Equal(t, engine.FieldsEmbedded, wrapped.Style)
	require.Len(t, wrapped.Fields, 1)
	assert.Empty(t, wrapped.Fields[0].Name)

	empty := byName["Empty"]
	assert.Equal(t, engine.FieldsNone, empty.Style)
	assert.Empty(t, empty.Fields)

	assert.Equal(t, engine.ShapeEnum, byName["Status"].Shape)
	assert.Equal(t, engine.ShapeUnion, byName["Reader"].Shape)
	assert.Equal(t, []string{"T"}, byName["Box"].TypeParams)
}

func TestBuildDescriptor_SharedNames(t *testing.T) {
	t.Parallel()

	// "x, y int" flattens to one field per declared name.
	pkg := parseTestPackage(t, `package fixtures

//valueobject:error_type=E load_fn=F
type Point struct{ x, y int }
`)

	targets := FindTargets(pkg, "")
	require.Len(t, targets, 1)
	fields := targets[0].Desc.Fields
	require.Len(t, fields, 2)
	assert.Equal(t, "x", fields[0].Name)
	assert.Equal(t, "y", fields[1].Name)
}

func TestBuildDescriptor_QualifiedFieldType(t *testing.T) {
	t.Parallel()

	pkg := parseTestPackage(t, `package fixtures

import "net"

//valueobject:error_type=E load_fn=F
type Loopback struct{ addr net.IP }
`)

	targets := FindTargets(pkg, "")
	require.Len(t, targets, 1)

	field := targets[0].Desc.Fields[0]
	assert.Equal(t, "net.IP", field.Type.Code)
	assert.Equal(t, []engine.ImportSpec{{Path: "net"}}, field.Type.Imports)
}

func TestBuildDescriptor_AliasedFieldType(t *testing.T) {
	t.Parallel()

	pkg := parseTestPackage(t, `package fixtures

import stdnet "net"

//valueobject:error_type=E load_fn=F
type Loopback struct{ addr stdnet.IP }
`)

	targets := FindTargets(pkg, "")
	require.Len(t, targets, 1)

	field := targets[0].Desc.Fields[0]
	assert.Equal(t, "stdnet.IP", field.Type.Code)
	assert.Equal(t, []engine.ImportSpec{{Alias: "stdnet", Path: "net"}}, field.Type.Imports)
}

func TestEngineOptions(t *testing.T) {
	t.Parallel()

	pkg := parseTestPackage(t, `package fixtures

import "example.com/shared/apperr"

//valueobject:error_type=apperr.Validation load_fn=NewEmail
type Email struct{ value string }
`)

	targets := FindTargets(pkg, "")
	require.Len(t, targets, 1)
	target := targets[0]
	require.NoError(t, target.DirectiveErr)

	opts := target.EngineOptions(target.Directive)
	assert.Equal(t, "apperr.Validation", opts.ErrorType.Code)
	assert.Equal(t, []engine.ImportSpec{{Path: "example.com/shared/apperr"}}, opts.ErrorType.Imports)
	assert.Equal(t, "NewEmail", opts.LoadFn.Code)
	assert.Empty(t, opts.LoadFn.Imports)
	assert.Equal(t, "encoding/json", opts.JSONPath)
	assert.Equal(t, "json", opts.JSONIdent)
}

func TestEngineOptions_QualifiedLoadFn(t *testing.T) {
	t.Parallel()

	pkg := parseTestPackage(t, `package fixtures

import "example.com/shared/validators"

//valueobject:error_type=ValidationError load_fn=validators.NewEmail
type Email struct{ value string }
`)

	targets := FindTargets(pkg, "")
	require.Len(t, targets, 1)
	target := targets[0]
	require.NoError(t, target.DirectiveErr)

	opts := target.EngineOptions(target.Directive)
	assert.Equal(t, "validators.NewEmail", opts.LoadFn.Code)
	assert.Equal(t, []engine.ImportSpec{{Path: "example.com/shared/validators"}}, opts.LoadFn.Imports)
	assert.Empty(t, opts.ErrorType.Imports)
}

func TestEngineOptions_CustomNamespace(t *testing.T) {
	t.Parallel()

	pkg := parseTestPackage(t, `package fixtures

//valueobject:error_type=E load_fn=F json_pkg=jsoniter=github.com/json-iterator/go
type Email struct{ value string }
`)

	targets := FindTargets(pkg, "")
	require.Len(t, targets, 1)
	target := targets[0]
	require.NoError(t, target.DirectiveErr)

	opts := target.EngineOptions(target.Directive)
	assert.Equal(t, "github.com/json-iterator/go", opts.JSONPath)
	assert.Equal(t, "jsoniter", opts.JSONIdent)
}

func TestTypeRef_UnresolvableQualifier(t *testing.T) {
	t.Parallel()

	pkg := parseTestPackage(t, `package fixtures

//valueobject:error_type=apperr.Validation load_fn=F
type Email struct{ value string }
`)

	targets := FindTargets(pkg, "")
	require.Len(t, targets, 1)

	// The qualifier has no matching import; the code is kept verbatim and
	// the compile failure surfaces in the generated file instead.
	opts := targets[0].EngineOptions(targets[0].Directive)
	assert.Equal(t, "apperr.Validation", opts.ErrorType.Code)
	assert.Empty(t, opts.ErrorType.Imports)
}
