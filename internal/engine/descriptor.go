package engine

import "strings"

// Shape classifies a type declaration structurally.
type Shape int

const (
	// ShapeStruct is a struct type declaration.
	ShapeStruct Shape = iota
	// ShapeEnum is a defined non-struct, non-interface type declaration
	// (the usual Go enum idiom, `type Color int`).
	ShapeEnum
	// ShapeUnion is an interface type declaration.
	ShapeUnion
)

// String returns the shape name used in error messages.
func (s Shape) String() string {
	switch s {
	case ShapeStruct:
		return "struct"
	case ShapeEnum:
		return "enum"
	case ShapeUnion:
		return "union"
	default:
		return "unknown"
	}
}

// FieldStyle classifies how a struct declares its fields.
type FieldStyle int

const (
	// FieldsNone is a struct with an empty field list.
	FieldsNone FieldStyle = iota
	// FieldsNamed is a struct with named fields. A struct mixing named and
	// embedded entries is classified as named; its field count still covers
	// every entry.
	FieldsNamed
	// FieldsEmbedded is a struct whose entries are all embedded types.
	FieldsEmbedded
)

// TypeExpr is a rendered type expression plus the imports it references.
// Code is the expression as it appears at the declaration site, e.g.
// "string", "[]byte" or "time.Duration".
type TypeExpr struct {
	Code    string
	Imports []ImportSpec
}

// Field is a single struct field. Name is empty for embedded fields.
type Field struct {
	Name string
	Type TypeExpr
}

// Accessor returns the selector generated code uses to reach the field:
// the field name, or the base identifier of an embedded type.
func (f Field) Accessor() string {
	if f.Name != "" {
		return f.Name
	}
	code := strings.TrimPrefix(f.Type.Code, "*")
	if i := strings.LastIndexByte(code, '.'); i >= 0 {
		code = code[i+1:]
	}
	return code
}

// TypeDescriptor is the structural description of one type declaration as
// seen by the engine. It carries no AST or go/types state, so engine results
// are a pure function of the descriptor and the options.
type TypeDescriptor struct {
	// Name of the declared type.
	Name string
	// TypeParams holds the names of declared type parameters, if any.
	TypeParams []string
	// Shape of the declaration.
	Shape Shape
	// Style of the struct field list. Meaningful only for ShapeStruct.
	Style FieldStyle
	// Fields of the struct, one entry per declared field name (or per
	// embedded type). Meaningful only for ShapeStruct.
	Fields []Field
}
