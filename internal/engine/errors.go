package engine

import "fmt"

// ShapeErrorKind discriminates the ways a declaration can be ineligible.
type ShapeErrorKind int

const (
	// GenericsNotAllowed: the declaration has type parameters.
	GenericsNotAllowed ShapeErrorKind = iota
	// UnsupportedShape: the declaration is not a struct.
	UnsupportedShape
	// EmptyShape: the struct has no fields.
	EmptyShape
	// FieldCount: the struct has more or fewer than one field.
	FieldCount
)

// ShapeError reports why a type declaration is not an eligible value object.
// The message always names the offending type.
type ShapeError struct {
	Kind     ShapeErrorKind
	TypeName string
	// Shape is the offending shape name for UnsupportedShape.
	Shape string
	// Fields is the observed field count for FieldCount.
	Fields int
}

func (e *ShapeError) Error() string {
	switch e.Kind {
	case GenericsNotAllowed:
		return fmt.Sprintf("value object %s: type parameters are not allowed", e.TypeName)
	case UnsupportedShape:
		return fmt.Sprintf("value object %s: %s types are not supported", e.TypeName, e.Shape)
	case EmptyShape:
		return fmt.Sprintf("value object %s: struct has no fields", e.TypeName)
	case FieldCount:
		return fmt.Sprintf("value object %s: expected exactly one field, got %d", e.TypeName, e.Fields)
	default:
		return fmt.Sprintf("value object %s: ineligible declaration", e.TypeName)
	}
}
