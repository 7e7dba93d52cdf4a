package engine

import "valueobject-generator/internal/common"

// Validate checks that a descriptor is an eligible value object: no type
// parameters, struct shape, exactly one field. Rules are checked in a fixed
// order and the first violation wins, so diagnostics are deterministic.
func Validate(desc *TypeDescriptor) error {
	if !common.IsEmpty(desc.TypeParams) {
		return &ShapeError{Kind: GenericsNotAllowed, TypeName: desc.Name}
	}
	if desc.Shape != ShapeStruct {
		return &ShapeError{Kind: UnsupportedShape, TypeName: desc.Name, Shape: desc.Shape.String()}
	}
	if desc.Style == FieldsNone || common.IsEmpty(desc.Fields) {
		return &ShapeError{Kind: EmptyShape, TypeName: desc.Name}
	}
	if !common.IsSingle(desc.Fields) {
		return &ShapeError{Kind: FieldCount, TypeName: desc.Name, Fields: len(desc.Fields)}
	}
	return nil
}
