package engine

import "valueobject-generator/internal/common"

// Resolve returns the declared type of the descriptor's single field. It
// re-derives the shape and field-count checks itself rather than trusting a
// prior Validate call, so it is safe to invoke on its own; the error content
// is identical to Validate's.
func Resolve(desc *TypeDescriptor) (TypeExpr, error) {
	f, err := innerField(desc)
	if err != nil {
		return TypeExpr{}, err
	}
	return f.Type, nil
}

func innerField(desc *TypeDescriptor) (Field, error) {
	if desc.Shape != ShapeStruct {
		return Field{}, &ShapeError{Kind: UnsupportedShape, TypeName: desc.Name, Shape: desc.Shape.String()}
	}
	if !common.IsSingle(desc.Fields) {
		if desc.Style == FieldsNone || common.IsEmpty(desc.Fields) {
			return Field{}, &ShapeError{Kind: EmptyShape, TypeName: desc.Name}
		}
		return Field{}, &ShapeError{Kind: FieldCount, TypeName: desc.Name, Fields: len(desc.Fields)}
	}
	f, _ := common.First(desc.Fields)
	return f, nil
}
