package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedStruct(name string, fields ...Field) *TypeDescriptor {
	style := FieldsNamed
	if len(fields) == 0 {
		style = FieldsNone
	}
	return &TypeDescriptor{Name: name, Shape: ShapeStruct, Style: style, Fields: fields}
}

func stringField(name string) Field {
	return Field{Name: name, Type: TypeExpr{Code: "string"}}
}

func TestValidate_Eligible(t *testing.T) {
	t.Parallel()

	err := Validate(namedStruct("Email", stringField("value")))
	assert.NoError(t, err)

	embedded := &TypeDescriptor{
		Name:   "Handle",
		Shape:  ShapeStruct,
		Style:  FieldsEmbedded,
		Fields: []Field{{Type: TypeExpr{Code: "net.Conn", Imports: []ImportSpec{{Path: "net"}}}}},
	}
	assert.NoError(t, Validate(embedded))
}

func TestValidate_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		desc     *TypeDescriptor
		wantKind ShapeErrorKind
	}{
		{
			name: "type parameters",
			desc: &TypeDescriptor{
				Name:       "Box",
				TypeParams: []string{"T"},
				Shape:      ShapeStruct,
				Style:      FieldsNamed,
				Fields:     []Field{stringField("value")},
			},
			wantKind: GenericsNotAllowed,
		},
		{
			name:     "enum shape",
			desc:     &TypeDescriptor{Name: "Color", Shape: ShapeEnum},
			wantKind: UnsupportedShape,
		},
		{
			name:     "union shape",
			desc:     &TypeDescriptor{Name: "Node", Shape: ShapeUnion},
			wantKind: UnsupportedShape,
		},
		{
			name:     "empty struct",
			desc:     namedStruct("Nothing"),
			wantKind: EmptyShape,
		},
		{
			name:     "two named fields",
			desc:     namedStruct("Pair", stringField("a"), stringField("b")),
			wantKind: FieldCount,
		},
		{
			name: "two embedded fields",
			desc: &TypeDescriptor{
				Name:  "Mixed",
				Shape: ShapeStruct,
				Style: FieldsEmbedded,
				Fields: []Field{
					{Type: TypeExpr{Code: "Reader"}},
					{Type: TypeExpr{Code: "Writer"}},
				},
			},
			wantKind: FieldCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.desc)
			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tt.wantKind, shapeErr.Kind)
			assert.Contains(t, shapeErr.Error(), tt.desc.Name,
				"message must name the offending type")
		})
	}
}

func TestValidate_GenericsCheckedFirst(t *testing.T) {
	t.Parallel()

	// A generic enum fails on the generics rule, not the shape rule.
	desc := &TypeDescriptor{Name: "Either", TypeParams: []string{"L", "R"}, Shape: ShapeEnum}
	var shapeErr *ShapeError
	require.ErrorAs(t, Validate(desc), &shapeErr)
	assert.Equal(t, GenericsNotAllowed, shapeErr.Kind)
}

func TestValidate_ShapeNamesInMessages(t *testing.T) {
	t.Parallel()

	err := Validate(&TypeDescriptor{Name: "Color", Shape: ShapeEnum})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enum")

	err = Validate(&TypeDescriptor{Name: "Node", Shape: ShapeUnion})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "union")
}

func TestValidate_FieldCountInMessage(t *testing.T) {
	t.Parallel()

	err := Validate(namedStruct("Pair", stringField("a"), stringField("b")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2")
}
