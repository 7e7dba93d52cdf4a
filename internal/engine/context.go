package engine

// Context carries everything a generator needs for one eligible declaration:
// the descriptor, the decoded options and the resolved inner field. It can
// only be built through NewContext, which runs the eligibility checks, so a
// generator holding a Context never observes an ineligible descriptor.
type Context struct {
	Desc *TypeDescriptor
	Opts *Options

	// Inner is the declared type of the single field.
	Inner TypeExpr

	// Accessor is the selector generated code uses to reach the stored
	// value, e.g. "value" or the base name of an embedded type.
	Accessor string
}

// NewContext validates the descriptor, resolves its inner field and returns
// the generation context. The error is the same ShapeError Validate and
// Resolve report on their own.
func NewContext(desc *TypeDescriptor, opts *Options) (*Context, error) {
	if err := Validate(desc); err != nil {
		return nil, err
	}
	f, err := innerField(desc)
	if err != nil {
		return nil, err
	}
	return &Context{
		Desc:     desc,
		Opts:     opts,
		Inner:    f.Type,
		Accessor: f.Accessor(),
	}, nil
}
