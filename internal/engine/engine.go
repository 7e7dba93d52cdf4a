// Package engine decides whether a type declaration is an eligible value
// object and synthesizes the requested capability units for it.
//
// The whole package is a pure function of (TypeDescriptor, Options): no
// state survives an invocation, identical inputs produce identical unit
// lists, and callers may generate for independent declarations in parallel.
package engine

// generators lists the capability generators in their fixed invocation
// order. The order is an external contract: emitted text is concatenated in
// exactly this sequence.
var generators = []func(*Context) (*Unit, error){
	GenerateSerialization,
	GenerateDisplay,
	GenerateConversion,
	GenerateParse,
}

// Generate validates the descriptor and runs the capability generators in
// the fixed order serialization, display, conversion, parse. The result is
// all-or-nothing: a rejected descriptor or a failing generator returns the
// error alone, discarding any units already produced. Disabled capabilities
// contribute no unit.
func Generate(desc *TypeDescriptor, opts *Options) ([]Unit, error) {
	ctx, err := NewContext(desc, opts)
	if err != nil {
		return nil, err
	}

	var units []Unit
	for _, generate := range generators {
		unit, err := generate(ctx)
		if err != nil {
			return nil, err
		}
		if unit != nil {
			units = append(units, *unit)
		}
	}
	return units, nil
}
