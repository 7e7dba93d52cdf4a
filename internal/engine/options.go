package engine

// Options is the decoded per-type configuration consumed by the generators.
// The harness builds it from the raw configuration surface (directive
// arguments plus the optional YAML file), resolving type references into
// TypeExpr values with their imports attached.
//
// Capability switches are tri-state: nil means unset, in which case the
// documented default applies (true for serialization, display and
// conversion; computed from the inner type for parse).
type Options struct {
	// ErrorType is the failure type of the load function. Parse failures
	// are converted to it.
	ErrorType TypeExpr

	// LoadFn is the validating constructor applied to every decoded,
	// converted or parsed inner value. Like ErrorType it may be
	// package-qualified, with the import resolved by the harness.
	LoadFn TypeExpr

	// JSON enables the serialization unit.
	JSON *bool

	// JSONPath and JSONIdent name the JSON package the serialization unit
	// routes through. Zero values mean encoding/json. JSONIdent is spliced
	// into the generated calls verbatim.
	JSONPath  string
	JSONIdent string

	// Stringer enables the display unit.
	Stringer *bool

	// Convert enables the conversion unit.
	Convert *bool

	// Parse enables the parse unit.
	Parse *bool
}

func (o *Options) jsonEnabled() bool     { return o.JSON == nil || *o.JSON }
func (o *Options) stringerEnabled() bool { return o.Stringer == nil || *o.Stringer }
func (o *Options) convertEnabled() bool  { return o.Convert == nil || *o.Convert }

func (o *Options) parseEnabled(defaultOn bool) bool {
	if o.Parse == nil {
		return defaultOn
	}
	return *o.Parse
}

func (o *Options) jsonPackage() (path, ident string) {
	if o.JSONPath == "" {
		return "encoding/json", "json"
	}
	return o.JSONPath, o.JSONIdent
}
