package config

import (
	"fmt"
	"go/token"
	"strings"

	"valueobject-generator/internal/common"
)

// DefaultJSONPkg is the import path of the standard JSON support used when
// json_pkg is not configured.
const DefaultJSONPkg = "encoding/json"

// Options configures generation for one value object type.
//
// Boolean capability switches are tri-state pointers: nil means unset, in
// which case the documented default applies. ErrorType and LoadFn are
// required; everything else is optional.
type Options struct {
	// ErrorType is the failure type of the load function, e.g.
	// "ValidationError" or "apperr.Validation". Parse failures are
	// converted to it. A package qualifier is resolved against the
	// declaring file's imports.
	ErrorType string `yaml:"error_type,omitempty"`

	// LoadFn is the validating constructor: it accepts the inner value and
	// returns either the value object or a failure of ErrorType. May be
	// package-qualified like ErrorType.
	LoadFn string `yaml:"load_fn,omitempty"`

	// JSON enables the MarshalJSON/UnmarshalJSON unit. Default true.
	JSON *bool `yaml:"json,omitempty"`

	// JSONPkg is the import path of the JSON package used by the
	// serialization unit, optionally as "alias=import/path". The derived
	// identifier is spliced into the generated calls verbatim.
	JSONPkg string `yaml:"json_pkg,omitempty"`

	// Stringer enables the String() unit. Default true.
	Stringer *bool `yaml:"stringer,omitempty"`

	// Convert enables the <Name>From conversion unit. Default true.
	Convert *bool `yaml:"convert,omitempty"`

	// Parse enables the Parse<Name> unit. When unset the default depends on
	// the inner type: enabled for the primitive type names, disabled
	// otherwise.
	Parse *bool `yaml:"parse,omitempty"`
}

// JSONPackage returns the import path and package identifier of the
// configured JSON package.
func (o *Options) JSONPackage() (importPath, ident string) {
	spec := o.JSONPkg
	if spec == "" {
		spec = DefaultJSONPkg
	}
	if alias, rest, ok := strings.Cut(spec, "="); ok {
		return rest, alias
	}
	return spec, common.PkgAlias(spec)
}

// Validate checks the required keys and the well-formedness of the JSON
// package identifier. It must pass before generation begins.
func (o *Options) Validate() error {
	if o.ErrorType == "" {
		return &ConfigurationError{Key: "error_type", Reason: "required key is missing"}
	}
	if o.LoadFn == "" {
		return &ConfigurationError{Key: "load_fn", Reason: "required key is missing"}
	}
	if _, ident := o.JSONPackage(); !token.IsIdentifier(ident) {
		return &ConfigurationError{Key: "json_pkg", Reason: fmt.Sprintf("derived package identifier %q is not a valid Go identifier", ident)}
	}
	return nil
}

// Merge overlays other on top of o and returns the result: set fields of
// other win, unset fields fall through to o. Neither argument is modified.
func (o Options) Merge(other Options) Options {
	out := o
	if other.ErrorType != "" {
		out.ErrorType = other.ErrorType
	}
	if other.LoadFn != "" {
		out.LoadFn = other.LoadFn
	}
	if other.JSON != nil {
		out.JSON = other.JSON
	}
	if other.JSONPkg != "" {
		out.JSONPkg = other.JSONPkg
	}
	if other.Stringer != nil {
		out.Stringer = other.Stringer
	}
	if other.Convert != nil {
		out.Convert = other.Convert
	}
	if other.Parse != nil {
		out.Parse = other.Parse
	}
	return out
}
