package config

import (
	"strconv"
	"strings"
)

// DirectivePrefix marks a value object declaration. The directive is a
// comment line of the form
//
//	//valueobject:error_type=ValidationError load_fn=NewEmail json=false
//
// placed in the doc comment of the type declaration. Arguments are
// space-separated key=value pairs; values may be double-quoted.
const DirectivePrefix = "valueobject:"

// ParseDirective parses the argument portion of a valueobject directive
// into Options. Unknown keys and malformed values are configuration errors.
func ParseDirective(args string) (Options, error) {
	var opts Options
	for _, tok := range splitArgs(args) {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return Options{}, &ConfigurationError{Key: tok, Reason: "expected key=value"}
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "error_type":
			opts.ErrorType = value
		case "load_fn":
			opts.LoadFn = value
		case "json_pkg":
			opts.JSONPkg = value
		case "json", "stringer", "convert", "parse":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return Options{}, &ConfigurationError{Key: key, Reason: "expected a boolean, got " + strconv.Quote(value)}
			}
			switch key {
			case "json":
				opts.JSON = &b
			case "stringer":
				opts.Stringer = &b
			case "convert":
				opts.Convert = &b
			case "parse":
				opts.Parse = &b
			}
		default:
			return Options{}, &ConfigurationError{Key: key, Reason: "unknown key"}
		}
	}
	return opts, nil
}

// splitArgs splits the directive argument string on whitespace, keeping
// double-quoted values (which may contain spaces) intact.
func splitArgs(args string) []string {
	var out []string
	var cur strings.Builder
	inQuote := false
	for _, r := range args {
		switch {
		case r == '"':
			inQuote = !inQuote
			cur.WriteRune(r)
		case (r == ' ' || r == '\t') && !inQuote:
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
