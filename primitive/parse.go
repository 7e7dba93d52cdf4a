package primitive

import "fmt"

// ParseCall describes the strconv call that parses text into a value of a
// primitive kind. The call yields a value of TempType which the generated
// code converts to the declared inner type.
type ParseCall struct {
	// Expr is the call expression, e.g. `strconv.ParseInt(s, 10, 16)`.
	Expr string
	// TempType is the type returned by the call (bool, int64, uint64, float64).
	TempType string
}

// StrconvCall returns the parse call for kind k reading from the string
// variable src. The second result is false for kinds that need no strconv
// call: the zero Kind, KindString (used directly) and KindRune (parsed as a
// single character, not a number).
func (k Kind) StrconvCall(src string) (ParseCall, bool) {
	switch {
	case k == KindBool:
		return ParseCall{
			Expr:     fmt.Sprintf("strconv.ParseBool(%s)", src),
			TempType: "bool",
		}, true
	case k == KindRune:
		return ParseCall{}, false
	case k.IsSigned():
		return ParseCall{
			Expr:     fmt.Sprintf("strconv.ParseInt(%s, 10, %d)", src, k.Bits()),
			TempType: "int64",
		}, true
	case k.IsUnsigned():
		return ParseCall{
			Expr:     fmt.Sprintf("strconv.ParseUint(%s, 10, %d)", src, k.Bits()),
			TempType: "uint64",
		}, true
	case k.IsFloat():
		return ParseCall{
			Expr:     fmt.Sprintf("strconv.ParseFloat(%s, %d)", src, k.Bits()),
			TempType: "float64",
		}, true
	default:
		return ParseCall{}, false
	}
}
