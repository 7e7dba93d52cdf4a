package primitive

// Kind identifies one of the Go primitive type names for which textual
// parsing behavior is standard. Wrapper types over these kinds get a
// parse function generated by default; any other inner type requires an
// explicit opt-in.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindBool
	KindString
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindByte
	KindRune
	KindFloat32
	KindFloat64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// names maps the 17 primitive type names to their kinds. Matching is by
// rendered name only: a local type that happens to be called "string"
// would be classified as primitive. This is the documented policy, not
// an oversight.
var names = map[string]Kind{
	"bool":    KindBool,
	"string":  KindString,
	"int":     KindInt,
	"int8":    KindInt8,
	"int16":   KindInt16,
	"int32":   KindInt32,
	"int64":   KindInt64,
	"uint":    KindUint,
	"uint8":   KindUint8,
	"uint16":  KindUint16,
	"uint32":  KindUint32,
	"uint64":  KindUint64,
	"uintptr": KindUintptr,
	"byte":    KindByte,
	"rune":    KindRune,
	"float32": KindFloat32,
	"float64": KindFloat64,
}

// KindOf returns the primitive kind for a rendered type name, or the
// zero Kind when the name is not one of the 17 primitive names.
func KindOf(name string) Kind {
	return names[name]
}

// IsPrimitiveName reports whether name is one of the 17 primitive type names.
func IsPrimitiveName(name string) bool {
	_, ok := names[name]
	return ok
}

// GoName returns the Go type name for the kind, or "" for the zero Kind.
func (k Kind) GoName() string {
	for name, kind := range names {
		if kind == k {
			return name
		}
	}
	return ""
}

func (k Kind) String() string { return k.GoName() }

func (k Kind) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindUintptr, KindByte, KindRune:
		return true
	}
}

func (k Kind) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64, KindRune:
		return true
	}
}

func (k Kind) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindUintptr, KindByte:
		return true
	}
}

func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Bits returns the bit size argument for the matching strconv parse call.
// Zero means the platform-dependent size of int, uint and uintptr.
func (k Kind) Bits() int {
	switch k {
	default:
		panic("no strconv bit size for kind: " + k.GoName())
	case KindInt, KindUint, KindUintptr:
		return 0
	case KindInt8, KindUint8, KindByte:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindRune:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}
