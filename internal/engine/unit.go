package engine

// UnitKind tags a generated unit with the capability it implements.
type UnitKind int

const (
	// UnitSerialization is the MarshalJSON/UnmarshalJSON pair.
	UnitSerialization UnitKind = iota
	// UnitDisplay is the String method.
	UnitDisplay
	// UnitConversion is the <Name>From constructor.
	UnitConversion
	// UnitParse is the Parse<Name> function.
	UnitParse
)

func (k UnitKind) String() string {
	switch k {
	case UnitSerialization:
		return "serialization"
	case UnitDisplay:
		return "display"
	case UnitConversion:
		return "conversion"
	case UnitParse:
		return "parse"
	default:
		return "unknown"
	}
}

// ImportSpec is one import required by a generated unit. Alias is empty when
// the default package identifier is used.
type ImportSpec struct {
	Alias string
	Path  string
}

// Unit is one self-contained code fragment implementing a single capability
// for a single value object type. Source holds top-level Go declarations
// without package clause or imports; the renderer supplies those.
type Unit struct {
	Kind    UnitKind
	Source  string
	Imports []ImportSpec
}
