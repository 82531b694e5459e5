package value

// Type identifies the variant of a Node.
type Type int

const (
	UndefinedType Type = iota
	StringType
	NumberType
	Int32Type
	Uint32Type
	ArrayType
	ObjectType
)

// String returns the variant name.
func (t Type) String() string {
	switch t {
	case UndefinedType:
		return "Undefined"
	case StringType:
		return "String"
	case NumberType:
		return "Number"
	case Int32Type:
		return "Int32"
	case Uint32Type:
		return "Uint32"
	case ArrayType:
		return "Array"
	case ObjectType:
		return "Object"
	default:
		return "<unknown type>"
	}
}

// IsLeaf reports whether nodes of this type never have children.
func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}
