package operation

// Type represents the type of a logical key operation.
type Type int

const (
	// TypeGet represents loading a key's value.
	TypeGet Type = iota
	// TypeSet represents creating or overwriting a key.
	TypeSet
	// TypeDelete represents removing a key.
	TypeDelete
	// TypeRename represents renaming a key.
	TypeRename
)

func (t Type) String() string {
	switch t {
	case TypeGet:
		return "Get"
	case TypeSet:
		return "Set"
	case TypeDelete:
		return "Delete"
	case TypeRename:
		return "Rename"
	default:
		return "Unknown"
	}
}
