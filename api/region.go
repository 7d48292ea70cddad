// File: api/region.go
// Author: momentics <momentics@gmail.com>
//
// External-buffer abstraction and the closed set of element variants.
//
// Regions may be native-backed (stable address, safe to alias) or backed by
// managed memory with no fixed native address (must be copied). Constructors
// consult Addr to decide between the two.

package api

// Region describes an external buffer a handle can be built from.
type Region interface {
	// Bytes returns the region's backing bytes, one element per byte.
	Bytes() []byte

	// Addr returns the region's stable native address, or 0 when the
	// backing storage has no fixed native location and must not be aliased.
	Addr() uintptr

	// Position returns the region's logical read position, in elements.
	Position() int64

	// Limit returns the region's logical limit, in elements.
	Limit() int64
}

// Kind names the element variants of the native buffer family. The set is
// closed: each variant declares a fixed element size, and shared operations
// dispatch over this set rather than over open-ended subtyping.
type Kind int

const (
	Bool Kind = iota
	Byte
	Short
	Int
	Long
	Float
	Double
)

// Size returns the fixed element size of the variant, in bytes.
func (k Kind) Size() int64 {
	switch k {
	case Bool, Byte:
		return 1
	case Short:
		return 2
	case Int, Float:
		return 4
	case Long, Double:
		return 8
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Byte:
		return "byte"
	case Short:
		return "short"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}
