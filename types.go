package dlxcc

// Kind distinguishes a primary item, which must be covered exactly once,
// from a secondary item, which may be covered at most once per color.
type Kind uint8

const (
	Primary Kind = iota + 1
	Secondary
)

func (k Kind) String() string {
	switch k {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Item is a single entry in the universe to be covered.
type Item[I comparable] struct {
	ID   I
	Kind Kind
}

// Constraint is one element of a subset: either a bare primary item or a
// secondary item tagged with a color. Build with Prim or Sec.
type Constraint[I comparable] struct {
	item    I
	color   int
	colored bool
}

// Prim builds a constraint on a primary item.
func Prim[I comparable](item I) Constraint[I] {
	return Constraint[I]{item: item}
}

// Sec builds a constraint on a secondary item with the given color. Colors
// are an opaque non-negative tag; two subsets may cover the same secondary
// item only if they agree on its color.
func Sec[I comparable](item I, color int) Constraint[I] {
	return Constraint[I]{item: item, color: color, colored: true}
}

// Item is the constrained item's identifier.
func (c Constraint[I]) Item() I { return c.item }

// Color is the constraint's color and whether it carries one at all
// (false for constraints built with Prim).
func (c Constraint[I]) Color() (color int, ok bool) { return c.color, c.colored }

// Subset is a single named option: a non-empty ordered list of constraints.
type Subset[I comparable, N comparable] struct {
	Name        N
	Constraints []Constraint[I]
}
