package fragment

import (
	"cmp"
	"math"
	"slices"
	"strconv"

	"github.com/maruel/natural"
)

// Fragment is one source file contributing a segment of the output.
type Fragment struct {
	Name    string // base filename
	Path    string // path the fragment is read from
	Order   int    // sequencing key, see OrderKey
	Content []byte // nil until read
}

// Comparator orders two fragments like cmp.Compare.
type Comparator func(a, b Fragment) int

// OrderKey returns the integer value of the leading ASCII digits of name.
// Names without leading digits have order 0. A prefix too large for int
// saturates at math.MaxInt.
func OrderKey(name string) int {
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(name[:end])
	if err != nil {
		return math.MaxInt
	}
	return n
}

// ByOrder compares fragments by Order only. Used with a stable sort, ties
// keep their listing order.
func ByOrder(a, b Fragment) int {
	return cmp.Compare(a.Order, b.Order)
}

// ByOrderNatural compares by Order, then by natural filename order so that
// "3-a2.md" sorts before "3-a10.md".
func ByOrderNatural(a, b Fragment) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	switch {
	case natural.Less(a.Name, b.Name):
		return -1
	case natural.Less(b.Name, a.Name):
		return 1
	default:
		return 0
	}
}

// Sort stable-sorts fragments in place. A nil comparator means ByOrder.
func Sort(frags []Fragment, compare Comparator) {
	if compare == nil {
		compare = ByOrder
	}
	slices.SortStableFunc(frags, compare)
}

// Strategy names a built-in ordering.
type Strategy string

const (
	// StrategyPrefix orders by filename prefix; ties keep listing order.
	StrategyPrefix Strategy = "prefix"
	// StrategyNatural orders by filename prefix, ties by natural filename order.
	StrategyNatural Strategy = "natural"
	// StrategyManifest orders by an explicit manifest file.
	StrategyManifest Strategy = "manifest"
)

// Strategies returns all valid strategy names.
func Strategies() []Strategy {
	return []Strategy{StrategyPrefix, StrategyNatural, StrategyManifest}
}

// IsValid reports whether s is a known strategy.
func (s Strategy) IsValid() bool {
	return slices.Contains(Strategies(), s)
}

// Comparator returns the comparator for filename-based strategies.
// StrategyManifest needs a loaded manifest and is resolved by the caller;
// asking for it here returns ErrInvalidStrategy.
func (s Strategy) Comparator() (Comparator, error) {
	switch s {
	case StrategyPrefix, "":
		return ByOrder, nil
	case StrategyNatural:
		return ByOrderNatural, nil
	default:
		return nil, ErrInvalidStrategy
	}
}
