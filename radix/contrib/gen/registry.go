package gen

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// ErrUnknownDistribution is returned by Lookup for unregistered names.
var ErrUnknownDistribution = errors.New("unknown distribution")

// SmallBound is the exclusive upper bound of the "small" distribution.
const SmallBound = 256

// Generator16 produces n 16-bit keys from a seed. Deterministic generators
// ignore the seed.
type Generator16 func(n int, seed uint64) []uint16

var distributions = map[string]Generator16{
	"uniform": Uniform16,
	"equal": func(n int, seed uint64) []uint16 {
		return AllEqual(n, uint16(seed))
	},
	"asc-sawtooth": func(n int, _ uint64) []uint16 {
		return AscSawtooth16(n)
	},
	"desc-sawtooth": func(n int, _ uint64) []uint16 {
		return DescSawtooth16(n)
	},
	"small": func(n int, seed uint64) []uint16 {
		return Bounded16(n, SmallBound, seed)
	},
	"zipf": Zipf16,
}

// Names returns the registered distribution names in sorted order.
func Names() []string {
	names := lo.Keys(distributions)
	slices.Sort(names)
	return names
}

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator16, error) {
	g, ok := distributions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownDistribution, name, Names())
	}
	return g, nil
}
