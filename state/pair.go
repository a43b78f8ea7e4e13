package state

import (
	"cmp"
	"fmt"
	"slices"
)

type Pair[Ty1, Ty2 any] struct {
	V1 Ty1
	V2 Ty2
}

func (p Pair[Ty1, Ty2]) Join(sep string) string {
	return fmt.Sprintf("%v%s%v", p.V1, sep, p.V2)
}

// SortPairs orders pairs by V1, then by V2
func SortPairs[Ty1, Ty2 cmp.Ordered](pairs []Pair[Ty1, Ty2]) {
	slices.SortFunc(pairs, func(a, b Pair[Ty1, Ty2]) int {
		if c := cmp.Compare(a.V1, b.V1); c != 0 {
			return c
		}
		return cmp.Compare(a.V2, b.V2)
	})
}
