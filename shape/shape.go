// Package shape holds the catalog of piece geometries.
package shape

import "fmt"

// Kind identifies a piece geometry.
type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
	F
	C
	numKinds
)

// Kinds lists every catalog entry.
var Kinds = []Kind{I, O, T, S, Z, J, L, F, C}

// DefaultPool is the weighted spawn pool. F and C appear three times each,
// so they are three times as likely as the other kinds.
var DefaultPool = []Kind{I, O, T, S, Z, J, L, F, F, C, C, F, C}

var kindNames = [numKinds]string{"I", "O", "T", "S", "Z", "J", "L", "F", "C"}

var catalog = [numKinds][][]bool{
	I: {{true, true, true, true}},
	O: {{true, true}, {true, true}},
	T: {{false, true, false}, {true, true, true}},
	S: {{false, true, true}, {true, true, false}},
	Z: {{true, true, false}, {false, true, true}},
	J: {{true, false, false}, {true, true, true}},
	L: {{false, false, true}, {true, true, true}},
	F: {{true, true, false}, {false, true, true}},
	C: {{true, false, false}, {true, true, true}},
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Geometry returns a copy of the catalog geometry for k.
func Geometry(k Kind) [][]bool {
	src := catalog[k]
	out := make([][]bool, len(src))
	for i := range src {
		out[i] = make([]bool, len(src[i]))
		copy(out[i], src[i])
	}
	return out
}

// Parse returns the kind with the given catalog name.
func Parse(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// ParsePool converts catalog names into a spawn pool.
func ParsePool(names []string) ([]Kind, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("empty spawn pool")
	}
	pool := make([]Kind, 0, len(names))
	for _, name := range names {
		k, err := Parse(name)
		if err != nil {
			return nil, err
		}
		pool = append(pool, k)
	}
	return pool, nil
}

// Names is the inverse of ParsePool.
func Names(pool []Kind) []string {
	out := make([]string, len(pool))
	for i, k := range pool {
		out[i] = k.String()
	}
	return out
}
