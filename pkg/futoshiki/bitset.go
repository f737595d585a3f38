// Package futoshiki encodes Futoshiki boards as constraint satisfaction
// problems and provides the propagation algorithms used to prune variable
// domains during backtracking search.
//
// This file defines the BitSet used for variable domains. Values are
// 1-based indices in [1, n].
package futoshiki

import (
	"fmt"
	"math/bits"
	"strings"
)

// BitSet is a compact set of domain values backed by uint64 words.
// All operations are value-semantics: mutating operations return a new
// BitSet, leaving the receiver untouched.
type BitSet struct {
	n     int
	words []uint64
}

// NewBitSet returns a set containing every value in 1..n.
func NewBitSet(n int) BitSet {
	w := (n + 63) / 64
	bs := BitSet{n: n, words: make([]uint64, w)}
	for i := 0; i < n; i++ {
		bs.words[i/64] |= 1 << uint(i%64)
	}
	return bs
}

// NewBitSetFromValues returns a set over 1..n containing only the given
// values. Values outside [1, n] are ignored.
func NewBitSetFromValues(n int, values []int) BitSet {
	w := (n + 63) / 64
	bs := BitSet{n: n, words: make([]uint64, w)}
	for _, v := range values {
		if v >= 1 && v <= n {
			bs.words[(v-1)/64] |= 1 << uint((v-1)%64)
		}
	}
	return bs
}

// Clone returns a copy of the set.
func (b BitSet) Clone() BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return BitSet{n: b.n, words: words}
}

// Has reports whether v is in the set.
func (b BitSet) Has(v int) bool {
	if v < 1 || v > b.n {
		return false
	}
	return (b.words[(v-1)/64]>>uint((v-1)%64))&1 == 1
}

// Remove returns a new set without v.
func (b BitSet) Remove(v int) BitSet {
	if v < 1 || v > b.n {
		return b.Clone()
	}
	nb := b.Clone()
	nb.words[(v-1)/64] &^= 1 << uint((v-1)%64)
	return nb
}

// Add returns a new set that also contains v. Values outside [1, n] are
// ignored.
func (b BitSet) Add(v int) BitSet {
	nb := b.Clone()
	if v >= 1 && v <= b.n {
		nb.words[(v-1)/64] |= 1 << uint((v-1)%64)
	}
	return nb
}

// Count returns the number of values in the set.
func (b BitSet) Count() int {
	cnt := 0
	for _, w := range b.words {
		cnt += bits.OnesCount64(w)
	}
	return cnt
}

// IsSingleton reports whether the set holds exactly one value.
func (b BitSet) IsSingleton() bool { return b.Count() == 1 }

// SingletonValue returns the lowest value in the set, or -1 if empty.
func (b BitSet) SingletonValue() int {
	for i, w := range b.words {
		if w == 0 {
			continue
		}
		return i*64 + bits.TrailingZeros64(w) + 1
	}
	return -1
}

// IterateValues calls f for each value in ascending order.
func (b BitSet) IterateValues(f func(v int)) {
	for i, w := range b.words {
		for w != 0 {
			t := w & -w
			f(i*64 + bits.TrailingZeros64(w) + 1)
			w &^= t
		}
	}
}

// Values returns the set's contents as an ascending slice.
func (b BitSet) Values() []int {
	vals := make([]int, 0, b.Count())
	b.IterateValues(func(v int) { vals = append(vals, v) })
	return vals
}

// Equal reports whether both sets contain exactly the same values.
func (b BitSet) Equal(other BitSet) bool {
	if b.n != other.n || len(b.words) != len(other.words) {
		return false
	}
	for i := range b.words {
		if b.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation such as "{1,3,4}".
func (b BitSet) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	b.IterateValues(func(v int) {
		if !first {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "%d", v)
		first = false
	})
	sb.WriteString("}")
	return sb.String()
}
