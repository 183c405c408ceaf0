package ecs

import (
	"math/bits"
	"reflect"
	"slices"
)

const layoutWordBits = 64

// Layout is a bitset over the owning registry's component bit positions,
// representing "the set of component types present". Layouts created from
// the same type set always compare equal by hash, regardless of the order
// the types were registered in.
type Layout struct {
	registry *TypeRegistry
	words    []uint64
	count    int
	hash     uint64
	hashOK   bool
}

// NewLayout returns an empty layout bound to the given registry.
func NewLayout(registry *TypeRegistry) *Layout {
	return &Layout{registry: registry}
}

// Register sets the bit for each component type, assigning a fresh registry
// bit position for types encountered for the first time. Registering a type
// that is already present is a no-op.
func (l *Layout) Register(types ...reflect.Type) {
	for _, t := range types {
		l.registerID(l.registry.IDOf(t))
	}
}

func (l *Layout) registerID(id TypeID) {
	if l.setBit(l.registry.bitFor(id)) {
		l.count++
		l.hashOK = false
	}
}

// Unregister clears the bit for each component type. The registry's bit
// assignments are untouched: a position, once assigned, remains valid for
// every other layout bound to the same registry.
func (l *Layout) Unregister(types ...reflect.Type) {
	for _, t := range types {
		bit, ok := l.registry.lookupBit(l.registry.IDOf(t))
		if !ok {
			continue
		}
		if l.clearBit(bit) {
			l.count--
			l.hashOK = false
		}
	}
}

// Has reports whether the component type's bit is set in this layout.
func (l *Layout) Has(t reflect.Type) bool {
	bit, ok := l.registry.lookupBit(l.registry.IDOf(t))
	if !ok {
		return false
	}
	word := bit / layoutWordBits
	return word < len(l.words) && l.words[word]&(1<<(bit%layoutWordBits)) != 0
}

// ComponentCount returns the number of set bits.
func (l *Layout) ComponentCount() int {
	return l.count
}

// Hash returns the layout's canonical hash, recomputed lazily after
// mutations. Equal bit sets hash equal even when their backing arrays have
// different capacities.
func (l *Layout) Hash() uint64 {
	if !l.hashOK {
		l.hash = hashWords(l.words)
		l.hashOK = true
	}
	return l.hash
}

// IsCompatible reports whether l is a superset of other: every bit set in
// other is also set in l. The test is reflexive but not symmetric.
func (l *Layout) IsCompatible(other *Layout) bool {
	if l.count < other.count {
		return false
	}
	for i, w := range other.words {
		if w == 0 {
			continue
		}
		if i >= len(l.words) || l.words[i]&w != w {
			return false
		}
	}
	return true
}

// Clone returns an independent copy. Mutating the clone never affects the
// original.
func (l *Layout) Clone() *Layout {
	return &Layout{
		registry: l.registry,
		words:    slices.Clone(l.words),
		count:    l.count,
		hash:     l.hash,
		hashOK:   l.hashOK,
	}
}

// TypeIDs returns the identifiers of the set bits in bit-position order.
func (l *Layout) TypeIDs() []TypeID {
	out := make([]TypeID, 0, l.count)
	for i, w := range l.words {
		for w != 0 {
			bit := i*layoutWordBits + bits.TrailingZeros64(w)
			out = append(out, l.registry.byBit[bit])
			w &= w - 1
		}
	}
	return out
}

// setBit grows the word array as needed and reports whether the bit flipped.
func (l *Layout) setBit(bit int) bool {
	word := bit / layoutWordBits
	for word >= len(l.words) {
		l.words = append(l.words, 0)
	}
	mask := uint64(1) << (bit % layoutWordBits)
	if l.words[word]&mask != 0 {
		return false
	}
	l.words[word] |= mask
	return true
}

func (l *Layout) clearBit(bit int) bool {
	word := bit / layoutWordBits
	if word >= len(l.words) {
		return false
	}
	mask := uint64(1) << (bit % layoutWordBits)
	if l.words[word]&mask == 0 {
		return false
	}
	l.words[word] &^= mask
	return true
}

// hashWords folds the significant words with 64-bit FNV-1a. Trailing zero
// words are skipped so layouts with different capacities hash identically.
func hashWords(words []uint64) uint64 {
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}

	var h uint64 = 14695981039346656037 // FNV-1a 64-bit offset basis
	const prime uint64 = 1099511628211  // FNV-1a 64-bit prime

	for _, w := range words[:n] {
		for shift := 0; shift < layoutWordBits; shift += 8 {
			h ^= (w >> shift) & 0xff
			h *= prime
		}
	}

	return h
}
