package source

import (
	"fmt"

	"fortio.org/safecast"
)

// StringID is a handle to an interned string.
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates strings so symbol tables can key on compact IDs
// instead of copied names.
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""}, // NoStringID maps to the empty string
		index: map[string]StringID{"": 0},
	}
}

// Intern returns the ID for s, inserting it on first use.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}

	// Copy so the interner never pins the source buffer.
	cpy := string([]byte(s))
	lenByID, err := safecast.Conv[uint32](len(i.byID))
	if err != nil {
		panic(fmt.Errorf("interner size overflow: %w", err))
	}
	id := StringID(lenByID)
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// Lookup returns the string for id, or "" and false for an unknown ID.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if int(id) >= len(i.byID) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup returns the string for id and panics on an unknown ID.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("invalid string ID")
	}
	return s
}

// Len returns the number of interned strings, counting NoStringID.
func (i *Interner) Len() int {
	return len(i.byID)
}
