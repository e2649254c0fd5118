// SPDX-License-Identifier: MIT

package collection

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/katalvlaran/fuzzy/fuzzy"
)

// previewLen is how many elements String prints before eliding.
const previewLen = 5

// Array is a non-empty sequence of fuzzy numbers sharing a declared kind.
// Arithmetic and slicing return new arrays; Set is the only mutator.
type Array struct {
	kind  fuzzy.Kind
	items []fuzzy.FuzzyNumber
}

// New copies items into a new Array whose kind is fuzzy.CommonKind of the
// elements. Pointer elements are stored by value (see fuzzy.Value).
// Errors: ErrEmpty, ErrNilElement.
func New(items ...fuzzy.FuzzyNumber) (*Array, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	kinds := make([]fuzzy.Kind, len(items))
	data := make([]fuzzy.FuzzyNumber, len(items))
	for i, it := range items {
		it = fuzzy.Value(it)
		if it == nil {
			return nil, fmt.Errorf("New: index %d: %w", i, ErrNilElement)
		}
		kinds[i] = it.Kind()
		data[i] = it
	}
	return &Array{kind: fuzzy.CommonKind(kinds...), items: data}, nil
}

// Kind returns the declared element kind.
func (a *Array) Kind() fuzzy.Kind { return a.kind }

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.items) }

// At returns element i.
// Errors: ErrIndex.
func (a *Array) At(i int) (fuzzy.FuzzyNumber, error) {
	if i < 0 || i >= len(a.items) {
		return nil, fmt.Errorf("At(%d): %w", i, ErrIndex)
	}
	return a.items[i], nil
}

// Set replaces element i. v must be-a the declared kind.
// Errors: ErrIndex, ErrNilElement, ErrKindMismatch.
func (a *Array) Set(i int, v fuzzy.FuzzyNumber) error {
	if i < 0 || i >= len(a.items) {
		return fmt.Errorf("Set(%d): %w", i, ErrIndex)
	}
	v = fuzzy.Value(v)
	if v == nil {
		return fmt.Errorf("Set(%d): %w", i, ErrNilElement)
	}
	if !v.Kind().IsA(a.kind) {
		return fmt.Errorf("Set(%d): %s into %s array: %w", i, v.Kind(), a.kind, ErrKindMismatch)
	}
	a.items[i] = v
	return nil
}

// Slice returns a new Array over elements [lo, hi).
// Errors: ErrIndex for bad bounds, ErrEmpty when lo == hi.
func (a *Array) Slice(lo, hi int) (*Array, error) {
	if lo < 0 || hi > len(a.items) || lo > hi {
		return nil, fmt.Errorf("Slice(%d, %d): %w", lo, hi, ErrIndex)
	}
	return New(a.items[lo:hi]...)
}

// Pick returns a new Array of the elements at idx, in that order.
// Errors: ErrIndex, ErrEmpty.
func (a *Array) Pick(idx ...int) (*Array, error) {
	out := make([]fuzzy.FuzzyNumber, 0, len(idx))
	for _, i := range idx {
		v, err := a.At(i)
		if err != nil {
			return nil, fmt.Errorf("Pick: %w", err)
		}
		out = append(out, v)
	}
	return New(out...)
}

// Items returns a copy of the elements.
func (a *Array) Items() []fuzzy.FuzzyNumber {
	out := make([]fuzzy.FuzzyNumber, len(a.items))
	copy(out, a.items)
	return out
}

// All iterates over (index, element) pairs.
func (a *Array) All() iter.Seq2[int, fuzzy.FuzzyNumber] {
	return func(yield func(int, fuzzy.FuzzyNumber) bool) {
		for i, v := range a.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// String previews the first elements.
func (a *Array) String() string {
	var b strings.Builder
	b.WriteString("FuzzyNumberArray(type_=")
	b.WriteString(a.kind.String())
	b.WriteString(", size=")
	b.WriteString(strconv.Itoa(len(a.items)))
	b.WriteString(", data=[")
	for i, v := range a.items {
		if i == previewLen {
			b.WriteString(", ...")
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteString("])")
	return b.String()
}
