package table

import (
	"fmt"
	"iter"
)

// Index is the positional identity of a row within its table.
// It is strictly 32-bit, matching the framework's row-id width.
type Index int32

// NullIndex marks an absent cross-table reference.
const NullIndex Index = -1

// Valid reports whether the index refers to a row at all.
// A valid index may still be out of range for a given table.
func (i Index) Valid() bool {
	return i >= 0
}

// Tag identifies a table to the host framework.
type Tag struct {
	// Origin is the origin tag, always "AOD" for derived tables.
	Origin string
	// Description is the description tag, unique per table (4-8 characters).
	Description string
}

// OriginAOD is the origin tag shared by all derived analysis tables.
const OriginAOD = "AOD"

// String returns the tag pair in "origin/description" form.
func (t Tag) String() string {
	return t.Origin + "/" + t.Description
}

// Row is implemented by every row type stored in a Table.
type Row interface {
	// Validate checks the row's construction-time invariants. self is the
	// index the row would receive and size the current number of rows in
	// the arena; self-referential index lists may only point at existing
	// rows and never at self.
	Validate(self Index, size int) error
}

// ErrOutOfRange indicates an index that does not refer to a row of the table.
type ErrOutOfRange struct {
	Tag   Tag
	Index Index
	Size  int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("table %s: index %d out of range (size %d)", e.Tag, e.Index, e.Size)
}

// ErrSelfReference indicates a row whose child-index list contains the row itself.
type ErrSelfReference struct {
	Index Index
}

func (e *ErrSelfReference) Error() string {
	return fmt.Sprintf("row %d references itself as child", e.Index)
}

// Table is an append-only arena of rows with positional identity.
// It is not safe for concurrent mutation; the producing stage owns it until
// the event is complete, after which it is read-only.
type Table[R Row] struct {
	tag  Tag
	rows []R
}

// New creates an empty table with the given tag and initial capacity.
func New[R Row](tag Tag, capacity int) *Table[R] {
	return &Table[R]{
		tag:  tag,
		rows: make([]R, 0, capacity),
	}
}

// Tag returns the table's identifying tag pair.
func (t *Table[R]) Tag() Tag {
	return t.tag
}

// Len returns the number of rows.
func (t *Table[R]) Len() int {
	return len(t.rows)
}

// Append validates the row and adds it to the arena, returning its index.
func (t *Table[R]) Append(r R) (Index, error) {
	self := Index(len(t.rows))
	if err := r.Validate(self, len(t.rows)); err != nil {
		return NullIndex, fmt.Errorf("table %s: row %d: %w", t.tag, self, err)
	}
	t.rows = append(t.rows, r)
	return self, nil
}

// Row returns the row at the given index.
func (t *Table[R]) Row(i Index) (R, error) {
	if i < 0 || int(i) >= len(t.rows) {
		var zero R
		return zero, &ErrOutOfRange{Tag: t.tag, Index: i, Size: len(t.rows)}
	}
	return t.rows[i], nil
}

// All iterates the table in row order.
func (t *Table[R]) All() iter.Seq2[Index, R] {
	return func(yield func(Index, R) bool) {
		for i, r := range t.rows {
			if !yield(Index(i), r) {
				return
			}
		}
	}
}

// CheckBounds reports whether a reference into the table is resolvable.
// NullIndex is accepted where nullable is true.
func (t *Table[R]) CheckBounds(i Index, nullable bool) error {
	if i == NullIndex && nullable {
		return nil
	}
	if i < 0 || int(i) >= len(t.rows) {
		return &ErrOutOfRange{Tag: t.tag, Index: i, Size: len(t.rows)}
	}
	return nil
}

// ValidateChildren checks a self-referential child-index list against the
// arena: children must point at existing rows and never at self.
func ValidateChildren(children []Index, self Index, size int) error {
	for _, c := range children {
		if c == self {
			return &ErrSelfReference{Index: self}
		}
		if c < 0 || int(c) >= size {
			return &ErrOutOfRange{Index: c, Size: size}
		}
	}
	return nil
}
