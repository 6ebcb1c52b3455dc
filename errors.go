package femtotables

import (
	"errors"
	"fmt"

	"github.com/femtodream/femtotables/table"
)

var (
	// ErrNoCollision is returned when a companion row is appended before
	// the collision it would annotate.
	ErrNoCollision = errors.New("no collision to annotate")
)

// ErrMisalignedCompanion indicates a row-parallel companion table running
// ahead of its base table.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMisalignedCompanion struct {
	Base      table.Tag
	Companion table.Tag
	BaseLen   int
	CompLen   int
	cause     error
}

func (e *ErrMisalignedCompanion) Error() string {
	return fmt.Sprintf("companion %s has %d rows, base %s has %d",
		e.Companion, e.CompLen, e.Base, e.BaseLen)
}

func (e *ErrMisalignedCompanion) Unwrap() error { return e.cause }

// ErrDanglingReference indicates a cross-table index column pointing outside
// the referenced table.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDanglingReference struct {
	From  table.Tag
	To    table.Tag
	Row   table.Index
	Ref   table.Index
	cause error
}

func (e *ErrDanglingReference) Error() string {
	return fmt.Sprintf("%s row %d references %s row %d, which does not exist",
		e.From, e.Row, e.To, e.Ref)
}

func (e *ErrDanglingReference) Unwrap() error { return e.cause }
