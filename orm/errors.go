package orm

import "errors"

// ErrNoPrimaryKey is returned by Configure when no primary key can be
// assembled for a class that requires its own table.
var ErrNoPrimaryKey = errors.New("orm: could not assemble any primary key")

// ErrNotFound is returned when a query expects exactly one row but finds
// none.
var ErrNotFound = errors.New("orm: not found")
