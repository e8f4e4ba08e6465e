package testdata

import "time"

// ShoppingCartSession is parser test input.
type ShoppingCartSession struct {
	ID        int
	UserID    int       `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
	Secret    string    `db:"-"`
	internal  string
}

// HTTP2Request exercises acronym and digit boundaries.
type HTTP2Request struct {
	ID   int
	Path string
}

// NotAStruct is here so the parser has something to skip.
type NotAStruct int
