package orm

import "fmt"

// Dialect abstracts SQL differences between database engines.
type Dialect interface {
	// Placeholder returns the bind parameter placeholder for the given
	// 1-based index. MySQL and SQLite return "?" regardless of index;
	// PostgreSQL returns "$1", "$2", etc.
	Placeholder(index int) string

	// QuoteIdent quotes an identifier (table name, column name) to safely
	// handle SQL reserved words and generated names. MySQL uses
	// backticks; PostgreSQL and SQLite use double quotes.
	QuoteIdent(name string) string

	// UseReturning reports whether INSERT should use a RETURNING clause
	// to retrieve the auto-generated primary key rather than relying on
	// LastInsertId.
	UseReturning() bool

	// ReturningClause returns the RETURNING clause appended to INSERT
	// statements, or an empty string for dialects that go through
	// LastInsertId instead.
	ReturningClause(pk string) string
}

// MySQL is the Dialect for MySQL / MariaDB.
var MySQL Dialect = mysqlDialect{}

// PostgreSQL is the Dialect for PostgreSQL.
var PostgreSQL Dialect = postgresDialect{}

// SQLite is the Dialect for SQLite.
var SQLite Dialect = sqliteDialect{}

type mysqlDialect struct{}

func (mysqlDialect) Placeholder(_ int) string        { return "?" }
func (mysqlDialect) QuoteIdent(name string) string   { return "`" + name + "`" }
func (mysqlDialect) UseReturning() bool              { return false }
func (mysqlDialect) ReturningClause(_ string) string { return "" }

type postgresDialect struct{}

func (postgresDialect) Placeholder(index int) string     { return fmt.Sprintf("$%d", index) }
func (postgresDialect) QuoteIdent(name string) string    { return `"` + name + `"` }
func (postgresDialect) UseReturning() bool               { return true }
func (postgresDialect) ReturningClause(pk string) string { return ` RETURNING "` + pk + `"` }

type sqliteDialect struct{}

func (sqliteDialect) Placeholder(_ int) string        { return "?" }
func (sqliteDialect) QuoteIdent(name string) string   { return `"` + name + `"` }
func (sqliteDialect) UseReturning() bool              { return false }
func (sqliteDialect) ReturningClause(_ string) string { return "" }
