package orm

import (
	"fmt"
	"strings"
)

// CreateTableSQL renders a CREATE TABLE statement for the table using the
// dialect's identifier quoting. Primary key and foreign key clauses come
// from the table metadata assembled during configuration.
func CreateTableSQL(d Dialect, t *Table) string {
	qi := d.QuoteIdent

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (", qi(t.Name))
	for i, col := range t.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(qi(col.Name))
		b.WriteByte(' ')
		b.WriteString(col.Type)
	}
	if len(t.PrimaryKey) > 0 {
		b.WriteString(", PRIMARY KEY (")
		b.WriteString(quoteJoin(qi, t.PrimaryKey))
		b.WriteString(")")
	}
	for _, col := range t.Columns {
		if col.ForeignKey == "" {
			continue
		}
		table, column, ok := strings.Cut(col.ForeignKey, ".")
		if !ok {
			continue
		}
		fmt.Fprintf(&b, ", FOREIGN KEY (%s) REFERENCES %s (%s)", qi(col.Name), qi(table), qi(column))
	}
	b.WriteString(")")
	return b.String()
}

func quoteJoin(qi func(string) string, names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = qi(name)
	}
	return strings.Join(quoted, ", ")
}
