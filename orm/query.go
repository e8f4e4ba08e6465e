package orm

import (
	"context"
	"fmt"
	"strings"
)

// SelectSQL builds a SELECT over the class's resolved table. With no
// columns given, all table columns are selected in metadata order. The
// class must be configured and mapped.
func SelectSQL(d Dialect, c *Class, columns ...string) (string, error) {
	t := c.Table()
	if t == nil {
		return "", fmt.Errorf("orm: class %s is not mapped", c.Name)
	}
	if len(columns) == 0 {
		columns = columnNames(t.Columns)
	}
	qi := d.QuoteIdent
	return fmt.Sprintf("SELECT %s FROM %s", quoteJoin(qi, columns), qi(t.Name)), nil
}

// InheritedSelectSQL builds the SELECT for a joined-table inheritance
// child: the child's table joined to its parent's on the shared primary
// key. Parent columns come first, then the child's non-key columns.
func InheritedSelectSQL(d Dialect, c *Class) (string, error) {
	name, ok := c.OwnTableName()
	if !ok {
		return "", fmt.Errorf("orm: class %s has no table of its own", c.Name)
	}
	parent := c.mappedParent()
	if parent == nil {
		return "", fmt.Errorf("orm: class %s has no mapped parent", c.Name)
	}
	child, base := c.Table(), parent.Table()
	if child == nil || base == nil || child.Name != name {
		return "", fmt.Errorf("orm: class %s is not mapped", c.Name)
	}
	if len(child.PrimaryKey) == 0 {
		return "", fmt.Errorf("%w for mapped table %q (class %s)", ErrNoPrimaryKey, child.Name, c.Name)
	}

	qi := d.QuoteIdent
	key := map[string]bool{}
	for _, pk := range child.PrimaryKey {
		key[pk] = true
	}

	var cols []string
	for _, col := range base.Columns {
		cols = append(cols, qi(base.Name)+"."+qi(col.Name))
	}
	for _, col := range child.Columns {
		if !key[col.Name] {
			cols = append(cols, qi(child.Name)+"."+qi(col.Name))
		}
	}

	var on []string
	for _, pk := range child.PrimaryKey {
		on = append(on, fmt.Sprintf("%s.%s = %s.%s", qi(child.Name), qi(pk), qi(base.Name), qi(pk)))
	}

	return fmt.Sprintf(
		"SELECT %s FROM %s JOIN %s ON %s",
		strings.Join(cols, ", "), qi(base.Name), qi(child.Name), strings.Join(on, " AND "),
	), nil
}

// Insert writes one row into the class's table. For dialects with
// RETURNING support it returns the generated primary key; otherwise it
// falls back to LastInsertId.
func Insert(ctx context.Context, q Querier, c *Class, columns []string, values []any) (int64, error) {
	t := c.Table()
	if t == nil {
		return 0, fmt.Errorf("orm: class %s is not mapped", c.Name)
	}
	if len(columns) != len(values) {
		return 0, fmt.Errorf("orm: %d columns but %d values", len(columns), len(values))
	}

	d := q.dialect()
	qi := d.QuoteIdent
	placeholders := make([]string, len(values))
	for i := range values {
		placeholders[i] = d.Placeholder(i + 1)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		qi(t.Name), quoteJoin(qi, columns), strings.Join(placeholders, ", "),
	)

	if d.UseReturning() && len(t.PrimaryKey) == 1 {
		query += d.ReturningClause(t.PrimaryKey[0])
		rows, err := q.QueryContext(ctx, query, values...)
		if err != nil {
			return 0, err //nolint:wrapcheck // pass through
		}
		defer func() { _ = rows.Close() }()
		var id int64
		if !rows.Next() {
			return 0, rows.Err() //nolint:wrapcheck // pass through
		}
		if err := rows.Scan(&id); err != nil {
			return 0, err //nolint:wrapcheck // pass through
		}
		return id, rows.Close() //nolint:wrapcheck // pass through
	}

	res, err := q.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, err //nolint:wrapcheck // pass through
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// First runs query and scans the first row into dest. It returns
// ErrNotFound when the result set is empty.
func First(ctx context.Context, q Querier, query string, args []any, dest ...any) error {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return err //nolint:wrapcheck // pass through
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err //nolint:wrapcheck // pass through
		}
		return ErrNotFound
	}
	if err := rows.Scan(dest...); err != nil {
		return err //nolint:wrapcheck // pass through
	}
	return rows.Close() //nolint:wrapcheck // pass through
}

func columnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}
	return names
}
