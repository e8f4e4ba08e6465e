package orm

import (
	"fmt"

	"github.com/declmap/declmap/internal/naming"
)

// Configure maps a class. It runs in two strictly ordered phases: the
// naming phase decides whether the class receives a table name of its own,
// reading only the explicit name, the abstract flag, and primary-key
// column markers; the mapping phase then builds and registers the table
// and resolves the remaining declared attributes. Parents are configured
// first. Configuring an already configured class is a no-op, so a name,
// generated or manual, is never overwritten.
func (m *Metadata) Configure(c *Class) error {
	if c.configured {
		return nil
	}
	if c.Parent != nil {
		if err := m.Configure(c.Parent); err != nil {
			return err
		}
	}
	if err := m.setTableName(c); err != nil {
		return err
	}
	c.configured = true
	if c.Abstract {
		return nil
	}
	if err := m.bindTable(c); err != nil {
		return err
	}
	c.resolveAttrs()
	return nil
}

// setTableName is the naming phase. The decision order:
//
//  1. an explicit name declared on the class is used as-is;
//  2. abstract classes get no name;
//  3. a table-name declared attribute found over the base namespaces is
//     evaluated for this class and used;
//  4. a class with its own primary key (fresh root or joined-table child)
//     gets the snake_case transform of its class name;
//  5. a column-less class matching an externally declared table binds to
//     that table, generating nothing;
//  6. a keyless class under a mapped parent shares the parent's table and
//     name (single-table inheritance);
//  7. otherwise configuration fails: no primary key can be assembled.
func (m *Metadata) setTableName(c *Class) error {
	if c.TableName != "" {
		c.ownTableName = c.TableName
		return nil
	}
	if c.Abstract {
		return nil
	}
	if attr := c.tableNameAttr(); attr != nil {
		c.ownTableName = attr(c)
		return nil
	}

	derived := naming.CamelToSnake(c.Name)
	switch {
	case c.hasOwnPrimaryKey():
		c.ownTableName = derived
	case m.hasExternal(c, derived):
		c.ownTableName = derived
	case c.mappedParent() != nil:
		// Single-table inheritance: no own name.
	default:
		return fmt.Errorf("%w for mapped table %q (class %s)", ErrNoPrimaryKey, derived, c.Name)
	}
	return nil
}

// hasExternal reports whether a table declared outside the class hierarchy
// can serve the class directly: the derived name is registered and the
// class contributes no columns of its own.
func (m *Metadata) hasExternal(c *Class, name string) bool {
	_, ok := m.tables[name]
	return ok && len(c.ownColumns()) == 0
}

// bindTable is the mapping phase. Classes without an own name share their
// parent's table; classes resolving to an externally declared table bind
// to it; everything else gets a fresh table registered under the resolved
// name.
func (m *Metadata) bindTable(c *Class) error {
	name, ok := c.OwnTableName()
	if !ok {
		return nil
	}
	cols := c.ownColumns()
	if t, registered := m.Lookup(name); registered {
		if len(cols) > 0 {
			return fmt.Errorf("orm: table %q is already defined (class %s)", name, c.Name)
		}
		c.table = t
		return nil
	}
	t := &Table{Name: name, Columns: cols, PrimaryKey: c.primaryKeyColumns()}
	m.register(t)
	c.table = t
	return nil
}
