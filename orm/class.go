package orm

// Column describes one mapped column.
type Column struct {
	Name       string
	Type       string // SQL type, e.g. "INTEGER", "VARCHAR(255)"
	PrimaryKey bool
	ForeignKey string // referenced "table.column", empty if none
}

// ClassAttr is a declared attribute: a class-level computed value resolved
// during full mapping configuration. The callback receives the concrete
// class being configured, so a mixin attribute can derive its value from
// each subclass it lands on.
type ClassAttr func(c *Class) any

// Mixin is a base namespace shared between model classes. Mixins are never
// mapped themselves; their attributes are resolved per configured class,
// lazily and at most once.
type Mixin struct {
	// TableName, when non-nil, supplies the table name for every class
	// the mixin participates in. It is evaluated during the naming phase
	// and suppresses name generation for that class.
	TableName func(c *Class) string

	// Columns, when non-nil, contributes columns to every class the mixin
	// participates in. Primary-key markers on these columns count toward
	// the class's own primary key.
	Columns func(c *Class) []Column

	// Attrs holds additional declared attributes. They are evaluated once
	// per class at the end of configuration, never during naming.
	Attrs map[string]ClassAttr
}

// Class describes a declarative model class. Fill in the exported fields,
// then map the class with Metadata.Configure.
type Class struct {
	Name      string // identifier-style class name, e.g. "ShoppingCart"
	TableName string // explicit table name; suppresses generation
	Abstract  bool   // shared base only, never mapped to a table
	Parent    *Class
	Mixins    []*Mixin
	Columns   []Column

	// PrimaryKey promotes the named columns to the primary key through a
	// table-level constraint, independent of per-column markers.
	PrimaryKey []string

	configured   bool
	ownTableName string
	table        *Table
	mixinCols    map[*Mixin][]Column
	attrs        map[string]any
}

// Table returns the table the class is mapped to, walking up to the
// parent for single-table inheritance children. It returns nil before
// configuration and for abstract classes without a mapped ancestor.
func (c *Class) Table() *Table {
	for cl := c; cl != nil; cl = cl.Parent {
		if cl.table != nil {
			return cl.table
		}
	}
	return nil
}

// OwnTableName reports the table name present in the class's own
// namespace. Single-table inheritance children and abstract classes carry
// no own name and return ok = false; their effective name is read through
// Table().
func (c *Class) OwnTableName() (name string, ok bool) {
	return c.ownTableName, c.ownTableName != ""
}

// Attr returns the memoized value of a declared attribute. Declared
// attributes are resolved during Metadata.Configure, after naming and
// table binding.
func (c *Class) Attr(name string) (any, bool) {
	v, ok := c.attrs[name]
	return v, ok
}

// lineage returns the class and its ancestors, nearest first.
func (c *Class) lineage() []*Class {
	var out []*Class
	for cl := c; cl != nil; cl = cl.Parent {
		out = append(out, cl)
	}
	return out
}

// mappedParent returns the nearest non-abstract ancestor, if any.
func (c *Class) mappedParent() *Class {
	for p := c.Parent; p != nil; p = p.Parent {
		if !p.Abstract {
			return p
		}
	}
	return nil
}

// tableNameAttr returns the first table-name declared attribute found over
// the linearized base namespaces: the class's own mixins first, then each
// ancestor's, in declaration order.
func (c *Class) tableNameAttr() func(*Class) string {
	for _, cl := range c.lineage() {
		for _, mx := range cl.Mixins {
			if mx.TableName != nil {
				return mx.TableName
			}
		}
	}
	return nil
}

// contributing returns the namespaces whose columns belong to this class's
// own table: the class itself plus the chain of abstract ancestors up to
// the first mapped one. Columns of a mapped ancestor belong to that
// ancestor's table, never to the child's.
func (c *Class) contributing() []*Class {
	out := []*Class{c}
	for p := c.Parent; p != nil && p.Abstract; p = p.Parent {
		out = append(out, p)
	}
	return out
}

// ownColumns collects the class's own columns: declared directly, supplied
// by mixin column attributes, or inherited from abstract ancestors.
// Namespaces closer to the class override same-named columns from further
// ones. Mixin column attributes are evaluated for the concrete class and
// memoized.
func (c *Class) ownColumns() []Column {
	var cols []Column
	index := map[string]int{}
	add := func(col Column) {
		if i, ok := index[col.Name]; ok {
			cols[i] = col
			return
		}
		index[col.Name] = len(cols)
		cols = append(cols, col)
	}

	contrib := c.contributing()
	// Furthest namespace first, so closer declarations override.
	for i := len(contrib) - 1; i >= 0; i-- {
		cl := contrib[i]
		for _, mx := range cl.Mixins {
			if mx.Columns == nil {
				continue
			}
			for _, col := range c.mixinColumns(mx) {
				add(col)
			}
		}
		for _, col := range cl.Columns {
			add(col)
		}
	}
	return cols
}

// mixinColumns evaluates a mixin column attribute for this class, at most
// once per mixin.
func (c *Class) mixinColumns(mx *Mixin) []Column {
	if cols, ok := c.mixinCols[mx]; ok {
		return cols
	}
	if c.mixinCols == nil {
		c.mixinCols = map[*Mixin][]Column{}
	}
	cols := mx.Columns(c)
	c.mixinCols[mx] = cols
	return cols
}

// hasOwnPrimaryKey reports whether the class defines an independent
// primary key: a column marked primary, or a table-level primary-key
// constraint naming at least one of its own columns. Only whitelisted
// attributes are inspected; declared attributes other than mixin column
// suppliers are not evaluated.
func (c *Class) hasOwnPrimaryKey() bool {
	cols := c.ownColumns()
	for _, col := range cols {
		if col.PrimaryKey {
			return true
		}
	}
	for _, name := range c.PrimaryKey {
		for _, col := range cols {
			if col.Name == name {
				return true
			}
		}
	}
	return false
}

// primaryKeyColumns returns the primary key column names for the class's
// own table: the table-level constraint when declared, otherwise the
// columns marked primary.
func (c *Class) primaryKeyColumns() []string {
	if len(c.PrimaryKey) > 0 {
		return c.PrimaryKey
	}
	var names []string
	for _, col := range c.ownColumns() {
		if col.PrimaryKey {
			names = append(names, col.Name)
		}
	}
	return names
}

// resolveAttrs evaluates the remaining declared attributes over the
// linearized base namespaces, nearest namespace winning, and memoizes the
// values on the class. Called only after naming and table binding.
func (c *Class) resolveAttrs() {
	for _, cl := range c.lineage() {
		for _, mx := range cl.Mixins {
			for name, fn := range mx.Attrs {
				if _, ok := c.attrs[name]; ok {
					continue
				}
				if c.attrs == nil {
					c.attrs = map[string]any{}
				}
				c.attrs[name] = fn(c)
			}
		}
	}
}
