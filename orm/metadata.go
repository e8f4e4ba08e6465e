package orm

// Table holds the resolved metadata for one database table.
type Table struct {
	Name       string
	Columns    []Column
	PrimaryKey []string // primary key column names
}

// Metadata is a registry of mapped tables. It also drives class
// configuration: see Configure.
type Metadata struct {
	tables map[string]*Table
	order  []string
}

// NewMetadata returns an empty registry.
func NewMetadata() *Metadata {
	return &Metadata{tables: map[string]*Table{}}
}

// Table declares a standalone table and registers it. A column-less class
// whose derived name matches a declared table binds to it directly instead
// of generating anything.
func (m *Metadata) Table(name string, cols ...Column) *Table {
	var pk []string
	for _, col := range cols {
		if col.PrimaryKey {
			pk = append(pk, col.Name)
		}
	}
	t := &Table{Name: name, Columns: cols, PrimaryKey: pk}
	m.register(t)
	return t
}

// Lookup returns the registered table with the given name.
func (m *Metadata) Lookup(name string) (*Table, bool) {
	t, ok := m.tables[name]
	return t, ok
}

// Sorted returns all registered tables in registration order. Parents are
// configured before their children, so dependency order is preserved.
func (m *Metadata) Sorted() []*Table {
	out := make([]*Table, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.tables[name])
	}
	return out
}

func (m *Metadata) register(t *Table) {
	if _, ok := m.tables[t.Name]; !ok {
		m.order = append(m.order, t.Name)
	}
	m.tables[t.Name] = t
}
