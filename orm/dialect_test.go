package orm_test

import (
	"testing"

	"github.com/declmap/declmap/orm"
)

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		d     orm.Dialect
		index int
		want  string
	}{
		{"MySQL", orm.MySQL, 1, "?"},
		{"MySQL high index", orm.MySQL, 10, "?"},
		{"SQLite", orm.SQLite, 3, "?"},
		{"PostgreSQL first", orm.PostgreSQL, 1, "$1"},
		{"PostgreSQL tenth", orm.PostgreSQL, 10, "$10"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.d.Placeholder(tt.index); got != tt.want {
				t.Errorf("Placeholder(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestQuoteIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    orm.Dialect
		want string
	}{
		{"MySQL", orm.MySQL, "`shopping_cart`"},
		{"PostgreSQL", orm.PostgreSQL, `"shopping_cart"`},
		{"SQLite", orm.SQLite, `"shopping_cart"`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.d.QuoteIdent("shopping_cart"); got != tt.want {
				t.Errorf("QuoteIdent = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReturning(t *testing.T) {
	t.Parallel()

	if orm.MySQL.UseReturning() || orm.SQLite.UseReturning() {
		t.Error("MySQL and SQLite should not use RETURNING")
	}
	if !orm.PostgreSQL.UseReturning() {
		t.Error("PostgreSQL should use RETURNING")
	}
	if got := orm.PostgreSQL.ReturningClause("id"); got != ` RETURNING "id"` {
		t.Errorf("PostgreSQL.ReturningClause(\"id\") = %q", got)
	}
	if got := orm.MySQL.ReturningClause("id"); got != "" {
		t.Errorf("MySQL.ReturningClause(\"id\") = %q, want empty", got)
	}
}

func TestCreateTableSQL(t *testing.T) {
	t.Parallel()

	m := orm.NewMetadata()
	duck := &orm.Class{
		Name: "Duck",
		Columns: []orm.Column{
			{Name: "id", Type: "INTEGER", PrimaryKey: true},
			{Name: "name", Type: "VARCHAR(255)"},
		},
	}
	donald := &orm.Class{
		Name:   "Donald",
		Parent: duck,
		Columns: []orm.Column{
			{Name: "id", Type: "INTEGER", PrimaryKey: true, ForeignKey: "duck.id"},
		},
	}
	configure(t, m, duck, donald)

	tests := []struct {
		name string
		d    orm.Dialect
		t    *orm.Table
		want string
	}{
		{
			name: "SQLite parent",
			d:    orm.SQLite,
			t:    duck.Table(),
			want: `CREATE TABLE "duck" ("id" INTEGER, "name" VARCHAR(255), PRIMARY KEY ("id"))`,
		},
		{
			name: "SQLite joined child",
			d:    orm.SQLite,
			t:    donald.Table(),
			want: `CREATE TABLE "donald" ("id" INTEGER, PRIMARY KEY ("id"), ` +
				`FOREIGN KEY ("id") REFERENCES "duck" ("id"))`,
		},
		{
			name: "MySQL parent",
			d:    orm.MySQL,
			t:    duck.Table(),
			want: "CREATE TABLE `duck` (`id` INTEGER, `name` VARCHAR(255), PRIMARY KEY (`id`))",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := orm.CreateTableSQL(tt.d, tt.t); got != tt.want {
				t.Errorf("CreateTableSQL = %q, want %q", got, tt.want)
			}
		})
	}
}
