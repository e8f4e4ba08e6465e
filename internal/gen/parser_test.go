package gen_test

import (
	"strings"
	"testing"

	"github.com/declmap/declmap/internal/gen"
)

func TestParse(t *testing.T) {
	t.Parallel()

	info, err := gen.Parse("testdata/cart.go", "ShoppingCartSession")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if info.Name != "ShoppingCartSession" {
		t.Errorf("Name = %q, want %q", info.Name, "ShoppingCartSession")
	}
	if info.Package != "testdata" {
		t.Errorf("Package = %q, want %q", info.Package, "testdata")
	}

	want := []gen.FieldInfo{
		{Name: "ID", Column: "id"},
		{Name: "UserID", Column: "owner_id"},
		{Name: "CreatedAt", Column: "created_at"},
	}
	if len(info.Fields) != len(want) {
		t.Fatalf("Fields = %v, want %v", info.Fields, want)
	}
	for i, f := range want {
		if info.Fields[i] != f {
			t.Errorf("Fields[%d] = %v, want %v", i, info.Fields[i], f)
		}
	}
}

func TestParseMissingType(t *testing.T) {
	t.Parallel()

	if _, err := gen.Parse("testdata/cart.go", "Nope"); err == nil {
		t.Error("Parse should fail for a missing type")
	}
	if _, err := gen.Parse("testdata/cart.go", "NotAStruct"); err == nil {
		t.Error("Parse should fail for a non-struct type")
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	info, err := gen.Parse("testdata/cart.go", "HTTP2Request")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	info.TableName = "http2_request"

	src, err := gen.Render(info)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := string(src)
	for _, want := range []string{
		"// Code generated by declmap. DO NOT EDIT.",
		"package testdata",
		"func (HTTP2Request) TableName() string {",
		`return "http2_request"`,
		"var hTTP2RequestColumns = []string{",
		`"id",`,
		`"path",`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered source missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRequiresTableName(t *testing.T) {
	t.Parallel()

	info := &gen.StructInfo{Name: "User", Package: "model", Fields: []gen.FieldInfo{{Name: "ID", Column: "id"}}}
	if _, err := gen.Render(info); err == nil {
		t.Error("Render should fail without a table name")
	}
}

func TestRenderRequiresFields(t *testing.T) {
	t.Parallel()

	info := &gen.StructInfo{Name: "User", Package: "model", TableName: "user"}
	if _, err := gen.Render(info); err == nil {
		t.Error("Render should fail with no fields")
	}
}
