// Package gen parses model structs and renders table-name accessors for
// the declmap command.
package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"

	"github.com/declmap/declmap/internal/naming"
)

// FieldInfo holds parsed metadata for one struct field.
type FieldInfo struct {
	Name   string // Go field name, e.g. "CreatedAt"
	Column string // column name, from the db tag or derived from Name
}

// StructInfo holds parsed metadata for the target struct.
type StructInfo struct {
	Name      string      // Go struct name, e.g. "User"
	Package   string      // package name, e.g. "model"
	Fields    []FieldInfo // fields not skipped with db:"-"
	TableName string      // set by the caller
}

// Parse reads the Go file at path and returns the StructInfo for the
// named struct type.
func Parse(path, typeName string) (*StructInfo, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	var info *StructInfo
	ast.Inspect(file, func(n ast.Node) bool {
		ts, ok := n.(*ast.TypeSpec)
		if !ok || ts.Name.Name != typeName {
			return true
		}
		st, ok := ts.Type.(*ast.StructType)
		if !ok {
			return true
		}
		info = &StructInfo{
			Name:    ts.Name.Name,
			Package: file.Name.Name,
			Fields:  parseStructFields(st),
		}
		return false
	})

	if info == nil {
		return nil, fmt.Errorf("struct %q not found in %s", typeName, path)
	}
	return info, nil
}

func parseStructFields(st *ast.StructType) []FieldInfo {
	fields := make([]FieldInfo, 0, len(st.Fields.List))
	for _, field := range st.Fields.List {
		fi, skip := parseField(field)
		if skip {
			continue
		}
		fields = append(fields, fi)
	}
	return fields
}

func parseField(field *ast.Field) (FieldInfo, bool) {
	if len(field.Names) == 0 {
		return FieldInfo{}, true // embedded field, skip
	}

	name := field.Names[0].Name
	if !field.Names[0].IsExported() {
		return FieldInfo{}, true
	}

	column := naming.CamelToSnake(name)
	if field.Tag != nil {
		tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		if dbTag, ok := tag.Lookup("db"); ok {
			if dbTag == "-" {
				return FieldInfo{}, true // explicitly skipped
			}
			if value, _, _ := strings.Cut(dbTag, ","); value != "" {
				column = value
			}
		}
	}

	return FieldInfo{Name: name, Column: column}, false
}
