package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
	"unicode"
)

type templateData struct {
	Package    string
	TypeName   string
	TableName  string
	ColumnsVar string
	Columns    []string
}

var fileTmpl = template.Must(template.New("gen").Parse(`// Code generated by declmap. DO NOT EDIT.

package {{.Package}}

// TableName returns the table mapped to {{.TypeName}}.
func ({{.TypeName}}) TableName() string {
	return "{{.TableName}}"
}

// {{.ColumnsVar}} lists the columns of {{.TableName}} in declaration order.
var {{.ColumnsVar}} = []string{
{{- range .Columns}}
	"{{.}}",
{{- end}}
}
`))

// Render generates the Go source for a StructInfo. The TableName field
// must be set by the caller. The returned bytes are formatted by gofmt.
func Render(info *StructInfo) ([]byte, error) {
	if info.TableName == "" {
		return nil, fmt.Errorf("no table name for struct %s", info.Name)
	}
	if len(info.Fields) == 0 {
		return nil, fmt.Errorf("struct %s has no usable fields", info.Name)
	}

	columns := make([]string, len(info.Fields))
	for i, f := range info.Fields {
		columns[i] = f.Column
	}
	data := templateData{
		Package:    info.Package,
		TypeName:   info.Name,
		TableName:  info.TableName,
		ColumnsVar: unexportedName(info.Name) + "Columns",
		Columns:    columns,
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format source: %w", err)
	}
	return src, nil
}

func unexportedName(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
