package orm

import (
	"reflect"

	"github.com/declmap/declmap/internal/naming"
)

// TableNamer can be implemented by model structs to override the
// auto-derived table name.
type TableNamer interface {
	TableName() string
}

// TableNameOf returns the table name for the struct type T. A TableName
// method (value or pointer receiver) wins; otherwise the name is derived
// from the type name with the snake_case transform.
func TableNameOf[T any]() string {
	var zero T
	if tn, ok := any(&zero).(TableNamer); ok {
		return tn.TableName()
	}
	return naming.CamelToSnake(reflect.TypeOf((*T)(nil)).Elem().Name())
}
