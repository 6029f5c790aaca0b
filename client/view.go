// client/view.go
package client

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/BelskviK/Styler-sub001/models"
)

// ViewOptions controls the derived presentation of an appointment list.
// SearchFields are dotted JSON field paths; when empty the search applies to
// the customer name only.
type ViewOptions struct {
	Search       string
	SortKey      string // dotted JSON field path, e.g. "customerName" or "scheduledTime"
	Descending   bool
	SearchFields []string
}

var defaultSearchFields = []string{"customerName"}

// DeriveView filters and sorts a snapshot of appointments for display.
// The input slice is never mutated. Filtering is a case-insensitive
// substring match; sorting is stable so equal keys keep their prior
// relative order.
func DeriveView(items []models.Appointment, opts ViewOptions) []models.Appointment {
	fields := opts.SearchFields
	if len(fields) == 0 {
		fields = defaultSearchFields
	}

	out := make([]models.Appointment, 0, len(items))
	needle := strings.ToLower(opts.Search)
	for _, item := range items {
		if needle == "" || matchesAny(item, fields, needle) {
			out = append(out, item)
		}
	}

	if opts.SortKey != "" {
		sort.SliceStable(out, func(i, j int) bool {
			if opts.Descending {
				return fieldLess(out[j], out[i], opts.SortKey)
			}
			return fieldLess(out[i], out[j], opts.SortKey)
		})
	}

	return out
}

func matchesAny(item models.Appointment, fields []string, needle string) bool {
	for _, field := range fields {
		value, ok := fieldByPath(reflect.ValueOf(item), field)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(stringify(value)), needle) {
			return true
		}
	}
	return false
}

func fieldLess(a, b models.Appointment, path string) bool {
	av, aok := fieldByPath(reflect.ValueOf(a), path)
	bv, bok := fieldByPath(reflect.ValueOf(b), path)
	if !aok || !bok {
		return false
	}

	if at, ok := av.Interface().(time.Time); ok {
		if bt, ok := bv.Interface().(time.Time); ok {
			return at.Before(bt)
		}
	}

	switch av.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return av.Int() < bv.Int()
	case reflect.Float32, reflect.Float64:
		return av.Float() < bv.Float()
	}

	return strings.ToLower(stringify(av)) < strings.ToLower(stringify(bv))
}

// fieldByPath walks a dotted path of JSON field names through nested
// structs, dereferencing pointers along the way.
func fieldByPath(v reflect.Value, path string) (reflect.Value, bool) {
	for _, segment := range strings.Split(path, ".") {
		for v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return reflect.Value{}, false
		}

		field, ok := fieldByJSONName(v, segment)
		if !ok {
			return reflect.Value{}, false
		}
		v = field
	}

	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, true
}

func fieldByJSONName(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		tagName := strings.Split(tag, ",")[0]
		if tagName == name || (tagName == "" && strings.EqualFold(t.Field(i).Name, name)) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func stringify(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	if t, ok := v.Interface().(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	return fmt.Sprintf("%v", v.Interface())
}
