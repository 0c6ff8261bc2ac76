package engines

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/gentem/gentem/cli/util"
)

// commonTemplateFuncs are available to every template.
var commonTemplateFuncs = template.FuncMap{
	"lower":       strings.ToLower,
	"upper":       strings.ToUpper,
	"capitalize":  util.Capitalize,
	"slug":        util.Slugify,
	"packageName": util.PackageName,
	"className":   util.ClassName,
	"quote":       strconv.Quote,
	"join":        join,
	"replace":     replace,
	"default":     defaultValue,
	"cwdRelative": util.RelativeToCurrentWorkingDir,
	"eq":          equal,
	"ne":          notEqual,
}

// join concatenates sequence elements with sep: {{ join ", " .python_versions }}.
func join(sep string, items any) (string, error) {
	switch list := items.(type) {
	case nil:
		return "", nil
	case []string:
		return strings.Join(list, sep), nil
	case string:
		return list, nil
	}

	value := reflect.ValueOf(items)
	if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
		return "", fmt.Errorf("join: unsupported type %T", items)
	}
	parts := make([]string, 0, value.Len())
	for i := 0; i < value.Len(); i++ {
		parts = append(parts, fmt.Sprint(value.Index(i).Interface()))
	}
	return strings.Join(parts, sep), nil
}

// replace substitutes all occurrences of old in s: {{ replace "." "" .python_version }}.
func replace(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}

// defaultValue returns value unless it is falsy, fallback otherwise:
// {{ default "Gentem User" .author }}.
func defaultValue(fallback, value any) any {
	if truth, ok := template.IsTrue(value); !ok || !truth {
		return fallback
	}
	return value
}

// equal reports whether arg1 is equal to any of arg2. Unlike the builtin eq, values of
// incompatible kinds are unequal instead of an error, so a comparison against an unset
// variable is false.
func equal(arg1 any, arg2 ...any) bool {
	for _, other := range arg2 {
		if valuesEqual(arg1, other) {
			return true
		}
	}
	return false
}

func notEqual(arg1, arg2 any) bool {
	return !valuesEqual(arg1, arg2)
}

type valueKind int

const (
	otherKind valueKind = iota
	boolKind
	intKind
	uintKind
	floatKind
	stringKind
)

func kindOf(value reflect.Value) valueKind {
	switch value.Kind() {
	case reflect.Bool:
		return boolKind
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intKind
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return uintKind
	case reflect.Float32, reflect.Float64:
		return floatKind
	case reflect.String:
		return stringKind
	}
	return otherKind
}

func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	left, right := reflect.ValueOf(a), reflect.ValueOf(b)
	leftKind, rightKind := kindOf(left), kindOf(right)

	switch {
	case leftKind == intKind && rightKind == uintKind:
		return left.Int() >= 0 && uint64(left.Int()) == right.Uint()
	case leftKind == uintKind && rightKind == intKind:
		return right.Int() >= 0 && uint64(right.Int()) == left.Uint()
	case leftKind != rightKind:
		return false
	}

	switch leftKind {
	case boolKind:
		return left.Bool() == right.Bool()
	case intKind:
		return left.Int() == right.Int()
	case uintKind:
		return left.Uint() == right.Uint()
	case floatKind:
		return left.Float() == right.Float()
	case stringKind:
		return left.String() == right.String()
	}
	if left.Type() != right.Type() || !left.Type().Comparable() {
		return false
	}
	return a == b
}
