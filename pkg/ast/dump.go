package ast

import (
	"bytes"
	"fmt"
	"reflect"
)

// Dump renders a Word (or any WordPart) as an indented tree, for the
// -print-ast style debugging spec.md's "Out of core" list mentions in
// passing and elves-posixsh's pkg/parse/pprint.go implements for its own
// Node tree. Adapted here to walk *Word/WordPart values instead of
// parse.Node, via the same reflect-based field walk.
func Dump(v interface{}) string {
	var b bytes.Buffer
	dump(&b, "", reflect.ValueOf(v))
	return b.String()
}

var wordPartType = reflect.TypeOf((*WordPart)(nil)).Elem()

func dump(buf *bytes.Buffer, indent string, v reflect.Value) {
	if !v.IsValid() || (v.Kind() == reflect.Ptr && v.IsNil()) {
		buf.WriteString("nil")
		return
	}
	if v.Kind() == reflect.Interface {
		v = v.Elem()
		if !v.IsValid() {
			buf.WriteString("nil")
			return
		}
	}
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		fmt.Fprintf(buf, "%v", v.Interface())
		return
	}

	t := v.Type()
	buf.WriteString(t.Name())
	indent1 := indent + "  "
	indent2 := indent1 + "  "

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		fv := v.Field(i)
		buf.WriteString("\n" + indent1 + "." + field.Name + " = ")
		switch {
		case fv.Type() == reflect.TypeOf([]byte(nil)):
			fmt.Fprintf(buf, "%q", fv.Bytes())
		case fv.Kind() == reflect.Slice && fv.Type().Elem().Implements(wordPartType):
			for j := 0; j < fv.Len(); j++ {
				buf.WriteString("\n" + indent2)
				dump(buf, indent2, fv.Index(j))
			}
		case fv.Kind() == reflect.String:
			fmt.Fprintf(buf, "%q", fv.String())
		case fv.Kind() == reflect.Struct || fv.Kind() == reflect.Ptr || fv.Kind() == reflect.Interface:
			dump(buf, indent1, fv)
		default:
			fmt.Fprintf(buf, "%v", fv.Interface())
		}
	}
}
