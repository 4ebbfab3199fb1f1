package cfgm

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

const exampleHeader = "# 配置示例文件, 按需修改后保存为配置文件"

// ExampleYAML 根据配置结构体生成带注释的 YAML。
//
// key 取 json tag，注释取 desc tag；嵌套结构体前空一行并单独输出注释。
func ExampleYAML(cfg any) []byte {
	var b strings.Builder
	b.WriteString(exampleHeader)
	b.WriteByte('\n')

	val := reflect.ValueOf(cfg)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}
	if val.IsValid() && isStructType(val.Type()) {
		writeExampleStruct(&b, val, 0)
	}

	return []byte(b.String())
}

func writeExampleStruct(b *strings.Builder, val reflect.Value, depth int) {
	pad := strings.Repeat("  ", depth)
	typ := val.Type()

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if !field.IsExported() || key == "" {
			continue
		}
		desc := field.Tag.Get("desc")
		fv := val.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}

		if isStructType(fv.Type()) {
			b.WriteByte('\n')
			if desc != "" {
				fmt.Fprintf(b, "%s# %s\n", pad, desc)
			}
			fmt.Fprintf(b, "%s%s:\n", pad, key)
			writeExampleStruct(b, fv, depth+1)
			continue
		}

		line := pad + key + ": " + exampleScalar(fv)
		if desc != "" {
			line += " # " + desc
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func exampleScalar(val reflect.Value) string {
	if val.Type() == durationType {
		return time.Duration(val.Int()).String()
	}

	switch val.Kind() {
	case reflect.String:
		return "'" + strings.ReplaceAll(val.String(), "'", "''") + "'"
	case reflect.Slice, reflect.Array:
		items := make([]string, val.Len())
		for i := range val.Len() {
			items[i] = exampleScalar(val.Index(i))
		}
		return "[" + strings.Join(items, ", ") + "]"
	case reflect.Map:
		keys := make([]string, 0, val.Len())
		values := map[string]string{}
		iter := val.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			keys = append(keys, k)
			values[k] = exampleScalar(iter.Value())
		}
		sort.Strings(keys)
		items := make([]string, len(keys))
		for i, k := range keys {
			items[i] = k + ": " + values[k]
		}
		return "{" + strings.Join(items, ", ") + "}"
	default:
		return fmt.Sprint(val.Interface())
	}
}
