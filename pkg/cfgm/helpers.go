package cfgm

import (
	"reflect"
	"strings"
	"time"
)

var (
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
)

// configTagName 返回字段的配置 key；没有 json tag 或为 "-" 时返回空串。
func configTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || !field.IsExported() {
		return ""
	}

	return name
}

// isStructType 判断 typ 是否需要按嵌套配置展开。
func isStructType(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct && typ != durationType && typ != timeType
}

// defaultsMap 把默认配置转为以 json tag 为 key 的嵌套 map，叶子保留原值。
func defaultsMap(cfg any) map[string]any {
	m := map[string]any{}
	val := reflect.ValueOf(cfg)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return m
		}
		val = val.Elem()
	}
	if !val.IsValid() || !isStructType(val.Type()) {
		return m
	}

	typ := val.Type()
	for i := range typ.NumField() {
		key := configTagName(typ.Field(i))
		if key == "" {
			continue
		}
		fv := val.Field(i)
		if isStructType(fv.Type()) {
			m[key] = defaultsMap(fv.Interface())
			continue
		}
		m[key] = fv.Interface()
	}

	return m
}
