package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// MarshalEnv renders a struct carrying `env` tags as .env file content.
// Zero-valued fields fall back to their envDefault tag, so marshalling a
// fresh config prints a usable template.
func MarshalEnv(c any) (string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return "", fmt.Errorf("env: expected pointer to struct, got %T", c)
	}
	v = v.Elem()
	t := v.Type()

	var sb strings.Builder
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("env")
		if tag == "" || !field.IsExported() {
			continue
		}
		key := strings.Split(tag, ",")[0]
		if key == "" {
			continue
		}

		val, err := formatValue(v.Field(i))
		if err != nil {
			return "", fmt.Errorf("env: field %s: %w", field.Name, err)
		}
		if val == "" {
			val = field.Tag.Get("envDefault")
		}
		fmt.Fprintf(&sb, "%s=%s\n", key, quoteIfNeeded(val))
	}
	return sb.String(), nil
}

func formatValue(v reflect.Value) (string, error) {
	if v.IsZero() {
		return "", nil
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported kind %s", v.Kind())
	}
}

// quoteIfNeeded wraps values that would not survive a round trip through a
// .env parser unquoted.
func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, " \t\r\n#\"'") {
		return strconv.Quote(s)
	}
	return s
}
