package validator

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// InputData holds submitted field values. Missing keys and nil values are absent.
type InputData map[string]any

// FromValues adapts parsed form or query values. Only the first value of each key is used.
func FromValues(values url.Values) InputData {
	data := make(InputData, len(values))
	for k, v := range values {
		if len(v) > 0 {
			data[k] = v[0]
		}
	}
	return data
}

// Value returns the field value as the string the rules operate on.
func (d InputData) Value(field string) string {
	return scalarString(d[field])
}

// scalarString renders a scalar the way it would have been submitted in a form.
// time.Time values use DateLayout so they can be compared by the date rules.
func scalarString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []string:
		if len(x) == 0 {
			return ""
		}
		return x[0]
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(DateLayout)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
