package wjson

import (
	"fmt"
	"math"
)

// Interface converts v to the generic Go representation used by
// encoding/json: nil, bool, float64, string, []any, map[string]any.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.boolVal
	case KindNumber:
		return v.numVal
	case KindString:
		return v.strVal
	case KindArray:
		items := make([]any, 0, len(v.arrVal))
		for _, elem := range v.arrVal {
			items = append(items, elem.Interface())
		}
		return items
	case KindObject:
		obj := make(map[string]any, len(v.objVal))
		for k, elem := range v.objVal {
			obj[k] = elem.Interface()
		}
		return obj
	default:
		return nil
	}
}

// FromInterface builds a Value tree from the generic Go representation
// produced by json.Unmarshal into an any: nil, bool, float64, string,
// []any, map[string]any. Integers are accepted as a convenience and
// converted to float64.
func FromInterface(v any) (*Value, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil

	case bool:
		return Bool(val), nil

	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, fmt.Errorf("wjson: NaN and Infinity are not representable")
		}
		return Number(val), nil

	case int:
		return Number(float64(val)), nil

	case int64:
		return Number(float64(val)), nil

	case string:
		return String(val), nil

	case []any:
		items := make([]*Value, 0, len(val))
		for i, elem := range val {
			gv, err := FromInterface(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			items = append(items, gv)
		}
		return Array(items...), nil

	case map[string]any:
		entries := make(map[string]*Value, len(val))
		for k, elem := range val {
			gv, err := FromInterface(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			entries[k] = gv
		}
		return Object(entries), nil

	default:
		return nil, fmt.Errorf("wjson: unsupported type %T", v)
	}
}
