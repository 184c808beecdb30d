package typescript

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Alia5/formgen/internal/codegen/model"
)

// ErrOutOfRange is returned for a property whose declared type is not
// number, string or boolean. It aborts the whole generation run.
var ErrOutOfRange = errors.New("out of range")

// FormatTemplateValue renders a property as a `'key': literal` pair.
func FormatTemplateValue(p model.Property) (string, error) {
	key := quoteString(p.Name)
	switch p.Type {
	case model.PropertyNumber:
		return key + ": " + formatNumber(p.Value), nil
	case model.PropertyBoolean:
		return key + ": " + formatBool(p.Value), nil
	case model.PropertyString:
		return key + ": " + quoteString(formatString(p.Value)), nil
	default:
		return "", fmt.Errorf("property %q has type %q: %w", p.Name, p.Type, ErrOutOfRange)
	}
}

func formatNumber(v any) string {
	switch n := v.(type) {
	case json.Number:
		return n.String()
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case nil:
		return "0"
	default:
		return fmt.Sprint(n)
	}
}

func formatBool(v any) string {
	switch b := v.(type) {
	case bool:
		return strconv.FormatBool(b)
	case nil:
		return "false"
	default:
		return fmt.Sprint(b)
	}
}

func formatString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}
