package typescript

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/formgen/internal/codegen/model"
)

func TestFormatTemplateValue(t *testing.T) {
	tests := []struct {
		name string
		prop model.Property
		want string
	}{
		{"int", model.Property{Name: "age", Type: model.PropertyNumber, Value: 5}, `'age': 5`},
		{"float", model.Property{Name: "step", Type: model.PropertyNumber, Value: 2.5}, `'step': 2.5`},
		{"json number", model.Property{Name: "max", Type: model.PropertyNumber, Value: json.Number("10")}, `'max': 10`},
		{"string", model.Property{Name: "label", Type: model.PropertyString, Value: "Hi"}, `'label': 'Hi'`},
		{"string with quote", model.Property{Name: "title", Type: model.PropertyString, Value: "It's"}, `'title': 'It\'s'`},
		{"bool", model.Property{Name: "required", Type: model.PropertyBoolean, Value: true}, `'required': true`},
		{"nil bool", model.Property{Name: "hidden", Type: model.PropertyBoolean}, `'hidden': false`},
		{"dashed key", model.Property{Name: "aria-label", Type: model.PropertyString, Value: "x"}, `'aria-label': 'x'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatTemplateValue(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTemplateValueOutOfRange(t *testing.T) {
	for _, typ := range []model.PropertyType{"date", "", "Number"} {
		_, err := FormatTemplateValue(model.Property{Name: "born", Type: typ, Value: "2020-01-01"})
		assert.ErrorIs(t, err, ErrOutOfRange, "type %q", typ)
	}
}

func TestTSKey(t *testing.T) {
	assert.Equal(t, "name", tsKey("name"))
	assert.Equal(t, "$ref_1", tsKey("$ref_1"))
	assert.Equal(t, "'first name'", tsKey("first name"))
	assert.Equal(t, "'1st'", tsKey("1st"))
}
