// Package model holds the entity form definitions consumed by the generators.
//
// The model is read-only input: generators never mutate an EntityForm, and a
// nested field's referenced entity is shared by every field pointing at it.
package model

// PropertyType is the declared kind of a template property value.
type PropertyType string

const (
	PropertyNumber  PropertyType = "number"
	PropertyString  PropertyType = "string"
	PropertyBoolean PropertyType = "boolean"
)

// Property is one key/value pair baked into a generated template constant.
type Property struct {
	Name  string
	Type  PropertyType
	Value any
}

// Import names an external symbol and the module it is imported from.
type Import struct {
	Path string
	Name string
}

// Validator is a verbatim source expression spliced into a generated factory,
// plus the import it requires.
type Validator struct {
	Definition string
	Import     Import
}

// Definition carries inline template data for a nested field.
type Definition struct {
	Properties []Property
	Validators []Validator
}

// Field is one member of an entity form. A field is nested when Entity is set,
// otherwise it is a scalar field described by Properties and Validators.
type Field struct {
	Name       string
	Properties []Property
	Validators []Validator

	Entity     *EntityForm
	Definition *Definition
}

// IsNested reports whether the field references another entity.
func (f Field) IsNested() bool { return f.Entity != nil }

// EntityForm describes one form to generate code for. Name is its identity.
type EntityForm struct {
	Name   string
	Fields []Field
}

// GeneratorResult is the complete input of a generation run.
type GeneratorResult struct {
	EntityForms []*EntityForm
}
