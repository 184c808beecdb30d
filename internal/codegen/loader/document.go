package loader

import "github.com/Alia5/formgen/internal/codegen/model"

// Document is the on-disk shape of an entity definition file.
type Document struct {
	EntityForms []EntityDoc `json:"entityForms" yaml:"entityForms" toml:"entityForms"`
}

type EntityDoc struct {
	EntityName string     `json:"entityName" yaml:"entityName" toml:"entityName"`
	Fields     []FieldDoc `json:"fields" yaml:"fields" toml:"fields"`
}

// FieldDoc is a scalar field, or a nested field when Entity names another entity.
type FieldDoc struct {
	FieldName  string         `json:"fieldName" yaml:"fieldName" toml:"fieldName"`
	Properties []PropertyDoc  `json:"properties,omitempty" yaml:"properties,omitempty" toml:"properties,omitempty"`
	Validators []ValidatorDoc `json:"validators,omitempty" yaml:"validators,omitempty" toml:"validators,omitempty"`

	Entity     string         `json:"entity,omitempty" yaml:"entity,omitempty" toml:"entity,omitempty"`
	Definition *DefinitionDoc `json:"definition,omitempty" yaml:"definition,omitempty" toml:"definition,omitempty"`
}

type PropertyDoc struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Type  string `json:"type" yaml:"type" toml:"type"`
	Value any    `json:"value" yaml:"value" toml:"value"`
}

type ValidatorDoc struct {
	Definition string    `json:"definition" yaml:"definition" toml:"definition"`
	Import     ImportDoc `json:"import" yaml:"import" toml:"import"`
}

type ImportDoc struct {
	Path string `json:"path" yaml:"path" toml:"path"`
	Name string `json:"name" yaml:"name" toml:"name"`
}

type DefinitionDoc struct {
	Properties []PropertyDoc  `json:"properties,omitempty" yaml:"properties,omitempty" toml:"properties,omitempty"`
	Validators []ValidatorDoc `json:"validators,omitempty" yaml:"validators,omitempty" toml:"validators,omitempty"`
}

func (d PropertyDoc) model() model.Property {
	return model.Property{Name: d.Name, Type: model.PropertyType(d.Type), Value: d.Value}
}

func (d ValidatorDoc) model() model.Validator {
	return model.Validator{
		Definition: d.Definition,
		Import:     model.Import{Path: d.Import.Path, Name: d.Import.Name},
	}
}

func properties(docs []PropertyDoc) []model.Property {
	if len(docs) == 0 {
		return nil
	}
	out := make([]model.Property, len(docs))
	for i, d := range docs {
		out[i] = d.model()
	}
	return out
}

func validators(docs []ValidatorDoc) []model.Validator {
	if len(docs) == 0 {
		return nil
	}
	out := make([]model.Validator, len(docs))
	for i, d := range docs {
		out[i] = d.model()
	}
	return out
}
