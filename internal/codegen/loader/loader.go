// Package loader reads entity definitions from JSON, YAML, TOML, CUE and
// annotated Go source files and resolves nested entity references into a model.GeneratorResult.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/formgen/internal/codegen/model"
)

// ErrUnsupportedFormat is returned for input files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Load reads every file in order and builds one generator input from all of them.
func Load(logger *slog.Logger, paths ...string) (*model.GeneratorResult, error) {
	var docs []Document
	for _, path := range paths {
		doc, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded entity definitions", "file", path, "entities", len(doc.EntityForms))
		docs = append(docs, *doc)
	}
	return Resolve(logger, docs...)
}

// LoadFile decodes a single definition file, choosing the decoder by extension.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc Document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = decodeJSON(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	case ".cue":
		err = decodeCUE(path, data, &doc)
	case ".go":
		err = decodeGo(path, data, &doc)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &doc, nil
}

func decodeJSON(data []byte, doc *Document) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	return dec.Decode(doc)
}

func decodeCUE(path string, data []byte, doc *Document) error {
	ctx := cuecontext.New()
	val := ctx.CompileBytes(data, cue.Filename(path))
	if err := val.Err(); err != nil {
		return err
	}
	if err := val.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return val.Decode(doc)
}

// Resolve converts documents into the generator model. Nested references are
// resolved by entity name across all documents; the first definition of a name
// wins. An unknown name becomes an empty placeholder entity so the emitted
// import dangles instead of failing here.
func Resolve(logger *slog.Logger, docs ...Document) (*model.GeneratorResult, error) {
	result := &model.GeneratorResult{}
	byName := map[string]*model.EntityForm{}

	var pending []EntityDoc
	for _, doc := range docs {
		for i, ed := range doc.EntityForms {
			if ed.EntityName == "" {
				return nil, fmt.Errorf("entity #%d: missing entityName", i+1)
			}
			entity := &model.EntityForm{Name: ed.EntityName}
			if _, dup := byName[ed.EntityName]; dup {
				logger.Warn("Duplicate entity definition", "entity", ed.EntityName)
			} else {
				byName[ed.EntityName] = entity
			}
			result.EntityForms = append(result.EntityForms, entity)
			pending = append(pending, ed)
		}
	}

	placeholders := map[string]*model.EntityForm{}
	lookup := func(name string) *model.EntityForm {
		if e, ok := byName[name]; ok {
			return e
		}
		if e, ok := placeholders[name]; ok {
			return e
		}
		logger.Warn("Unresolved nested entity reference", "entity", name)
		e := &model.EntityForm{Name: name}
		placeholders[name] = e
		return e
	}

	for i, ed := range pending {
		entity := result.EntityForms[i]
		for j, fd := range ed.Fields {
			if fd.FieldName == "" {
				return nil, fmt.Errorf("entity %q field #%d: missing fieldName", ed.EntityName, j+1)
			}
			field := model.Field{
				Name:       fd.FieldName,
				Properties: properties(fd.Properties),
				Validators: validators(fd.Validators),
			}
			if fd.Entity != "" {
				field.Entity = lookup(fd.Entity)
				if fd.Definition != nil {
					field.Definition = &model.Definition{
						Properties: properties(fd.Definition.Properties),
						Validators: validators(fd.Definition.Validators),
					}
				}
			}
			entity.Fields = append(entity.Fields, field)
		}
	}
	return result, nil
}
