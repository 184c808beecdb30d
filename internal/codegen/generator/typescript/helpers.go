package typescript

import (
	"strings"
	"unicode"

	"github.com/Alia5/formgen/internal/codegen/common"
	"github.com/Alia5/formgen/internal/codegen/model"
)

const (
	// TemplatePropertyModule is the fixed module holding the shared property contract.
	TemplatePropertyModule = "templateProperty"
	// TypesModule is the fixed module holding the validator value alias.
	TypesModule = "types"
	// IndexModule is the barrel module re-exporting every public symbol.
	IndexModule = "index"

	// ValidatorTypeName is the alias declared by the types module.
	ValidatorTypeName = "TemplateValidator"

	extTS = ".ts"
)

// Options configures TypeScript generation.
type Options struct {
	FilePrefix                    string
	FileSuffix                    string
	TemplatePropertyInterfaceName string
	FormLibrary                   string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		TemplatePropertyInterfaceName: "TemplateProperty",
		FormLibrary:                   "@angular/forms",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TemplatePropertyInterfaceName == "" {
		o.TemplatePropertyInterfaceName = d.TemplatePropertyInterfaceName
	}
	if o.FormLibrary == "" {
		o.FormLibrary = d.FormLibrary
	}
	return o
}

// ModuleName returns the module (file name without extension) of an entity.
func (o Options) ModuleName(names common.EntityNames) string {
	return o.FilePrefix + names.Constant + o.FileSuffix
}

// FileName returns the output file name of an entity.
func (o Options) FileName(names common.EntityNames) string {
	return o.ModuleName(names) + extTS
}

func localPath(module string) string { return "./" + module }

func writeFileHeaderTS() string {
	return "// Code generated by formgen. DO NOT EDIT.\n"
}

// tsPropertyType maps a property kind to its TypeScript type.
func tsPropertyType(t model.PropertyType) string {
	switch t {
	case model.PropertyNumber:
		return "number"
	case model.PropertyBoolean:
		return "boolean"
	default:
		return "string"
	}
}

// tsKey renders an object or interface key, quoting it when it is not a plain identifier.
func tsKey(name string) string {
	if isIdentifier(name) {
		return name
	}
	return quoteString(name)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// quoteString renders s as a single-quoted TypeScript string literal.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
