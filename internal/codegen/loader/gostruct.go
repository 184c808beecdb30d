package loader

import (
	"encoding/json"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/Alia5/formgen/internal/codegen/common"
)

// Struct tags read from Go entity definitions.
//
//	type Address struct {
//		Street string `json:"street" form:"label=Street" validate:"Validators.required" import:"@angular/forms"`
//	}
//
// form holds ';'-separated key=value template properties. true and false are
// booleans, decimal number literals are numbers, anything else is a string;
// single quotes force a string.
// validate holds ';'-separated validator expressions, each importing the
// identifier it starts with from the module named by import.
const (
	tagForm     = "form"
	tagValidate = "validate"
	tagImport   = "import"
)

// decodeGo reads every struct type of a Go source file as an entity. A field
// whose type is another struct of the same file becomes a nested field.
func decodeGo(path string, data []byte, doc *Document) error {
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, path, data, parser.SkipObjectResolution)
	if err != nil {
		return fmt.Errorf("parse file: %w", err)
	}

	structs := map[string]*ast.StructType{}
	var order []string
	ast.Inspect(node, func(n ast.Node) bool {
		typeSpec, ok := n.(*ast.TypeSpec)
		if !ok {
			return true
		}
		if st, ok := typeSpec.Type.(*ast.StructType); ok {
			structs[typeSpec.Name.Name] = st
			order = append(order, typeSpec.Name.Name)
		}
		return false
	})

	for _, name := range order {
		entity := EntityDoc{EntityName: name}
		for _, field := range structs[name].Fields.List {
			if len(field.Names) == 0 || !ast.IsExported(field.Names[0].Name) {
				continue
			}
			var tag reflect.StructTag
			if field.Tag != nil {
				raw, err := strconv.Unquote(field.Tag.Value)
				if err != nil {
					return fmt.Errorf("%s.%s: bad struct tag: %w", name, field.Names[0].Name, err)
				}
				tag = reflect.StructTag(raw)
			}
			if tag.Get(tagForm) == "-" {
				continue
			}

			fd, err := goField(field.Names[0].Name, tag)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", name, field.Names[0].Name, err)
			}
			if nested := structName(field.Type); nested != "" && structs[nested] != nil {
				fd.Entity = nested
				if len(fd.Properties) > 0 || len(fd.Validators) > 0 {
					fd.Definition = &DefinitionDoc{Properties: fd.Properties, Validators: fd.Validators}
				}
				fd.Properties, fd.Validators = nil, nil
			}
			entity.Fields = append(entity.Fields, fd)
		}
		doc.EntityForms = append(doc.EntityForms, entity)
	}
	return nil
}

func goField(goName string, tag reflect.StructTag) (FieldDoc, error) {
	fd := FieldDoc{FieldName: common.ToCamelCase(goName)}
	if name, _, _ := strings.Cut(tag.Get("json"), ","); name != "" && name != "-" {
		fd.FieldName = name
	}

	for _, pair := range splitList(tag.Get(tagForm)) {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fd, fmt.Errorf("form property %q: expected key=value", pair)
		}
		fd.Properties = append(fd.Properties, goProperty(key, strings.TrimSpace(value)))
	}

	importPath := tag.Get(tagImport)
	for _, def := range splitList(tag.Get(tagValidate)) {
		v := ValidatorDoc{Definition: def}
		if importPath != "" {
			v.Import = ImportDoc{Path: importPath, Name: leadingIdent(def)}
		}
		fd.Validators = append(fd.Validators, v)
	}
	return fd, nil
}

// numberLiteral matches decimal numbers that are valid TypeScript literals as written.
var numberLiteral = regexp.MustCompile(`^-?(?:(?:0|[1-9]\d*)(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?$`)

func goProperty(key, value string) PropertyDoc {
	if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
		return PropertyDoc{Name: key, Type: "string", Value: value[1 : len(value)-1]}
	}
	if value == "true" || value == "false" {
		return PropertyDoc{Name: key, Type: "boolean", Value: value == "true"}
	}
	if numberLiteral.MatchString(value) {
		return PropertyDoc{Name: key, Type: "number", Value: json.Number(value)}
	}
	return PropertyDoc{Name: key, Type: "string", Value: value}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// leadingIdent returns the identifier an expression starts with ("Validators.required" -> "Validators").
func leadingIdent(expr string) string {
	end := strings.IndexFunc(expr, func(r rune) bool {
		return r != '_' && r != '$' && !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') && !('0' <= r && r <= '9')
	})
	if end < 0 {
		return expr
	}
	return expr[:end]
}

func structName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return structName(t.X)
	default:
		return ""
	}
}
