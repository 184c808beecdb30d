package typescript

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Alia5/formgen/internal/codegen/common"
	"github.com/Alia5/formgen/internal/codegen/model"
)

// ControlKind tells the factory how a field is attached to the form.
type ControlKind int

const (
	// ScalarControl binds a leaf control parameterized by a validator list.
	ScalarControl ControlKind = iota
	// GroupControl binds a sub-group filled by a nested factory.
	GroupControl
)

func (k ControlKind) String() string {
	if k == GroupControl {
		return "group"
	}
	return "scalar"
}

// Member is one field of the generated contract and template constant.
type Member struct {
	Field string
	Type  string
	Value string
}

// Control is one entry of the factory's ordered control list.
type Control struct {
	Field      string
	Kind       ControlKind
	Validators []string
	// Delegate is the held factory instance filling a group control, or "this"
	// when an entity nests itself.
	Delegate string
}

// Delegate is a nested factory instance held by a generated factory.
type Delegate struct {
	Instance string
	Class    string
}

// EntitySource is the synthesis result of one entity.
type EntitySource struct {
	Entity *model.EntityForm
	Names  common.EntityNames
	Module string

	Members    []Member
	Controls   []Control
	Delegates  []Delegate
	Imports    ImportSet
	Locals     ImportSet
	Properties []model.Property

	Source string
}

// Synthesize builds the module of a single entity: its contract, its template
// constant and its factory class. It reads only the entity and the options.
func Synthesize(entity *model.EntityForm, opts Options) (*EntitySource, error) {
	opts = opts.withDefaults()
	names := common.DeriveNames(entity.Name)
	es := &EntitySource{
		Entity: entity,
		Names:  names,
		Module: opts.ModuleName(names),
	}

	es.Imports.Add(opts.FormLibrary, "FormBuilder", "FormGroup")
	es.Locals.Add(localPath(TemplatePropertyModule), opts.TemplatePropertyInterfaceName)
	es.Locals.Add(localPath(TypesModule), ValidatorTypeName)

	held := map[string]bool{}
	for _, field := range entity.Fields {
		var err error
		if field.IsNested() {
			err = es.addNested(field, opts, held)
		} else {
			err = es.addScalar(field, opts)
		}
		if err != nil {
			return nil, fmt.Errorf("entity %q field %q: %w", entity.Name, field.Name, err)
		}
	}

	src, err := es.render(opts)
	if err != nil {
		return nil, fmt.Errorf("entity %q: %w", entity.Name, err)
	}
	es.Source = src
	return es, nil
}

func (es *EntitySource) addScalar(field model.Field, opts Options) error {
	value, err := templateObject(field.Properties)
	if err != nil {
		return err
	}
	es.Members = append(es.Members, Member{
		Field: field.Name,
		Type:  opts.TemplatePropertyInterfaceName,
		Value: value,
	})
	es.Properties = append(es.Properties, field.Properties...)
	es.Controls = append(es.Controls, Control{
		Field:      field.Name,
		Kind:       ScalarControl,
		Validators: es.addValidators(field.Validators),
	})
	return nil
}

func (es *EntitySource) addNested(field model.Field, opts Options, held map[string]bool) error {
	nested := common.DeriveNames(field.Entity.Name)
	module := opts.ModuleName(nested)
	self := module == es.Module

	if !self {
		es.Locals.Add(localPath(module), nested.Interface, nested.Constant, nested.Factory)
	}

	member := Member{Field: field.Name, Type: nested.Interface, Value: nested.Constant}
	var validators []string
	if def := field.Definition; def != nil {
		if len(def.Properties) > 0 {
			pairs, err := templatePairs(def.Properties)
			if err != nil {
				return err
			}
			member.Type = nested.Interface + " & " + opts.TemplatePropertyInterfaceName
			member.Value = "{ ..." + nested.Constant + ", " + strings.Join(pairs, ", ") + " }"
			es.Properties = append(es.Properties, def.Properties...)
		}
		validators = es.addValidators(def.Validators)
	}
	es.Members = append(es.Members, member)

	delegate := "this"
	if !self {
		delegate = nested.FactoryInstance
		if !held[nested.Factory] {
			held[nested.Factory] = true
			es.Delegates = append(es.Delegates, Delegate{Instance: nested.FactoryInstance, Class: nested.Factory})
		}
	}
	es.Controls = append(es.Controls, Control{
		Field:      field.Name,
		Kind:       GroupControl,
		Validators: validators,
		Delegate:   delegate,
	})
	return nil
}

func (es *EntitySource) addValidators(validators []model.Validator) []string {
	defs := make([]string, 0, len(validators))
	for _, v := range validators {
		if v.Import.Path != "" && v.Import.Name != "" {
			es.Imports.Add(v.Import.Path, v.Import.Name)
		}
		defs = append(defs, v.Definition)
	}
	return defs
}

func templatePairs(props []model.Property) ([]string, error) {
	pairs := make([]string, 0, len(props))
	for _, p := range props {
		pair, err := FormatTemplateValue(p)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

func templateObject(props []model.Property) (string, error) {
	pairs, err := templatePairs(props)
	if err != nil {
		return "", err
	}
	if len(pairs) == 0 {
		return "{}", nil
	}
	return "{ " + strings.Join(pairs, ", ") + " }", nil
}

// Statement renders the fillForm line attaching the control.
func (c Control) Statement() string {
	key := quoteString(c.Field)
	if c.Kind == ScalarControl {
		return fmt.Sprintf("form.addControl(%s, this.formBuilder.control(null, this.validators[%s]));", key, key)
	}
	target := "this." + c.Delegate
	if c.Delegate == "this" {
		target = "this"
	}
	group := "this.formBuilder.group({})"
	if len(c.Validators) > 0 {
		group = fmt.Sprintf("this.formBuilder.group({}, { validators: this.validators[%s] })", key)
	}
	return fmt.Sprintf("form.addControl(%s, %s.fillForm(%s));", key, target, group)
}

// HasValidatorEntry reports whether the control owns an entry in the validators record.
func (c Control) HasValidatorEntry() bool {
	return c.Kind == ScalarControl || len(c.Validators) > 0
}

const entityTemplateTS = `{{writeFileHeaderTS}}
{{range .Imports}}{{.}}
{{end}}
export interface {{.Names.Interface}} {
{{- range .Members}}
  {{tsKey .Field}}: {{.Type}};
{{- end}}
}

export const {{.Names.Constant}}: {{.Names.Interface}} = {
{{- range .Members}}
  {{tsKey .Field}}: {{.Value}},
{{- end}}
};

export class {{.Names.Factory}} {
{{- range .Delegates}}
  private readonly {{.Instance}}: {{.Class}};
{{- end}}
{{- if .Records}}
  private readonly validators: Record<string, {{.ValidatorType}}> = {
{{- range .Records}}
    {{quote .Field}}: [{{join .Validators ", "}}],
{{- end}}
  };
{{- else}}
  private readonly validators: Record<string, {{.ValidatorType}}> = {};
{{- end}}

  constructor(private readonly formBuilder: FormBuilder) {
{{- range .Delegates}}
    this.{{.Instance}} = new {{.Class}}(formBuilder);
{{- end}}
  }

  fillForm(form: FormGroup): FormGroup {
{{- range .Controls}}
    {{.Statement}}
{{- end}}
    return form;
  }
}
`

var entityTmpl = template.Must(template.New("entityTS").Funcs(template.FuncMap{
	"writeFileHeaderTS": writeFileHeaderTS,
	"tsKey":             tsKey,
	"quote":             quoteString,
	"join":              strings.Join,
}).Parse(entityTemplateTS))

func (es *EntitySource) render(opts Options) (string, error) {
	var records []Control
	for _, c := range es.Controls {
		if c.HasValidatorEntry() {
			records = append(records, c)
		}
	}
	data := struct {
		Names         common.EntityNames
		Imports       []string
		Members       []Member
		Delegates     []Delegate
		Controls      []Control
		Records       []Control
		ValidatorType string
	}{
		Names:         es.Names,
		Imports:       append(es.Imports.Lines(), es.Locals.Lines()...),
		Members:       es.Members,
		Delegates:     es.Delegates,
		Controls:      es.Controls,
		Records:       records,
		ValidatorType: ValidatorTypeName,
	}
	var buf strings.Builder
	if err := entityTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute entity template: %w", err)
	}
	return buf.String(), nil
}
