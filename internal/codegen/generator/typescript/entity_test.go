package typescript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/formgen/internal/codegen/model"
)

var (
	required    = model.Validator{Definition: "Validators.required", Import: model.Import{Path: "@angular/forms", Name: "Validators"}}
	maxLength5  = model.Validator{Definition: "Validators.maxLength(5)", Import: model.Import{Path: "@angular/forms", Name: "Validators"}}
	zipValidate = model.Validator{Definition: "zipValidator", Import: model.Import{Path: "./validators", Name: "zipValidator"}}
)

func addressEntity() *model.EntityForm {
	return &model.EntityForm{
		Name: "address",
		Fields: []model.Field{
			{
				Name:       "street",
				Properties: []model.Property{{Name: "label", Type: model.PropertyString, Value: "Street"}},
				Validators: []model.Validator{required},
			},
			{
				Name:       "zip",
				Properties: []model.Property{{Name: "maxLength", Type: model.PropertyNumber, Value: 5}},
				Validators: []model.Validator{maxLength5, zipValidate},
			},
		},
	}
}

func userProfileEntity(address *model.EntityForm) *model.EntityForm {
	return &model.EntityForm{
		Name: "user profile",
		Fields: []model.Field{
			{
				Name:       "name",
				Properties: []model.Property{{Name: "label", Type: model.PropertyString, Value: "Name"}},
				Validators: []model.Validator{required},
			},
			{Name: "home", Entity: address},
			{
				Name:   "work",
				Entity: address,
				Definition: &model.Definition{
					Properties: []model.Property{{Name: "label", Type: model.PropertyString, Value: "Work"}},
					Validators: []model.Validator{required},
				},
			},
		},
	}
}

const addressSource = `// Code generated by formgen. DO NOT EDIT.

import { FormBuilder, FormGroup, Validators } from '@angular/forms';
import { zipValidator } from './validators';
import { TemplateProperty } from './templateProperty';
import { TemplateValidator } from './types';

export interface AddressTemplate {
  street: TemplateProperty;
  zip: TemplateProperty;
}

export const addressTemplate: AddressTemplate = {
  street: { 'label': 'Street' },
  zip: { 'maxLength': 5 },
};

export class AddressFactory {
  private readonly validators: Record<string, TemplateValidator> = {
    'street': [Validators.required],
    'zip': [Validators.maxLength(5), zipValidator],
  };

  constructor(private readonly formBuilder: FormBuilder) {
  }

  fillForm(form: FormGroup): FormGroup {
    form.addControl('street', this.formBuilder.control(null, this.validators['street']));
    form.addControl('zip', this.formBuilder.control(null, this.validators['zip']));
    return form;
  }
}
`

func TestSynthesizeScalarEntity(t *testing.T) {
	es, err := Synthesize(addressEntity(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "addressTemplate", es.Module)
	assert.Equal(t, addressSource, es.Source)
	assert.Empty(t, es.Delegates)

	// one control per scalar field, each carrying exactly that field's validators
	require.Len(t, es.Controls, 2)
	assert.Equal(t, Control{Field: "street", Kind: ScalarControl, Validators: []string{"Validators.required"}}, es.Controls[0])
	assert.Equal(t, Control{Field: "zip", Kind: ScalarControl, Validators: []string{"Validators.maxLength(5)", "zipValidator"}}, es.Controls[1])

	assert.Equal(t, []model.Property{
		{Name: "label", Type: model.PropertyString, Value: "Street"},
		{Name: "maxLength", Type: model.PropertyNumber, Value: 5},
	}, es.Properties)
}

func TestSynthesizeNestedEntity(t *testing.T) {
	address := addressEntity()
	es, err := Synthesize(userProfileEntity(address), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "userProfileTemplate", es.Module)

	require.Len(t, es.Members, 3)
	assert.Equal(t, Member{Field: "home", Type: "AddressTemplate", Value: "addressTemplate"}, es.Members[1])
	assert.Equal(t, Member{
		Field: "work",
		Type:  "AddressTemplate & TemplateProperty",
		Value: "{ ...addressTemplate, 'label': 'Work' }",
	}, es.Members[2])

	// one delegate per distinct nested entity, even when referenced twice
	assert.Equal(t, []Delegate{{Instance: "addressFactory", Class: "AddressFactory"}}, es.Delegates)

	require.Len(t, es.Controls, 3)
	assert.Equal(t, GroupControl, es.Controls[1].Kind)
	assert.Equal(t, "addressFactory", es.Controls[1].Delegate)
	assert.Empty(t, es.Controls[1].Validators)
	assert.Equal(t, []string{"Validators.required"}, es.Controls[2].Validators)

	assert.Equal(t, []string{"AddressTemplate", "addressTemplate", "AddressFactory"}, es.Locals.Names("./addressTemplate"))
	assert.Equal(t, []string{"FormBuilder", "FormGroup", "Validators"}, es.Imports.Names("@angular/forms"))

	assert.Equal(t, []model.Property{
		{Name: "label", Type: model.PropertyString, Value: "Name"},
		{Name: "label", Type: model.PropertyString, Value: "Work"},
	}, es.Properties)

	for _, line := range []string{
		"import { AddressTemplate, addressTemplate, AddressFactory } from './addressTemplate';",
		"export interface UserProfileTemplate {",
		"  home: AddressTemplate;",
		"  work: AddressTemplate & TemplateProperty;",
		"export const userProfileTemplate: UserProfileTemplate = {",
		"  home: addressTemplate,",
		"  work: { ...addressTemplate, 'label': 'Work' },",
		"export class UserProfileFactory {",
		"  private readonly addressFactory: AddressFactory;",
		"    this.addressFactory = new AddressFactory(formBuilder);",
		"    'work': [Validators.required],",
		"    form.addControl('name', this.formBuilder.control(null, this.validators['name']));",
		"    form.addControl('home', this.addressFactory.fillForm(this.formBuilder.group({})));",
		"    form.addControl('work', this.addressFactory.fillForm(this.formBuilder.group({}, { validators: this.validators['work'] })));",
	} {
		assert.Contains(t, es.Source, line+"\n")
	}
	assert.Equal(t, 1, strings.Count(es.Source, "new AddressFactory("))
	assert.NotContains(t, es.Source, "'home': [")

	// the nested entity itself is never touched
	assert.Equal(t, addressEntity(), address)
}

func TestSynthesizeSelfReference(t *testing.T) {
	node := &model.EntityForm{Name: "node"}
	node.Fields = []model.Field{
		{Name: "title", Properties: []model.Property{{Name: "label", Type: model.PropertyString, Value: "Title"}}},
		{Name: "child", Entity: node},
	}

	es, err := Synthesize(node, DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, es.Delegates)
	assert.NotContains(t, es.Locals.Paths(), "./nodeTemplate")
	assert.Equal(t, "this", es.Controls[1].Delegate)
	assert.Contains(t, es.Source, "form.addControl('child', this.fillForm(this.formBuilder.group({})));")
	assert.Contains(t, es.Source, "'title': [],")
}

func TestSynthesizeOptions(t *testing.T) {
	opts := Options{
		FilePrefix:                    "form-",
		FileSuffix:                    ".gen",
		TemplatePropertyInterfaceName: "FieldProps",
		FormLibrary:                   "@custom/forms",
	}
	es, err := Synthesize(userProfileEntity(addressEntity()), opts)
	require.NoError(t, err)

	assert.Equal(t, "form-userProfileTemplate.gen", es.Module)
	assert.Equal(t, "form-userProfileTemplate.gen.ts", opts.FileName(es.Names))
	assert.Contains(t, es.Source, "import { FormBuilder, FormGroup } from '@custom/forms';")
	assert.Contains(t, es.Source, "import { Validators } from '@angular/forms';")
	assert.Contains(t, es.Source, "import { FieldProps } from './templateProperty';")
	assert.Contains(t, es.Source, "from './form-addressTemplate.gen';")
	assert.Contains(t, es.Source, "  name: FieldProps;")
}

func TestSynthesizeEmptyEntity(t *testing.T) {
	es, err := Synthesize(&model.EntityForm{Name: "empty"}, DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, es.Controls)
	assert.Contains(t, es.Source, "export interface EmptyTemplate {\n}\n")
	assert.Contains(t, es.Source, "private readonly validators: Record<string, TemplateValidator> = {};")
}

func TestSynthesizeOutOfRange(t *testing.T) {
	entity := &model.EntityForm{
		Name: "person",
		Fields: []model.Field{{
			Name:       "born",
			Properties: []model.Property{{Name: "default", Type: "date", Value: "2020-01-01"}},
		}},
	}
	es, err := Synthesize(entity, DefaultOptions())
	assert.Nil(t, es)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), `entity "person" field "born"`)
}
