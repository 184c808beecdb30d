package typescript

import (
	"fmt"
	"strings"
	"text/template"
)

const typesTemplateTS = `{{writeFileHeaderTS}}
import { ValidatorFn } from {{quote .FormLibrary}};

// A single validator or a list of validators attached to one control.
export type {{.Name}} = ValidatorFn | ValidatorFn[];
`

var typesTmpl = template.Must(template.New("typesTS").Funcs(template.FuncMap{
	"writeFileHeaderTS": writeFileHeaderTS,
	"quote":             quoteString,
}).Parse(typesTemplateTS))

func generateTypes(opts Options) (string, error) {
	data := struct {
		Name        string
		FormLibrary string
	}{Name: ValidatorTypeName, FormLibrary: opts.FormLibrary}

	var buf strings.Builder
	if err := typesTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute types template: %w", err)
	}
	return buf.String(), nil
}
