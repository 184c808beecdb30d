package typescript

import (
	"fmt"
	"strings"
	"text/template"
)

const indexTemplateTS = `{{writeFileHeaderTS}}
{{- range .Entities}}
export { {{.Names.Interface}}, {{.Names.Constant}}, {{.Names.Factory}} } from {{quote (local .Module)}};
{{- end}}
export { {{.PropertyInterface}} } from {{quote (local .PropertyModule)}};
`

var indexTmpl = template.Must(template.New("indexTS").Funcs(template.FuncMap{
	"writeFileHeaderTS": writeFileHeaderTS,
	"quote":             quoteString,
	"local":             localPath,
}).Parse(indexTemplateTS))

func generateIndex(entities []*EntitySource, opts Options) (string, error) {
	data := struct {
		Entities          []*EntitySource
		PropertyInterface string
		PropertyModule    string
	}{
		Entities:          entities,
		PropertyInterface: opts.TemplatePropertyInterfaceName,
		PropertyModule:    TemplatePropertyModule,
	}

	var buf strings.Builder
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute index template: %w", err)
	}
	return buf.String(), nil
}
