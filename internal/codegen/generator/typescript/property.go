package typescript

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Alia5/formgen/internal/codegen/model"
)

// PropertyList is an ordered set of properties keyed by name.
// The first property added under a name wins; later duplicates are ignored.
type PropertyList struct {
	list []model.Property
	seen map[string]bool
}

// Merge appends every property whose name has not been seen yet and reports
// how many duplicates were dropped.
func (l *PropertyList) Merge(props []model.Property) (dropped int) {
	if l.seen == nil {
		l.seen = make(map[string]bool)
	}
	for _, p := range props {
		if l.seen[p.Name] {
			dropped++
			continue
		}
		l.seen[p.Name] = true
		l.list = append(l.list, p)
	}
	return dropped
}

// Properties returns the merged properties in first-seen order.
func (l *PropertyList) Properties() []model.Property {
	return append([]model.Property(nil), l.list...)
}

const templatePropertyTemplateTS = `{{writeFileHeaderTS}}
export interface {{.Name}} {
{{- range .Properties}}
  {{tsKey .Name}}?: {{tsType .Type}};
{{- end}}
}
`

var templatePropertyTmpl = template.Must(template.New("templatePropertyTS").Funcs(template.FuncMap{
	"writeFileHeaderTS": writeFileHeaderTS,
	"tsKey":             tsKey,
	"tsType":            tsPropertyType,
}).Parse(templatePropertyTemplateTS))

func generateTemplateProperty(props []model.Property, opts Options) (string, error) {
	data := struct {
		Name       string
		Properties []model.Property
	}{Name: opts.TemplatePropertyInterfaceName, Properties: props}

	var buf strings.Builder
	if err := templatePropertyTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template property template: %w", err)
	}
	return buf.String(), nil
}
