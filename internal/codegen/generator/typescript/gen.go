package typescript

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Alia5/formgen/internal/codegen/model"
)

// File is one generated module.
type File struct {
	Name    string
	Content string
}

// Output is the result of a generation run, in deterministic order:
// entity modules in entity order, then the template property, types and index modules.
type Output struct {
	Files      []File
	Entities   []*EntitySource
	Properties []model.Property
}

// Generate synthesizes every entity and assembles the shared modules.
// Any synthesis error aborts the run; no partial output is returned.
func Generate(ctx context.Context, logger *slog.Logger, result *model.GeneratorResult, opts Options) (*Output, error) {
	opts = opts.withDefaults()
	forms := result.EntityForms

	sources := make([]*EntitySource, len(forms))
	g, gctx := errgroup.WithContext(ctx)
	for i, entity := range forms {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			es, err := Synthesize(entity, opts)
			if err != nil {
				return err
			}
			sources[i] = es
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Output{}
	var props PropertyList
	seen := map[string]bool{}
	for _, es := range sources {
		fileName := opts.FileName(es.Names)
		if seen[fileName] {
			logger.Warn("Skipping entity with duplicate output file", "entity", es.Entity.Name, "file", fileName)
			continue
		}
		seen[fileName] = true

		if dropped := props.Merge(es.Properties); dropped > 0 {
			logger.Debug("Dropped duplicate template properties", "entity", es.Entity.Name, "count", dropped)
		}
		out.Entities = append(out.Entities, es)
		out.Files = append(out.Files, File{Name: fileName, Content: es.Source})
		logger.Debug("Synthesized entity", "entity", es.Entity.Name, "file", fileName,
			"fields", len(es.Controls), "delegates", len(es.Delegates))
	}
	out.Properties = props.Properties()

	propertySrc, err := generateTemplateProperty(out.Properties, opts)
	if err != nil {
		return nil, err
	}
	typesSrc, err := generateTypes(opts)
	if err != nil {
		return nil, err
	}
	indexSrc, err := generateIndex(out.Entities, opts)
	if err != nil {
		return nil, err
	}
	out.Files = append(out.Files,
		File{Name: TemplatePropertyModule + extTS, Content: propertySrc},
		File{Name: TypesModule + extTS, Content: typesSrc},
		File{Name: IndexModule + extTS, Content: indexSrc},
	)

	logger.Info("Generated TypeScript form templates",
		"entities", len(out.Entities), "properties", len(out.Properties), "files", len(out.Files))
	return out, nil
}

// Lookup returns the content of the named file.
func (o *Output) Lookup(name string) (string, bool) {
	for _, f := range o.Files {
		if f.Name == name {
			return f.Content, true
		}
	}
	return "", false
}

// String implements fmt.Stringer for log output.
func (o *Output) String() string {
	return fmt.Sprintf("%d files, %d entities", len(o.Files), len(o.Entities))
}
