package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/Alia5/formgen/internal/codegen/generator/typescript"
	"github.com/Alia5/formgen/internal/codegen/model"
	"github.com/Alia5/formgen/internal/codegen/writer"
	"github.com/Alia5/formgen/internal/log"
)

// ErrDrift is returned by Check when generated files differ from the files on disk.
var ErrDrift = errors.New("generated files are out of date")

// Formatter turns raw generated text into canonically styled text.
type Formatter interface {
	Format(name, src string) (string, error)
}

// Generator runs the pipeline: synthesis, formatting and writing.
type Generator struct {
	logger    *slog.Logger
	opts      typescript.Options
	formatter Formatter
	writer    writer.Writer
	raw       log.RawLogger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRawLogger dumps every unformatted file to raw.
func WithRawLogger(raw log.RawLogger) Option {
	return func(g *Generator) { g.raw = raw }
}

// New returns a generator. w may be nil when only Render or Check are used.
func New(logger *slog.Logger, opts typescript.Options, formatter Formatter, w writer.Writer, options ...Option) *Generator {
	g := &Generator{
		logger:    logger,
		opts:      opts,
		formatter: formatter,
		writer:    w,
		raw:       log.NewRaw(nil),
	}
	for _, o := range options {
		o(g)
	}
	return g
}

// Render synthesizes and formats every file without writing anything. Each
// file carries a digest line of its content after the header.
func (g *Generator) Render(ctx context.Context, result *model.GeneratorResult) ([]typescript.File, error) {
	g.logger.Info("Generating form templates", "entities", len(result.EntityForms))

	out, err := typescript.Generate(ctx, g.logger, result, g.opts)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}

	files := make([]typescript.File, len(out.Files))
	eg, ctx := errgroup.WithContext(ctx)
	for i, f := range out.Files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g.raw.Log(f.Name, []byte(f.Content))
			formatted, err := g.formatter.Format(f.Name, f.Content)
			if err != nil {
				return fmt.Errorf("format %s: %w", f.Name, err)
			}
			files[i] = typescript.File{Name: f.Name, Content: stamp(formatted)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// Generate renders every file and hands it to the writer. Files are written
// concurrently; the first write error is returned and nothing is retried.
func (g *Generator) Generate(ctx context.Context, result *model.GeneratorResult) error {
	files, err := g.Render(ctx, result)
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, f := range files {
		eg.Go(func() error {
			if err := g.writer.Write(ctx, f.Name, []byte(f.Content)); err != nil {
				return fmt.Errorf("write %s: %w", f.Name, err)
			}
			g.logger.Debug("Wrote file", "file", f.Name, "bytes", len(f.Content))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	g.logger.Info("Form template generation complete", "files", len(files))
	return nil
}

// Drift describes a generated file that does not match its freshly rendered form.
// Missing files are absent on disk; Modified files no longer match their own
// digest line, so they were edited after generation. Other drifted files are stale.
type Drift struct {
	File     string
	Missing  bool
	Modified bool
}

// Check renders every file and compares it with the copy below dir.
// It returns ErrDrift together with the drifted files when anything differs.
func (g *Generator) Check(ctx context.Context, result *model.GeneratorResult, dir string) ([]Drift, error) {
	files, err := g.Render(ctx, result)
	if err != nil {
		return nil, err
	}

	var drifts []Drift
	for _, f := range files {
		onDisk, err := os.ReadFile(filepath.Join(dir, f.Name))
		if errors.Is(err, os.ErrNotExist) {
			drifts = append(drifts, Drift{File: f.Name, Missing: true})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		got, ok := intact(string(onDisk))
		if !ok {
			drifts = append(drifts, Drift{File: f.Name, Modified: true})
			continue
		}
		if _, want, _ := unstamp(f.Content); got != want {
			drifts = append(drifts, Drift{File: f.Name})
		}
	}

	for _, d := range drifts {
		g.logger.Warn("Generated file drifted", "file", d.File, "missing", d.Missing, "modified", d.Modified)
	}
	if len(drifts) > 0 {
		return drifts, ErrDrift
	}
	g.logger.Info("Generated files are up to date", "files", len(files), "dir", dir)
	return nil, nil
}
