package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Alia5/formgen/internal/codegen/format"
	"github.com/Alia5/formgen/internal/codegen/generator"
	"github.com/Alia5/formgen/internal/codegen/generator/typescript"
	"github.com/Alia5/formgen/internal/codegen/loader"
	"github.com/Alia5/formgen/internal/codegen/writer"
	"github.com/Alia5/formgen/internal/log"
)

// Project holds the options shared by generate and check.
type Project struct {
	Input []string `arg:"" help:"Entity definition files (.json, .yaml, .yml, .toml, .cue, .go)" type:"existingfile"`

	Output                        string `help:"Output folder for the generated modules" default:"." env:"FORMGEN_OUTPUT"`
	FilePrefix                    string `help:"Prefix of every entity module file name" env:"FORMGEN_FILE_PREFIX"`
	FileSuffix                    string `help:"Suffix of every entity module file name" env:"FORMGEN_FILE_SUFFIX"`
	TemplatePropertyInterfaceName string `help:"Name of the shared template property interface" default:"TemplateProperty" env:"FORMGEN_TEMPLATE_PROPERTY_INTERFACE_NAME"`
	FormLibrary                   string `help:"Module providing FormBuilder, FormGroup and ValidatorFn" default:"@angular/forms" env:"FORMGEN_FORM_LIBRARY"`

	Style format.Options `embed:"" prefix:"style."`
}

func (p *Project) typescriptOptions() typescript.Options {
	return typescript.Options{
		FilePrefix:                    p.FilePrefix,
		FileSuffix:                    p.FileSuffix,
		TemplatePropertyInterfaceName: p.TemplatePropertyInterfaceName,
		FormLibrary:                   p.FormLibrary,
	}
}

func (p *Project) generator(logger *slog.Logger, raw log.RawLogger, w writer.Writer) (*generator.Generator, error) {
	printer, err := format.New(p.Style)
	if err != nil {
		return nil, fmt.Errorf("formatter: %w", err)
	}
	return generator.New(logger, p.typescriptOptions(), printer, w, generator.WithRawLogger(raw)), nil
}

// Generate writes the generated modules into the output folder.
type Generate struct {
	Project `embed:""`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(ctx context.Context, logger *slog.Logger, raw log.RawLogger) error {
	logger.Info("Starting form template generation", "inputs", len(c.Input), "output", c.Output)

	result, err := loader.Load(logger, c.Input...)
	if err != nil {
		return err
	}
	gen, err := c.generator(logger, raw, writer.NewDir(c.Output))
	if err != nil {
		return err
	}
	return gen.Generate(ctx, result)
}

// Check renders the modules in memory and compares them with the output folder.
type Check struct {
	Project `embed:""`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(ctx context.Context, logger *slog.Logger, raw log.RawLogger) error {
	result, err := loader.Load(logger, c.Input...)
	if err != nil {
		return err
	}
	gen, err := c.generator(logger, raw, nil)
	if err != nil {
		return err
	}
	drifts, err := gen.Check(ctx, result, c.Output)
	if errors.Is(err, generator.ErrDrift) {
		edited := 0
		for _, d := range drifts {
			if d.Modified {
				edited++
			}
		}
		return fmt.Errorf("%w: %d file(s) differ (%d edited by hand), rerun formgen generate", err, len(drifts), edited)
	}
	return err
}
