// Package app wires one conversion run: read, convert, write, check, report.
package app

import (
	"fmt"

	"github.com/recrsn/addonstub/internal/config"
	"github.com/recrsn/addonstub/internal/convert"
	"github.com/recrsn/addonstub/internal/outline"
	"github.com/recrsn/addonstub/internal/runlog"
	"github.com/recrsn/addonstub/internal/stubfile"
	"github.com/recrsn/addonstub/internal/ui"
)

// Run converts cfg.Input into cfg.Output and records the run in logger.
// Nothing is written when conversion fails.
func Run(cfg config.Config, out ui.UserInterface, logger runlog.Logger) error {
	rec := runlog.Record{Input: cfg.Input}

	err := run(cfg, out, &rec)
	if err != nil {
		rec.Error = err.Error()
	}

	if logErr := logger.LogRun(rec); logErr != nil {
		out.PrintWarning(fmt.Sprintf("Couldn't record run: %v", logErr))
	}

	return err
}

func run(cfg config.Config, out ui.UserInterface, rec *runlog.Record) error {
	converter, err := convert.New(cfg.Convert.Options())
	if err != nil {
		return fmt.Errorf("invalid convert configuration: %w", err)
	}

	out.PrintInfo("Reading " + cfg.Input)
	source, err := stubfile.Read(cfg.Input)
	if err != nil {
		return err
	}

	result, err := converter.Convert(source)
	if err != nil {
		return fmt.Errorf("converting %s: %w", cfg.Input, err)
	}

	rec.Blocks = result.Blocks
	rec.Kept = result.Kept
	rec.Entries = len(result.Entries)

	for _, w := range result.Warnings {
		rec.Warnings = append(rec.Warnings, fmt.Sprintf("%s: %s", w.Kind, w.Declaration))
		out.PrintWarning(fmt.Sprintf("No entry generated for `%s`; prototype-path members are missing from the stub", w.Declaration))
	}

	change, err := stubfile.Write(cfg.Output, result.Output)
	if err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}
	rec.Output = cfg.Output
	out.PrintDiff(change)

	checkStub(result, out)

	out.PrintReport(ui.BuildReport(cfg.Input, cfg.Output, result))
	out.PrintSuccess(fmt.Sprintf("Wrote %d entries to %s", len(result.Entries), cfg.Output))
	out.PrintNextStep(cfg.Output)

	return nil
}

// checkStub parses the written stub and warns when the declaration extractor
// is likely to reject it. It never fails the run.
func checkStub(result *convert.Result, out ui.UserInterface) {
	stub, err := outline.ExtractOutline([]byte(result.Output))
	if err != nil {
		out.PrintWarning(fmt.Sprintf("Couldn't outline the stub: %v", err))
		return
	}

	if stub.HasErrors {
		out.PrintWarning("The stub has syntax errors; the declaration extractor may reject it")
	}
	if len(stub.Members) != len(result.Entries) {
		out.PrintWarning(fmt.Sprintf("The stub declares %d members but %d entries were generated",
			len(stub.Members), len(result.Entries)))
	}

	out.PrintMembers(stub.Members)
}
