package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/kbukum/validenv/config"
	"github.com/kbukum/validenv/env"
	"github.com/kbukum/validenv/errors"
)

var (
	keyColor      = color.New(color.FgCyan)
	resolvedColor = color.New(color.FgGreen)
	fallbackColor = color.New(color.FgYellow)
	errorColor    = color.New(color.FgRed, color.Bold)
)

type row struct {
	key     string
	value   string
	outcome env.Outcome
}

type report struct {
	w    io.Writer
	rows []row
}

func newReport(w io.Writer) *report {
	return &report{w: w}
}

func (r *report) add(key string, value any, outcome env.Outcome) {
	r.rows = append(r.rows, row{key: key, value: fmt.Sprint(value), outcome: outcome})
}

func (r *report) print(cfg *config.ServiceConfig) {
	fmt.Fprintf(r.w, "%s %s (%s)\n", keyColor.Sprint("service"), cfg.Name, cfg.Environment)
	for _, rw := range r.rows {
		status := resolvedColor.Sprint("✓")
		if rw.outcome.UsedFallback() {
			status = fallbackColor.Sprint("↩")
		}
		fmt.Fprintf(r.w, "  %s %s %s\n", status, keyColor.Sprintf("%-28s", rw.key), rw.value)
	}
}

func printConfig(w io.Writer, cfg *config.ServiceConfig) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// printError writes err to stderr, adding the error code for load failures.
func printError(err error) {
	if appErr, ok := errors.AsAppError(err); ok {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorColor.Sprintf("✗ %s", appErr.Code), appErr.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", errorColor.Sprint("✗"), err)
}
