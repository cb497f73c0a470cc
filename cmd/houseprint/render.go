package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-houseprint/pkg/orchestrator"
	"github.com/goliatone/go-houseprint/pkg/printer"
	"github.com/goliatone/go-houseprint/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		f      filterFlags
		format string
		output string
		pretty bool
		width  int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the selected record (html, text, markdown)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := a.open(cmd.Context(), f)
			if err != nil {
				return err
			}
			result, err := o.orch.Generate(cmd.Context(), o.session, orchestrator.Request{
				Renderer: format,
				RenderOptions: render.RenderOptions{
					Banner: o.banner,
					Pretty: pretty,
					Width:  width,
				},
			})
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err := a.out.Write(result.Output)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			if err := os.WriteFile(output, result.Output, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(a.out, "written %s\n", output)
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format (html, text, markdown)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "style terminal output")
	cmd.Flags().IntVar(&width, "width", 0, "terminal width for text output")
	return cmd
}

// printOptions are the flags shared by print and browse.
type printOptions struct {
	pdf        bool
	autoPrint  bool
	browserBin string
}

func (p *printOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&p.pdf, "pdf", false, "print to PDF with headless Chromium")
	cmd.Flags().BoolVar(&p.autoPrint, "auto-print", false, "open the print dialog when the HTML page loads")
	cmd.Flags().StringVar(&p.browserBin, "browser-bin", "", "Chromium binary used for --pdf")
}

func (p printOptions) printer(a *app) printer.Printer {
	if !p.pdf {
		return printer.HTMLPrinter{}
	}
	return printer.NewPDFPrinter(printer.WithBrowserBin(p.browserBin), printer.WithLogger(a.logger))
}

func (p printOptions) request(banner string) orchestrator.Request {
	return orchestrator.Request{RenderOptions: render.RenderOptions{
		Banner:    banner,
		AutoPrint: p.autoPrint && !p.pdf,
	}}
}

// defaultOutput names the output after the selected record and template.
func defaultOutput(id, templateID string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		id = "houseprint"
	}
	return strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(id + "-" + templateID)
}

func newPrintCmd(a *app) *cobra.Command {
	var (
		f      filterFlags
		opts   printOptions
		output string
	)
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the selected record to an HTML or PDF file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := a.open(cmd.Context(), f)
			if err != nil {
				return err
			}
			target := output
			if target == "" {
				target = defaultOutput(o.session.SelectedID(), o.session.TemplateID())
			}
			path, err := o.orch.Print(cmd.Context(), o.session, opts.printer(a), opts.request(o.banner), target)
			if err != nil {
				return err
			}
			a.logger.Debug("print finished", zap.String("path", path))
			fmt.Fprintf(a.out, "printed %s\n", path)
			return nil
		},
	}
	f.bind(cmd)
	opts.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <house_id>-<template>)")
	return cmd
}
