package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-houseprint/pkg/document"
	"github.com/goliatone/go-houseprint/pkg/orchestrator"
	"github.com/goliatone/go-houseprint/pkg/prompt"
	"github.com/goliatone/go-houseprint/pkg/render"
	"github.com/goliatone/go-houseprint/pkg/renderers/text"
)

func newBrowseCmd(a *app) *cobra.Command {
	var (
		f      filterFlags
		opts   printOptions
		pretty bool
	)
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse records interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := a.open(cmd.Context(), f)
			if err != nil {
				return err
			}
			driver := a.driver
			if driver == nil {
				driver = prompt.NewSurveyDriver(a.out)
			}

			preview := func(ctx context.Context, doc document.Document) error {
				result, err := o.orch.RenderDocument(ctx, doc, orchestrator.Request{
					Renderer:      text.Name,
					RenderOptions: render.RenderOptions{Banner: o.banner, Pretty: pretty},
				})
				if err != nil {
					return err
				}
				_, err = a.out.Write(result.Output)
				return err
			}
			printDoc := func(ctx context.Context, doc document.Document) error {
				target := defaultOutput(headerID(doc), doc.TemplateID)
				path, err := o.orch.Print(ctx, o.session, opts.printer(a), opts.request(o.banner), target)
				if err != nil {
					return err
				}
				return driver.Info(ctx, fmt.Sprintf("printed %s", path))
			}

			browser := prompt.NewBrowser(o.session, driver,
				prompt.WithPreview(preview),
				prompt.WithPrint(printDoc),
				prompt.WithBrowserLogger(a.logger),
			)
			return browser.Run(cmd.Context())
		},
	}
	f.bind(cmd)
	opts.bind(cmd)
	cmd.Flags().BoolVar(&pretty, "pretty", true, "style the preview")
	return cmd
}

func headerID(doc document.Document) string {
	if doc.Header == nil || doc.Header.ID == document.MissingValue {
		return ""
	}
	return doc.Header.ID
}
