package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-houseprint/pkg/record"
	"github.com/goliatone/go-houseprint/pkg/templates"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)
)

func newListCmd(a *app) *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the records matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := a.open(cmd.Context(), f)
			if err != nil {
				return err
			}
			subset := o.session.Subset()
			fmt.Fprintln(a.out, headingStyle.Render(fmt.Sprintf("該当 %d/%d 件", len(subset), o.session.Store().Len())))
			for _, rec := range subset {
				line := fmt.Sprintf("%s [%s] %s", rec.PickerLabel(), orDash(rec.Get(record.FieldStatus)), orDash(rec.Get(record.FieldDistrict)))
				if rec.ID() == o.session.SelectedID() {
					fmt.Fprintln(a.out, selectedStyle.Render("* "+line))
					continue
				}
				fmt.Fprintln(a.out, "  "+line)
			}
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newOptionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Show the distinct statuses and districts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := a.open(cmd.Context(), filterFlags{})
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, headingStyle.Render("状態"))
			for _, v := range o.session.StatusOptions() {
				fmt.Fprintln(a.out, "  "+v)
			}
			fmt.Fprintln(a.out, headingStyle.Render("地区"))
			for _, v := range o.session.DistrictOptions() {
				fmt.Fprintln(a.out, "  "+v)
			}
			return nil
		},
	}
}

func newTemplatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the print templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, err := a.orchestrator()
			if err != nil {
				return err
			}
			list := orch.Builder().Registry().List()
			width := 0
			for _, tpl := range list {
				width = max(width, len(tpl.ID))
			}
			for _, tpl := range list {
				fmt.Fprintf(a.out, "%-*s  %s%s\n", width, tpl.ID, tpl.Title, source(tpl))
			}
			return nil
		},
	}
}

func source(tpl templates.Template) string {
	if tpl.Source == "" {
		return ""
	}
	return "  (" + tpl.Source + ")"
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
