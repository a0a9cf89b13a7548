package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkforce/internal/profile"
	"github.com/alexisbeaulieu97/linkforce/internal/render"
	"github.com/alexisbeaulieu97/linkforce/internal/style"
	"github.com/alexisbeaulieu97/linkforce/pkg/diff"
)

type showOptions struct {
	jsonOutput bool
	preview    bool
	card       bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the saved profile as JSON")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render the profile page in the terminal")
	cmd.Flags().BoolVar(&opts.card, "card", false, "Render the share card in the terminal")
	cmd.MarkFlagsMutuallyExclusive("json", "preview", "card")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, opts *showOptions) error {
	app, err := openApp(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	p := app.Store.Current()
	out := cmd.OutOrStdout()

	switch {
	case opts.jsonOutput:
		data, err := profileJSON(p)
		if err != nil {
			return newCommandError("show profile", "encoding JSON", err, "This is a bug; please report it.")
		}
		_, err = out.Write(data)
		return err
	case opts.preview:
		_, _ = fmt.Fprintln(out, render.TerminalPreview(app.Catalog, p))
		return nil
	case opts.card:
		_, _ = fmt.Fprintln(out, render.TerminalCard(app.Catalog, p))
		return nil
	default:
		return renderSummary(cmd, app.Catalog, p)
	}
}

func renderSummary(cmd *cobra.Command, catalog style.Catalog, p profile.UserProfile) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintf(writer, "Name:\t%s\n", valueOrFallback(p.Name, render.NamePlaceholder))
	fmt.Fprintf(writer, "Bio:\t%s\n", valueOrFallback(p.Bio, "(empty)"))
	fmt.Fprintf(writer, "Share URL:\t%s\n", profile.ShareURL(p.Name))
	fmt.Fprintf(writer, "Theme:\t%s\n", catalog.Lookup(p.ThemeID).Name)
	fmt.Fprintf(writer, "Background:\t%s\n", backgroundLabel(p))
	fmt.Fprintf(writer, "Buttons:\t%s, %s\n", p.ButtonShape, p.ButtonStyle)
	fmt.Fprintf(writer, "Font:\t%s\n", p.FontFamily.Label())
	fmt.Fprintf(writer, "Card:\t%s, %s text\n", cardBackgroundLabel(p), p.CardTextColor)
	fmt.Fprintf(writer, "Links:\t%d shown of %d\n", len(p.ActiveLinks()), len(p.Links))

	return writer.Flush()
}

// profileJSON returns the persisted form of p, indented one field per line.
func profileJSON(p profile.UserProfile) ([]byte, error) {
	data, err := profile.Encode(p)
	if err != nil {
		return nil, err
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "  "); err != nil {
		return nil, err
	}
	indented.WriteByte('\n')
	return indented.Bytes(), nil
}

func printProfileDiff(cmd *cobra.Command, before, after profile.UserProfile) error {
	beforeJSON, err := profileJSON(before)
	if err != nil {
		return err
	}
	afterJSON, err := profileJSON(after)
	if err != nil {
		return err
	}

	changes := diff.Changed(beforeJSON, afterJSON)
	if len(changes) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
		return nil
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(changes, "\n"))
	return nil
}

func backgroundLabel(p profile.UserProfile) string {
	switch p.BackgroundType {
	case profile.BackgroundColor:
		return "color " + p.CustomBackgroundColor
	case profile.BackgroundImage:
		return "image"
	default:
		return "preset"
	}
}
