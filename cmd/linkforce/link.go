package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkforce/internal/profile"
)

type linkOptions struct {
	title      string
	url        string
	jsonOutput bool
}

func newLinkCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage profile links",
	}

	cmd.AddCommand(newLinkAddCmd(flags))
	cmd.AddCommand(newLinkUpdateCmd(flags))
	cmd.AddCommand(newLinkIDCmd(flags, "remove <link-id>", "Delete a link", "Removed", profile.DeleteLink))
	cmd.AddCommand(newLinkIDCmd(flags, "toggle <link-id>", "Show or hide a link on the profile", "Toggled", profile.ToggleLink))
	cmd.AddCommand(newLinkListCmd(flags))

	return cmd
}

func newLinkAddCmd(flags *rootFlags) *cobra.Command {
	opts := &linkOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a link at the top of the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd, flags, appOptions{})
			if err != nil {
				return err
			}
			defer app.Close()

			var id string
			app.Store.Apply(cmd.Context(), func(p profile.UserProfile) profile.UserProfile {
				next, newID := profile.AddLink(p)
				id = newID
				return profile.UpdateLink(next, id, patchFromOptions(cmd, opts))
			})

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Added link %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "Link title")
	cmd.Flags().StringVar(&opts.url, "url", "", "Link destination")

	return cmd
}

func newLinkUpdateCmd(flags *rootFlags) *cobra.Command {
	opts := &linkOptions{}

	cmd := &cobra.Command{
		Use:   "update <link-id>",
		Short: "Change the title or destination of a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("url") {
				return newCommandError("update link", "reading flags", errors.New("nothing to change"), "Pass --title, --url or both.")
			}
			return runLinkEdit(cmd, flags, args[0], "Updated", func(p profile.UserProfile, id string) profile.UserProfile {
				return profile.UpdateLink(p, id, patchFromOptions(cmd, opts))
			})
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "Link title")
	cmd.Flags().StringVar(&opts.url, "url", "", "Link destination")

	return cmd
}

func newLinkIDCmd(flags *rootFlags, use, short, verb string, edit func(profile.UserProfile, string) profile.UserProfile) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinkEdit(cmd, flags, args[0], verb, edit)
		},
	}
}

// runLinkEdit applies edit to an existing link, failing when the id is unknown.
func runLinkEdit(cmd *cobra.Command, flags *rootFlags, id, verb string, edit func(profile.UserProfile, string) profile.UserProfile) error {
	app, err := openApp(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	if _, ok := app.Store.Current().FindLink(id); !ok {
		return newCommandError("edit link", fmt.Sprintf("looking up link %q", id), errors.New("link not found"), "Run 'linkforce link list' to view link ids.")
	}

	app.Store.Apply(cmd.Context(), profile.Bind(edit, id))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s link %s\n", verb, id)
	return nil
}

func patchFromOptions(cmd *cobra.Command, opts *linkOptions) profile.LinkPatch {
	var patch profile.LinkPatch
	if cmd.Flags().Changed("title") {
		patch.Title = &opts.title
	}
	if cmd.Flags().Changed("url") {
		patch.URL = &opts.url
	}
	return patch
}

func newLinkListCmd(flags *rootFlags) *cobra.Command {
	opts := &linkOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List links in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd, flags, appOptions{})
			if err != nil {
				return err
			}
			defer app.Close()

			links := app.Store.Current().Links
			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				if links == nil {
					links = []profile.LinkItem{}
				}
				return encoder.Encode(links)
			}
			return renderLinkTable(cmd, links)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderLinkTable(cmd *cobra.Command, links []profile.LinkItem) error {
	if len(links) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No links yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'linkforce link add --title <title> --url <url>' to add your first link.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tURL\tSHOWN")
	for _, link := range links {
		shown := "yes"
		if !link.IsActive {
			shown = "no"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", link.ID, valueOrFallback(link.Title, "(no title)"), valueOrFallback(link.URL, "(no url)"), shown)
	}
	return writer.Flush()
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
