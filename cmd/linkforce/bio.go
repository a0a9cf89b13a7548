package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkforce/internal/assist"
	"github.com/alexisbeaulieu97/linkforce/internal/profile"
	"github.com/alexisbeaulieu97/linkforce/pkg/diff"
)

type bioOptions struct {
	keywords string
	tone     string
	dryRun   bool
	showDiff bool
}

func newBioCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bio",
		Short: "Work on the profile bio",
	}

	cmd.AddCommand(newBioGenerateCmd(flags))

	return cmd
}

func newBioGenerateCmd(flags *rootFlags) *cobra.Command {
	opts := &bioOptions{}

	tones := make([]string, len(assist.Tones))
	for i, tone := range assist.Tones {
		tones[i] = string(tone)
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Rewrite the bio with the AI assistant",
		Long:  "Ask the model for a new bio based on the current one, optional keywords and a tone.\n\nTones: " + strings.Join(tones, ", "),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBioGenerate(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.keywords, "keywords", "k", "", "Keywords to weave into the bio")
	cmd.Flags().StringVarP(&opts.tone, "tone", "t", string(assist.ToneProfessional), "Tone of voice")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the suggestion without saving it")
	cmd.Flags().BoolVar(&opts.showDiff, "diff", false, "Mark the words that changed against the current bio")

	return cmd
}

func runBioGenerate(cmd *cobra.Command, flags *rootFlags, opts *bioOptions) error {
	tone, err := assist.ParseTone(opts.tone)
	if err != nil {
		return newCommandError("generate bio", "reading --tone", err, "Run 'linkforce bio generate --help' to list tones.")
	}

	app, err := openApp(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	current := app.Store.Current()
	bio, err := app.Assistant.Rewrite(cmd.Context(), assist.Request{
		Bio:      current.Bio,
		Keywords: opts.keywords,
		Tone:     tone,
	})
	if err != nil {
		suggestion := "Check your network connection and try again."
		if errors.Is(err, assist.ErrMissingCredential) {
			suggestion = fmt.Sprintf("Set %s in the environment or in a .env file.", app.Config.Assist.APIKeyEnv)
		}
		return newCommandError("generate bio", "asking the model", err, suggestion)
	}

	if !opts.dryRun {
		app.Store.Apply(cmd.Context(), profile.Bind(profile.SetBio, bio))
	}

	if opts.showDiff {
		bio = diff.Inline(current.Bio, bio)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), bio)
	return nil
}
