package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkforce/internal/profile"
	lferrors "github.com/alexisbeaulieu97/linkforce/pkg/errors"
)

// cardAction builds the card edit for the command arguments.
type cardAction func(args []string) (profile.Edit, error)

func newCardCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Style the share card",
	}

	cmd.AddCommand(newCardActionCmd(flags, "match", "Reuse the profile background on the card", cobra.NoArgs,
		func([]string) (profile.Edit, error) {
			return profile.MatchCard, nil
		}))
	cmd.AddCommand(newCardActionCmd(flags, "color <hex>", "Use a solid card color with readable text", cobra.ExactArgs(1),
		func(args []string) (profile.Edit, error) {
			hex, err := profile.ParseHexColor("card-color", args[0])
			if err != nil {
				return nil, err
			}
			return profile.Bind(profile.PickCardSwatch, hex), nil
		}))
	cmd.AddCommand(newCardSwatchCmd(flags))
	cmd.AddCommand(newCardActionCmd(flags, "image <path-or-url>", "Use an image as the card background", cobra.ExactArgs(1),
		func(args []string) (profile.Edit, error) {
			image, err := profile.ResolveRequiredImage("card-image", args[0])
			if err != nil {
				return nil, err
			}
			return profile.Bind(profile.SetCardBackgroundImage, image), nil
		}))
	cmd.AddCommand(newCardActionCmd(flags, "text <white|black>", "Set the card text color", cobra.ExactArgs(1),
		func(args []string) (profile.Edit, error) {
			color, err := profile.ParseEnum("card-text-color", strings.TrimSpace(args[0]), profile.TextColors)
			if err != nil {
				return nil, err
			}
			return profile.Bind(profile.SetCardTextColor, color), nil
		}))
	cmd.AddCommand(newCardActionCmd(flags, "toggle-text", "Switch the card text between white and black", cobra.NoArgs,
		func([]string) (profile.Edit, error) {
			return profile.ToggleCardText, nil
		}))

	return cmd
}

func newCardActionCmd(flags *rootFlags, use, short string, positional cobra.PositionalArgs, action cardAction) *cobra.Command {
	name := strings.Fields(use)[0]
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  positional,
		RunE: func(cmd *cobra.Command, args []string) error {
			edit, err := action(args)
			if err != nil {
				return newCommandError("update card", "reading "+name+" arguments", err, "Run 'linkforce card "+name+" --help' for usage.")
			}
			return applyCardEdit(cmd, flags, edit)
		},
	}
}

func newCardSwatchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "swatch [number]",
		Short: "Pick one of the quick card colors, or list them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for i, hex := range profile.CardSwatches {
					fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  %s text\n", i+1, hex, profile.CardTextFor(hex))
				}
				return nil
			}

			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(profile.CardSwatches) {
				cause := lferrors.NewValidationError("swatch", fmt.Sprintf("%q is not a number from 1 to %d", args[0], len(profile.CardSwatches)), err)
				return newCommandError("update card", "reading swatch number", cause, "Run 'linkforce card swatch' to list the swatches.")
			}
			return applyCardEdit(cmd, flags, profile.Bind(profile.PickCardSwatch, profile.CardSwatches[n-1]))
		},
	}
}

func applyCardEdit(cmd *cobra.Command, flags *rootFlags, edit profile.Edit) error {
	app, err := openApp(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	next := app.Store.Apply(cmd.Context(), edit)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Card background: %s, text: %s\n", cardBackgroundLabel(next), next.CardTextColor)
	return nil
}

func cardBackgroundLabel(p profile.UserProfile) string {
	switch p.CardBackgroundType {
	case profile.CardColor:
		return "color " + p.CardBackgroundColor
	case profile.CardImage:
		return "image"
	default:
		return "match profile"
	}
}
