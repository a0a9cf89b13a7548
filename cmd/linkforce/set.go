package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkforce/internal/profile"
	"github.com/alexisbeaulieu97/linkforce/internal/style"
	lferrors "github.com/alexisbeaulieu97/linkforce/pkg/errors"
)

// fieldSetter turns a command-line value into a profile edit.
type fieldSetter func(catalog style.Catalog, value string) (profile.Edit, error)

var fieldSetters = map[string]fieldSetter{
	"name": textSetter(profile.SetName),
	"bio":  textSetter(profile.SetBio),
	"avatar": func(_ style.Catalog, value string) (profile.Edit, error) {
		image, err := profile.ResolveImage(value)
		if err != nil {
			return nil, err
		}
		if image == "" {
			image = profile.DefaultAvatarURL
		}
		return profile.Bind(profile.SetAvatar, image), nil
	},
	"theme": func(catalog style.Catalog, value string) (profile.Edit, error) {
		if !catalog.Contains(value) {
			ids := make([]string, len(catalog))
			for i, preset := range catalog {
				ids[i] = preset.ID
			}
			return nil, lferrors.NewValidationError("theme", fmt.Sprintf("%q is not one of [%s]", value, strings.Join(ids, " ")), nil)
		}
		return profile.Bind(profile.SelectPreset, value), nil
	},
	"background-type": enumSetter("background-type", profile.BackgroundTypes, profile.SetBackgroundType),
	"background-color": func(_ style.Catalog, value string) (profile.Edit, error) {
		hex, err := profile.ParseHexColor("background-color", value)
		if err != nil {
			return nil, err
		}
		return func(p profile.UserProfile) profile.UserProfile {
			return profile.SetBackgroundType(profile.SetBackgroundColor(p, hex), profile.BackgroundColor)
		}, nil
	},
	"background-image": func(_ style.Catalog, value string) (profile.Edit, error) {
		image, err := profile.ResolveRequiredImage("background-image", value)
		if err != nil {
			return nil, err
		}
		return profile.Bind(profile.SetBackgroundImage, image), nil
	},
	"text-color":           enumSetter("text-color", profile.TextColors, profile.SetTextColor),
	"button-shape":         enumSetter("button-shape", profile.ButtonShapes, profile.SetButtonShape),
	"button-style":         enumSetter("button-style", profile.ButtonStyles, profile.SetButtonStyle),
	"font":                 enumSetter("font", profile.FontFamilies, profile.SetFontFamily),
	"card-background-type": enumSetter("card-background-type", profile.CardBackgroundTypes, profile.SetCardBackgroundType),
	"card-text-color":      enumSetter("card-text-color", profile.TextColors, profile.SetCardTextColor),
}

func textSetter(set func(profile.UserProfile, string) profile.UserProfile) fieldSetter {
	return func(_ style.Catalog, value string) (profile.Edit, error) {
		return profile.Bind(set, value), nil
	}
}

func enumSetter[T ~string](field string, allowed []T, set func(profile.UserProfile, T) profile.UserProfile) fieldSetter {
	return func(_ style.Catalog, value string) (profile.Edit, error) {
		parsed, err := profile.ParseEnum(field, strings.TrimSpace(value), allowed)
		if err != nil {
			return nil, err
		}
		return profile.Bind(set, parsed), nil
	}
}

func settableFields() []string {
	names := make([]string, 0, len(fieldSetters))
	for name := range fieldSetters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type setOptions struct {
	showDiff bool
}

func newSetCmd(flags *rootFlags) *cobra.Command {
	opts := &setOptions{}

	cmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Change one profile field",
		Long: "Change one profile field and save the profile.\n\nFields: " + strings.Join(settableFields(), ", ") +
			"\n\nImage fields accept an http(s) URL, a data: URL or a local file path.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, flags, opts, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.showDiff, "diff", false, "Print the profile changes")

	return cmd
}

func runSet(cmd *cobra.Command, flags *rootFlags, opts *setOptions, field, value string) error {
	setter, ok := fieldSetters[field]
	if !ok {
		return newCommandError("set", fmt.Sprintf("looking up field %q", field),
			errors.New("unknown field"), "Use one of: "+strings.Join(settableFields(), ", ")+".")
	}

	app, err := openApp(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	edit, err := setter(app.Catalog, value)
	if err != nil {
		return newCommandError("set", fmt.Sprintf("reading value for %q", field), err, "Run 'linkforce set --help' to see accepted values.")
	}

	before := app.Store.Current()
	after := app.Store.Apply(cmd.Context(), edit)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated %s\n", field)

	if opts.showDiff {
		return printProfileDiff(cmd, before, after)
	}
	return nil
}
