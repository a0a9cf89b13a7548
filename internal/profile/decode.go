package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	lferrors "github.com/alexisbeaulieu97/linkforce/pkg/errors"
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate reports every enumerated field holding a value outside its set.
func Validate(p UserProfile) error {
	err := validatorInstance().Struct(p)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	problems := make([]error, 0, len(validationErrs))
	for _, fe := range validationErrs {
		problems = append(problems, lferrors.NewValidationError(
			fe.Field(),
			fmt.Sprintf("%q is not one of [%s]", fmt.Sprint(fe.Value()), fe.Param()),
			fe,
		))
	}
	return errors.Join(problems...)
}

// Decode merges saved JSON over Default. Fields that are absent keep the
// default; fields with the wrong JSON type keep the default; enumerated
// fields with unknown values fall back to the default; unknown keys are
// ignored. The returned profile is always usable. The error, when non-nil,
// describes what was discarded and is meant for logging.
func Decode(data []byte) (UserProfile, error) {
	p := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return p, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return p, fmt.Errorf("decode profile: %w", err)
	}

	var problems []error
	mergeField(raw, "name", &p.Name, &problems)
	mergeField(raw, "bio", &p.Bio, &problems)
	mergeField(raw, "avatarUrl", &p.AvatarURL, &problems)
	mergeField(raw, "themeId", &p.ThemeID, &problems)
	mergeField(raw, "backgroundType", &p.BackgroundType, &problems)
	mergeField(raw, "customBackgroundColor", &p.CustomBackgroundColor, &problems)
	mergeField(raw, "customBackgroundImage", &p.CustomBackgroundImage, &problems)
	mergeField(raw, "customTextColor", &p.CustomTextColor, &problems)
	mergeField(raw, "buttonShape", &p.ButtonShape, &problems)
	mergeField(raw, "buttonStyle", &p.ButtonStyle, &problems)
	mergeField(raw, "fontFamily", &p.FontFamily, &problems)
	mergeField(raw, "cardBackgroundType", &p.CardBackgroundType, &problems)
	mergeField(raw, "cardBackgroundColor", &p.CardBackgroundColor, &problems)
	mergeField(raw, "cardBackgroundImage", &p.CardBackgroundImage, &problems)
	mergeField(raw, "cardTextColor", &p.CardTextColor, &problems)

	if msg, ok := raw["links"]; ok {
		if isNull(msg) {
			p.Links = []LinkItem{}
		} else {
			var links []LinkItem
			if err := json.Unmarshal(msg, &links); err != nil {
				problems = append(problems, fmt.Errorf("field links: %w", err))
			} else {
				p.Links = links
			}
		}
	}
	p.Links = normalizeLinks(p.Links)

	if err := Validate(p); err != nil {
		problems = append(problems, err)
		p = resetInvalid(p, err)
	}

	return p, errors.Join(problems...)
}

// Encode serializes the profile in its persisted form.
func Encode(p UserProfile) ([]byte, error) {
	if p.Links == nil {
		p.Links = []LinkItem{}
	}
	return json.Marshal(p)
}

func mergeField[T any](raw map[string]json.RawMessage, key string, dst *T, problems *[]error) {
	msg, ok := raw[key]
	if !ok || isNull(msg) {
		return
	}
	var value T
	if err := json.Unmarshal(msg, &value); err != nil {
		*problems = append(*problems, fmt.Errorf("field %s: %w", key, err))
		return
	}
	*dst = value
}

func isNull(msg json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(msg), []byte("null"))
}

// normalizeLinks assigns fresh ids to links whose id is blank or repeats an
// earlier one, preserving order.
func normalizeLinks(links []LinkItem) []LinkItem {
	if links == nil {
		return []LinkItem{}
	}
	seen := make(map[string]struct{}, len(links))
	out := make([]LinkItem, len(links))
	for i, link := range links {
		if _, dup := seen[link.ID]; link.ID == "" || dup {
			link.ID = uniqueLinkID(seen)
		}
		seen[link.ID] = struct{}{}
		out[i] = link
	}
	return out
}

func resetInvalid(p UserProfile, err error) UserProfile {
	defaults := Default()
	var invalid *lferrors.ValidationError
	for _, each := range unwrapJoined(err) {
		if !errors.As(each, &invalid) {
			continue
		}
		switch invalid.Field {
		case "backgroundType":
			p.BackgroundType = defaults.BackgroundType
		case "customTextColor":
			p.CustomTextColor = defaults.CustomTextColor
		case "buttonShape":
			p.ButtonShape = defaults.ButtonShape
		case "buttonStyle":
			p.ButtonStyle = defaults.ButtonStyle
		case "fontFamily":
			p.FontFamily = defaults.FontFamily
		case "cardBackgroundType":
			p.CardBackgroundType = defaults.CardBackgroundType
		case "cardTextColor":
			p.CardTextColor = defaults.CardTextColor
		}
	}
	return p
}

func unwrapJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
