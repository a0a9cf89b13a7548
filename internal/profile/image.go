package profile

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	lferrors "github.com/alexisbeaulieu97/linkforce/pkg/errors"
)

// ReadImage loads a local image file and returns it as a data URL suitable
// for AvatarURL and the background image fields.
func ReadImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image %s: %w", path, err)
	}
	return EncodeImage(data)
}

// EncodeImage wraps raw bytes in a base64 data URL labelled with the sniffed
// MIME type. The content is not checked to be an image.
func EncodeImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("encode image: empty data")
	}
	mtype := mimetype.Detect(data)
	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// IsDataURL reports whether value is an inline data URL.
func IsDataURL(value string) bool {
	return strings.HasPrefix(value, "data:")
}

// ResolveImage turns user input for an image field into a stored value.
// Remote and inline URLs are kept as typed; anything else is read as a
// local file.
func ResolveImage(value string) (string, error) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return "", nil
	case IsDataURL(value), strings.HasPrefix(value, "http://"), strings.HasPrefix(value, "https://"):
		return value, nil
	default:
		return ReadImage(value)
	}
}

// ResolveRequiredImage is ResolveImage for fields that switch the background
// to image mode, where an empty value is an error.
func ResolveRequiredImage(field, value string) (string, error) {
	image, err := ResolveImage(value)
	if err != nil {
		return "", err
	}
	if image == "" {
		return "", lferrors.NewValidationError(field, "an image path or URL is required", nil)
	}
	return image, nil
}
