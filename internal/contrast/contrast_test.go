package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateExtremes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ForegroundWhite, Evaluate("#000000"))
	assert.Equal(t, ForegroundDark, Evaluate("#ffffff"))
}

func TestEvaluateQuickSwatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hex  string
		want Foreground
	}{
		{"#000000", ForegroundWhite},
		{"#ffffff", ForegroundDark},
		{"#3b82f6", ForegroundWhite},
		{"#8b5cf6", ForegroundWhite},
		{"#ec4899", ForegroundDark},
		{"#10b981", ForegroundDark},
		{"#f59e0b", ForegroundDark},
		{"#ef4444", ForegroundWhite},
		{"#6366f1", ForegroundWhite},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.hex))
		})
	}
}

func TestEvaluateThresholdIsInclusive(t *testing.T) {
	t.Parallel()

	// 0x80 grey has luma exactly 128.
	assert.Equal(t, ForegroundDark, Evaluate("#808080"))
	assert.Equal(t, ForegroundWhite, Evaluate("#7f7f7f"))
}

func TestEvaluateAcceptsMissingHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Evaluate("#fafafa"), Evaluate("fafafa"))
	assert.Equal(t, ForegroundDark, Evaluate("FAFAFA"))
}

func TestEvaluateShortHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ForegroundDark, Evaluate("#fff"))
	assert.Equal(t, ForegroundWhite, Evaluate("#000"))
	assert.Equal(t, Evaluate("#ffffff"), Evaluate("fff"))
}

func TestEvaluateIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"#123456", "#abcdef", "#0f172a", "#f8fafc"} {
		first := Evaluate(hex)
		second := Evaluate(hex)
		assert.Equal(t, first, second, hex)
	}
}

func TestLuma(t *testing.T) {
	t.Parallel()

	luma, err := Luma("#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 255.0, luma, 0.001)

	luma, err = Luma("#ff0000")
	require.NoError(t, err)
	assert.InDelta(t, 76.245, luma, 0.001)
}

func TestParseRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"", "#ffff", "#ffffffff", "#gggggg", "not-a-color"} {
		_, _, _, err := Parse(hex)
		assert.Error(t, err, hex)
	}
	assert.Equal(t, ForegroundWhite, Evaluate("#zzzzzz"))
}

func TestForegroundString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "white", ForegroundWhite.String())
	assert.Equal(t, "dark", ForegroundDark.String())
}
