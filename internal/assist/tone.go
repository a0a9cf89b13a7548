// Package assist rewrites a profile bio with a generative model.
package assist

import (
	"fmt"
	"strings"
)

// Tone is the voice requested for the rewritten bio.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneFunny        Tone = "Funny"
	ToneCasual       Tone = "Casual"
	ToneMysterious   Tone = "Mysterious"
	ToneMinimalist   Tone = "Minimalist"
	ToneHype         Tone = "Hype"
)

// Tones lists every tone in display order.
var Tones = []Tone{ToneProfessional, ToneFunny, ToneCasual, ToneMysterious, ToneMinimalist, ToneHype}

// ParseTone matches value case-insensitively against Tones.
func ParseTone(value string) (Tone, error) {
	for _, tone := range Tones {
		if strings.EqualFold(string(tone), strings.TrimSpace(value)) {
			return tone, nil
		}
	}
	names := make([]string, len(Tones))
	for i, tone := range Tones {
		names[i] = string(tone)
	}
	return "", fmt.Errorf("unknown tone %q (expected one of %s)", value, strings.Join(names, ", "))
}
