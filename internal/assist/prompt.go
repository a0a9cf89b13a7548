package assist

import (
	"bytes"
	"text/template"
)

// Request carries the inputs of one bio rewrite.
type Request struct {
	Bio      string
	Keywords string
	Tone     Tone
}

// MaxBioLength is the length the model is asked to stay under.
const MaxBioLength = 150

var promptTemplate = template.Must(template.New("bio").Parse(`You are a social media profile expert.
Task: Write a short, punchy, and engaging bio for a link-in-bio page.

Context:
- Current bio (if any): {{ printf "%q" .Bio }}
- Keywords/topics: {{ printf "%q" .Keywords }}
- Tone: {{ printf "%q" .Tone }}

Constraints:
- Keep it under {{ .Max }} characters.
- Use emojis if the tone fits.
- Be concise.
- Return ONLY the bio text, no explanations.
- Write in the same language as the inputs.
`))

// BuildPrompt renders the instruction sent to the model.
func BuildPrompt(req Request) (string, error) {
	var buf bytes.Buffer
	err := promptTemplate.Execute(&buf, struct {
		Request
		Max int
	}{Request: req, Max: MaxBioLength})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
