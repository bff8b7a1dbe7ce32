package agent

import (
	"bytes"
	"fmt"
	"text/template"
)

// promptText asks for a short, jargon-heavy and deliberately vague decline.
const promptText = `I need an immensely vague 'Technical Fog' excuse to decline the following request:

"{{.Request}}"

Use heavy, confusing jargon so that the recipient doesn't understand the problem but feels it's too critical to question. ` +
	`Make me sound stressed, professional, and too busy to explain further. Keep it short.`

var promptTemplate = template.Must(template.New("technical_fog").Parse(promptText))

// promptData represents the data passed to the prompt template
type promptData struct {
	Request string
}

// buildPrompt embeds request into the prompt template.
func buildPrompt(request string) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, promptData{Request: request}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
