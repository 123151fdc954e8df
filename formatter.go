package stockbot

import "strings"

// FormatAnswer formats an answer for display.
// The sources block is omitted when there are no sources.
// Returns an empty string for a nil answer or empty answer text.
func FormatAnswer(answer *Answer) string {
	if answer == nil || answer.Text == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Answer:\n")
	sb.WriteString(answer.Text)
	sb.WriteString("\n")
	if len(answer.Sources) > 0 {
		sb.WriteString("\nSources:\n")
		for _, src := range answer.Sources {
			sb.WriteString(src)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
