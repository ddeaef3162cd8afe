package message

import "strings"

// Markdown renders emails as a Markdown document, one block per email
// separated by a horizontal rule.
func Markdown(emails []Email) string {
	var b strings.Builder

	for _, e := range emails {
		b.WriteString("**Subject:** ")
		b.WriteString(e.Subject)
		b.WriteString("\n**From:** ")
		b.WriteString(e.From)
		b.WriteString("\n**Body:**\n")
		b.WriteString(e.Body)
		b.WriteString("\n\n---\n\n")
	}

	return b.String()
}
