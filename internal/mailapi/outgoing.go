package mailapi

import (
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
)

// Outgoing describes a plain-text email to send.
type Outgoing struct {
	To      string
	CC      string
	Subject string
	Body    string
}

// Encode builds an RFC 822 style message block and returns it base64url
// encoded without padding, the envelope the provider expects for raw sends.
func (o Outgoing) Encode() string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("To: %s\r\n", o.To))
	if o.CC != "" {
		msg.WriteString(fmt.Sprintf("Cc: %s\r\n", o.CC))
	}
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", encodeRFC2047(o.Subject)))
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(o.Body)

	return base64.RawURLEncoding.EncodeToString([]byte(msg.String()))
}

// encodeRFC2047 encodes a header value for non-ASCII content, leaving plain
// ASCII untouched.
func encodeRFC2047(s string) string {
	return mime.BEncoding.Encode("UTF-8", s)
}
