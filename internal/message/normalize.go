package message

import (
	"encoding/base64"

	"google.golang.org/api/gmail/v1"
)

const (
	mimeTextPlain = "text/plain"
	mimeTextHTML  = "text/html"
)

// Normalize flattens one provider message into an Email. Subject and From
// come from the first exactly-matching header; the body is chosen by a fixed
// precedence: the first text/plain part, else the first text/html part, else
// the top-level body of a single-part message, else empty.
func Normalize(msg *gmail.Message) Email {
	e := Email{ID: msg.Id}
	if msg.Payload == nil {
		return e
	}

	extractHeaders(msg.Payload.Headers, &e)
	e.Body = extractBody(msg.Payload)

	return e
}

func extractHeaders(headers []*gmail.MessagePartHeader, e *Email) {
	var haveSubject, haveFrom bool

	for _, header := range headers {
		switch header.Name {
		case "Subject":
			if !haveSubject {
				e.Subject = header.Value
				haveSubject = true
			}
		case "From":
			if !haveFrom {
				e.From = header.Value
				haveFrom = true
			}
		}
	}
}

func extractBody(payload *gmail.MessagePart) string {
	if payload.Parts != nil {
		if part := findPart(payload.Parts, mimeTextPlain); part != nil {
			return decodePartBody(part)
		}
		if part := findPart(payload.Parts, mimeTextHTML); part != nil {
			return decodePartBody(part)
		}
		return ""
	}

	if payload.Body != nil && payload.Body.Data != "" {
		return decodeBase64URL(payload.Body.Data)
	}

	return ""
}

func findPart(parts []*gmail.MessagePart, mimeType string) *gmail.MessagePart {
	for _, part := range parts {
		if part.MimeType == mimeType {
			return part
		}
	}
	return nil
}

func decodePartBody(part *gmail.MessagePart) string {
	if part.Body == nil || part.Body.Data == "" {
		return ""
	}
	return decodeBase64URL(part.Body.Data)
}

func decodeBase64URL(data string) string {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return data
		}
	}
	return string(decoded)
}
