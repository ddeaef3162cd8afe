// Package message flattens provider message payloads into plain email records.
package message

// Email is the flattened representation of one provider message.
type Email struct {
	ID      string `json:"id" jsonschema:"message ID"`
	Subject string `json:"subject,omitempty" jsonschema:"email subject"`
	From    string `json:"from,omitempty" jsonschema:"sender"`
	Body    string `json:"body" jsonschema:"plain text body"`
}
