package tool

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mbx0/mailbox-mcp/internal/mailapi"
)

// SendEmailRequest carries the fields of an outgoing plain-text email.
// to, subject and body are required, enforced by validateSendEmailRequest
// rather than the advertised schema.
type SendEmailRequest struct {
	To      string `json:"to,omitempty" jsonschema:"recipient email address (required)"`
	CC      string `json:"cc,omitempty" jsonschema:"optional carbon-copy email address"`
	Subject string `json:"subject,omitempty" jsonschema:"subject line (required)"`
	Body    string `json:"body,omitempty" jsonschema:"plain-text message body (required)"`
}

// SendEmailResponse acknowledges a successful send.
type SendEmailResponse struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty" jsonschema:"provider ID assigned to the sent message"`
}

type sendEmailSvc interface {
	SendMessage(ctx context.Context, out mailapi.Outgoing) (string, error)
}

// NewSendEmail creates the send_email tool.
func NewSendEmail(svc sendEmailSvc) *SendEmail {
	return &SendEmail{svc: svc}
}

// SendEmail sends a plain-text email.
type SendEmail struct {
	svc sendEmailSvc
}

func (t *SendEmail) SendEmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendEmailRequest,
) (*mcp.CallToolResult, SendEmailResponse, error) {
	defer logCall("send_email")()

	if err := validateSendEmailRequest(input); err != nil {
		return nil, SendEmailResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	id, err := t.svc.SendMessage(ctx, mailapi.Outgoing{
		To:      input.To,
		CC:      input.CC,
		Subject: input.Subject,
		Body:    input.Body,
	})
	if err != nil {
		return nil, SendEmailResponse{}, wrapSvcError("svc.SendMessage", err)
	}

	return nil, SendEmailResponse{Status: "sent", ID: id}, nil
}

// validateSendEmailRequest checks required fields and address syntax
// before anything goes over the wire.
func validateSendEmailRequest(input SendEmailRequest) error {
	if input.To == "" {
		return errors.New("'to' field is required")
	}

	if _, err := mail.ParseAddress(input.To); err != nil {
		return fmt.Errorf("invalid 'to' address %q: %w", input.To, err)
	}

	if input.CC != "" {
		if _, err := mail.ParseAddress(input.CC); err != nil {
			return fmt.Errorf("invalid 'cc' address %q: %w", input.CC, err)
		}
	}

	if input.Subject == "" {
		return errors.New("'subject' field is required")
	}

	if input.Body == "" {
		return errors.New("'body' field is required")
	}

	return nil
}
