package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"

	"github.com/mbx0/mailbox-mcp/internal/message"
)

// ListEmailsRequest filters and shapes the email listing.
type ListEmailsRequest struct {
	Query      string `json:"query,omitempty" jsonschema:"Gmail search query (defaults to in:inbox)"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"maximum number of emails to return (default 3)"`
	Format     string `json:"format,omitempty" jsonschema:"output format: json (default) or markdown"`
}

type listEmailsSvc interface {
	ListMessageIDs(ctx context.Context, query string, maxResults int64) ([]string, error)
	FetchMessage(ctx context.Context, msgID string) (*gmail.Message, error)
}

// NewListEmails creates the list_emails tool.
func NewListEmails(svc listEmailsSvc) *ListEmails {
	return &ListEmails{svc: svc}
}

// ListEmails lists recent emails matching a query.
type ListEmails struct {
	svc listEmailsSvc
}

// ListEmails fetches matching messages in listing order and returns them
// flattened, rendered as JSON or Markdown.
func (t *ListEmails) ListEmails(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListEmailsRequest,
) (*mcp.CallToolResult, any, error) {
	defer logCall("list_emails")()

	input, err := normalizeListEmailsRequest(input)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	ids, err := t.svc.ListMessageIDs(ctx, input.Query, input.MaxResults)
	if err != nil {
		return nil, nil, wrapSvcError("svc.ListMessageIDs", err)
	}

	emails := make([]message.Email, 0, len(ids))
	for _, id := range ids {
		msg, err := t.svc.FetchMessage(ctx, id)
		if err != nil {
			return nil, nil, wrapSvcError(fmt.Sprintf("fetch message %s", id), err)
		}

		emails = append(emails, message.Normalize(msg))
	}

	text, err := renderEmails(emails, input.Format)
	if err != nil {
		return nil, nil, err
	}

	return textResult(text), nil, nil
}

// normalizeListEmailsRequest applies defaults and rejects unknown formats.
func normalizeListEmailsRequest(input ListEmailsRequest) (ListEmailsRequest, error) {
	if input.Query == "" {
		input.Query = defaultQuery
	}

	if input.MaxResults <= 0 {
		input.MaxResults = defaultMaxResults
	} else if input.MaxResults > maxListResults {
		input.MaxResults = maxListResults
	}

	switch input.Format {
	case "":
		input.Format = formatJSON
	case formatJSON, formatMarkdown:
	default:
		return input, fmt.Errorf("unsupported format %q: use %s or %s", input.Format, formatJSON, formatMarkdown)
	}

	return input, nil
}

func renderEmails(emails []message.Email, format string) (string, error) {
	if format == formatMarkdown {
		return message.Markdown(emails), nil
	}

	data, err := json.Marshal(emails)
	if err != nil {
		return "", fmt.Errorf("json.Marshal failed: %w", err)
	}

	return string(data), nil
}
