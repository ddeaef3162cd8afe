package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"

	"github.com/mbx0/mailbox-mcp/internal/message"
)

// GetEmailContentRequest addresses one email either by provider message ID
// or by 1-based position in the listing. Exactly one of message_id and
// index must be set.
type GetEmailContentRequest struct {
	MessageID string `json:"message_id,omitempty" jsonschema:"provider message ID as returned by list_emails"`
	Index     *int64 `json:"index,omitempty" jsonschema:"1-based position in the listing for query"`
	Query     string `json:"query,omitempty" jsonschema:"Gmail search query the index refers to (defaults to in:inbox)"`
}

type getEmailContentSvc interface {
	ListMessageIDs(ctx context.Context, query string, maxResults int64) ([]string, error)
	FetchMessage(ctx context.Context, msgID string) (*gmail.Message, error)
}

// NewGetEmailContent creates the get_email_content tool.
func NewGetEmailContent(svc getEmailContentSvc) *GetEmailContent {
	return &GetEmailContent{svc: svc}
}

// GetEmailContent fetches a single email.
type GetEmailContent struct {
	svc getEmailContentSvc
}

// GetEmailContent resolves the identifier and returns the email flattened.
// Index resolution runs a fresh single-page listing of query within the
// same call; no listing state is kept between calls.
func (t *GetEmailContent) GetEmailContent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetEmailContentRequest,
) (*mcp.CallToolResult, message.Email, error) {
	defer logCall("get_email_content")()

	input, err := validateGetEmailContentRequest(input)
	if err != nil {
		return nil, message.Email{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var msgID string
	if input.MessageID != "" {
		msgID = input.MessageID
	} else {
		msgID, err = t.resolveIndex(ctx, input.Query, *input.Index)
		if err != nil {
			return nil, message.Email{}, err
		}
	}

	msg, err := t.svc.FetchMessage(ctx, msgID)
	if err != nil {
		return nil, message.Email{}, wrapSvcError("svc.FetchMessage", err)
	}

	return nil, message.Normalize(msg), nil
}

func (t *GetEmailContent) resolveIndex(ctx context.Context, query string, idx int64) (string, error) {
	if idx < 1 {
		return "", fmt.Errorf("message index %d not found: index is 1-based", idx)
	}

	ids, err := t.svc.ListMessageIDs(ctx, query, idx)
	if err != nil {
		return "", wrapSvcError("svc.ListMessageIDs", err)
	}

	if int64(len(ids)) < idx {
		return "", fmt.Errorf("message index %d not found: listing returned %d messages", idx, len(ids))
	}

	return ids[idx-1], nil
}

// validateGetEmailContentRequest enforces the one-identifier rule and
// applies the query default.
func validateGetEmailContentRequest(input GetEmailContentRequest) (GetEmailContentRequest, error) {
	if input.MessageID == "" && input.Index == nil {
		return input, errors.New("either message_id or index must be provided")
	}

	if input.MessageID != "" && input.Index != nil {
		return input, errors.New("message_id and index are mutually exclusive")
	}

	if input.Query == "" {
		input.Query = defaultQuery
	}

	return input, nil
}
