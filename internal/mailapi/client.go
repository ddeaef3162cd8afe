package mailapi

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/mbx0/mailbox-mcp/internal/auth"
)

const defaultUserID = "me"

// Config wires a Client to the provider. Endpoint and HTTPClient are
// optional overrides used to point the client at fixture servers.
type Config struct {
	Credential *auth.Credential
	UserID     string
	Endpoint   string
	HTTPClient *http.Client
}

// New creates a provider client. The credential is consulted on every call;
// a missing token fails fast without any network activity.
func New(cfg Config) *Client {
	if cfg.UserID == "" {
		cfg.UserID = defaultUserID
	}

	return &Client{cfg: cfg}
}

// Client issues authenticated requests against the provider's message API.
type Client struct {
	cfg Config
}

// ListMessageIDs returns the ids of messages matching query, most recent
// first, at most maxResults of them. An empty result means no messages
// matched.
func (c *Client) ListMessageIDs(ctx context.Context, query string, maxResults int64) ([]string, error) {
	svc, err := c.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	result, err := svc.Users.Messages.List(c.cfg.UserID).
		Q(query).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError("messages.List", err)
	}

	ids := make([]string, 0, len(result.Messages))
	for _, m := range result.Messages {
		ids = append(ids, m.Id)
	}

	return ids, nil
}

// FetchMessage retrieves the full representation of one message by id.
func (c *Client) FetchMessage(ctx context.Context, msgID string) (*gmail.Message, error) {
	svc, err := c.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	msg, err := svc.Users.Messages.Get(c.cfg.UserID, msgID).
		Format("full").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError("messages.Get", err)
	}

	return msg, nil
}

// SendMessage submits an outgoing email and returns the provider-assigned
// message id.
func (c *Client) SendMessage(ctx context.Context, out Outgoing) (string, error) {
	svc, err := c.newSvc(ctx)
	if err != nil {
		return "", fmt.Errorf("newSvc failed: %w", err)
	}

	sent, err := svc.Users.Messages.Send(c.cfg.UserID, &gmail.Message{Raw: out.Encode()}).
		Context(ctx).
		Do()
	if err != nil {
		return "", wrapAPIError("messages.Send", err)
	}

	return sent.Id, nil
}

func (c *Client) newSvc(ctx context.Context) (*gmail.Service, error) {
	src, err := c.cfg.Credential.TokenSource()
	if err != nil {
		return nil, err
	}

	clt := c.cfg.HTTPClient
	if clt == nil {
		clt = oauth2.NewClient(ctx, src)
	}

	opts := []option.ClientOption{option.WithHTTPClient(clt)}
	if c.cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.cfg.Endpoint))
	}

	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gmail.NewService failed: %w", err)
	}

	return svc, nil
}
