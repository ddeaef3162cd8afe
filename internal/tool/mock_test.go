package tool_test

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/gmail/v1"

	"github.com/mbx0/mailbox-mcp/internal/mailapi"
)

type mailSvcMock struct {
	ListMessageIDsFunc func(ctx context.Context, query string, maxResults int64) ([]string, error)
	FetchMessageFunc   func(ctx context.Context, msgID string) (*gmail.Message, error)
	SendMessageFunc    func(ctx context.Context, out mailapi.Outgoing) (string, error)
}

func (m *mailSvcMock) ListMessageIDs(ctx context.Context, query string, maxResults int64) ([]string, error) {
	return m.ListMessageIDsFunc(ctx, query, maxResults)
}

func (m *mailSvcMock) FetchMessage(ctx context.Context, msgID string) (*gmail.Message, error) {
	return m.FetchMessageFunc(ctx, msgID)
}

func (m *mailSvcMock) SendMessage(ctx context.Context, out mailapi.Outgoing) (string, error) {
	return m.SendMessageFunc(ctx, out)
}

func newTestSession(t *testing.T, server *mcp.Server) *mcp.ClientSession {
	t.Helper()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx := context.Background()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { clientSession.Close() })

	return clientSession
}

func b64(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

func int64p(v int64) *int64 {
	return &v
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)

	return result.Content[0].(*mcp.TextContent).Text
}
