package tool_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbx0/mailbox-mcp/internal/auth"
	"github.com/mbx0/mailbox-mcp/internal/mailapi"
	"github.com/mbx0/mailbox-mcp/internal/message"
	"github.com/mbx0/mailbox-mcp/internal/tool"
)

// newFixtureSession stands up the whole stack against a fake provider:
// MCP client session -> tool server -> API client -> httptest server.
func newFixtureSession(t *testing.T, token string) (*mcp.ClientSession, *atomic.Int64) {
	t.Helper()

	var hits atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("GET /gmail/v1/users/me/messages", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"a"},{"id":"b"}]}`))
	})
	mux.HandleFunc("GET /gmail/v1/users/me/messages/{id}", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")

		switch r.PathValue("id") {
		case "a":
			fmt.Fprintf(w, `{
				"id": "a",
				"payload": {
					"headers": [
						{"name": "Subject", "value": "First"},
						{"name": "From", "value": "Alice <alice@test.com>"}
					],
					"parts": [
						{"mimeType": "text/plain", "body": {"data": %q}}
					]
				}
			}`, b64("hello from a"))
		case "b":
			fmt.Fprintf(w, `{
				"id": "b",
				"payload": {
					"headers": [
						{"name": "From", "value": "Bob <bob@test.com>"}
					],
					"body": {"data": %q}
				}
			}`, b64("hello from b"))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Not Found","status":"NOT_FOUND"}}`))
		}
	})
	mux.HandleFunc("POST /gmail/v1/users/me/messages/send", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"sent-e2e"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	clt := mailapi.New(mailapi.Config{
		Credential: auth.NewCredential(token),
		Endpoint:   srv.URL,
	})

	return newTestSession(t, tool.NewServer(clt)), &hits
}

func TestEndToEndListKeepsProviderOrder(t *testing.T) {
	session, _ := newFixtureSession(t, "e2e-token")

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "list_emails",
		Arguments: tool.ListEmailsRequest{},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "Unexpected error: %v", result.Content)

	var emails []message.Email
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &emails))

	assert.Equal(t, []message.Email{
		{ID: "a", Subject: "First", From: "Alice <alice@test.com>", Body: "hello from a"},
		{ID: "b", From: "Bob <bob@test.com>", Body: "hello from b"},
	}, emails)
}

func TestEndToEndNotFoundSurfacesProviderMessage(t *testing.T) {
	session, _ := newFixtureSession(t, "e2e-token")

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_email_content",
		Arguments: tool.GetEmailContentRequest{MessageID: "nope"},
	})
	require.NoError(t, err)
	require.True(t, result.IsError, "Result should indicate error")

	assert.Contains(t, resultText(t, result), "Not Found")
}

func TestEndToEndSend(t *testing.T) {
	session, _ := newFixtureSession(t, "e2e-token")

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "send_email",
		Arguments: tool.SendEmailRequest{
			To:      "alice@test.com",
			Subject: "Hello",
			Body:    "from the e2e test",
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "Unexpected error: %v", result.Content)

	var response tool.SendEmailResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))
	assert.Equal(t, tool.SendEmailResponse{Status: "sent", ID: "sent-e2e"}, response)
}

// Every tool reports a missing credential the same way, and nothing ever
// reaches the provider.
func TestEndToEndMissingCredential(t *testing.T) {
	session, hits := newFixtureSession(t, "")

	calls := []*mcp.CallToolParams{
		{Name: "list_emails", Arguments: tool.ListEmailsRequest{}},
		{Name: "get_email_content", Arguments: tool.GetEmailContentRequest{MessageID: "a"}},
		{Name: "send_email", Arguments: tool.SendEmailRequest{To: "a@test.com", Subject: "s", Body: "b"}},
	}

	texts := make([]string, 0, len(calls))
	for _, params := range calls {
		result, err := session.CallTool(context.Background(), params)
		require.NoError(t, err)
		require.True(t, result.IsError, "%s should report the missing credential", params.Name)

		text := resultText(t, result)
		assert.Contains(t, text, "API key not set")
		texts = append(texts, text)
	}

	assert.Equal(t, texts[0], texts[1])
	assert.Equal(t, texts[0], texts[2])
	assert.Equal(t, int64(0), hits.Load())
}

func TestEndToEndUnknownTool(t *testing.T) {
	session, _ := newFixtureSession(t, "e2e-token")

	_, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "delete_email",
		Arguments: map[string]any{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete_email")

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "list_emails",
		Arguments: tool.ListEmailsRequest{},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError, "session should survive an unknown tool call")
}
