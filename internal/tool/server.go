package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mailSvc interface {
	listEmailsSvc
	getEmailContentSvc
	sendEmailSvc
}

// NewServer registers all tools on a fresh MCP server backed by svc.
func NewServer(svc mailSvc) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "mailbox-helper", Version: "v1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_emails",
		Description: "List recent emails matching a Gmail search query",
	}, NewListEmails(svc).ListEmails)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_email_content",
		Description: "Get one email by message ID or by 1-based position in the listing",
	}, NewGetEmailContent(svc).GetEmailContent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "send_email",
		Description: "Send a plain-text email",
	}, NewSendEmail(svc).SendEmail)

	return server
}
