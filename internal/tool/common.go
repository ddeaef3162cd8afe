package tool

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mbx0/mailbox-mcp/internal/auth"
)

const (
	defaultQuery      = "in:inbox"
	defaultMaxResults = 3
	maxListResults    = 50

	formatJSON     = "json"
	formatMarkdown = "markdown"

	callTimeout = 60 * time.Second
)

// logCall logs the start of a tool invocation and returns a func that logs
// its completion with duration.
func logCall(toolName string) func() {
	callID := uuid.NewString()
	start := time.Now()
	log.Printf("tool=%s call=%s started", toolName, callID)

	return func() {
		log.Printf("tool=%s call=%s finished in %s", toolName, callID, time.Since(start))
	}
}

// textResult wraps rendered output as a single text content block.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// wrapSvcError shapes client failures for the tool boundary. A missing
// credential reports the same way for every tool.
func wrapSvcError(op string, err error) error {
	if errors.Is(err, auth.ErrAPIKeyNotSet) {
		return auth.ErrAPIKeyNotSet
	}

	return fmt.Errorf("%s failed: %w", op, err)
}
