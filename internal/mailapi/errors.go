package mailapi

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// wrapAPIError shapes a provider failure, preferring the structured error
// message over the raw HTTP status text when the provider supplies one.
func wrapAPIError(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		return fmt.Errorf("%s failed: %s (HTTP %d)", op, gerr.Message, gerr.Code)
	}

	return fmt.Errorf("%s failed: %w", op, err)
}
