package auth

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

type cred interface {
	Token() (*oauth2.Token, error)
}

// StatusHandler reports whether a bearer credential is configured.
type StatusHandler struct {
	cred cred
}

// NewStatusHandler creates an HTTP handler exposing credential status.
func NewStatusHandler(cred cred) *StatusHandler {
	return &StatusHandler{cred: cred}
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	t, err := h.cred.Token()
	if errors.Is(err, ErrAPIKeyNotSet) {
		http.Error(w, "API key not set", http.StatusUnauthorized)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "Token: %s", maskLeft(t.AccessToken))
}

func maskLeft(s string) string {
	rs := []rune(s)
	for i := 0; i < len(rs)-4; i++ {
		rs[i] = 'X'
	}
	return string(rs)
}
