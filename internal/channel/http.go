package channel

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
)

const maxErrorBody = 512

// classifyResponse maps a provider response to nil, a transient or a terminal
// delivery error. 5xx, 408 and 429 are transient; any other non-2xx is terminal.
func classifyResponse(channel string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	err := fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))

	return classifyStatus(channel, resp.StatusCode, err)
}

func classifyStatus(channel string, code int, err error) error {
	switch {
	case code >= 500, code == http.StatusTooManyRequests, code == http.StatusRequestTimeout:
		return domain.Transient(channel, err)
	default:
		return domain.Terminal(channel, err)
	}
}
