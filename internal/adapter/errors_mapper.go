package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrRemoteBadResponse, ErrNotFound, body)
	case resp.StatusCode() >= http.StatusMultipleChoices && resp.StatusCode() < http.StatusBadRequest:
		return fmt.Errorf("%w: %w: http %d to %q", ErrRemoteBadResponse, ErrRedirect, resp.StatusCode(), resp.Header().Get("Location"))
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: http %d: %s", ErrRemoteBadResponse, ErrServerError, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrRemoteBadResponse, resp.StatusCode(), body)
	}
}
