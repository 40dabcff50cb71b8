package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/snesterov/ciphervault/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorBody(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorBody prefers the error field of the server's JSON error payload and
// falls back to the raw body, then the status text.
func errorBody(resp *resty.Response) string {
	raw := strings.TrimSpace(string(resp.Body()))

	var er models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &er); err == nil && er.Error != "" {
		return er.Error
	}
	if raw == "" {
		return http.StatusText(resp.StatusCode())
	}
	return raw
}
