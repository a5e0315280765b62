package api

import (
	"context"
	"net/http"
)

// Logout posts to /logout and returns the response status. Any completed
// response, whatever its status, is reported with a nil error; only
// transport failures are errors.
func (c *Client) Logout(ctx context.Context) (int, error) {
	code, _, err := c.do(ctx, http.MethodPost, "/logout", nil)
	return code, err
}
