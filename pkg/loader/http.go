package loader

import (
	"context"
	"errors"
	"io"
	"net/http"
)

type statusError struct {
	code int
}

func (e statusError) Error() string {
	return "unexpected status " + http.StatusText(e.code)
}

func loadHTTP(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		return nil, errors.New("http client is not configured")
	}
	if url == "" {
		return nil, errors.New("url is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, statusError{code: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}
