package authority

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// HTTPDirectory fetches the authority list from a remote service. The
// service is expected to respond to a GET request with
//
//   {"authorities": ["0x...", ...]}
type HTTPDirectory struct {
	url string
	cli http.Client
}

var _ Directory = (*HTTPDirectory)(nil)

// NewHTTPDirectory returns a directory that queries given URL.
func NewHTTPDirectory(url string) *HTTPDirectory {
	return &HTTPDirectory{url: url}
}

// Authorities fetches the current list. The request is bound to ctx, so
// the caller controls the timeout.
func (d *HTTPDirectory) Authorities(ctx context.Context) ([]quorum.Address, error) {
	req, err := http.NewRequest("GET", d.url, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "create http request: %s", err)
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")

	resp, err := d.cli.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDirectoryUnavailable, "do request: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := ioutil.ReadAll(io.LimitReader(resp.Body, 1e4))
		return nil, errors.Wrapf(errors.ErrDirectoryUnavailable, "bad response: %d %s", resp.StatusCode, string(b))
	}

	var payload struct {
		Authorities []quorum.Address `json:"authorities"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1e6)).Decode(&payload); err != nil {
		return nil, errors.Wrapf(errors.ErrDirectoryUnavailable, "decode response: %s", err)
	}
	if payload.Authorities == nil {
		return nil, errors.Wrap(errors.ErrDirectoryUnavailable, "no authorities in response")
	}
	for i, a := range payload.Authorities {
		if err := a.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrDirectoryUnavailable, fmt.Sprintf("authority %d: %s", i, err))
		}
	}
	return payload.Authorities, nil
}
