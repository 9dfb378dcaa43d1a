package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"spdhec/internal/domain"
)

var (
	ErrNotFound = errors.New("relay: not found")
	ErrConflict = errors.New("relay: already published")
)

type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the relay at base. A nil client means
// http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

func (c *HTTP) PublishParams(ctx context.Context, id domain.SessionID, params domain.SessionParams) error {
	return c.post(ctx, paramsPath(id), params)
}

func (c *HTTP) FetchParams(ctx context.Context, id domain.SessionID) (domain.SessionParams, error) {
	var out domain.SessionParams
	if err := c.getJSON(ctx, paramsPath(id), &out); err != nil {
		return domain.SessionParams{}, err
	}
	return out, nil
}

func (c *HTTP) PublishKey(ctx context.Context, id domain.SessionID, key domain.PublishedKey) error {
	return c.post(ctx, keyPath(id, key.Party), key)
}

func (c *HTTP) FetchKey(ctx context.Context, id domain.SessionID, party domain.Party) (domain.PublishedKey, error) {
	var out domain.PublishedKey
	if err := c.getJSON(ctx, keyPath(id, party), &out); err != nil {
		return domain.PublishedKey{}, err
	}
	return out, nil
}

func paramsPath(id domain.SessionID) string {
	return strings.NewReplacer(
		"{"+SessionURLParam+"}", url.PathEscape(id.String()),
	).Replace(ParamsEndpoint)
}

func keyPath(id domain.SessionID, party domain.Party) string {
	return strings.NewReplacer(
		"{"+SessionURLParam+"}", url.PathEscape(id.String()),
		"{"+PartyURLParam+"}", url.PathEscape(party.String()),
	).Replace(KeyEndpoint)
}

func (c *HTTP) post(ctx context.Context, path string, in any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return statusError(http.MethodPost, path, resp)
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := statusError(http.MethodGet, path, resp); err != nil {
		return err
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// statusError maps a non-2xx response to an error, decoding the relay's
// {"error", "code"} body when there is one.
func statusError(method, path string, resp *http.Response) error {
	if resp.StatusCode/100 == 2 {
		return nil
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body errorBody
	if err := json.Unmarshal(bytes.TrimSpace(raw), &body); err != nil || body.Err == "" {
		body.Err = strings.TrimSpace(string(raw))
	}
	switch {
	case body.Code == ErrResourceNotFound.Code || resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	case body.Code == ErrAlreadyPublished.Code:
		return fmt.Errorf("%w: %s %s", ErrConflict, method, path)
	}
	return fmt.Errorf("relay %s %s: %s: %s (code %d)", method, path, resp.Status, body.Err, body.Code)
}

var _ domain.RelayClient = (*HTTP)(nil)
