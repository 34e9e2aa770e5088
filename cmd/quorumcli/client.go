package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxResponseSize limits how much of a response body is read.
const maxResponseSize = 8 << 20

// apiClient talks to the quorumd HTTP API.
type apiClient struct {
	url string
	cli http.Client
}

func newAPIClient(url string) *apiClient {
	return &apiClient{
		url: strings.TrimRight(url, "/"),
		cli: http.Client{Timeout: 30 * time.Second},
	}
}

func (c *apiClient) Get(path string, dest interface{}) error {
	resp, err := c.cli.Get(c.url + path)
	if err != nil {
		return fmt.Errorf("http get %s: %s", path, err)
	}
	return decodeResponse(resp, dest)
}

func (c *apiClient) Post(path string, body, dest interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("cannot serialize request: %s", err)
	}
	resp, err := c.cli.Post(c.url+path, "application/json", bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("http post %s: %s", path, err)
	}
	return decodeResponse(resp, dest)
}

func decodeResponse(resp *http.Response, dest interface{}) error {
	defer resp.Body.Close()
	body := io.LimitReader(resp.Body, maxResponseSize)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Errors []string `json:"errors"`
			Code   uint32   `json:"code"`
		}
		if err := json.NewDecoder(body).Decode(&apiErr); err != nil || len(apiErr.Errors) == 0 {
			return fmt.Errorf("failed response: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return fmt.Errorf("failed response: %d (code %d): %s",
			resp.StatusCode, apiErr.Code, strings.Join(apiErr.Errors, ", "))
	}
	if err := json.NewDecoder(body).Decode(dest); err != nil {
		return fmt.Errorf("cannot decode response: %s", err)
	}
	return nil
}
