package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"bellebook/internal/infra"
	"bellebook/internal/pkg/config"
)

// Client is the shared HTTP plumbing for every upstream gateway. The
// marketplace core wraps all payloads in a {success, data} envelope and
// signals session expiry with a bare 401, which is mapped to a distinct
// error kind because the wizard treats it as fatal to the session.
type Client struct {
	hc      *http.Client
	baseURL string
	logger  *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		hc:      &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// get performs an authenticated GET and decodes the envelope's data into out.
func (c *Client) get(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, http.MethodGet, token, path, nil, out)
}

// post performs an authenticated POST with a JSON body.
func (c *Client) post(ctx context.Context, token, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, token, path, body, out)
}

func (c *Client) do(ctx context.Context, method, token, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		jb, err := json.Marshal(body)
		if err != nil {
			return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "encode request body", err)
		}
		reqBody = bytes.NewReader(jb)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, method+" "+path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "read response body", err)
	}

	if res.StatusCode == http.StatusUnauthorized {
		return infra.WrapGatewayErr(c.logger, infra.KindUnauthenticated, "bearer token rejected", nil)
	}

	var env envelope
	if unmarshalErr := json.Unmarshal(raw, &env); unmarshalErr != nil {
		// Non-2xx without a parseable body is a plain transport failure.
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable,
			fmt.Sprintf("%s %s: status=%d, unparseable body", method, path, res.StatusCode), unmarshalErr)
	}

	if res.StatusCode == http.StatusNotFound {
		return infra.WrapGatewayErr(c.logger, infra.KindNotFound, serverMessage(env, "not found"), nil)
	}
	if res.StatusCode >= 400 && res.StatusCode < 500 {
		return infra.WrapGatewayErr(c.logger, infra.KindBusinessRule, serverMessage(env, "request rejected"), nil)
	}
	if res.StatusCode >= 500 || !env.Success {
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable,
			fmt.Sprintf("%s %s: status=%d", method, path, res.StatusCode), nil)
	}

	if out != nil {
		if decodeErr := json.Unmarshal(env.Data, out); decodeErr != nil {
			return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "decode response data", decodeErr)
		}
	}
	return nil
}

func serverMessage(env envelope, fallback string) string {
	if env.Message != "" {
		return env.Message
	}
	return fallback
}
