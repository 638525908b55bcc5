package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sipeed/walletd/pkg/config"
	"github.com/sipeed/walletd/pkg/engine"
)

// Client is the thin HTTP client the CLI uses to talk to the daemon.
type Client struct {
	rc *resty.Client
}

func New(baseURL string) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Client{rc: rc}
}

// APIError is a non-2xx response from the daemon. 400-class responses carry
// validation or unknown-identifier messages and map to invalid-argument
// outcomes at the CLI.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("daemon returned %d: %s", e.Status, e.Message)
}

// IsInvalidArgs reports whether the daemon classified the request as a
// client-input problem.
func (e *APIError) IsInvalidArgs() bool {
	return e.Status >= 400 && e.Status < 500
}

// TransportError means the daemon could not be reached at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("daemon unreachable: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body, out any) error {
	var apiErr errorBody
	req := c.rc.R().
		SetContext(ctx).
		SetError(&apiErr)
	if query != nil {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return &TransportError{Err: err}
	}
	if resp.IsError() {
		msg := apiErr.Error
		if msg == "" {
			msg = resp.Status()
		}
		return &APIError{Status: resp.StatusCode(), Message: msg}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	return c.do(ctx, resty.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, resty.MethodPost, path, nil, body, out)
}

type HealthResult struct {
	Status    string `json:"status"`
	UptimeSec int64  `json:"uptimeSec"`
}

func (c *Client) Health(ctx context.Context) (*HealthResult, error) {
	var out HealthResult
	if err := c.get(ctx, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Probe checks daemon liveness with its own short timeout. It never returns
// an error; an unreachable daemon is simply "not alive".
func (c *Client) Probe(ctx context.Context, timeout time.Duration) bool {
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	health, err := c.Health(pctx)
	return err == nil && health.Status == "ok"
}

func (c *Client) Version(ctx context.Context) (string, error) {
	var out struct {
		Version string `json:"version"`
	}
	if err := c.get(ctx, "/version", nil, &out); err != nil {
		return "", err
	}
	return out.Version, nil
}

func (c *Client) BuildInfo(ctx context.Context) (*engine.BuildInfo, error) {
	var out engine.BuildInfo
	if err := c.get(ctx, "/build-info", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Networks(ctx context.Context) ([]config.Network, error) {
	var out struct {
		Networks []config.Network `json:"networks"`
	}
	if err := c.get(ctx, "/networks", nil, &out); err != nil {
		return nil, err
	}
	return out.Networks, nil
}

func (c *Client) Accounts(ctx context.Context) ([]engine.Account, error) {
	var out struct {
		Accounts []engine.Account `json:"accounts"`
	}
	if err := c.get(ctx, "/accounts", nil, &out); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

func (c *Client) Balance(ctx context.Context, address, network string) (*engine.BalanceResult, error) {
	var out engine.BalanceResult
	err := c.get(ctx, "/balance", map[string]string{
		"address": address,
		"network": network,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type SendResult struct {
	GUID   string          `json:"guid"`
	Status engine.TxStatus `json:"status"`
}

func (c *Client) SendTransaction(ctx context.Context, req engine.TxRequest) (*SendResult, error) {
	var out SendResult
	if err := c.post(ctx, "/tx/send", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TransactionStatus(ctx context.Context, guid string) (*engine.TxStatusResult, error) {
	var out engine.TxStatusResult
	if err := c.get(ctx, "/tx/status", map[string]string{"guid": guid}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Sessions(ctx context.Context) ([]engine.Session, error) {
	var out struct {
		Sessions []engine.Session `json:"sessions"`
	}
	if err := c.get(ctx, "/wc/sessions", nil, &out); err != nil {
		return nil, err
	}
	return out.Sessions, nil
}

func (c *Client) Connect(ctx context.Context, address, network, uri string) (*engine.Session, error) {
	var out engine.Session
	err := c.post(ctx, "/wc/connect", map[string]string{
		"address": address,
		"network": network,
		"uri":     uri,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Switch(ctx context.Context, sessionID string, address, network *string) (*engine.Session, error) {
	body := map[string]any{"session": sessionID}
	if address != nil {
		body["address"] = *address
	}
	if network != nil {
		body["network"] = *network
	}

	var out engine.Session
	if err := c.post(ctx, "/wc/switch", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Disconnect(ctx context.Context, sessionID string) (*engine.Session, error) {
	var out engine.Session
	err := c.post(ctx, "/wc/disconnect", map[string]string{"session": sessionID}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
