package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"feeboard/internal/metrics"
	"feeboard/pkg/logging"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const subsystem = "Gateway"

// FeeAPI is the backend surface used by the dashboard, the one-shot
// commands and the MCP tools.
type FeeAPI interface {
	Recommend(ctx context.Context, priority Priority, explain ExplainMode) (Recommendation, error)
	Compare(ctx context.Context, explain ExplainMode) (CompareResult, error)
	Estimate(ctx context.Context, fee float64, explain ExplainMode) (Recommendation, error)
	LiveStatus(ctx context.Context) (LiveStatus, error)
	MiningTarget(ctx context.Context, q MiningTargetQuery) (MinerTargetResult, error)
	History(ctx context.Context) (HistoryResult, error)
	Health(ctx context.Context) (HealthStatus, error)
}

// Client talks to the fee-recommendation backend at a fixed base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ FeeAPI = (*Client)(nil)

// NewClient creates a client. A zero timeout means requests never time out
// on their own.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request issues GET <base><path>?<query> and decodes the JSON body into
// out. Every failure is returned as a *TransportError; there are no retries.
func (c *Client) Request(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	start := time.Now()
	err := c.do(ctx, path, target, out)
	outcome := metrics.OutcomeSuccess
	if te, ok := err.(*TransportError); ok {
		outcome = te.Kind.String()
	}
	metrics.ObserveRequest(path, outcome, time.Since(start))

	if err != nil {
		logging.Debug(subsystem, "GET %s failed after %s: %v", target, time.Since(start).Round(time.Millisecond), err)
		return err
	}
	logging.Debug(subsystem, "GET %s ok in %s", target, time.Since(start).Round(time.Millisecond))
	return nil
}

func (c *Client) do(ctx context.Context, path, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &TransportError{Kind: KindNetwork, Path: path, Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Kind: KindNetwork, Path: path, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &TransportError{Kind: KindStatus, Path: path, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Kind: KindNetwork, Path: path, Cause: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &TransportError{Kind: KindDecode, Path: path, Cause: err}
	}
	return nil
}

func explainQuery(q url.Values, explain ExplainMode) {
	if explain != ExplainDefault {
		q.Set("explain", string(explain))
	}
}

// FormatNumber prints v in its shortest decimal form ("12.5", "42").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Recommend fetches the recommendation for one priority.
func (c *Client) Recommend(ctx context.Context, priority Priority, explain ExplainMode) (Recommendation, error) {
	q := url.Values{}
	q.Set("priority", string(priority))
	explainQuery(q, explain)

	var rec Recommendation
	if err := c.Request(ctx, "/recommend", q, &rec); err != nil {
		return Recommendation{}, err
	}
	return rec, nil
}

// Compare fetches the fast, medium and slow recommendations in one call.
func (c *Client) Compare(ctx context.Context, explain ExplainMode) (CompareResult, error) {
	q := url.Values{}
	explainQuery(q, explain)

	var res CompareResult
	if err := c.Request(ctx, "/compare", q, &res); err != nil {
		return CompareResult{}, err
	}
	return res, nil
}

// Estimate evaluates a custom fee. The fee must already be validated.
func (c *Client) Estimate(ctx context.Context, fee float64, explain ExplainMode) (Recommendation, error) {
	q := url.Values{}
	q.Set("fee", FormatNumber(fee))
	explainQuery(q, explain)

	var rec Recommendation
	if err := c.Request(ctx, "/estimate", q, &rec); err != nil {
		return Recommendation{}, err
	}
	return rec, nil
}

// LiveStatus fetches the latest polled snapshot.
func (c *Client) LiveStatus(ctx context.Context) (LiveStatus, error) {
	var st LiveStatus
	if err := c.Request(ctx, "/live/status", nil, &st); err != nil {
		return LiveStatus{}, err
	}
	return st, nil
}

// MiningTarget fetches the projected blocks. Absent query values are not sent.
func (c *Client) MiningTarget(ctx context.Context, mq MiningTargetQuery) (MinerTargetResult, error) {
	q := url.Values{}
	if fee, ok := mq.Fee.Get(); ok {
		q.Set("fee", FormatNumber(fee))
	}
	if target, ok := mq.TargetBlocks.Get(); ok {
		q.Set("target_blocks", strconv.Itoa(target))
	}

	var res MinerTargetResult
	if err := c.Request(ctx, "/mining-target", q, &res); err != nil {
		return MinerTargetResult{}, err
	}
	return res, nil
}

// History fetches the recent recommendation history.
func (c *Client) History(ctx context.Context) (HistoryResult, error) {
	var res HistoryResult
	if err := c.Request(ctx, "/history", nil, &res); err != nil {
		return HistoryResult{}, err
	}
	return res, nil
}

// Health probes the backend.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var hs HealthStatus
	if err := c.Request(ctx, "/health", nil, &hs); err != nil {
		return HealthStatus{}, err
	}
	return hs, nil
}
