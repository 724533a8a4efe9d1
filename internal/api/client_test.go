package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fastRecommendationJSON = `{
	"recommended_fee_sat_vb": 42,
	"base_fee_sat_vb": 30,
	"mode": "fast",
	"eta_blocks_min": 1,
	"eta_blocks_max": 2,
	"eta_minutes_min": 10,
	"eta_minutes_max": 20,
	"mempool_tx_count": 15000,
	"confidence": "high",
	"risk_level": "low",
	"cache_used": false,
	"explanation": ["mempool is light"]
}`

// newTestServer records the last request URL and replies with body/status.
func newTestServer(t *testing.T, status int, body string, lastURL *url.URL) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastURL != nil {
			*lastURL = *r.URL
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Recommend(t *testing.T) {
	var got url.URL
	srv := newTestServer(t, http.StatusOK, fastRecommendationJSON, &got)
	c := NewClient(srv.URL+"/", 0)

	rec, err := c.Recommend(context.Background(), PriorityFast, ExplainDefault)
	require.NoError(t, err)

	assert.Equal(t, "/recommend", got.Path)
	assert.Equal(t, "fast", got.Query().Get("priority"))
	assert.False(t, got.Query().Has("explain"), "explain is omitted when unset")

	assert.Equal(t, 42.0, rec.RecommendedFeeSatVB)
	assert.Equal(t, int64(15000), rec.MempoolTxCount)
	assert.Equal(t, []string{"mempool is light"}, rec.Explanation)
	assert.False(t, rec.AgentSummary.IsPresent())
	assert.False(t, rec.InputFeeSatVB.IsPresent())
	assert.Nil(t, rec.RulesFired)
}

func TestClient_ExplainAndFeeParameters(t *testing.T) {
	var got url.URL
	srv := newTestServer(t, http.StatusOK, fastRecommendationJSON, &got)
	c := NewClient(srv.URL, 0)

	_, err := c.Estimate(context.Background(), 12.5, ExplainLLM)
	require.NoError(t, err)
	assert.Equal(t, "/estimate", got.Path)
	assert.Equal(t, "12.5", got.Query().Get("fee"))
	assert.Equal(t, "llm", got.Query().Get("explain"))

	_, err = c.Compare(context.Background(), ExplainNone)
	require.NoError(t, err)
	assert.Equal(t, "/compare", got.Path)
	assert.Equal(t, "none", got.Query().Get("explain"))
}

func TestClient_MiningTargetOmitsAbsentParameters(t *testing.T) {
	var got url.URL
	srv := newTestServer(t, http.StatusOK, `{"timestamp":"t","cache_used":false,"blocks":[]}`, &got)
	c := NewClient(srv.URL, 0)

	_, err := c.MiningTarget(context.Background(), MiningTargetQuery{TargetBlocks: Some(2)})
	require.NoError(t, err)
	assert.Equal(t, "/mining-target", got.Path)
	assert.False(t, got.Query().Has("fee"))
	assert.Equal(t, "2", got.Query().Get("target_blocks"))

	_, err = c.MiningTarget(context.Background(), MiningTargetQuery{Fee: Some(10.0)})
	require.NoError(t, err)
	assert.Equal(t, "10", got.Query().Get("fee"))
	assert.False(t, got.Query().Has("target_blocks"))
}

func TestClient_StatusError(t *testing.T) {
	srv := newTestServer(t, http.StatusServiceUnavailable, `{"detail":"down"}`, nil)
	c := NewClient(srv.URL, 0)

	_, err := c.LiveStatus(context.Background())
	require.Error(t, err)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, KindStatus, te.Kind)
	assert.Equal(t, 503, te.Status)
	assert.Equal(t, "Request failed (503)", err.Error())
}

func TestClient_DecodeError(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `<html>not json</html>`, nil)
	c := NewClient(srv.URL, 0)

	_, err := c.History(context.Background())
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, KindDecode, te.Kind)
	assert.Contains(t, err.Error(), "/history")
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := NewClient(base, time.Second)
	_, err := c.Health(context.Background())
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, KindNetwork, te.Kind)
	assert.NotNil(t, te.Unwrap())
	assert.True(t, IsTransportError(err))
}

func TestClient_Health(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"status":"ok"}`, nil)
	hs, err := NewClient(srv.URL, 0).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", hs.Status)
}

func TestLiveStatusDecoding(t *testing.T) {
	body := `{
		"updated_at_epoch": 1700000000.5,
		"cache_used": true,
		"fee_data": {"fastestFee": 21, "halfHourFee": 14.5},
		"mempool_data": {"count": 123456},
		"error": null,
		"network_state": "congested",
		"network_note": ""
	}`
	srv := newTestServer(t, http.StatusOK, body, nil)

	st, err := NewClient(srv.URL, 0).LiveStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 21.0, st.FastestFee().OrElse(-1))
	assert.Equal(t, 14.5, st.HalfHourFee().OrElse(-1))
	assert.Equal(t, int64(123456), st.MempoolCount().OrElse(-1))
	assert.True(t, st.CacheUsed)
	assert.False(t, st.Error.IsPresent())
	assert.False(t, st.NetworkNote.IsPresent(), "empty strings decode as absent")
	assert.Equal(t, "congested", st.NetworkState.OrElse(""))
}

func TestLiveStatusAccessorsWithoutSnapshots(t *testing.T) {
	var st LiveStatus
	assert.False(t, st.FastestFee().IsPresent())
	assert.False(t, st.HalfHourFee().IsPresent())
	assert.False(t, st.MempoolCount().IsPresent())
}

func TestHistoryDecodingAcceptsStringNumbers(t *testing.T) {
	body := `{"items":[
		{"timestamp":"2024-05-01T10:00:00","priority":"fast","base_fee_sat_vb":"12.5","recommended_fee_sat_vb":"15","mempool_tx_count":"48211"},
		{"priority":"slow","recommended_fee_sat_vb":3,"mempool_tx_count":null}
	],"insight":"Fees are stable."}`
	srv := newTestServer(t, http.StatusOK, body, nil)

	res, err := NewClient(srv.URL, 0).History(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	first := res.Items[0]
	assert.Equal(t, 15.0, first.RecommendedFeeSatVB.OrElse(0).Float64())
	assert.Equal(t, 48211.0, first.MempoolTxCount.OrElse(0).Float64())
	assert.Equal(t, "Fees are stable.", res.Insight.OrElse(""))

	second := res.Items[1]
	assert.False(t, second.Timestamp.IsPresent())
	assert.False(t, second.MempoolTxCount.IsPresent())
	assert.Equal(t, 3.0, second.RecommendedFeeSatVB.OrElse(0).Float64())
}

func TestOptionalMarshalRoundsAbsentToNull(t *testing.T) {
	out, err := json.Marshal(struct {
		A Optional[string] `json:"a"`
		B Optional[int]    `json:"b"`
	}{A: Some("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null}`, string(out))
}

func TestFlexNumberRejectsGarbage(t *testing.T) {
	var n FlexNumber
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &n))
	assert.NoError(t, json.Unmarshal([]byte(`"7.25"`), &n))
	assert.Equal(t, 7.25, n.Float64())
}

func TestInvalidInput(t *testing.T) {
	err := error(ErrInvalidFee)
	assert.Equal(t, "Enter a fee > 0", err.Error())
	assert.True(t, IsInvalidInput(err))
	assert.False(t, IsTransportError(err))
}
