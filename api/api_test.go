package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures the requests a stub server sees and the messages the
// client logs.
type recorder struct {
	mu       sync.Mutex
	requests []*http.Request
	messages []string
}

func (r *recorder) LogError(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recorder) last(t *testing.T) *http.Request {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.requests, "no request reached the server")
	return r.requests[len(r.requests)-1]
}

// newStub starts a server answering every request with status and body.
func newStub(t *testing.T, status int, body string) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.requests = append(rec.requests, r.Clone(context.Background()))
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return NewClient(WithBaseURL(srv.URL), WithLogger(rec)), rec
}

func decodeFixture(t *testing.T, raw string) any {
	t.Helper()
	var v any
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&v))
	return v
}

type endpointCase struct {
	name    string
	path    string
	param   string
	key     string
	ids     []string
	fixture string
	def     any
	call    func(ctx context.Context, c *Client, ids []string) any
}

func endpointCases() []endpointCase {
	ids := []string{"a", "b"}
	list := `[{"id":"one","tvl":100000,"apy":12.5},{"id":"two","tvl":200000,"apy":10.0}]`
	object := `{"tickSpacing":64,"maxLiquidity":1000000000,"minLiquidity":1000}`

	return []endpointCase{
		{"pools by ids", "/pools/info/ids", "ids", "pools", ids, list, []any{},
			func(ctx context.Context, c *Client, ids []string) any { return c.Pools.GetInfoByIDs(ctx, ids) }},
		{"pools by lps", "/pools/info/lps", "lpMints", "pools", ids, list, []any{},
			func(ctx context.Context, c *Client, ids []string) any { return c.Pools.GetInfoByLPs(ctx, ids) }},
		{"all pools", "/pools/info/list", "", "pools", nil, list, []any{},
			func(ctx context.Context, c *Client, _ []string) any { return c.Pools.GetAll(ctx) }},
		{"pools by token mint", "/pools/info/mint", "tokenMints", "pools", ids, list, []any{},
			func(ctx context.Context, c *Client, ids []string) any { return c.Pools.GetInfoByTokenMints(ctx, ids) }},
		{"pool keys", "/pools/key/ids", "ids", "keys", ids, list, []any{},
			func(ctx context.Context, c *Client, ids []string) any { return c.Pools.GetKeysByIDs(ctx, ids) }},
		{"pool liquidity history", "/pools/line/liquidity", "ids", "liquidityHistory", ids, list, []any{},
			func(ctx context.Context, c *Client, ids []string) any { return c.Pools.GetLiquidityHistory(ctx, ids) }},
		{"pool position history", "/pools/line/position", "ids", "positionHistory", ids, list, []any{},
			func(ctx context.Context, c *Client, ids []string) any { return c.Pools.GetPositionHistory(ctx, ids) }},
		{"farms by ids", "/farms/info/ids", "ids", "farms", ids, list, []any{},
			func(ctx context.Context, c *Client, ids []string) any { return c.Farms.GetInfoByIDs(ctx, ids) }},
		{"farms by lp", "/farms/info/lp", "lpMints", "farms", ids, list, []any{},
			func(ctx context.Context, c *Client, ids []string) any { return c.Farms.GetInfoByLPs(ctx, ids) }},
		{"farm keys", "/farms/key/ids", "ids", "keys", ids, list, []any{},
			func(ctx context.Context, c *Client, ids []string) any { return c.Farms.GetKeysByIDs(ctx, ids) }},
		{"mint list", "/mint/list", "", "mints", nil, list, []any{},
			func(ctx context.Context, c *Client, _ []string) any { return c.Mints.GetList(ctx) }},
		{"mint info", "/mint/ids", "mints", "mints", ids, list, []any{},
			func(ctx context.Context, c *Client, ids []string) any { return c.Mints.GetInfo(ctx, ids) }},
		{"mint price", "/mint/price", "mints", "data", ids, `{"a":1.25,"b":"0.85"}`, map[string]any{},
			func(ctx context.Context, c *Client, ids []string) any { return c.Mints.GetPrice(ctx, ids) }},
		{"ido keys", "/ido/key/ids", "ids", "keys", ids, list, []any{},
			func(ctx context.Context, c *Client, ids []string) any { return c.IDO.GetPoolKeys(ctx, ids) }},
		{"version", "/main/version", "", "version", nil, `"3.0.0"`, Unknown,
			func(ctx context.Context, c *Client, _ []string) any { return c.Main.GetVersion(ctx) }},
		{"rpcs", "/main/rpcs", "", "rpcs", nil, `[{"url":"https://rpc-mainnet.raydium.io","status":"online"}]`, []any{},
			func(ctx context.Context, c *Client, _ []string) any { return c.Main.GetRPCs(ctx) }},
		{"chain time", "/main/chain-time", "", "chainTime", nil, `"2024-12-01T12:00:00Z"`, Unknown,
			func(ctx context.Context, c *Client, _ []string) any { return c.Main.GetChainTime(ctx) }},
		{"stake pools", "/main/stake-pools", "", "stakePools", nil, list, []any{},
			func(ctx context.Context, c *Client, _ []string) any { return c.Main.GetStakePools(ctx) }},
		{"migrate lp", "/main/migrate-lp", "", "pools", nil, `[{"id":"lp1","source":"oldPool","destination":"newPool"}]`, []any{},
			func(ctx context.Context, c *Client, _ []string) any { return c.Main.GetMigrateLP(ctx) }},
		{"auto fee", "/main/auto-fee", "", "fees", nil, `[{"type":"transaction","amount":0.0005}]`, []any{},
			func(ctx context.Context, c *Client, _ []string) any { return c.Main.GetAutoFee(ctx) }},
		{"clmm config", "/main/clmm-config", "", "config", nil, object, map[string]any{},
			func(ctx context.Context, c *Client, _ []string) any { return c.Main.GetClmmConfig(ctx) }},
		{"cpmm config", "/main/cpmm-config", "", "config", nil, `{"feeRate":0.003,"minLiquidity":100}`, map[string]any{},
			func(ctx context.Context, c *Client, _ []string) any { return c.Main.GetCpmmConfig(ctx) }},
	}
}

func TestEndpointsReturnFieldUnchanged(t *testing.T) {
	for _, tc := range endpointCases() {
		t.Run(tc.name, func(t *testing.T) {
			body := fmt.Sprintf(`{"id":"req","success":true,%q:%s}`, tc.key, tc.fixture)
			client, rec := newStub(t, http.StatusOK, body)

			got := tc.call(context.Background(), client, tc.ids)

			require.Equal(t, decodeFixture(t, tc.fixture), got)
			assert.Empty(t, rec.messages)

			req := rec.last(t)
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, tc.path, req.URL.Path)
			assert.Equal(t, "application/json", req.Header.Get("Accept"))
			if tc.param != "" {
				assert.Equal(t, "a,b", req.URL.Query().Get(tc.param))
			} else {
				assert.Empty(t, req.URL.RawQuery)
			}
		})
	}
}

func TestEndpointsDefaultOnServerError(t *testing.T) {
	for _, tc := range endpointCases() {
		t.Run(tc.name, func(t *testing.T) {
			client, rec := newStub(t, http.StatusInternalServerError, `{"error":"boom"}`)

			require.NotPanics(t, func() {
				got := tc.call(context.Background(), client, tc.ids)
				assert.Equal(t, tc.def, got)
			})

			require.Len(t, rec.messages, 1)
			assert.Contains(t, rec.messages[0], "Error fetching data from "+tc.path+": ")
			assert.Contains(t, rec.messages[0], "500")
		})
	}
}

func TestEndpointsDefaultOnMalformedJSON(t *testing.T) {
	for _, tc := range endpointCases() {
		t.Run(tc.name, func(t *testing.T) {
			client, rec := newStub(t, http.StatusOK, `{"pools": [`)

			got := tc.call(context.Background(), client, tc.ids)

			assert.Equal(t, tc.def, got)
			require.Len(t, rec.messages, 1)
			assert.Contains(t, rec.messages[0], "Error fetching data from "+tc.path)
		})
	}
}

func TestEndpointsDefaultOnMissingKey(t *testing.T) {
	for _, tc := range endpointCases() {
		t.Run(tc.name, func(t *testing.T) {
			client, rec := newStub(t, http.StatusOK, `{"unrelated":[1,2,3]}`)

			got := tc.call(context.Background(), client, tc.ids)

			assert.Equal(t, tc.def, got)
			assert.Empty(t, rec.messages, "an absent key is not a failure")
		})
	}
}

func TestEndpointsDefaultWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	rec := &recorder{}
	client := NewClient(WithBaseURL(base), WithLogger(rec))

	for _, tc := range endpointCases() {
		assert.Equal(t, tc.def, tc.call(context.Background(), client, tc.ids), tc.name)
	}
	assert.Len(t, rec.messages, len(endpointCases()))
}

func TestEmptyIDsSerializeToEmptyValue(t *testing.T) {
	client, rec := newStub(t, http.StatusOK, `{"pools":[]}`)

	got := client.Pools.GetInfoByIDs(context.Background(), []string{})
	assert.Equal(t, []any{}, got)

	req := rec.last(t)
	values, err := url.ParseQuery(req.URL.RawQuery)
	require.NoError(t, err)
	require.Contains(t, values, "ids")
	assert.Equal(t, "", values.Get("ids"))
}

func TestGetInfo(t *testing.T) {
	t.Run("whole envelope", func(t *testing.T) {
		client, rec := newStub(t, http.StatusOK, `{"tvl":1000000000,"volume24h":50000000}`)

		info := client.Main.GetInfo(context.Background())

		assert.Equal(t, "1000000000", info.TVL.String())
		assert.Equal(t, "50000000", info.Volume24h.String())
		assert.Equal(t, "/main/info", rec.last(t).URL.Path)
	})

	t.Run("missing field stays zero", func(t *testing.T) {
		client, _ := newStub(t, http.StatusOK, `{"tvl":"12.5"}`)

		info := client.Main.GetInfo(context.Background())

		assert.Equal(t, "12.5", info.TVL.String())
		assert.True(t, info.Volume24h.IsZero())
	})

	t.Run("bad field does not zero the other", func(t *testing.T) {
		client, rec := newStub(t, http.StatusOK, `{"tvl":true,"volume24h":50}`)

		info := client.Main.GetInfo(context.Background())

		assert.True(t, info.TVL.IsZero())
		assert.Equal(t, "50", info.Volume24h.String())
		assert.Empty(t, rec.messages)
	})

	t.Run("string and null fields", func(t *testing.T) {
		client, _ := newStub(t, http.StatusOK, `{"tvl":"7.25","volume24h":null}`)

		info := client.Main.GetInfo(context.Background())

		assert.Equal(t, "7.25", info.TVL.String())
		assert.True(t, info.Volume24h.IsZero())
	})

	for name, body := range map[string]string{
		"empty object": `{}`,
		"null":         `null`,
		"malformed":    `tvl=1`,
		"empty body":   ``,
	} {
		t.Run(name, func(t *testing.T) {
			client, _ := newStub(t, http.StatusOK, body)

			info := client.Main.GetInfo(context.Background())

			assert.True(t, info.TVL.IsZero())
			assert.True(t, info.Volume24h.IsZero())
		})
	}
}

func TestFieldTypeMismatchIsDecodeError(t *testing.T) {
	client, rec := newStub(t, http.StatusOK, `{"version":3}`)

	assert.Equal(t, Unknown, client.Main.GetVersion(context.Background()))
	require.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "Error fetching data from /main/version: ")
}

func TestNullFieldReturnsDefault(t *testing.T) {
	client, rec := newStub(t, http.StatusOK, `{"pools":null}`)

	assert.Equal(t, []any{}, client.Pools.GetAll(context.Background()))
	assert.Empty(t, rec.messages)
}

func TestDefaultsAreNotShared(t *testing.T) {
	client, _ := newStub(t, http.StatusInternalServerError, ``)
	ctx := context.Background()

	first := client.Mints.GetPrice(ctx, []string{"x"})
	first["x"] = 1

	assert.Empty(t, client.Mints.GetPrice(ctx, []string{"x"}))
}

func TestCanceledContextReturnsDefault(t *testing.T) {
	client, rec := newStub(t, http.StatusOK, `{"pools":[{"id":"p"}]}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, []any{}, client.Pools.GetAll(ctx))
	require.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "Error fetching data from /pools/info/list: ")
}
