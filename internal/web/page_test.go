package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meur/ffscope/internal/catalog"
)

// fakeRelay mimics the relay's player endpoint and counts lookups.
type fakeRelay struct {
	*httptest.Server
	calls  atomic.Int64
	status int
	body   string
}

func newFakeRelay(status int, body string) *fakeRelay {
	f := &fakeRelay{status: status, body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		w.Write([]byte(f.body))
	}))
	return f
}

func newTestPage(t *testing.T, relay *fakeRelay, defaultUID string) *Page {
	t.Helper()
	t.Cleanup(relay.Close)
	cat := catalog.New([]catalog.Item{
		{ItemID: "100", IconName: "a.png", Name: "Alpha"},
	})
	return NewPage(relay.URL, cat, "", defaultUID, "ind", zap.NewNop())
}

func serve(p *Page, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	p.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPageRendersProfile(t *testing.T) {
	relay := newFakeRelay(http.StatusOK,
		`{"AccountInfo":{"AccountName":"player1","AccountLevel":62}}`)
	p := newTestPage(t, relay, "")

	rec := serve(p, "/player?uid=123&region=ind")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account Information")
	assert.Contains(t, rec.Body.String(), "player1")
	assert.Equal(t, int64(1), relay.calls.Load())
}

func TestPageEmptyUID(t *testing.T) {
	relay := newFakeRelay(http.StatusOK, `{}`)
	p := newTestPage(t, relay, "")

	rec := serve(p, "/player?uid=")
	assert.Contains(t, rec.Body.String(), "Please enter a Player UID.")
	assert.Equal(t, int64(0), relay.calls.Load(), "empty uid must not trigger a lookup")
}

func TestPageUsesDefaultsOnFirstLoad(t *testing.T) {
	relay := newFakeRelay(http.StatusOK,
		`{"AccountInfo":{"AccountName":"player1"}}`)
	p := newTestPage(t, relay, "555")

	rec := serve(p, "/player")
	assert.Contains(t, rec.Body.String(), "player1")
	assert.Equal(t, int64(1), relay.calls.Load())
}

func TestPagePayloadErrorField(t *testing.T) {
	relay := newFakeRelay(http.StatusOK, `{"error":"player not found"}`)
	p := newTestPage(t, relay, "")

	rec := serve(p, "/player?uid=123")
	assert.Contains(t, rec.Body.String(), "Error: player not found")
}

func TestPageMissingAccountName(t *testing.T) {
	relay := newFakeRelay(http.StatusOK, `{"GuildInfo":{"GuildName":"NightRaid"}}`)
	p := newTestPage(t, relay, "")

	rec := serve(p, "/player?uid=123")
	assert.Contains(t, rec.Body.String(),
		"Player data not found or invalid response. Check UID and Region.")
}

func TestPageRelayError(t *testing.T) {
	relay := newFakeRelay(http.StatusNotFound, `{"message":"no such player"}`)
	p := newTestPage(t, relay, "")

	rec := serve(p, "/player?uid=123")
	body := rec.Body.String()
	assert.Contains(t, body, "API Error: 404 - no such player")
	assert.Contains(t, body, "Failed to fetch data:")
}

func TestPageRelayErrorWithoutMessage(t *testing.T) {
	relay := newFakeRelay(http.StatusBadGateway, `not json`)
	p := newTestPage(t, relay, "")

	rec := serve(p, "/player?uid=123")
	assert.Contains(t, rec.Body.String(), "API Error: 502 - Bad Gateway")
}

func TestPageTransportError(t *testing.T) {
	relay := newFakeRelay(http.StatusOK, `{}`)
	relay.Close()
	cat := catalog.New(nil)
	p := NewPage(relay.URL, cat, "", "", "ind", zap.NewNop())

	rec := serve(p, "/player?uid=123")
	assert.Contains(t, rec.Body.String(), "Failed to fetch data:")
}

func TestPageCatalogWarning(t *testing.T) {
	relay := newFakeRelay(http.StatusOK,
		`{"AccountInfo":{"AccountName":"player1"}}`)
	t.Cleanup(relay.Close)
	p := NewPage(relay.URL, catalog.New(nil),
		"Failed to load item definitions (app.json). Image lookup may be incomplete.",
		"", "ind", zap.NewNop())

	rec := serve(p, "/player?uid=123")
	assert.Contains(t, rec.Body.String(), "Failed to load item definitions")
}

func TestWarmupNeverFatal(t *testing.T) {
	relay := newFakeRelay(http.StatusInternalServerError, `{}`)
	p := newTestPage(t, relay, "555")

	// Must not panic even when the relay is failing.
	p.Warmup(context.Background())
	assert.Equal(t, int64(1), relay.calls.Load())
}
