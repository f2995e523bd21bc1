package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/meur/ffscope/internal/catalog"
	"github.com/meur/ffscope/internal/profile"
	"github.com/meur/ffscope/internal/view"
)

// Page drives the "look up a player" action: it validates input, queries the
// relay's player endpoint, classifies the payload and renders cards or an
// inline error. It goes through the relay over HTTP like the browser client
// it replaces, so upstream hostnames stay confined to the relay.
type Page struct {
	relayBase      string
	catalog        *catalog.Catalog
	catalogWarning string
	defaultUID     string
	defaultRegion  string
	logger         *zap.Logger
	http           *http.Client
}

// NewPage creates the lookup page handler. catalogWarning, when non-empty,
// is shown on every render to flag a degraded catalog load.
func NewPage(relayBase string, cat *catalog.Catalog, catalogWarning, defaultUID, defaultRegion string, logger *zap.Logger) *Page {
	return &Page{
		relayBase:      strings.TrimRight(relayBase, "/"),
		catalog:        cat,
		catalogWarning: catalogWarning,
		defaultUID:     defaultUID,
		defaultRegion:  defaultRegion,
		logger:         logger,
		http:           &http.Client{},
	}
}

// ServeHTTP renders the lookup page. A request without a uid parameter uses
// the configured defaults, mirroring the auto-lookup on first page load.
func (p *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	uid := p.defaultUID
	if q.Has("uid") {
		uid = strings.TrimSpace(q.Get("uid"))
	}
	region := p.defaultRegion
	if q.Has("region") {
		region = q.Get("region")
	}

	data := view.PageData{
		UID:            uid,
		Region:         region,
		CatalogWarning: p.catalogWarning,
	}

	if uid == "" {
		data.Error = "Please enter a Player UID."
	} else {
		doc, errMsg := p.lookup(r.Context(), uid, region)
		if errMsg != "" {
			data.Error = errMsg
		} else {
			data.Cards = view.BuildCards(doc, p.catalog)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderPage(w, data); err != nil {
		p.logger.Warn("page render failed", zap.Error(err))
	}
}

// Warmup performs the startup lookup with the configured defaults. Failures
// are logged and swallowed; a cold default lookup must never take the
// server down.
func (p *Page) Warmup(ctx context.Context) {
	if p.defaultUID == "" {
		p.logger.Info("warm-up lookup skipped, no default uid configured")
		return
	}
	if _, errMsg := p.lookup(ctx, p.defaultUID, p.defaultRegion); errMsg != "" {
		p.logger.Warn("warm-up lookup failed", zap.String("reason", errMsg))
		return
	}
	p.logger.Info("warm-up lookup succeeded", zap.String("uid", p.defaultUID))
}

// lookup fetches and classifies one player document. The returned message is
// empty exactly when the document is renderable.
func (p *Page) lookup(ctx context.Context, uid, region string) (*profile.Document, string) {
	q := url.Values{"uid": {uid}, "region": {region}}
	reqURL := p.relayBase + "/api/ff/data?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fetchFailure(err.Error())
	}
	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fetchFailure(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fetchFailure(err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorBodyMessage(body)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fetchFailure(fmt.Sprintf("API Error: %d - %s", resp.StatusCode, msg))
	}

	doc, err := profile.Decode(body)
	if err != nil {
		return nil, fetchFailure(err.Error())
	}

	switch {
	case doc.Error != "":
		return nil, "Error: " + doc.Error
	case doc.AccountInfo != nil && doc.AccountInfo.AccountName != "":
		return doc, ""
	default:
		return nil, "Player data not found or invalid response. Check UID and Region."
	}
}

// errorBodyMessage pulls a human-readable message out of a relay error body.
func errorBodyMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &envelope) != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}

func fetchFailure(reason string) string {
	return fmt.Sprintf("Failed to fetch data: %s. Please check UID/Region or try again later.", reason)
}
