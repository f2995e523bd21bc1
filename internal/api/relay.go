package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/meur/ffscope/internal/upstream"
)

// Error messages and envelopes the relay emits. The parameter-validation
// messages are part of the public contract; clients display them verbatim.
const (
	errMissingPlayerParams = "UID and region parameters are required."
	errMissingIconParam    = "iconName parameter is required for image fetching."
	errPlayerFetchFailed   = "Failed to fetch player data."
	errImageFetchFailed    = "Failed to fetch image."
	errUpstreamParse       = "Failed to parse JSON response from external API."
	errImageUpstream       = "Failed to fetch image from external API."
)

// relayPolicy captures how one endpoint translates an upstream Result into a
// response. Both relay endpoints share writeResult; only these knobs differ.
type relayPolicy struct {
	label          string // log label
	transportError string // envelope message for network-level failures
	requireJSON    bool   // a 2xx body that is not JSON becomes a local 500
	checkErrorCT   bool   // error bodies count as JSON only if the content-type says so
	opaqueError    string // replaces non-JSON error bodies; empty forwards them raw
}

var (
	playerPolicy = relayPolicy{
		label:          "player-info",
		transportError: errPlayerFetchFailed,
		requireJSON:    true,
	}
	iconPolicy = relayPolicy{
		label:          "icon",
		transportError: errImageFetchFailed,
		checkErrorCT:   true,
		opaqueError:    errImageUpstream,
	}
)

// handlePlayerInfo relays a player lookup to the player-info API.
func (s *Server) handlePlayerInfo(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	region := r.URL.Query().Get("region")

	if uid == "" || region == "" {
		respondError(w, http.StatusBadRequest, errMissingPlayerParams)
		return
	}

	res := s.upstream.FetchPlayerInfo(r.Context(), uid, region)
	s.writeResult(w, res, playerPolicy)
}

// handleIconImage relays an icon fetch to the image API, forwarding binary
// body and content-type verbatim on success.
func (s *Server) handleIconImage(w http.ResponseWriter, r *http.Request) {
	iconName := r.URL.Query().Get("iconName")
	if iconName == "" {
		respondError(w, http.StatusBadRequest, errMissingIconParam)
		return
	}

	res := s.upstream.FetchIcon(r.Context(), iconName)
	s.writeResult(w, res, iconPolicy)
}

// writeResult is the single mapping from an upstream Result to an HTTP
// response. Every failure mode is forwarded as faithfully as the policy
// allows rather than swallowed.
func (s *Server) writeResult(w http.ResponseWriter, res upstream.Result, pol relayPolicy) {
	switch res.Kind {
	case upstream.Success:
		if pol.requireJSON {
			if !json.Valid(res.Body) {
				// A 2xx body that is not JSON is a relay-level anomaly, not
				// an upstream-reported condition.
				s.logger.Warn("unparseable upstream response", zap.String("endpoint", pol.label))
				respondJSON(w, http.StatusInternalServerError, map[string]string{
					"error":   pol.transportError,
					"details": errUpstreamParse,
				})
				return
			}
			writeRaw(w, http.StatusOK, "application/json", res.Body)
			return
		}
		writeRaw(w, http.StatusOK, res.ContentType, res.Body)

	case upstream.UpstreamError:
		s.logger.Warn("upstream error",
			zap.String("endpoint", pol.label), zap.Int("status", res.Status))
		isJSON := json.Valid(res.Body)
		if pol.checkErrorCT {
			isJSON = isJSON && strings.Contains(res.ContentType, "application/json")
		}
		switch {
		case isJSON:
			writeRaw(w, res.Status, "application/json", res.Body)
		case pol.opaqueError != "":
			writeRaw(w, res.Status, "text/plain; charset=utf-8", []byte(pol.opaqueError))
		default:
			writeRaw(w, res.Status, "text/plain; charset=utf-8", res.Body)
		}

	case upstream.TransportError:
		s.logger.Warn("upstream fetch failed",
			zap.String("endpoint", pol.label), zap.Error(res.Err))
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   pol.transportError,
			"details": errorDetails(res.Err),
		})
	}
}

func writeRaw(w http.ResponseWriter, status int, contentType string, body []byte) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(status)
	w.Write(body)
}

func errorDetails(err error) string {
	if err == nil {
		return "Unknown error"
	}
	return err.Error()
}
