package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/fourinarow/internal/apperror"
	"github.com/rocketscienceinc/fourinarow/internal/connectfour"
)

const activeMatchesHeader = "X-Active-Matches"

type matchReader interface {
	Snapshot(matchID string) (connectfour.Snapshot, error)
	MatchIDs() []string
}

type MatchHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
	ListMatches(w http.ResponseWriter, r *http.Request)
	GetMatch(w http.ResponseWriter, r *http.Request)
}

type matchHandler struct {
	logger  *slog.Logger
	matches matchReader
}

func NewMatchHandler(logger *slog.Logger, matches matchReader) MatchHandler {
	return &matchHandler{
		logger:  logger.With("component", "rest"),
		matches: matches,
	}
}

// Ping - liveness check; also reports how many matches are held.
func (that *matchHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set(activeMatchesHeader, strconv.Itoa(len(that.matches.MatchIDs())))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.ErrorContext(r.Context(), "failed to write ping response", "error", err)
	}
}

func (that *matchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, r, map[string][]string{
		"matches": that.matches.MatchIDs(),
	})
}

func (that *matchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.matches.Snapshot(r.PathValue("id"))
	if errors.Is(err, apperror.ErrMatchNotFound) {
		http.Error(w, "Match not found", http.StatusNotFound)
		return
	}

	if err != nil {
		that.logger.ErrorContext(r.Context(), "failed to get snapshot", "method", "GetMatch", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, r, snapshot)
}

func (that *matchHandler) writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.ErrorContext(r.Context(), "failed to write response", "error", err)
	}
}
