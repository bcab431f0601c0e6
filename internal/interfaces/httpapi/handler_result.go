package httpapi

import (
	"context"
	"net/http"

	"github.com/intramural/tournament-api/internal/domain/result"
	"github.com/intramural/tournament-api/internal/usecase"
)

type resultRequest struct {
	TeamID  int64 `json:"teamId" validate:"required,gt=0"`
	SportID int64 `json:"sportId" validate:"required,gt=0"`
	Points  int64 `json:"points"`
}

type resultDTO struct {
	ID      int64 `json:"id"`
	TeamID  int64 `json:"teamId"`
	SportID int64 `json:"sportId"`
	Points  int64 `json:"points"`
}

type rankingEntryDTO struct {
	Position    int     `json:"position"`
	Team        teamDTO `json:"team"`
	TotalPoints int64   `json:"totalPoints"`
}

func resultToDTO(ctx context.Context, v result.Result) resultDTO {
	ctx, span := startSpan(ctx, "httpapi.resultToDTO")
	defer span.End()

	return resultDTO{
		ID:      v.ID,
		TeamID:  v.TeamID,
		SportID: v.SportID,
		Points:  v.Points,
	}
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResults")
	defer span.End()

	sportID, scoped, err := queryID(r, "sport_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var results []result.Result
	if scoped {
		results, err = h.resultService.ListBySport(ctx, sportID)
	} else {
		results, err = h.resultService.ListResults(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "list results failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]resultDTO, 0, len(results))
	for _, item := range results {
		items = append(items, resultToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListSportResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSportResults")
	defer span.End()

	sportID, err := pathID(r, "sportID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	results, err := h.resultService.ListBySport(ctx, sportID)
	if err != nil {
		h.logger.WarnContext(ctx, "list sport results failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]resultDTO, 0, len(results))
	for _, item := range results {
		items = append(items, resultToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RecordResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordResult")
	defer span.End()

	var req resultRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	stored, err := h.resultService.RecordResult(ctx, result.Result{
		TeamID:  req.TeamID,
		SportID: req.SportID,
		Points:  req.Points,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record result failed",
			"team_id", req.TeamID, "sport_id", req.SportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultToDTO(ctx, stored))
}

func (h *Handler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteResult")
	defer span.End()

	resultID, err := pathID(r, "resultID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.resultService.DeleteResult(ctx, resultID); err != nil {
		h.logger.WarnContext(ctx, "delete result failed", "result_id", resultID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRanking")
	defer span.End()

	entries, err := h.rankingService.Ranking(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get ranking failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankingEntryDTO, 0, len(entries))
	for i, entry := range entries {
		items = append(items, rankingEntryToDTO(ctx, i+1, entry))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func rankingEntryToDTO(ctx context.Context, position int, v usecase.RankingEntry) rankingEntryDTO {
	ctx, span := startSpan(ctx, "httpapi.rankingEntryToDTO")
	defer span.End()

	return rankingEntryDTO{
		Position:    position,
		Team:        teamToDTO(ctx, v.Team),
		TotalPoints: v.TotalPoints,
	}
}
