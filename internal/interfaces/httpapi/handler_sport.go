package httpapi

import (
	"context"
	"net/http"

	"github.com/intramural/tournament-api/internal/domain/sport"
)

type sportRequest struct {
	Category string `json:"category" validate:"required,oneof=individual collective"`
	Name     string `json:"name" validate:"required,max=120"`
	Date     string `json:"date" validate:"required,max=40"`
	Time     string `json:"time" validate:"required,max=40"`
}

type sportDTO struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

func sportToDTO(ctx context.Context, v sport.Sport) sportDTO {
	ctx, span := startSpan(ctx, "httpapi.sportToDTO")
	defer span.End()

	return sportDTO{
		ID:       v.ID,
		Category: string(v.Category),
		Name:     v.Name,
		Date:     v.Date,
		Time:     v.Time,
	}
}

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSports")
	defer span.End()

	sports, err := h.sportService.ListSports(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list sports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]sportDTO, 0, len(sports))
	for _, s := range sports {
		items = append(items, sportToDTO(ctx, s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSport")
	defer span.End()

	sportID, err := pathID(r, "sportID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.sportService.GetSport(ctx, sportID)
	if err != nil {
		h.logger.WarnContext(ctx, "get sport failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sportToDTO(ctx, item))
}

func (h *Handler) CreateSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSport")
	defer span.End()

	var req sportRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.sportService.CreateSport(ctx, sport.Sport{
		Category: sport.Category(req.Category),
		Name:     req.Name,
		Date:     req.Date,
		Time:     req.Time,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create sport failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sportToDTO(ctx, created))
}

func (h *Handler) UpdateSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSport")
	defer span.End()

	sportID, err := pathID(r, "sportID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req sportRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.sportService.UpdateSport(ctx, sport.Sport{
		ID:       sportID,
		Category: sport.Category(req.Category),
		Name:     req.Name,
		Date:     req.Date,
		Time:     req.Time,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update sport failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sportToDTO(ctx, updated))
}

func (h *Handler) DeleteSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSport")
	defer span.End()

	sportID, err := pathID(r, "sportID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.sportService.DeleteSport(ctx, sportID); err != nil {
		h.logger.WarnContext(ctx, "delete sport failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}
