package httpapi

import (
	"context"
	"net/http"

	"github.com/intramural/tournament-api/internal/domain/participation"
	"github.com/intramural/tournament-api/internal/usecase"
)

type participationRequest struct {
	ParticipantID int64 `json:"participantId" validate:"required,gt=0"`
	SportID       int64 `json:"sportId" validate:"required,gt=0"`
}

type bulkParticipationRequest struct {
	ParticipantIDs []int64 `json:"participantIds" validate:"required,min=1,dive,gt=0"`
}

type participationDTO struct {
	ID            int64 `json:"id"`
	ParticipantID int64 `json:"participantId"`
	TeamID        int64 `json:"teamId"`
	SportID       int64 `json:"sportId"`
}

type bulkParticipationDTO struct {
	Registered       []participationDTO `json:"registered"`
	SkippedMissing   int                `json:"skippedMissing"`
	SkippedDuplicate int                `json:"skippedDuplicate"`
}

func participationToDTO(ctx context.Context, v participation.Participation) participationDTO {
	ctx, span := startSpan(ctx, "httpapi.participationToDTO")
	defer span.End()

	return participationDTO{
		ID:            v.ID,
		ParticipantID: v.ParticipantID,
		TeamID:        v.TeamID,
		SportID:       v.SportID,
	}
}

func (h *Handler) ListParticipations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListParticipations")
	defer span.End()

	sportID, scoped, err := queryID(r, "sport_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var participations []participation.Participation
	if scoped {
		participations, err = h.participationService.ListBySport(ctx, sportID)
	} else {
		participations, err = h.participationService.ListParticipations(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "list participations failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]participationDTO, 0, len(participations))
	for _, p := range participations {
		items = append(items, participationToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListSportParticipations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSportParticipations")
	defer span.End()

	sportID, err := pathID(r, "sportID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	participations, err := h.participationService.ListBySport(ctx, sportID)
	if err != nil {
		h.logger.WarnContext(ctx, "list sport participations failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]participationDTO, 0, len(participations))
	for _, p := range participations {
		items = append(items, participationToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RegisterParticipation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterParticipation")
	defer span.End()

	var req participationRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.participationService.Register(ctx, req.ParticipantID, req.SportID)
	if err != nil {
		h.logger.WarnContext(ctx, "register participation failed",
			"participant_id", req.ParticipantID, "sport_id", req.SportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, participationToDTO(ctx, created))
}

func (h *Handler) RegisterSportParticipants(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterSportParticipants")
	defer span.End()

	sportID, err := pathID(r, "sportID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req bulkParticipationRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.participationService.RegisterBulk(ctx, sportID, req.ParticipantIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "bulk register participations failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, bulkToDTO(ctx, result))
}

func (h *Handler) DeleteParticipation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteParticipation")
	defer span.End()

	participationID, err := pathID(r, "participationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.participationService.Unregister(ctx, participationID); err != nil {
		h.logger.WarnContext(ctx, "delete participation failed", "participation_id", participationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func bulkToDTO(ctx context.Context, v usecase.BulkRegistrationResult) bulkParticipationDTO {
	ctx, span := startSpan(ctx, "httpapi.bulkToDTO")
	defer span.End()

	items := make([]participationDTO, 0, len(v.Registered))
	for _, p := range v.Registered {
		items = append(items, participationToDTO(ctx, p))
	}

	return bulkParticipationDTO{
		Registered:       items,
		SkippedMissing:   v.SkippedMissing,
		SkippedDuplicate: v.SkippedDuplicate,
	}
}
