package httpapi

import (
	"context"
	"net/http"

	"github.com/intramural/tournament-api/internal/domain/participant"
)

type participantRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	NationalID string `json:"nationalId" validate:"required"`
	TeamID     int64  `json:"teamId" validate:"required,gt=0"`
}

// teamParticipantRequest is the team-scoped variant; the team id comes
// from the resource path instead of the payload.
type teamParticipantRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	NationalID string `json:"nationalId" validate:"required"`
}

type participantUpdateRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	NationalID string `json:"nationalId" validate:"required"`
	TeamID     int64  `json:"teamId" validate:"omitempty,gt=0"`
}

type participantDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	TeamID     int64  `json:"teamId"`
}

func participantToDTO(ctx context.Context, v participant.Participant) participantDTO {
	ctx, span := startSpan(ctx, "httpapi.participantToDTO")
	defer span.End()

	return participantDTO{
		ID:         v.ID,
		Name:       v.Name,
		NationalID: v.NationalID,
		TeamID:     v.TeamID,
	}
}

func participantFromTeamRequest(req teamParticipantRequest) participant.Participant {
	return participant.Participant{
		Name:       req.Name,
		NationalID: req.NationalID,
	}
}

func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListParticipants")
	defer span.End()

	teamID, scoped, err := queryID(r, "team_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var participants []participant.Participant
	if scoped {
		participants, err = h.participantService.ListByTeam(ctx, teamID)
	} else {
		participants, err = h.participantService.ListParticipants(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "list participants failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]participantDTO, 0, len(participants))
	for _, p := range participants {
		items = append(items, participantToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetParticipant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetParticipant")
	defer span.End()

	participantID, err := pathID(r, "participantID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.participantService.GetParticipant(ctx, participantID)
	if err != nil {
		h.logger.WarnContext(ctx, "get participant failed", "participant_id", participantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, participantToDTO(ctx, item))
}

func (h *Handler) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateParticipant")
	defer span.End()

	var req participantRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.participantService.CreateParticipant(ctx, participant.Participant{
		Name:       req.Name,
		NationalID: req.NationalID,
		TeamID:     req.TeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create participant failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, participantToDTO(ctx, created))
}

func (h *Handler) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateParticipant")
	defer span.End()

	participantID, err := pathID(r, "participantID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req participantUpdateRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.participantService.UpdateParticipant(ctx, participant.Participant{
		ID:         participantID,
		Name:       req.Name,
		NationalID: req.NationalID,
		TeamID:     req.TeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update participant failed", "participant_id", participantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, participantToDTO(ctx, updated))
}

func (h *Handler) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteParticipant")
	defer span.End()

	participantID, err := pathID(r, "participantID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.participantService.DeleteParticipant(ctx, participantID); err != nil {
		h.logger.WarnContext(ctx, "delete participant failed", "participant_id", participantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}
