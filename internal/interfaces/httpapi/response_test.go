package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/intramural/tournament-api/internal/usecase"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
		wantCode   string
	}{
		{"invalid input", fmt.Errorf("%w: bad", usecase.ErrInvalidInput), http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"},
		{"not found", fmt.Errorf("%w: team=1", usecase.ErrNotFound), http.StatusNotFound, "notFound", "NOT_FOUND"},
		{"conflict", fmt.Errorf("%w: dup", usecase.ErrConflict), http.StatusConflict, "alreadyExists", "ALREADY_EXISTS"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internalError", "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(ctx, tc.err)
			if got.HTTPStatus != tc.wantStatus {
				t.Fatalf("unexpected status: %d", got.HTTPStatus)
			}
			if got.Reason != tc.wantReason {
				t.Fatalf("unexpected reason: %q", got.Reason)
			}
			if got.Status != tc.wantCode {
				t.Fatalf("unexpected status code: %q", got.Status)
			}
		})
	}
}
