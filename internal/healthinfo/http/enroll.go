package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/service"
	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
)

type EnrollHandler struct {
	EnrollmentService *service.EnrollmentService
}

// ServeHTTP enrolls a client in a program.
//
//	@Summary		Enroll a client
//	@Description	Links the client to a program. Both must exist. Enrolling the same pair twice is reported as a server error.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			clientId	path		string					true	"Client ID"
//	@Param			request		body		healthsdk.EnrollRequest	true	"Program to enroll in"
//	@Success		201			{object}	healthsdk.Enrollment	"Enrollment"
//	@Failure		400			{object}	healthsdk.ErrorResponse	"Invalid request body"
//	@Failure		401			{object}	healthsdk.ErrorResponse	"Missing or rejected credentials"
//	@Failure		404			{object}	healthsdk.ErrorResponse	"Client or program not found"
//	@Failure		429			{object}	healthsdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500			{object}	healthsdk.ErrorResponse	"Failed to enroll client"
//	@Security		BasicAuth
//	@Router			/clients/{clientId}/enroll [post].
func (h *EnrollHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	data, ok := readBody(w, r)
	if !ok {
		return
	}

	enrollment, err := service.ParseEnrollment(r.PathValue("clientId"), data)
	if err != nil {
		writeInvalid(w, err)
		return
	}

	created, err := h.EnrollmentService.Enroll(ctx, enrollment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			log.Debug("enroll: client not found", "client_id", enrollment.ClientID)
			writeClientNotFound(w)
		case errors.Is(err, service.ErrProgramNotFound):
			log.Debug("enroll: program not found", "program_id", enrollment.ProgramID)
			writeProgramNotFound(w)
		default:
			writeServerError(w, "Failed to enroll client")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, healthsdk.Enrollment{
		ClientID:  created.ClientID,
		ProgramID: created.ProgramID,
	})
}
