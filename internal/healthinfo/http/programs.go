package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/service"
	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
)

type ProgramsHandler struct {
	ProgramService    *service.ProgramService
	EnrollmentService *service.EnrollmentService
}

// HandleCreate handles program creation.
//
//	@Summary		Create a program
//	@Description	Creates a health program. String fields are HTML-escaped before storage. A taken id is reported as a server error.
//	@Tags			Programs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		healthsdk.CreateProgramRequest	true	"Program to create"
//	@Success		201		{object}	healthsdk.Program				"Created program"
//	@Failure		400		{object}	healthsdk.ErrorResponse			"Invalid request body"
//	@Failure		401		{object}	healthsdk.ErrorResponse			"Missing or rejected credentials"
//	@Failure		429		{object}	healthsdk.ErrorResponse			"Rate limit exceeded"
//	@Failure		500		{object}	healthsdk.ErrorResponse			"Failed to create program"
//	@Security		BasicAuth
//	@Router			/programs [post].
func (h *ProgramsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, ok := readBody(w, r)
	if !ok {
		return
	}

	program, err := service.ParseProgram(data)
	if err != nil {
		writeInvalid(w, err)
		return
	}

	created, err := h.ProgramService.CreateProgram(ctx, program)
	if err != nil {
		// Duplicate ids included; the service has already logged the cause.
		writeServerError(w, "Failed to create program")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProgram(created))
}

// HandleList lists every program.
//
//	@Summary		List programs
//	@Description	Returns every program ordered by id.
//	@Tags			Programs
//	@Produce		json
//	@Success		200	{array}		healthsdk.Program		"Programs"
//	@Failure		401	{object}	healthsdk.ErrorResponse	"Missing or rejected credentials"
//	@Failure		500	{object}	healthsdk.ErrorResponse	"Failed to list programs"
//	@Security		BasicAuth
//	@Router			/programs [get].
func (h *ProgramsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	programs, err := h.ProgramService.ListPrograms(r.Context())
	if err != nil {
		writeServerError(w, "Failed to list programs")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPrograms(programs))
}

// HandleGet fetches one program.
//
//	@Summary		Get a program
//	@Tags			Programs
//	@Produce		json
//	@Param			programId	path		string					true	"Program ID"
//	@Success		200			{object}	healthsdk.Program		"Program"
//	@Failure		401			{object}	healthsdk.ErrorResponse	"Missing or rejected credentials"
//	@Failure		404			{object}	healthsdk.ErrorResponse	"Program not found"
//	@Failure		500			{object}	healthsdk.ErrorResponse	"Failed to load program"
//	@Security		BasicAuth
//	@Router			/programs/{programId} [get].
func (h *ProgramsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	programID := r.PathValue("programId")

	program, err := h.ProgramService.GetProgram(ctx, programID)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			writeProgramNotFound(w)
			return
		}
		writeServerError(w, "Failed to load program")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProgram(program))
}

// HandleListClients lists the clients enrolled in a program.
//
//	@Summary		List program clients
//	@Description	Returns the clients enrolled in the program ordered by client id.
//	@Tags			Programs
//	@Produce		json
//	@Param			programId	path		string					true	"Program ID"
//	@Success		200			{array}		healthsdk.Client		"Enrolled clients"
//	@Failure		401			{object}	healthsdk.ErrorResponse	"Missing or rejected credentials"
//	@Failure		404			{object}	healthsdk.ErrorResponse	"Program not found"
//	@Failure		500			{object}	healthsdk.ErrorResponse	"Failed to list clients"
//	@Security		BasicAuth
//	@Router			/programs/{programId}/clients [get].
func (h *ProgramsHandler) HandleListClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	programID := r.PathValue("programId")

	clients, err := h.EnrollmentService.ListProgramClients(ctx, programID)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			log.Debug("program not found", "program_id", programID)
			writeProgramNotFound(w)
			return
		}
		writeServerError(w, "Failed to list clients")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toClients(clients))
}

func writeProgramNotFound(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusNotFound, healthsdk.ErrorResponse{
		Error:            healthsdk.ErrorCodeProgramNotFound,
		ErrorDescription: "Program not found",
	})
}
