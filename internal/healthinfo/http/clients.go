package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/service"
	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
)

type ClientsHandler struct {
	ClientService *service.ClientService
}

// HandleCreate handles client registration.
//
//	@Summary		Register a client
//	@Description	Registers a client. dob must be an ISO 8601 date or date-time. String fields are HTML-escaped before storage.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		healthsdk.CreateClientRequest	true	"Client to register"
//	@Success		201		{object}	healthsdk.Client				"Registered client"
//	@Failure		400		{object}	healthsdk.ErrorResponse			"Invalid request body"
//	@Failure		401		{object}	healthsdk.ErrorResponse			"Missing or rejected credentials"
//	@Failure		429		{object}	healthsdk.ErrorResponse			"Rate limit exceeded"
//	@Failure		500		{object}	healthsdk.ErrorResponse			"Failed to create client"
//	@Security		BasicAuth
//	@Router			/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, ok := readBody(w, r)
	if !ok {
		return
	}

	client, err := service.ParseClient(data)
	if err != nil {
		writeInvalid(w, err)
		return
	}

	created, err := h.ClientService.CreateClient(ctx, client)
	if err != nil {
		writeServerError(w, "Failed to create client")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toClient(created))
}

// HandleList lists or searches clients.
//
//	@Summary		List clients
//	@Description	Returns every client, or only those whose name contains query (case-sensitive).
//	@Tags			Clients
//	@Produce		json
//	@Param			query	query		string					false	"Substring of the client name"
//	@Success		200		{array}		healthsdk.Client		"Clients"
//	@Failure		401		{object}	healthsdk.ErrorResponse	"Missing or rejected credentials"
//	@Failure		500		{object}	healthsdk.ErrorResponse	"Failed to list clients"
//	@Security		BasicAuth
//	@Router			/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.ClientService.ListClients(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeServerError(w, "Failed to list clients")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toClients(clients))
}

// HandleGet returns a client with the programs it is enrolled in.
//
//	@Summary		Get a client
//	@Tags			Clients
//	@Produce		json
//	@Param			clientId	path		string					true	"Client ID"
//	@Success		200			{object}	healthsdk.ClientDetail	"Client and enrolled programs"
//	@Failure		401			{object}	healthsdk.ErrorResponse	"Missing or rejected credentials"
//	@Failure		404			{object}	healthsdk.ErrorResponse	"Client not found"
//	@Failure		500			{object}	healthsdk.ErrorResponse	"Failed to load client"
//	@Security		BasicAuth
//	@Router			/clients/{clientId} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	detail, err := h.ClientService.GetClientDetail(r.Context(), r.PathValue("clientId"))
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			writeClientNotFound(w)
			return
		}
		writeServerError(w, "Failed to load client")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toClientDetail(detail))
}

func writeClientNotFound(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusNotFound, healthsdk.ErrorResponse{
		Error:            healthsdk.ErrorCodeClientNotFound,
		ErrorDescription: "Client not found",
	})
}
