package http

import (
	"net/http"

	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
)

// Banner is the greeting served at the root path.
const Banner = "Health Information System API"

// RootHandler godoc
//
//	@Summary		API banner
//	@Description	Returns a plain text greeting identifying the service.
//	@Tags			System
//	@Produce		plain
//	@Success		200	{string}	string					"Health Information System API"
//	@Failure		401	{object}	healthsdk.ErrorResponse	"Missing or rejected credentials"
//	@Security		BasicAuth
//	@Router			/ [get].
func RootHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteText(w, http.StatusOK, Banner)
}

func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusNotFound, healthsdk.ErrorResponse{
		Error:            healthsdk.ErrorCodeNotFound,
		ErrorDescription: "No route for " + r.Method + " " + r.URL.Path,
	})
}
