package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/service"
	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

// readBody drains the request body up to maxBodyBytes. On failure the
// response has already been written.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.WriteJSON(w, http.StatusRequestEntityTooLarge, healthsdk.ErrorResponse{
				Error:            healthsdk.ErrorCodeInvalidRequest,
				ErrorDescription: "request body too large",
			})
			return nil, false
		}
		httpx.WriteJSON(w, http.StatusBadRequest, healthsdk.ErrorResponse{
			Error:            healthsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "request body could not be read",
		})
		return nil, false
	}
	return data, true
}

// writeInvalid reports a validation failure, or a 500 for anything else.
func writeInvalid(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		httpx.WriteJSON(w, http.StatusBadRequest, healthsdk.ErrorResponse{
			Error:            healthsdk.ErrorCodeInvalidRequest,
			ErrorDescription: verr.Message,
		})
		return
	}
	writeServerError(w, "An internal error occurred")
}

func writeServerError(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusInternalServerError, healthsdk.ErrorResponse{
		Error:            healthsdk.ErrorCodeServerError,
		ErrorDescription: desc,
	})
}
