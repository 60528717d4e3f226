package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-key-keeper/internal/envelope"
	"github.com/MKhiriev/go-key-keeper/internal/service"
)

// errorStatusMap lists the errors with a status other than 500. Errors
// wrapping several of them map to the same status.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrUnsupportedAlgorithm: http.StatusBadRequest,
	service.ErrInvalidCredential:    http.StatusUnauthorized,
	service.ErrInvalidProof:         http.StatusUnauthorized,
	service.ErrPolicyViolation:      http.StatusForbidden,
	service.ErrNotFound:             http.StatusNotFound,
	service.ErrDuplicateKey:         http.StatusConflict,
	service.ErrIntegrity:            http.StatusUnprocessableEntity,

	envelope.ErrMalformed:          http.StatusBadRequest,
	envelope.ErrUnsupportedVersion: http.StatusBadRequest,

	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrAmbiguousUnsealRequest:     http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status for err. Server-side failures get a
// generic body so storage details never leak to the caller.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
