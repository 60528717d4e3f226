package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AuthenticateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.authenticate").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	token, err := h.services.AccessGate.Authenticate(r.Context(), req.Credential)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.authenticate").Msg("authentication failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AuthenticateResponse{
		Token:     token.SignedString,
		ExpiresAt: token.Expiry(),
	}, http.StatusOK)
}

// revoke invalidates the proof the request was made with.
func (h *Handler) revoke(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, ok := utils.ProofTokenFromContext(r.Context())
	if !ok {
		writeError(w, fmt.Errorf("%w: no proof to revoke", service.ErrInvalidProof))
		return
	}

	if err := h.services.AccessGate.Revoke(r.Context(), token); err != nil {
		log.Err(err).Str("func", "*Handler.revoke").Msg("error revoking proof")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
