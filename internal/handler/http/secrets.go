package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-key-keeper/internal/envelope"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

const secretIDParam = "id"

// unseal accepts either a sealed secret as JSON or the base64 envelope
// produced by getEnvelope.
func (h *Handler) unseal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UnsealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.unseal").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	if (req.Secret == nil) == (req.Envelope == "") {
		writeError(w, ErrAmbiguousUnsealRequest)
		return
	}

	var sealed models.SealedSecret
	if req.Secret != nil {
		sealed = *req.Secret
	} else {
		var err error
		if sealed, err = envelope.DecodeString(req.Envelope); err != nil {
			log.Err(err).Str("func", "*Handler.unseal").Msg("invalid envelope")
			writeError(w, err)
			return
		}
	}

	plaintext, err := h.services.SecretStore.Unseal(r.Context(), sealed)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.unseal").Str("key_id", sealed.KeyID).Msg("error unsealing secret")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.UnsealResponse{Plaintext: plaintext}, http.StatusOK)
}

func (h *Handler) getSealed(w http.ResponseWriter, r *http.Request) {
	sealed, err := h.services.SecretStore.GetSealed(r.Context(), chi.URLParam(r, secretIDParam))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.getSealed").Msg("error getting sealed secret")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, sealed, http.StatusOK)
}

func (h *Handler) getEnvelope(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sealed, err := h.services.SecretStore.GetSealed(r.Context(), chi.URLParam(r, secretIDParam))
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.getEnvelope").Msg("error getting sealed secret")
		writeError(w, err)
		return
	}

	encoded, err := envelope.EncodeString(sealed)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getEnvelope").Msg("error encoding envelope")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.EnvelopeResponse{Envelope: encoded}, http.StatusOK)
}

func (h *Handler) deleteSealed(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SecretStore.DeleteSealed(r.Context(), chi.URLParam(r, secretIDParam)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteSealed").Msg("error deleting sealed secret")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
