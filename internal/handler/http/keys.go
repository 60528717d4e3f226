package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

const keyIDParam = "id"

func (h *Handler) listKeys(w http.ResponseWriter, r *http.Request) {
	handles, err := h.services.KeyManager.ListKeys(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listKeys").Msg("error listing keys")
		writeError(w, err)
		return
	}

	if handles == nil {
		handles = []models.KeyHandle{}
	}
	utils.WriteJSON(w, handles, http.StatusOK)
}

func (h *Handler) createKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createKey").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	handle, err := h.services.KeyManager.CreateKey(r.Context(), req.ID, req.Algorithm, req.Policy)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createKey").Msg("error creating key")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, handle, http.StatusCreated)
}

func (h *Handler) getKey(w http.ResponseWriter, r *http.Request) {
	handle, err := h.services.KeyManager.GetKey(r.Context(), chi.URLParam(r, keyIDParam))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.getKey").Msg("error getting key")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, handle, http.StatusOK)
}

func (h *Handler) deleteKey(w http.ResponseWriter, r *http.Request) {
	if err := h.services.KeyManager.DeleteKey(r.Context(), chi.URLParam(r, keyIDParam)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteKey").Msg("error deleting key")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updatePolicy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var policy models.AccessPolicy
	if err := json.NewDecoder(r.Body).Decode(&policy); err != nil {
		log.Err(err).Str("func", "*Handler.updatePolicy").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	handle, err := h.services.KeyManager.UpdatePolicy(r.Context(), chi.URLParam(r, keyIDParam), policy)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updatePolicy").Msg("error updating policy")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, handle, http.StatusOK)
}

func (h *Handler) seal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.seal").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	handle := models.KeyHandle{ID: chi.URLParam(r, keyIDParam)}
	sealed, err := h.services.SecretStore.Seal(r.Context(), handle, req.Plaintext, req.AssociatedData)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.seal").Msg("error sealing payload")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, sealed, http.StatusCreated)
}

func (h *Handler) sign(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.sign").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	handle := models.KeyHandle{ID: chi.URLParam(r, keyIDParam)}
	signature, err := h.services.SignatureService.Sign(r.Context(), handle, req.Data)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.sign").Msg("error signing data")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SignResponse{Signature: signature}, http.StatusOK)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.verify").Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	handle := models.KeyHandle{ID: chi.URLParam(r, keyIDParam)}
	valid, err := h.services.SignatureService.Verify(r.Context(), handle, req.Data, req.Signature)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verify").Msg("error verifying signature")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.VerifyResponse{Valid: valid}, http.StatusOK)
}

func (h *Handler) listSealed(w http.ResponseWriter, r *http.Request) {
	secrets, err := h.services.SecretStore.ListSealed(r.Context(), chi.URLParam(r, keyIDParam))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listSealed").Msg("error listing sealed secrets")
		writeError(w, err)
		return
	}

	if secrets == nil {
		secrets = []models.SealedSecret{}
	}
	utils.WriteJSON(w, secrets, http.StatusOK)
}
