package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

// withProof puts the caller's proof of presence, if any, into the request
// context for the services to check. Requests without an Authorization
// header pass through and a malformed header is rejected with 401. A bearer
// token that no longer verifies is still forwarded as is: keys whose policy
// needs no presence ignore it, gated keys refuse it.
func (h *Handler) withProof(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		raw, err := utils.ParseBearerToken(header)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withProof").Msg("malformed authorization header")
			writeError(w, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		token, err := h.services.AccessGate.ParseProof(r.Context(), raw)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.withProof").Msg("proof of presence does not verify")
			token = models.ProofToken{SignedString: raw}
		}

		next.ServeHTTP(w, r.WithContext(utils.WithProofToken(r.Context(), token)))
	})
}
