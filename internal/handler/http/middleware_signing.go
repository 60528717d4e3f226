package http

import (
	"bytes"
	"encoding/hex"
	"net/http"

	"github.com/MKhiriev/go-key-keeper/internal/utils"
)

// withResponseSigning buffers the response and sends the hex HMAC-SHA256
// of its body in the HashSHA256 header, so clients holding the hash key can
// detect responses altered in transit. utils.InitHasherPool must have been
// called with that key.
func (h *Handler) withResponseSigning(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := &bufferedResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(bw, r)

		body := bw.body.Bytes()
		if len(body) > 0 {
			w.Header().Set(utils.HashHeader, hex.EncodeToString(utils.Hash(body)))
		}

		w.WriteHeader(bw.status)
		if _, err := w.Write(body); err != nil {
			h.logger.Err(err).Str("func", "*Handler.withResponseSigning").Msg("error writing response body")
		}
	})
}

type bufferedResponseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = statusCode
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.body.Write(b)
}
