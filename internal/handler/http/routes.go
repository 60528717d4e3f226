package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// promhttp negotiates its own compression
	router.Handle("/metrics", h.metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.withResponseSigning)

		r.Get("/api/version", h.getServerVersion)

		r.Route("/api/gate", func(r chi.Router) {
			r.Post("/authenticate", h.authenticate)
			r.With(h.withProof).Post("/revoke", h.revoke)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.withProof)

			r.Route("/api/keys", func(r chi.Router) {
				r.Get("/", h.listKeys)
				r.Post("/", h.createKey)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.getKey)
					r.Delete("/", h.deleteKey)
					r.Put("/policy", h.updatePolicy)
					r.Post("/seal", h.seal)
					r.Post("/sign", h.sign)
					r.Post("/verify", h.verify)
					r.Get("/secrets", h.listSealed)
				})
			})

			r.Route("/api/secrets", func(r chi.Router) {
				r.Post("/unseal", h.unseal)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.getSealed)
					r.Get("/envelope", h.getEnvelope)
					r.Delete("/", h.deleteSealed)
				})
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
