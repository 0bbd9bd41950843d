package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"miles_watch/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/status", handler(s.getV1Status))
			r.Get("/report", handler(s.getV1Report))
			r.Post("/scan", handler(s.postV1Scan))

			r.Route("/destinations", func(r chi.Router) {
				r.Post("/", handler(s.postV1Destination))
				r.Delete("/{code}", handler(s.deleteV1Destination))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
