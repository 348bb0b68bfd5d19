package server

import (
	"net/http"

	"droscher.com/Umami/pkg/server/api"
)

func (s *Server) sakeListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := listParams(r.URL.Query())
		if err != nil {
			s.writeBadRequest(w, err)

			return
		}

		page, err := s.catalog.FetchSakeList(r.Context(), params)
		if err != nil {
			s.writeCatalogFailure(w, r, "list sake", err)

			return
		}

		s.writeJSON(w, http.StatusOK, api.Envelope{
			Data:       api.SakesFromModel(page.Sakes, s.language(r), s.preferences.IsFavorite),
			Pagination: api.PaginationFromModel(page.Pagination),
		})
	}
}

func (s *Server) sakeDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			s.writeBadRequest(w, err)

			return
		}

		sake, err := s.catalog.FetchSake(r.Context(), id)
		if err != nil {
			s.writeCatalogFailure(w, r, "get sake", err)

			return
		}

		s.writeJSON(w, http.StatusOK, api.Envelope{Data: api.SakeFromModel(*sake, s.language(r), s.preferences.IsFavorite)})
	}
}

func (s *Server) brewerySakeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			s.writeBadRequest(w, err)

			return
		}

		sakes, err := s.catalog.FetchBrewerySake(r.Context(), id)
		if err != nil {
			s.writeCatalogFailure(w, r, "list brewery sake", err)

			return
		}

		s.writeJSON(w, http.StatusOK, api.Envelope{Data: api.SakesFromModel(sakes, s.language(r), s.preferences.IsFavorite)})
	}
}
