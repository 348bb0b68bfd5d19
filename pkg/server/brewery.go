package server

import (
	"net/http"

	"droscher.com/Umami/pkg/query"
	"droscher.com/Umami/pkg/server/api"
)

func (s *Server) breweryListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var errs error

		values := r.URL.Query()
		prefecture := optionalString(values, "prefecture")
		limit := intParam(values, "limit", query.DefaultLimit, &errs)
		offset := intParam(values, "offset", query.DefaultOffset, &errs)

		if errs != nil {
			s.writeBadRequest(w, errs)

			return
		}

		page, err := s.catalog.FetchBreweries(r.Context(), prefecture, limit, offset)
		if err != nil {
			s.writeCatalogFailure(w, r, "list breweries", err)

			return
		}

		s.writeJSON(w, http.StatusOK, api.Envelope{
			Data:       api.BreweriesFromModel(page.Breweries),
			Pagination: api.PaginationFromModel(page.Pagination),
		})
	}
}

func (s *Server) breweryDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			s.writeBadRequest(w, err)

			return
		}

		brewery, err := s.catalog.FetchBrewery(r.Context(), id)
		if err != nil {
			s.writeCatalogFailure(w, r, "get brewery", err)

			return
		}

		s.writeJSON(w, http.StatusOK, api.Envelope{Data: api.BreweryFromModel(*brewery)})
	}
}
