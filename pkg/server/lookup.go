package server

import (
	"net/http"

	"droscher.com/Umami/pkg/server/api"
)

func (s *Server) foodPairingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pairings, err := s.catalog.FetchFoodPairings(r.Context())
		if err != nil {
			s.writeCatalogFailure(w, r, "list food pairings", err)

			return
		}

		s.writeJSON(w, http.StatusOK, api.Envelope{Data: api.FoodPairingsFromModel(pairings)})
	}
}

func (s *Server) statsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.catalog.FetchStats(r.Context())
		if err != nil {
			s.writeCatalogFailure(w, r, "get stats", err)

			return
		}

		s.writeJSON(w, http.StatusOK, api.Envelope{Data: api.StatsFromModel(*stats)})
	}
}

func (s *Server) classificationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classifications, err := s.catalog.FetchClassifications(r.Context())
		if err != nil {
			s.writeCatalogFailure(w, r, "list classifications", err)

			return
		}

		s.writeJSON(w, http.StatusOK, api.Envelope{Data: nonNil(classifications)})
	}
}

func (s *Server) prefecturesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefectures, err := s.catalog.FetchPrefectures(r.Context())
		if err != nil {
			s.writeCatalogFailure(w, r, "list prefectures", err)

			return
		}

		s.writeJSON(w, http.StatusOK, api.Envelope{Data: nonNil(prefectures)})
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
