package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"droscher.com/Umami/pkg/model"
	"droscher.com/Umami/pkg/server/api"
)

const maxRequestBody = 1 << 10

type setLanguageRequest struct {
	Code string `json:"code"`
}

func (s *Server) favoritesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, api.Envelope{Data: api.IDsFromModel(s.preferences.Favorites())})
	}
}

func (s *Server) favoriteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			s.writeBadRequest(w, err)

			return
		}

		s.writeJSON(w, http.StatusOK, api.Envelope{Data: api.Favorite{ID: id.String(), IsFavorite: s.preferences.IsFavorite(id)}})
	}
}

func (s *Server) toggleFavoriteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			s.writeBadRequest(w, err)

			return
		}

		isFavorite := s.preferences.ToggleFavorite(context.WithoutCancel(r.Context()), id)

		s.writeJSON(w, http.StatusOK, api.Envelope{Data: api.Favorite{ID: id.String(), IsFavorite: isFavorite}})
	}
}

func (s *Server) languageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, api.Envelope{Data: languageView(s.preferences.Language())})
	}
}

func (s *Server) setLanguageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request setLanguageRequest

		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
		if err := decoder.Decode(&request); err != nil {
			s.writeBadRequest(w, fmt.Errorf("%w: malformed body", ErrInvalidInput))

			return
		}

		lang, found := model.ParseLanguage(request.Code)
		if !found {
			s.writeBadRequest(w, fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, request.Code))

			return
		}

		s.preferences.SetLanguage(context.WithoutCancel(r.Context()), lang)

		s.writeJSON(w, http.StatusOK, api.Envelope{Data: languageView(lang)})
	}
}

func (s *Server) stringsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, api.Envelope{Data: s.translator.Table(s.language(r))})
	}
}

func languageView(lang model.Language) api.Language {
	return api.Language{Code: lang.String(), DisplayName: lang.DisplayName()}
}
