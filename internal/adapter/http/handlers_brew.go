package adapthttp

import (
	"errors"
	"net/http"

	"barista/internal/app"

	"go.uber.org/zap"
)

func (s *Server) handleBrewGuides(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": s.brew.Guides()})
}

func (s *Server) handleBrewGuide(w http.ResponseWriter, r *http.Request) {
	guide, err := s.brew.Guide(r.PathValue("id"))
	if errors.Is(err, app.ErrGuideNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, guide)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sum, err := s.dashboard.Summary(r.Context(), s.now())
	if err != nil {
		s.log.Error("dashboard summary", zap.Error(err))
		writeError(w, http.StatusInternalServerError, errors.New("could not load dashboard"))
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
