package adapthttp

import (
	"bytes"
	"errors"
	"net/http"

	"barista/internal/domain"
	"barista/internal/export"

	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleCoffeeList(w http.ResponseWriter, r *http.Request) {
	items := s.coffees.List(r.Context(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// handleCoffeeAll returns every record unfiltered and, unlike the list
// route, reports a storage fault as 503. Remote gateways read from here.
func (s *Server) handleCoffeeAll(w http.ResponseWriter, r *http.Request) {
	records, err := s.coffees.All(r.Context())
	if err != nil {
		s.log.Error("fetch coffees", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, errors.New("could not load coffees"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": records})
}

func (s *Server) handleCoffeeAdd(w http.ResponseWriter, r *http.Request) {
	var form domain.CoffeeForm
	if err := parseJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := s.coffees.Add(r.Context(), form)
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": ve.Error(), "field": ve.Field})
	case err != nil:
		writeError(w, http.StatusInternalServerError, errors.New("could not save coffee"))
	default:
		writeJSON(w, http.StatusCreated, map[string]any{"id": id})
	}
}

func (s *Server) handleCoffeeExport(w http.ResponseWriter, r *http.Request) {
	records, err := s.coffees.All(r.Context())
	if err != nil {
		s.log.Error("export coffees", zap.Error(err))
		writeError(w, http.StatusInternalServerError, errors.New("could not load coffees"))
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, records); err != nil {
		s.log.Error("render xlsx", zap.Error(err))
		writeError(w, http.StatusInternalServerError, errors.New("could not render export"))
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="coffees.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
