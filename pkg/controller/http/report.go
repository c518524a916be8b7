package http

import (
	"net/http"

	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/service/report"
	"github.com/secmon-lab/continuum/pkg/utils/errutil"
	"github.com/secmon-lab/continuum/pkg/utils/safe"
)

func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, model.NewDashboard(s.snapshot()))
}

func (s *Server) reportHandler(w http.ResponseWriter, r *http.Request) {
	compiled := s.uc.Report.Compile(s.snapshot())

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, r, http.StatusOK, compiled)
	case "markdown", "md":
		md, err := s.uc.Report.Markdown(compiled)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+report.FileName(compiled)+`"`)
		safe.Write(r.Context(), w, md)
	default:
		http.Error(w, "unsupported report format", http.StatusBadRequest)
	}
}

func (s *Server) publishReportHandler(w http.ResponseWriter, r *http.Request) {
	result, err := s.uc.Report.Publish(r.Context(), s.uc.Report.Compile(s.snapshot()))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, 0)
		return
	}
	if result.Published {
		s.metrics.reports.Inc()
	}
	writeJSON(w, r, http.StatusOK, result)
}

type suggestionRequest struct {
	ActivityName string `json:"activityName"`
	Department   string `json:"department"`
}

func (s *Server) suggestionHandler(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, 0)
		return
	}

	suggestion, err := s.uc.Suggestion.Suggest(r.Context(), req.ActivityName, req.Department)
	if err != nil {
		s.metrics.suggestions.WithLabelValues("error").Inc()
		errutil.HandleHTTP(r.Context(), w, err, 0)
		return
	}
	if suggestion == nil {
		s.metrics.suggestions.WithLabelValues("disabled").Inc()
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.metrics.suggestions.WithLabelValues("ok").Inc()
	writeJSON(w, r, http.StatusOK, suggestion)
}
