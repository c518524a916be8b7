package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/utils/errutil"
	"github.com/secmon-lab/continuum/pkg/utils/logging"
)

// recordRoutes describes the CRUD surface of one record kind
type recordRoutes[T any] struct {
	kind   string
	path   string
	list   func(r *http.Request, state *model.State) []*T
	find   func(state *model.State, id string) *T
	setID  func(v *T, id string)
	save   func(ctx context.Context, state *model.State, v *T) (*model.State, *T, error)
	delete func(ctx context.Context, state *model.State, id string) (*model.State, error)
}

func routeRecords[T any](s *Server, r chi.Router, rt recordRoutes[T]) {
	r.Route(rt.path, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			items := rt.list(r, s.snapshot())
			if items == nil {
				items = []*T{}
			}
			writeJSON(w, r, http.StatusOK, items)
		})

		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var v T
			if err := decodeJSON(r, &v); err != nil {
				errutil.HandleHTTP(r.Context(), w, err, 0)
				return
			}
			rt.setID(&v, "")
			saveRecord(s, w, r, rt, &v, http.StatusCreated)
		})

		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			v := rt.find(s.snapshot(), id)
			if v == nil {
				errutil.HandleHTTP(r.Context(), w, goerr.Wrap(errRecordNotFound, "no such "+rt.kind, goerr.V("id", id), goerr.T(model.ErrTagNotFound)), 0)
				return
			}
			writeJSON(w, r, http.StatusOK, v)
		})

		r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
			var v T
			if err := decodeJSON(r, &v); err != nil {
				errutil.HandleHTTP(r.Context(), w, err, 0)
				return
			}
			rt.setID(&v, chi.URLParam(r, "id"))
			saveRecord(s, w, r, rt, &v, http.StatusOK)
		})

		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			err := s.update(r.Context(), func(ctx context.Context, state *model.State) (*model.State, error) {
				return rt.delete(ctx, state, id)
			})
			s.metrics.writes.WithLabelValues(rt.kind, "delete", result(err)).Inc()
			if err != nil {
				errutil.HandleHTTP(r.Context(), w, err, 0)
				return
			}
			logging.From(r.Context()).Info("record deleted", "kind", rt.kind, "id", id)
			w.WriteHeader(http.StatusNoContent)
		})
	})
}

func saveRecord[T any](s *Server, w http.ResponseWriter, r *http.Request, rt recordRoutes[T], v *T, status int) {
	var saved *T
	err := s.update(r.Context(), func(ctx context.Context, state *model.State) (*model.State, error) {
		next, out, err := rt.save(ctx, state, v)
		saved = out
		return next, err
	})
	s.metrics.writes.WithLabelValues(rt.kind, "save", result(err)).Inc()
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, 0)
		return
	}
	writeJSON(w, r, status, saved)
}

func resourceRoutes(s *Server) recordRoutes[model.Resource] {
	return recordRoutes[model.Resource]{
		kind:   "resource",
		path:   "/resources",
		list:   func(_ *http.Request, state *model.State) []*model.Resource { return state.Resources },
		find:   (*model.State).FindResource,
		setID:  func(v *model.Resource, id string) { v.ID = id },
		save:   s.uc.Record.SaveResource,
		delete: s.uc.Record.DeleteResource,
	}
}

func activityRoutes(s *Server) recordRoutes[model.Activity] {
	return recordRoutes[model.Activity]{
		kind: "activity",
		path: "/activities",
		list: func(r *http.Request, state *model.State) []*model.Activity {
			if q := r.URL.Query().Get("q"); q != "" {
				return state.SearchActivities(q)
			}
			if r.URL.Query().Get("sort") == "priority" {
				return state.ActivitiesByPriority()
			}
			return state.Activities
		},
		find:   (*model.State).FindActivity,
		setID:  func(v *model.Activity, id string) { v.ID = id },
		save:   s.uc.Record.SaveActivity,
		delete: s.uc.Record.DeleteActivity,
	}
}

func riskRoutes(s *Server) recordRoutes[model.Risk] {
	return recordRoutes[model.Risk]{
		kind:   "risk",
		path:   "/risks",
		list:   func(_ *http.Request, state *model.State) []*model.Risk { return state.Risks },
		find:   (*model.State).FindRisk,
		setID:  func(v *model.Risk, id string) { v.ID = id },
		save:   s.uc.Record.SaveRisk,
		delete: s.uc.Record.DeleteRisk,
	}
}

func strategyRoutes(s *Server) recordRoutes[model.RecoveryStrategy] {
	return recordRoutes[model.RecoveryStrategy]{
		kind: "strategy",
		path: "/strategies",
		list: func(r *http.Request, state *model.State) []*model.RecoveryStrategy {
			if activityID := r.URL.Query().Get("activity_id"); activityID != "" {
				return state.StrategiesFor(activityID)
			}
			return state.Strategies
		},
		find:   (*model.State).FindStrategy,
		setID:  func(v *model.RecoveryStrategy, id string) { v.ID = id },
		save:   s.uc.Record.SaveStrategy,
		delete: s.uc.Record.DeleteStrategy,
	}
}

func (s *Server) selectStrategyHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var selected *model.RecoveryStrategy
	err := s.update(r.Context(), func(ctx context.Context, state *model.State) (*model.State, error) {
		next, err := s.uc.Record.SelectStrategy(ctx, state, id)
		if err == nil {
			selected = next.FindStrategy(id)
		}
		return next, err
	})
	s.metrics.writes.WithLabelValues("strategy", "select", result(err)).Inc()
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, 0)
		return
	}
	writeJSON(w, r, http.StatusOK, selected)
}
