package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/utils/errutil"
	"github.com/secmon-lab/continuum/pkg/utils/safe"
)

var (
	errRecordNotFound = goerr.New("record not found", goerr.T(model.ErrTagNotFound))
	errMalformedBody  = goerr.New("malformed request body", goerr.T(model.ErrTagValidation))
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

func decodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return goerr.Wrap(errMalformedBody, err.Error(), goerr.T(model.ErrTagValidation))
	}
	return nil
}
