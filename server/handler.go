package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblagrange/input"
	"github.com/sgostarter/liblagrange/lagrange"
	"github.com/sgostarter/liblagrange/solver"
)

var errNoQuery = errors.New("missing x")

func NewHandler(s solver.Solver, maxBodyBytes int64, logger l.Wrapper) http.Handler {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	h := &handlerImpl{
		logger:       logger.WithFields(l.StringField(l.ClsKey, "handlerImpl")),
		solver:       s,
		maxBodyBytes: maxBodyBytes,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/compute", h.compute)
	mux.HandleFunc("/health", h.health)

	return mux
}

type handlerImpl struct {
	logger       l.Wrapper
	solver       solver.Solver
	maxBodyBytes int64
}

func newRequestID() string {
	return strconv.FormatUint(snowflake.ID(), 36)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	d, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(d, '\n'))
}

func statusOfKind(kind lagrange.ErrorKind) int {
	if kind == lagrange.ErrorKindNumericInstability {
		return http.StatusUnprocessableEntity
	}

	return http.StatusBadRequest
}

func (h *handlerImpl) compute(w http.ResponseWriter, r *http.Request) {
	requestID := newRequestID()
	logger := h.logger.WithFields(l.StringField("requestID", requestID))

	defer func() {
		if rec := recover(); rec != nil {
			logger.WithFields(l.StringField("stack", string(debug.Stack()))).Error("panic in compute")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)

		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req ComputeRequest

	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, &ErrorResponse{RequestID: requestID, Error: err.Error()})

		return
	}

	if dec.More() {
		writeJSON(w, http.StatusBadRequest, &ErrorResponse{RequestID: requestID, Error: "invalid JSON: trailing data"})

		return
	}

	if req.X == nil {
		writeJSON(w, http.StatusBadRequest, &ErrorResponse{RequestID: requestID, Error: errNoQuery.Error()})

		return
	}

	err := input.Validate(req.Points)
	if err == nil {
		var res *lagrange.Result

		res, err = h.solver.Compute(req.Points, *req.X)
		if err == nil {
			d, e := json.Marshal(&ComputeResponse{RequestID: requestID, Result: res})
			if e == nil {
				logger.WithFields(l.IntField("samples", len(req.Points))).Debug("computed")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write(append(d, '\n'))

				return
			}

			// json cannot carry the infinities an overflowing polynomial produces
			logger.WithFields(l.ErrorField(e)).Error("encode result failed")

			err = fmt.Errorf("%w: %v", lagrange.ErrNumericInstability, e)
		}
	}

	kind := lagrange.KindOf(err)

	logger.WithFields(l.ErrorField(err), l.StringField("kind", kind.String())).Debug("compute failed")

	writeJSON(w, statusOfKind(kind), &ErrorResponse{
		RequestID: requestID,
		Error:     err.Error(),
		Kind:      kind.String(),
	})
}

func (h *handlerImpl) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
