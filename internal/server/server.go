// Package server exposes the estimate engine over a small HTTP API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minerehab/closure-forecast/internal/config"
	"github.com/minerehab/closure-forecast/internal/estimate"
	"github.com/minerehab/closure-forecast/pkg/constants"
	"github.com/minerehab/closure-forecast/pkg/output"
	"github.com/minerehab/closure-forecast/pkg/validation"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the estimate API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodyBytes
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Estimate API endpoint (YAML input document in the request body)
	mux.HandleFunc("/api/estimate", h.handleEstimate)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

// estimateResponse is the envelope around one computed estimate. The request
// ID is an envelope concern: Results itself stays structurally identical
// across re-runs of the same input.
type estimateResponse struct {
	RequestID string            `json:"requestId"`
	Warnings  []string          `json:"warnings,omitempty"`
	Results   *estimate.Results `json:"results"`
	CSV       string            `json:"csv"`
	Duration  string            `json:"duration"`
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	requestID := uuid.NewString()

	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("input document exceeds limit of %d bytes", h.maxBodySize), requestID)
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read input document: %v", err), requestID)
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		h.respondError(w, http.StatusBadRequest, "missing input document", requestID)
		return
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(body))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), requestID)
		return
	}

	warnings, err := validation.CheckInput(&cfg.Input)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid input: %v", err), requestID)
		return
	}

	results, err := estimate.Run(h.logger, &cfg.Input)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to compute estimate: %v", err), requestID)
		return
	}

	elapsed := time.Since(start)

	response := estimateResponse{
		RequestID: requestID,
		Warnings:  warnings,
		Results:   results,
		CSV:       output.CsvString(results),
		Duration:  elapsed.String(),
	}

	h.logger.Info("estimate computed",
		zap.String("op", "server.handleEstimate"),
		zap.String("requestId", requestID),
		zap.Float64("totalNominalCost", results.TotalNominalCost),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg, requestID string) {
	h.logger.Error("estimate request failed",
		zap.String("op", "server.handleEstimate"),
		zap.String("requestId", requestID),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{
		"requestId": requestID,
		"error":     msg,
	})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
