// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
)

// HealthResponse contains service health information.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Ready   bool   `json:"ready"`
	Posts   int    `json:"posts"`
}

// Health handles GET /healthz. Ready reports whether the initial content
// load has completed.
func (h *Handler) Health(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Version: version,
			Ready:   h.content.Ready(),
			Posts:   h.content.Len(),
		})
	}
}
