// README: Driver handlers for nearby listing and live position updates.
package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ushehu/My-Ride-App/internal/modules/drivers"
	"github.com/Ushehu/My-Ride-App/internal/types"
)

type DriverHandler struct {
	drivers  *drivers.Service
	radiusKm float64
}

func NewDriverHandler(svc *drivers.Service, radiusKm float64) *DriverHandler {
	return &DriverHandler{drivers: svc, radiusKm: radiusKm}
}

// Nearby handles GET /api/drivers/nearby?lat=&lng=. Markers come back
// unannotated; estimation is a separate call.
func (h *DriverHandler) Nearby(c *gin.Context) {
	center := queryPoint(c, "lat", "lng")
	if center == nil {
		writeError(c, http.StatusBadRequest, "lat and lng are required")
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	markers, err := h.drivers.Markers(c.Request.Context(), *center, h.radiusKm, rng)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "driver catalog unavailable")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"drivers": toMarkerDTOs(markers)})
}

type positionReq struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UpdatePosition handles PUT /api/drivers/:id/location.
func (h *DriverHandler) UpdatePosition(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing driver id")
		return
	}
	var req positionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.drivers.UpdatePosition(c.Request.Context(), types.ID(id), types.Point{Lat: req.Lat, Lng: req.Lng}); err != nil {
		writeError(c, http.StatusInternalServerError, "position update failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "ok"})
}

// ClearPosition handles DELETE /api/drivers/:id/location.
func (h *DriverHandler) ClearPosition(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing driver id")
		return
	}
	if err := h.drivers.ClearPosition(c.Request.Context(), types.ID(id)); err != nil {
		writeError(c, http.StatusInternalServerError, "position clear failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "ok"})
}
