// README: Fleet estimation and region handlers.
package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ushehu/My-Ride-App/internal/geo"
	"github.com/Ushehu/My-Ride-App/internal/modules/drivers"
	"github.com/Ushehu/My-Ride-App/internal/modules/estimate"
	"github.com/Ushehu/My-Ride-App/internal/types"
)

type EstimateHandler struct {
	estimate *estimate.Service
	drivers  *drivers.Service
	radiusKm float64
	seed     int64
}

func NewEstimateHandler(est *estimate.Service, drv *drivers.Service, radiusKm float64, seed int64) *EstimateHandler {
	return &EstimateHandler{estimate: est, drivers: drv, radiusKm: radiusKm, seed: seed}
}

type estimateReq struct {
	Rider       *pointDTO `json:"rider"`
	Destination *pointDTO `json:"destination"`
	// Seed fixes marker placement for this session; 0 uses the server seed
	// or the clock.
	Seed int64 `json:"seed"`
}

type estimateResp struct {
	// SessionID identifies one search session; markers are rebuilt fresh for
	// each one and discarded when the rider leaves the search flow.
	SessionID string      `json:"session_id"`
	Status    string      `json:"status"`
	Drivers   []markerDTO `json:"drivers"`
	Region    *regionDTO  `json:"region,omitempty"`
}

// Create handles POST /api/estimates. The response always carries one entry
// per driver; when the engine cannot run (missing rider, destination, or
// routing credential) status is "unavailable" and the markers come back
// without time or price.
func (h *EstimateHandler) Create(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	sessionID := uuid.NewString()
	if req.Rider == nil {
		writeJSON(c, http.StatusOK, estimateResp{SessionID: sessionID, Status: "unavailable", Drivers: []markerDTO{}})
		return
	}

	rider := req.Rider.toPoint()
	markers, err := h.drivers.Markers(c.Request.Context(), rider, h.radiusKm, h.rng(req.Seed))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "driver catalog unavailable")
		return
	}

	var dest *types.Point
	if req.Destination != nil {
		d := req.Destination.toPoint()
		dest = &d
	}
	region := toRegionDTO(geo.ComputeRegion(&rider, dest))

	annotated, ok := h.estimate.EstimateFleet(c.Request.Context(), markers, &rider, dest)
	if !ok {
		writeJSON(c, http.StatusOK, estimateResp{SessionID: sessionID, Status: "unavailable", Drivers: toMarkerDTOs(markers), Region: &region})
		return
	}
	writeJSON(c, http.StatusOK, estimateResp{SessionID: sessionID, Status: "ok", Drivers: toMarkerDTOs(annotated), Region: &region})
}

// Region handles GET /api/region. Total: it always returns a viewport.
func (h *EstimateHandler) Region(c *gin.Context) {
	rider := queryPoint(c, "rider_lat", "rider_lng")
	dest := queryPoint(c, "dest_lat", "dest_lng")
	writeJSON(c, http.StatusOK, toRegionDTO(geo.ComputeRegion(rider, dest)))
}

func (h *EstimateHandler) rng(reqSeed int64) *rand.Rand {
	seed := reqSeed
	if seed == 0 {
		seed = h.seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
