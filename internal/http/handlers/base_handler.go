// README: Base handler utilities (JSON helpers, DTO mapping).
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ushehu/My-Ride-App/internal/geo"
	"github.com/Ushehu/My-Ride-App/internal/modules/drivers"
	"github.com/Ushehu/My-Ride-App/internal/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

type pointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p pointDTO) toPoint() types.Point {
	return types.Point{Lat: p.Lat, Lng: p.Lng}
}

type regionDTO struct {
	Center   pointDTO `json:"center"`
	LatDelta float64  `json:"lat_delta"`
	LngDelta float64  `json:"lng_delta"`
}

func toRegionDTO(r geo.Region) regionDTO {
	return regionDTO{
		Center:   pointDTO{Lat: r.Center.Lat, Lng: r.Center.Lng},
		LatDelta: r.LatDelta,
		LngDelta: r.LngDelta,
	}
}

type markerDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rating      float64  `json:"rating"`
	Seats       int      `json:"seats"`
	ImageURL    string   `json:"image_url,omitempty"`
	Position    pointDTO `json:"position"`
	TimeMinutes *float64 `json:"time_minutes,omitempty"`
	Price       *string  `json:"price,omitempty"`
}

func toMarkerDTOs(markers []drivers.Marker) []markerDTO {
	out := make([]markerDTO, len(markers))
	for i, m := range markers {
		out[i] = markerDTO{
			ID:          string(m.ID),
			Name:        m.Name,
			Rating:      m.Rating,
			Seats:       m.Seats,
			ImageURL:    m.ImageURL,
			Position:    pointDTO{Lat: m.Position.Lat, Lng: m.Position.Lng},
			TimeMinutes: m.TimeMinutes,
			Price:       m.Price,
		}
	}
	return out
}

// queryPoint reads an optional coordinate pair from query parameters.
// Both parameters must be present and numeric for a point to be returned.
func queryPoint(c *gin.Context, latKey, lngKey string) *types.Point {
	latStr, lngStr := c.Query(latKey), c.Query(lngKey)
	if latStr == "" || lngStr == "" {
		return nil
	}
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	return &types.Point{Lat: lat, Lng: lng}
}
