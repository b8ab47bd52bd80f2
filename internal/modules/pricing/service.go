// README: Pricing service computes fare estimates from travel time.
package pricing

import (
	"math"
	"strconv"
)

// Service derives fares from travel times. Every code path of the estimation
// engine (routed, per-leg fallback, trip-level fallback) prices through this
// one service so routed and fallback fares stay comparable.
type Service struct {
	rate Rate
}

func NewService(rate Rate) *Service {
	return &Service{rate: rate}
}

// PriceFromMinutes returns the fare for the given travel time as a fixed
// 2-decimal string, e.g. "6.25". Rounding happens once, to whole cents.
func (s *Service) PriceFromMinutes(minutes float64) string {
	cents := math.Round(minutes * float64(s.rate.PerMinuteCents))
	return strconv.FormatFloat(cents/100, 'f', 2, 64)
}

// MinutesFromKm converts a distance to travel minutes at the assumed
// average speed.
func (s *Service) MinutesFromKm(distanceKm float64) float64 {
	return distanceKm / s.rate.AvgSpeedKmh * 60
}

// SecondsFromKm is MinutesFromKm expressed in seconds, used when a single
// routing leg needs a substitute value.
func (s *Service) SecondsFromKm(distanceKm float64) float64 {
	return s.MinutesFromKm(distanceKm) * 60
}

// FallbackEstimate derives both time and price from straight-line distance.
// Used when the routing provider is unavailable or inconsistent.
func (s *Service) FallbackEstimate(distanceKm float64) (minutes float64, price string) {
	minutes = s.MinutesFromKm(distanceKm)
	return minutes, s.PriceFromMinutes(minutes)
}

// Currency reports the currency the service prices in.
func (s *Service) Currency() string {
	return s.rate.Currency
}
