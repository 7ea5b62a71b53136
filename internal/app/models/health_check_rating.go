package models

import "fmt"

type HealthCheckRating int

const (
	HealthCheckRatingHealthy HealthCheckRating = iota
	HealthCheckRatingLowRisk
	HealthCheckRatingHighRisk
	HealthCheckRatingCriticalRisk
)

var healthCheckRatingColors = map[HealthCheckRating]string{
	HealthCheckRatingHealthy:      "green",
	HealthCheckRatingLowRisk:      "yellow",
	HealthCheckRatingHighRisk:     "orange",
	HealthCheckRatingCriticalRisk: "red",
}

var healthCheckRatingLabels = map[HealthCheckRating]string{
	HealthCheckRatingHealthy:      "Healthy",
	HealthCheckRatingLowRisk:      "Low Risk",
	HealthCheckRatingHighRisk:     "High Risk",
	HealthCheckRatingCriticalRisk: "Critical Risk",
}

// HealthCheckRatings lists every rating in ascending risk order.
func HealthCheckRatings() []HealthCheckRating {
	return []HealthCheckRating{
		HealthCheckRatingHealthy,
		HealthCheckRatingLowRisk,
		HealthCheckRatingHighRisk,
		HealthCheckRatingCriticalRisk,
	}
}

func (r HealthCheckRating) IsValid() bool {
	return r >= HealthCheckRatingHealthy && r <= HealthCheckRatingCriticalRisk
}

// Color panics on a rating outside the enum; ratings are decoded through
// DecodeEntry, which rejects those values.
func (r HealthCheckRating) Color() string {
	color, ok := healthCheckRatingColors[r]
	if !ok {
		panic(fmt.Sprintf("health check rating %d has no color", int(r)))
	}
	return color
}

func (r HealthCheckRating) Label() string {
	label, ok := healthCheckRatingLabels[r]
	if !ok {
		panic(fmt.Sprintf("health check rating %d has no label", int(r)))
	}
	return label
}
