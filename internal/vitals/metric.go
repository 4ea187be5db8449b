package vitals

import (
	"errors"
	"time"
)

var (
	ErrMetricNotFound = errors.New("health metric not found")
	ErrInvalidInput   = errors.New("invalid input")
)

const (
	DefaultSteps       = 0
	DefaultHeartRate   = 72
	DefaultSystolicBP  = 120
	DefaultDiastolicBP = 80

	MinHeartRate = 30
	MaxHeartRate = 250

	MinSystolicBP  = 70
	MaxSystolicBP  = 200
	MinDiastolicBP = 40
	MaxDiastolicBP = 130
)

// Metric is the single most-recent health record of a client. The service
// always mutates the latest record in place, there is no per-day history.
type Metric struct {
	ID          int       `json:"-"`
	ClientID    string    `json:"-"`
	Steps       int       `json:"steps"`
	HeartRate   int       `json:"heartRate"`
	SystolicBP  int       `json:"systolicBP"`
	DiastolicBP int       `json:"diastolicBP"`
	Date        time.Time `json:"date"`
}

// Default is the metric record materialized for a client on first access.
func Default(clientID string) Metric {
	return Metric{
		ClientID:    clientID,
		Steps:       DefaultSteps,
		HeartRate:   DefaultHeartRate,
		SystolicBP:  DefaultSystolicBP,
		DiastolicBP: DefaultDiastolicBP,
		Date:        time.Now(),
	}
}
