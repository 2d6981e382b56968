package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// ClassifyRequest represents a request to classify a measured spectrum
type ClassifyRequest struct {
	Body struct {
		Levels []float64 `json:"levels" minItems:"8" maxItems:"8" required:"true" doc:"Measured sound pressure level in dB per octave band, 63 Hz to 8 kHz ascending"`
	}
}

// ClassifyResponseBody carries a classification result
type ClassifyResponseBody struct {
	ID                 string    `json:"id" doc:"Classification unique identifier"`
	NCLevel            string    `json:"nc_level" example:"NC-30" doc:"Assigned NC curve name"`
	DrivingBands       []int     `json:"driving_bands" doc:"Octave-band indices exceeding the loosest still-violated curve"`
	DrivingFrequencies []float64 `json:"driving_frequencies" doc:"Center frequencies in Hz of the driving bands"`
	ClassifiedAt       time.Time `json:"classified_at" doc:"Classification timestamp"`
}

// ClassifyResponse represents the response from classifying a spectrum
type ClassifyResponse struct {
	Body ClassifyResponseBody
}

// CurveRow represents one NC curve of the reference table
type CurveRow struct {
	Level      string    `json:"level" example:"NC-30" doc:"NC curve name"`
	Thresholds []float64 `json:"thresholds" doc:"Threshold in dB per octave band"`
}

// TableResponse represents the Beranek reference table
type TableResponse struct {
	Body struct {
		Bands  []float64  `json:"bands" doc:"Octave-band center frequencies in Hz"`
		Curves []CurveRow `json:"curves" doc:"NC curves, quietest first"`
	}
}
