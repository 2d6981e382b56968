package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/acoustiq/nccriteria/pkg/models"
	"github.com/acoustiq/nccriteria/pkg/nc"
)

// ClassifyHandler handles classification HTTP requests
type ClassifyHandler struct{}

// NewClassifyHandler creates a new classification handler
func NewClassifyHandler() *ClassifyHandler {
	return &ClassifyHandler{}
}

// Classify classifies a measured octave-band spectrum against the NC table
func (h *ClassifyHandler) Classify(ctx context.Context, req *models.ClassifyRequest) (*models.ClassifyResponse, error) {
	res, err := nc.Classify(req.Body.Levels)
	switch {
	case errors.Is(err, nc.ErrMissingData):
		return nil, huma.Error400BadRequest("No measurement provided", err)
	case errors.Is(err, nc.ErrShape):
		return nil, huma.Error422UnprocessableEntity("Measurement must contain exactly one level per octave band", err)
	case errors.Is(err, nc.ErrNoSatisfyingCurve):
		return nil, huma.Error422UnprocessableEntity("Spectrum exceeds the loosest NC curve (NC-60)", err)
	case err != nil:
		return nil, huma.Error500InternalServerError("Classification failed", err)
	}

	bands := nc.Bands()
	freqs := make([]float64, 0, len(res.DrivingBands))
	for _, b := range res.DrivingBands {
		freqs = append(freqs, bands[b])
	}

	id := uuid.New().String()
	log.Info().Str("classificationID", id).Str("ncLevel", res.Level).Ints("drivingBands", res.DrivingBands).Msg("Spectrum classified")

	return &models.ClassifyResponse{
		Body: models.ClassifyResponseBody{
			ID:                 id,
			NCLevel:            res.Level,
			DrivingBands:       append([]int{}, res.DrivingBands...),
			DrivingFrequencies: freqs,
			ClassifiedAt:       time.Now(),
		},
	}, nil
}

// GetTable returns the Beranek reference table
func (h *ClassifyHandler) GetTable(ctx context.Context, req *struct{}) (*models.TableResponse, error) {
	resp := &models.TableResponse{}
	resp.Body.Bands = nc.Bands()
	for i, level := range nc.Levels() {
		resp.Body.Curves = append(resp.Body.Curves, models.CurveRow{
			Level:      level,
			Thresholds: nc.Curve(i),
		})
	}
	return resp, nil
}
