package moxon

import (
	"context"
	"moxon/pkg/domain"
)

// Geometer derives Moxon rectangle dimensions for a frequency and a conductor
// diameter. Both inputs must be strictly positive; validation is the caller's job.
//
//go:generate mockgen -package mockmoxon -source=interface.go -destination=mock/mockmoxon.go *
type Geometer interface {
	Calculate(ctx context.Context, frequencyMHz, diameterMM float64) domain.Geometry
}
