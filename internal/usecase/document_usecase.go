package usecase

import (
	"context"
	"strings"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// IDocumentUseCase renders estimates for printing and the admin register.
type IDocumentUseCase interface {
	RenderEstimatePDF(ctx context.Context, estimateID string) (entities.Estimate, []byte, error)
	ExportEstimatesXLSX(ctx context.Context, from, to time.Time) ([]byte, error)
}

type DocumentUseCase struct {
	estimates interfaces.IEstimateRepository
	renderer  interfaces.IDocumentRenderer
	company   interfaces.CompanyInfo
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(estimates interfaces.IEstimateRepository, renderer interfaces.IDocumentRenderer, company interfaces.CompanyInfo) *DocumentUseCase {
	return &DocumentUseCase{estimates: estimates, renderer: renderer, company: company}
}

func (u *DocumentUseCase) RenderEstimatePDF(ctx context.Context, estimateID string) (entities.Estimate, []byte, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Estimate{}, nil, ErrInvalidEstimateID
	}
	e, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, nil, err
	}
	if e.ID == "" {
		return entities.Estimate{}, nil, ErrEstimateNotFound
	}

	pdf, err := u.renderer.EstimatePDF(e, u.company)
	if err != nil {
		log.Error().Err(err).Str("estimate_id", e.ID).Msg("[documents][usecase] pdf render failed")
		return entities.Estimate{}, nil, err
	}
	return e, pdf, nil
}

func (u *DocumentUseCase) ExportEstimatesXLSX(ctx context.Context, from, to time.Time) ([]byte, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) || to.Sub(from) > maxReportRange {
		return nil, ErrInvalidDateRange
	}
	list, err := u.estimates.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out, err := u.renderer.EstimatesXLSX(list)
	if err != nil {
		log.Error().Err(err).Int("rows", len(list)).Msg("[documents][usecase] xlsx export failed")
		return nil, err
	}
	log.Info().Int("rows", len(list)).Msg("[documents][usecase] estimates register exported")
	return out, nil
}
