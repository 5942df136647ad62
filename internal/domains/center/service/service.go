package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"crowd/config"
	"crowd/infras/otel"
	"crowd/internal/domains/center/model"
	"crowd/internal/domains/center/model/dto"
	"crowd/internal/domains/center/repository"
	"crowd/internal/domains/slot/policy"
	slotRepository "crowd/internal/domains/slot/repository"
	"crowd/shared/constant"
	gDto "crowd/shared/dto"
	"crowd/shared/failure"
	"crowd/shared/timezone"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

var errEmptyDirectory = errors.New("center directory is empty")

// Center is the read-only directory of service centers plus the load view over them.
type Center interface {
	List(ctx context.Context) dto.GetCentersResponse
	Get(ctx context.Context, id string) (dto.CenterResponse, error)
	Find(id string) (model.Center, bool)
	Select(city, postalCode string) model.Center
	Load(ctx context.Context, id, date string) (dto.CenterLoadResponse, error)
}

type serviceImpl struct {
	centers  []model.Center
	byID     map[string]model.Center
	slotRepo slotRepository.Slot
	buffer   policy.Buffer
	window   policy.Window
	otel     otel.Otel
	clock    timezone.Clock
}

// New loads the directory once. Centers never change while the process runs.
func New(repo repository.Center, slotRepo slotRepository.Slot, buffer policy.Buffer, cfg *config.Config, otel otel.Otel, clock timezone.Clock) (Center, error) {
	ctx, scope := otel.NewScope(context.Background(), constant.OtelServiceScopeName, constant.OtelServiceScopeName+".center.New")
	defer scope.End()

	centers, err := repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldCenterID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load center directory")

		return nil, fmt.Errorf("failed to load center directory: %w", err)
	}

	if len(centers) == 0 {
		return nil, errEmptyDirectory
	}

	byID := make(map[string]model.Center, len(centers))
	for _, center := range centers {
		byID[center.CenterID] = center
	}

	log.Info().Int("centers", len(centers)).Msg("center directory loaded")

	return &serviceImpl{
		centers:  centers,
		byID:     byID,
		slotRepo: slotRepo,
		buffer:   buffer,
		window:   policy.WindowFromConfig(cfg),
		otel:     otel,
		clock:    clock,
	}, nil
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetCentersResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".center.List")
	defer scope.End()

	res.FromModels(s.centers)

	return res
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CenterResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".center.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	center, ok := s.byID[id]
	if !ok {
		return res, failure.NotFound("center not found") // nolint:wrapcheck
	}

	res.FromModel(center)

	return res, nil
}

func (s *serviceImpl) Find(id string) (model.Center, bool) {
	center, ok := s.byID[id]

	return center, ok
}

// Select routes an applicant to a center: exact postal code first, then the city
// ignoring case, then the first center of the directory.
func (s *serviceImpl) Select(city, postalCode string) model.Center {
	if postalCode != constant.Empty {
		for _, center := range s.centers {
			if center.PostalCode == postalCode {
				return center
			}
		}
	}

	if city != constant.Empty {
		for _, center := range s.centers {
			if strings.EqualFold(center.City, city) {
				return center
			}
		}
	}

	return s.centers[0]
}

// Load reports every service hour of one center on one day. An empty date means today.
func (s *serviceImpl) Load(ctx context.Context, id, date string) (res dto.CenterLoadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".center.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	center, ok := s.byID[id]
	if !ok {
		return res, failure.NotFound("center not found") // nolint:wrapcheck
	}

	if date == constant.Empty {
		date = timezone.Format(s.clock.Now(), constant.DayFormat)
	} else if _, err = timezone.Parse(constant.DayFormat, date); err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	cells, err := s.slotRepo.GetRange(ctx, center.CenterID, date, date)
	if err != nil {
		log.Error().Err(err).Str("center_id", id).Msg("failed to get center load")

		return res, fmt.Errorf("failed to get center load: %w", err)
	}

	res.FromCells(center, date, s.buffer, s.window, cells)

	return res, nil
}
