package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"crowd/config"
	"crowd/infras/database"
	"crowd/infras/events"
	"crowd/infras/otel"
	"crowd/infras/s3"
	"crowd/internal/domains/booking/model"
	"crowd/internal/domains/booking/model/dto"
	"crowd/internal/domains/booking/repository"
	centerModel "crowd/internal/domains/center/model"
	centerService "crowd/internal/domains/center/service"
	"crowd/internal/domains/slot/policy"
	slotRepository "crowd/internal/domains/slot/repository"
	"crowd/shared"
	"crowd/shared/cache"
	"crowd/shared/constant"
	gDto "crowd/shared/dto"
	"crowd/shared/failure"
	"crowd/shared/timezone"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRequest   = "request:get"
	cacheListRequests = "request:list"
)

type Booking interface {
	Process(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResult, error)
	FindSlot(ctx context.Context, center centerModel.Center, walkIn bool) (Slot, error)
	Commit(ctx context.Context, center centerModel.Center, slot Slot, req dto.CreateBookingRequest) (model.Request, error)
	Track(ctx context.Context, id string) (dto.TrackResponse, error)
	Redistribute(ctx context.Context, req dto.RedistributeRequest) (dto.RedistributeResponse, error)
	List(ctx context.Context, params gDto.QueryParams, req dto.DashboardRequest) (dto.GetRequestsResponse, error)
	Dashboard(ctx context.Context, req dto.DashboardRequest) (dto.DashboardResponse, error)
	Export(ctx context.Context) (dto.ExportResponse, error)
	Reset(ctx context.Context) error
}

type serviceImpl struct {
	db        *database.Connection
	repo      repository.Booking
	slotRepo  slotRepository.Slot
	centers   centerService.Center
	buffer    policy.Buffer
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.Publisher
	s3        s3.S3
	clock     timezone.Clock
	window    policy.Window
}

func New(
	db *database.Connection,
	repo repository.Booking,
	slotRepo slotRepository.Slot,
	centers centerService.Center,
	buffer policy.Buffer,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher events.Publisher,
	s3 s3.S3,
	clock timezone.Clock,
) Booking {
	return &serviceImpl{
		db:        db,
		repo:      repo,
		slotRepo:  slotRepo,
		centers:   centers,
		buffer:    buffer,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
		s3:        s3,
		clock:     clock,
		window:    policy.WindowFromConfig(cfg),
	}
}

func (s *serviceImpl) now() time.Time {
	return timezone.ToAppTime(s.clock.Now())
}

func (s *serviceImpl) today() string {
	return timezone.Format(s.now(), constant.DayFormat)
}

func (s *serviceImpl) Track(ctx context.Context, id string) (res dto.TrackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Track")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRequest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for request")

		return res, nil
	}

	record, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldRequestID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("request_id", id).Msg("failed to get request")

		return res, fmt.Errorf("failed to get request: %w", err)
	}

	if record.RequestID == constant.Empty {
		return res, failure.NotFound("request not found") // nolint:wrapcheck
	}

	center, _ := s.centers.Find(record.AssignedCenterID)
	res.FromModel(record, center.Name)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save request to cache")
		}
	}()

	return res, nil
}

// Dashboard computes its counters over the filtered ledger, like the log list.
func (s *serviceImpl) Dashboard(ctx context.Context, req dto.DashboardRequest) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := req.ToFilter()

	res.TotalReq, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count requests")

		return res, fmt.Errorf("failed to count requests: %w", err)
	}

	res.TodayReq, err = s.repo.Count(ctx, narrow(filter, gDto.Filter{
		ArgName:  "today",
		Field:    model.FieldAssignedDate,
		Value:    s.today(),
		Operator: gDto.FilterOperatorEq,
	}))
	if err != nil {
		log.Error().Err(err).Msg("failed to count today's requests")

		return res, fmt.Errorf("failed to count today's requests: %w", err)
	}

	res.OverloadRedirects, err = s.repo.Count(ctx, narrow(filter, gDto.Filter{
		ArgName:  "redirected",
		Field:    model.FieldStatus,
		Value:    []string{model.StatusRescheduled, model.StatusDecongested},
		Operator: gDto.FilterOperatorIn,
	}))
	if err != nil {
		log.Error().Err(err).Msg("failed to count redirected requests")

		return res, fmt.Errorf("failed to count redirected requests: %w", err)
	}

	logs, err := s.repo.GetAll(ctx, req.LogParams(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get request logs")

		return res, fmt.Errorf("failed to get request logs: %w", err)
	}

	res.FromModels(logs)

	return res, nil
}

// List pages through the filtered ledger. Pages are cached until the ledger changes.
func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, req dto.DashboardRequest) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params = dto.NormalizeListParams(params)
	filter := req.ToFilter()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheListRequests, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for requests")

		return res, nil
	}

	totalData, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count requests")

		return res, fmt.Errorf("failed to count requests: %w", err)
	}

	records, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get requests")

		return res, fmt.Errorf("failed to get requests: %w", err)
	}

	res.FromModels(records, totalData, shared.CalculateTotalPage(totalData, params.Limit))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save requests to cache")
		}
	}()

	return res, nil
}

// invalidate drops every cached view of the ledger.
func (s *serviceImpl) invalidate(ctx context.Context, prefixes ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, prefix := range prefixes {
			shared.InvalidateCaches(c, s.cache, prefix)
		}
	}()
}

func narrow(filter gDto.FilterGroup, extra gDto.Filter) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  append(append([]any{}, filter.Filters...), extra),
	}
}

// Reset empties both ledgers in one transaction.
func (s *serviceImpl) Reset(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Reset")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var requests, cells int64

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if requests, err = s.repo.DeleteAllTx(ctx, tx); err != nil {
			return err //nolint:wrapcheck
		}

		cells, err = s.slotRepo.DeleteAllTx(ctx, tx)

		return err //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to reset ledgers")

		return fmt.Errorf("failed to reset ledgers: %w", err)
	}

	log.Warn().Int64("requests", requests).Int64("load_cells", cells).Msg("ledgers reset")

	s.invalidate(ctx, cacheGetRequest, cacheListRequests)

	return nil
}
