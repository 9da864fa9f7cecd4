package service

import (
	"context"
	"fmt"

	"lbm/config"
	"lbm/infras/otel"
	"lbm/internal/domains/booking/model"
	"lbm/internal/domains/booking/model/dto"
	"lbm/internal/domains/booking/repository"
	"lbm/shared"
	"lbm/shared/cache"
	"lbm/shared/constant"
	gDto "lbm/shared/dto"
	"lbm/shared/failure"
	"lbm/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheStatsBooking  = "booking:stats"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.BookingResponse, error)
	CycleStatus(ctx context.Context, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (dto.DeleteBookingsResponse, error)
	DeleteOld(ctx context.Context) (dto.DeleteBookingsResponse, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
	Export(ctx context.Context) ([]byte, error)
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel(constant.PublicActor)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	s.invalidateListCaches(ctx)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.setStatus(ctx, id, req.Status)
}

// CycleStatus advances the booking status one step around the fixed cycle,
// so a single action on the admin side walks through every state.
func (s *serviceImpl) CycleStatus(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CycleStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return s.setStatus(ctx, id, model.NextStatus(booking.Status))
}

func (s *serviceImpl) setStatus(ctx context.Context, id, status string) (res dto.BookingResponse, err error) {
	admin, _ := ctx.Value(constant.ContextKeyAdminUsername).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(dto.UpdateStatusRequest{Status: status}, admin)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated booking")

		return res, fmt.Errorf("failed to get updated booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}()
	s.invalidateListCaches(ctx)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if _, err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}()
	s.invalidateListCaches(ctx)

	return nil
}

// DeleteAll wipes every booking in a single statement and reports the count.
func (s *serviceImpl) DeleteAll(ctx context.Context) (res dto.DeleteBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete all bookings")

		return res, fmt.Errorf("failed to delete all bookings: %w", err)
	}

	res.Deleted = deleted

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
	}()
	s.invalidateListCaches(ctx)

	log.Info().Int64("deleted", deleted).Msg("all bookings deleted")

	return res, nil
}

// DeleteOld removes bookings created strictly before the configured retention
// cutoff, in a single statement.
func (s *serviceImpl) DeleteOld(ctx context.Context) (res dto.DeleteBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteOld")
	defer scope.End()
	defer scope.TraceIfError(err)

	cutoff := timezone.Now().AddDate(0, -s.cfg.Booking.CleanupMonths, 0)

	deleted, err := s.repo.Delete(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    constant.FieldCreatedAt,
				Operator: gDto.FilterOperatorLess,
				Value:    cutoff,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete old bookings")

		return res, fmt.Errorf("failed to delete old bookings: %w", err)
	}

	res.Deleted = deleted

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
	}()
	s.invalidateListCaches(ctx)

	log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("old bookings deleted")

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheStatsBooking, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheStatsBooking).Msg("cache hit for booking stats")

		return res, nil
	}

	res.Total, err = s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	counts := map[string]*int{
		model.StatusPending:   &res.Pending,
		model.StatusConfirmed: &res.Confirmed,
		model.StatusCompleted: &res.Completed,
		model.StatusCancelled: &res.Cancelled,
	}

	for _, status := range model.Statuses {
		count, err := s.repo.Count(ctx, statusFilter(status))
		if err != nil {
			log.Error().Err(err).Str("status", status).Msg("failed to count bookings by status")

			return res, fmt.Errorf("failed to count bookings by status: %w", err)
		}

		*counts[status] = count
	}

	recent, err := s.repo.GetAll(ctx, gDto.QueryParams{
		Limit:   s.cfg.Booking.RecentLimit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: constant.SortDirDesc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.RecentBookings = make([]dto.BookingResponse, len(recent))
	for i, mod := range recent {
		res.RecentBookings[i].FromModel(mod)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStatsBooking, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking stats to cache")
		}
	}()

	return res, nil
}

// Export renders every booking into an xlsx workbook, newest first.
func (s *serviceImpl) Export(ctx context.Context) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: constant.SortDirDesc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for export")

		return nil, fmt.Errorf("failed to get bookings for export: %w", err)
	}

	res, err = buildExportWorkbook(models)
	if err != nil {
		log.Error().Err(err).Msg("failed to build export workbook")

		return nil, fmt.Errorf("failed to build export workbook: %w", err)
	}

	log.Info().Int("bookings", len(models)).Msg("bookings exported")

	return res, nil
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheStatsBooking)
	}()
}

func statusFilter(status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    model.TableName,
			},
		},
	}
}
