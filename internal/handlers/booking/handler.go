package booking

import (
	"fmt"
	"net/http"
	"time"

	"lbm/infras/otel"
	"lbm/internal/domains/booking/model"
	"lbm/internal/domains/booking/model/dto"
	"lbm/internal/domains/booking/service"
	"lbm/shared/constant"
	gDto "lbm/shared/dto"
	"lbm/shared/validator"
	"lbm/transport/http/middleware"
	"lbm/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Booking, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.auth.Auth)

			protected.Get("/", handler.GetBookings)
			protected.Delete("/", handler.DeleteAllBookings)
			protected.Get("/stats/summary", handler.GetStats)
			protected.Get("/export", handler.ExportBookings)
			protected.Delete("/cleanup/old", handler.CleanupOldBookings)
			protected.Get("/{id}", handler.GetBookingByID)
			protected.Patch("/{id}", handler.UpdateBookingStatus)
			protected.Post("/{id}/cycle-status", handler.CycleBookingStatus)
			protected.Delete("/{id}", handler.DeleteBooking)
		})
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a new appointment booking with the provided details.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, confirmed, completed, cancelled)"
// @Param service query string false "Filter by requested service"
// @Param search query string false "Search by name, email or phone"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := buildListFilter(r)

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// buildListFilter translates the status/service/search query params into a
// filter group. The literal "all" disables a filter the same way omitting it
// does; search matches name, email, and phone.
func buildListFilter(r *http.Request) gDto.FilterGroup {
	status := r.URL.Query().Get(constant.RequestParamStatus)
	requestedService := r.URL.Query().Get(constant.RequestParamService)
	search := r.URL.Query().Get(constant.RequestParamSearch)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" && status != constant.FilterValueAll {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if requestedService != "" && requestedService != constant.FilterValueAll {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldService,
			Operator: gDto.FilterOperatorEq,
			Value:    requestedService,
			Table:    model.TableName,
		})
	}

	if search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldName,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldEmail,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldPhone,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
			},
		})
	}

	return filterGroup
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBookingStatus sets the booking status to an explicit value.
// @Summary Update a booking status
// @Description Set the status of an existing booking and return the updated record.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminUsername).(string)
	scope.AddEvent("Booking status updated by " + admin)

	response.WithJSON(w, http.StatusOK, booking)
}

// CycleBookingStatus advances the booking status one step around the cycle.
// @Summary Cycle a booking status
// @Description Advance the booking status pending -> confirmed -> completed -> cancelled -> pending.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id}/cycle-status [post]
// @Security BearerAuth
func (handler *Handler) CycleBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CycleBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.CycleStatus(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cycle booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking status cycled to " + booking.Status)

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking deletes a booking by its ID.
// @Summary Delete a booking by ID
// @Description Delete a booking using its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminUsername).(string)
	scope.AddEvent("Booking deleted by " + admin)

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// DeleteAllBookings wipes every booking.
// @Summary Delete all bookings
// @Description Delete every booking and return the number of deleted records.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DeleteBookingsResponse] "Deleted count"
// @Failure 500 {object} response.Error
// @Router /api/bookings [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAllBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAllBookings")
	defer scope.End()

	res, err := handler.service.DeleteAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete all bookings")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminUsername).(string)
	scope.AddEvent(fmt.Sprintf("All bookings deleted by %s (%d records)", admin, res.Deleted))

	response.WithJSON(w, http.StatusOK, res)
}

// CleanupOldBookings removes bookings older than the retention window.
// @Summary Delete old bookings
// @Description Delete bookings created before the configured retention cutoff and return the deleted count.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DeleteBookingsResponse] "Deleted count"
// @Failure 500 {object} response.Error
// @Router /api/bookings/cleanup/old [delete]
// @Security BearerAuth
func (handler *Handler) CleanupOldBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CleanupOldBookings")
	defer scope.End()

	res, err := handler.service.DeleteOld(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cleanup old bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(fmt.Sprintf("Old bookings cleaned up (%d records)", res.Deleted))

	response.WithJSON(w, http.StatusOK, res)
}

// GetStats returns aggregate booking counters and the most recent bookings.
// @Summary Get booking statistics
// @Description Retrieve total and per-status booking counts plus the most recent bookings.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse] "Booking statistics"
// @Failure 500 {object} response.Error
// @Router /api/bookings/stats/summary [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// ExportBookings streams every booking as an xlsx workbook.
// @Summary Export bookings
// @Description Download every booking as an xlsx spreadsheet.
// @Tags Booking
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Workbook"
// @Failure 500 {object} response.Error
// @Router /api/bookings/export [get]
// @Security BearerAuth
func (handler *Handler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	payload, err := handler.service.Export(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(w, err)

		return
	}

	fileName := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))

	scope.AddEvent("Bookings exported successfully")

	response.WithFile(w, constant.ContentTypeXLSX, fileName, payload)
}
