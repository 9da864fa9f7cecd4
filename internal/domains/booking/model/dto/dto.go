package dto

import (
	"time"

	"lbm/internal/domains/booking/model"
	"lbm/shared"
	"lbm/shared/constant"
	gDto "lbm/shared/dto"
	gModel "lbm/shared/model"
	"lbm/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Name          string `json:"name"           validate:"required,max=100"`
	Email         string `json:"email"          validate:"required,email,max=100"`
	Phone         string `json:"phone"          validate:"required,max=20"`
	Service       string `json:"service"        validate:"required,max=100"`
	PreferredDate string `json:"preferred_date" validate:"required"`
	PreferredTime string `json:"preferred_time" validate:"required"`
	Message       string `json:"message"        validate:"omitempty,max=1000"`
}

func (c *CreateBookingRequest) ToModel(actor string) (model.Booking, error) {
	preferredDate, err := time.Parse(constant.PreferredDateFormat, c.PreferredDate)
	if err != nil {
		return model.Booking{}, err
	}

	if _, err := time.Parse(constant.PreferredTimeFormat, c.PreferredTime); err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Service:       c.Service,
		PreferredDate: preferredDate,
		PreferredTime: c.PreferredTime,
		Message:       c.Message,
		Status:        model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}, nil
}

type UpdateStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Service       string `json:"service"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Message       string `json:"message"`
	Status        string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Service = model.Service
	r.PreferredDate = model.PreferredDate.Format(constant.PreferredDateFormat)
	r.PreferredTime = model.PreferredTime
	r.Message = model.Message
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type StatsResponse struct {
	Total          int               `json:"total"`
	Pending        int               `json:"pending"`
	Confirmed      int               `json:"confirmed"`
	Completed      int               `json:"completed"`
	Cancelled      int               `json:"cancelled"`
	RecentBookings []BookingResponse `json:"recent_bookings"`
}

type DeleteBookingsResponse struct {
	Deleted int64 `json:"deleted"`
}
