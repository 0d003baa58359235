package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
)

type BookingService interface {
	List(ctx context.Context) ([]domain.Booking, error)
	Get(ctx context.Context, code uint) (domain.Booking, error)
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	Update(ctx context.Context, code uint, booking domain.Booking) error
	Delete(ctx context.Context, code uint) error
}

type BookingHandler struct {
	svc BookingService
	loc *time.Location
}

// NewBookingHandler reads zone-less request timestamps in loc.
func NewBookingHandler(svc BookingService, loc *time.Location) *BookingHandler {
	return &BookingHandler{
		svc: svc,
		loc: loc,
	}
}

// HandleListBookings godoc
// @Summary      List bookings
// @Description  Returns every booking with its celebrant.
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.Booking
// @Failure      500  {object}  response.Err
// @Router       /Bookings [get]
func (h *BookingHandler) HandleListBookings(ctx *gin.Context) {
	bookings, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "HandleListBookings -> h.svc.List", 0, err)
		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

// HandleGetBooking godoc
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        code  path      int  true  "Booking code"
// @Success      200   {object}  domain.Booking
// @Failure      400   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /Bookings/{code} [get]
func (h *BookingHandler) HandleGetBooking(ctx *gin.Context) {
	code, err := request.Code(ctx, "code")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	booking, err := h.svc.Get(ctx.Request.Context(), code)
	if err != nil {
		renderServiceErr(ctx, "HandleGetBooking -> h.svc.Get", code, err)
		return
	}

	ctx.JSON(http.StatusOK, booking)
}

// HandleCreateBooking godoc
// @Summary      Create a booking
// @Description  The referenced celebrant must exist.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        input  body      request.BookingRequest  true  "Booking"
// @Success      201    {object}  domain.Booking
// @Header       201    {string}  Location  "URL of the new booking"
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /Bookings [post]
func (h *BookingHandler) HandleCreateBooking(ctx *gin.Context) {
	var req request.BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), req.ToDomain(h.loc))
	if err != nil {
		renderServiceErr(ctx, "HandleCreateBooking -> h.svc.Create", 0, err)
		return
	}

	ctx.Header("Location", location(ctx, created.Code))
	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateBooking godoc
// @Summary      Replace a booking
// @Description  Full replace. The code in the body must match the code in the path and the referenced celebrant must exist.
// @Tags         bookings
// @Accept       json
// @Param        code   path      int                     true  "Booking code"
// @Param        input  body      request.BookingRequest  true  "Booking"
// @Success      204
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /Bookings/{code} [put]
func (h *BookingHandler) HandleUpdateBooking(ctx *gin.Context) {
	code, err := request.Code(ctx, "code")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.BookingRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.Update(ctx.Request.Context(), code, req.ToDomain(h.loc)); err != nil {
		renderServiceErr(ctx, "HandleUpdateBooking -> h.svc.Update", code, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteBooking godoc
// @Summary      Delete a booking
// @Tags         bookings
// @Param        code  path  int  true  "Booking code"
// @Success      204
// @Failure      400   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /Bookings/{code} [delete]
func (h *BookingHandler) HandleDeleteBooking(ctx *gin.Context) {
	code, err := request.Code(ctx, "code")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), code); err != nil {
		renderServiceErr(ctx, "HandleDeleteBooking -> h.svc.Delete", code, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
