package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/presentation"
)

type ViewService interface {
	Profiles(ctx context.Context) ([]presentation.CelebrantProfile, error)
	Profile(ctx context.Context, code uint) (presentation.ProfileDetail, error)
	CreateProfile(ctx context.Context, profile presentation.CelebrantProfile) (presentation.CelebrantProfile, error)
	UpdateProfile(ctx context.Context, code uint, profile presentation.CelebrantProfile) error
	Events(ctx context.Context, bucket presentation.Bucket) ([]presentation.PartyEvent, error)
	Event(ctx context.Context, code uint) (presentation.PartyEvent, error)
	CreateEvent(ctx context.Context, event presentation.PartyEvent) (presentation.PartyEvent, error)
	UpdateEvent(ctx context.Context, code uint, event presentation.PartyEvent) error
	Dashboard(ctx context.Context) (presentation.Dashboard, error)
}

// ViewHandler serves the UI shapes produced by the presentation mapper.
type ViewHandler struct {
	svc ViewService
}

func NewViewHandler(svc ViewService) *ViewHandler {
	return &ViewHandler{
		svc: svc,
	}
}

// HandleListProfiles godoc
// @Summary      List celebrant profiles
// @Tags         views
// @Produce      json
// @Success      200  {array}   presentation.CelebrantProfile
// @Failure      500  {object}  response.Err
// @Router       /views/celebrants [get]
func (h *ViewHandler) HandleListProfiles(ctx *gin.Context) {
	profiles, err := h.svc.Profiles(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "HandleListProfiles -> h.svc.Profiles", 0, err)
		return
	}

	ctx.JSON(http.StatusOK, profiles)
}

// HandleGetProfile godoc
// @Summary      Get a celebrant profile with its parties
// @Tags         views
// @Produce      json
// @Param        code  path      int  true  "Celebrant code"
// @Success      200   {object}  presentation.ProfileDetail
// @Failure      400   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /views/celebrants/{code} [get]
func (h *ViewHandler) HandleGetProfile(ctx *gin.Context) {
	code, err := request.Code(ctx, "code")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	detail, err := h.svc.Profile(ctx.Request.Context(), code)
	if err != nil {
		renderServiceErr(ctx, "HandleGetProfile -> h.svc.Profile", code, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// HandleCreateProfile godoc
// @Summary      Create a celebrant from a profile form
// @Description  The display name is split at its first space into first and last name.
// @Tags         views
// @Accept       json
// @Produce      json
// @Param        input  body      presentation.CelebrantProfile  true  "Profile"
// @Success      201    {object}  presentation.CelebrantProfile
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /views/celebrants [post]
func (h *ViewHandler) HandleCreateProfile(ctx *gin.Context) {
	var profile presentation.CelebrantProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateProfile(ctx.Request.Context(), profile)
	if err != nil {
		renderServiceErr(ctx, "HandleCreateProfile -> h.svc.CreateProfile", 0, err)
		return
	}

	ctx.Header("Location", ctx.Request.URL.Path+"/"+created.ID)
	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateProfile godoc
// @Summary      Replace a celebrant from a profile form
// @Tags         views
// @Accept       json
// @Param        code   path  int                            true  "Celebrant code"
// @Param        input  body  presentation.CelebrantProfile  true  "Profile"
// @Success      204
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /views/celebrants/{code} [put]
func (h *ViewHandler) HandleUpdateProfile(ctx *gin.Context) {
	code, err := request.Code(ctx, "code")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var profile presentation.CelebrantProfile
	if err = ctx.ShouldBindJSON(&profile); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.UpdateProfile(ctx.Request.Context(), code, profile); err != nil {
		renderServiceErr(ctx, "HandleUpdateProfile -> h.svc.UpdateProfile", code, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListEvents godoc
// @Summary      List parties
// @Description  Buckets by date against today in the venue's zone; the stored status is not consulted.
// @Tags         views
// @Produce      json
// @Param        filter  query     string  false  "all, upcoming or completed"  Enums(all, upcoming, completed)
// @Success      200     {array}   presentation.PartyEvent
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /views/bookings [get]
func (h *ViewHandler) HandleListEvents(ctx *gin.Context) {
	bucket, err := presentation.ParseBucket(ctx.Query("filter"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	events, err := h.svc.Events(ctx.Request.Context(), bucket)
	if err != nil {
		renderServiceErr(ctx, "HandleListEvents -> h.svc.Events", 0, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get a party
// @Tags         views
// @Produce      json
// @Param        code  path      int  true  "Booking code"
// @Success      200   {object}  presentation.PartyEvent
// @Failure      400   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /views/bookings/{code} [get]
func (h *ViewHandler) HandleGetEvent(ctx *gin.Context) {
	code, err := request.Code(ctx, "code")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.Event(ctx.Request.Context(), code)
	if err != nil {
		renderServiceErr(ctx, "HandleGetEvent -> h.svc.Event", code, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateEvent godoc
// @Summary      Book a party from the event form
// @Description  The notes double as the booking title; without notes a placeholder title is stored.
// @Tags         views
// @Accept       json
// @Produce      json
// @Param        input  body      presentation.PartyEvent  true  "Event"
// @Success      201    {object}  presentation.PartyEvent
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /views/bookings [post]
func (h *ViewHandler) HandleCreateEvent(ctx *gin.Context) {
	var event presentation.PartyEvent
	if err := ctx.ShouldBindJSON(&event); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), event)
	if err != nil {
		renderServiceErr(ctx, "HandleCreateEvent -> h.svc.CreateEvent", 0, err)
		return
	}

	ctx.Header("Location", ctx.Request.URL.Path+"/"+created.ID)
	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateEvent godoc
// @Summary      Replace a party from the event form
// @Tags         views
// @Accept       json
// @Param        code   path  int                      true  "Booking code"
// @Param        input  body  presentation.PartyEvent  true  "Event"
// @Success      204
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /views/bookings/{code} [put]
func (h *ViewHandler) HandleUpdateEvent(ctx *gin.Context) {
	code, err := request.Code(ctx, "code")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var event presentation.PartyEvent
	if err = ctx.ShouldBindJSON(&event); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.UpdateEvent(ctx.Request.Context(), code, event); err != nil {
		renderServiceErr(ctx, "HandleUpdateEvent -> h.svc.UpdateEvent", code, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDashboard godoc
// @Summary      Dashboard summary
// @Tags         views
// @Produce      json
// @Success      200  {object}  presentation.Dashboard
// @Failure      500  {object}  response.Err
// @Router       /views/dashboard [get]
func (h *ViewHandler) HandleDashboard(ctx *gin.Context) {
	dashboard, err := h.svc.Dashboard(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "HandleDashboard -> h.svc.Dashboard", 0, err)
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}
