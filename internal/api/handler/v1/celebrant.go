package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
)

type CelebrantService interface {
	List(ctx context.Context) ([]domain.Celebrant, error)
	Get(ctx context.Context, code uint) (domain.Celebrant, error)
	Create(ctx context.Context, celebrant domain.Celebrant) (domain.Celebrant, error)
	Update(ctx context.Context, code uint, celebrant domain.Celebrant) error
	Delete(ctx context.Context, code uint) error
}

type CelebrantHandler struct {
	svc CelebrantService
}

func NewCelebrantHandler(svc CelebrantService) *CelebrantHandler {
	return &CelebrantHandler{
		svc: svc,
	}
}

// HandleListCelebrants godoc
// @Summary      List celebrants
// @Description  Returns every celebrant with their bookings.
// @Tags         celebrants
// @Produce      json
// @Success      200  {array}   domain.Celebrant
// @Failure      500  {object}  response.Err
// @Router       /Celebrants [get]
func (h *CelebrantHandler) HandleListCelebrants(ctx *gin.Context) {
	celebrants, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "HandleListCelebrants -> h.svc.List", 0, err)
		return
	}

	ctx.JSON(http.StatusOK, celebrants)
}

// HandleGetCelebrant godoc
// @Summary      Get a celebrant
// @Tags         celebrants
// @Produce      json
// @Param        code  path      int  true  "Celebrant code"
// @Success      200   {object}  domain.Celebrant
// @Failure      400   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /Celebrants/{code} [get]
func (h *CelebrantHandler) HandleGetCelebrant(ctx *gin.Context) {
	code, err := request.Code(ctx, "code")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	celebrant, err := h.svc.Get(ctx.Request.Context(), code)
	if err != nil {
		renderServiceErr(ctx, "HandleGetCelebrant -> h.svc.Get", code, err)
		return
	}

	ctx.JSON(http.StatusOK, celebrant)
}

// HandleCreateCelebrant godoc
// @Summary      Create a celebrant
// @Description  The code is assigned by the store; any code in the body is ignored.
// @Tags         celebrants
// @Accept       json
// @Produce      json
// @Param        input  body      request.CelebrantRequest  true  "Celebrant"
// @Success      201    {object}  domain.Celebrant
// @Header       201    {string}  Location  "URL of the new celebrant"
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /Celebrants [post]
func (h *CelebrantHandler) HandleCreateCelebrant(ctx *gin.Context) {
	var req request.CelebrantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "HandleCreateCelebrant -> h.svc.Create", 0, err)
		return
	}

	ctx.Header("Location", location(ctx, created.Code))
	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateCelebrant godoc
// @Summary      Replace a celebrant
// @Description  Full replace. The code in the body must match the code in the path.
// @Tags         celebrants
// @Accept       json
// @Param        code   path      int                       true  "Celebrant code"
// @Param        input  body      request.CelebrantRequest  true  "Celebrant"
// @Success      204
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /Celebrants/{code} [put]
func (h *CelebrantHandler) HandleUpdateCelebrant(ctx *gin.Context) {
	code, err := request.Code(ctx, "code")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CelebrantRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.Update(ctx.Request.Context(), code, req.ToDomain()); err != nil {
		renderServiceErr(ctx, "HandleUpdateCelebrant -> h.svc.Update", code, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteCelebrant godoc
// @Summary      Delete a celebrant
// @Description  Also deletes every booking of the celebrant.
// @Tags         celebrants
// @Param        code  path  int  true  "Celebrant code"
// @Success      204
// @Failure      400   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /Celebrants/{code} [delete]
func (h *CelebrantHandler) HandleDeleteCelebrant(ctx *gin.Context) {
	code, err := request.Code(ctx, "code")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), code); err != nil {
		renderServiceErr(ctx, "HandleDeleteCelebrant -> h.svc.Delete", code, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
