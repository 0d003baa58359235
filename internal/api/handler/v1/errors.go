package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/service"
)

// renderServiceErr maps a service error onto the response taxonomy: input
// problems are 400, unknown codes 404, lost optimistic updates 409 and
// anything else 500.
func renderServiceErr(ctx *gin.Context, op string, code uint, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrCelebrantNotFound):
		response.RenderErr(ctx, response.ErrNotFound("celebrant", "code", code))
	case errors.Is(err, service.ErrBookingNotFound):
		response.RenderErr(ctx, response.ErrNotFound("booking", "code", code))
	case errors.Is(err, service.ErrUpdateConflict):
		response.RenderErr(ctx, response.ErrConflict(fmt.Errorf("%s -> %w", op, err)))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

func location(ctx *gin.Context, code uint) string {
	return fmt.Sprintf("%s/%d", ctx.Request.URL.Path, code)
}
