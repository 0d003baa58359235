package request

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Code reads the numeric record code from the path parameter name.
func Code(ctx *gin.Context, name string) (uint, error) {
	code, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || code == 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}

	return uint(code), nil
}
