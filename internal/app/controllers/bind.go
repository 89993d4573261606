package controllers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campus/internal/pkg/apperrors"
)

// bindAttributes decodes a JSON or form body into obj. An empty body leaves
// obj untouched so the required-attribute checks report what is missing.
func bindAttributes(ctx *gin.Context, obj interface{}) error {
	err := ctx.ShouldBind(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return apperrors.NewValidationError(apperrors.Violation{
		Message: err.Error(),
		Type:    "Validation error",
	})
}
