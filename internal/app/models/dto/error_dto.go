package dto

import (
	"github.com/yigit/campus/internal/pkg/apperrors"
)

// ErrorItem describes a single violated attribute
type ErrorItem struct {
	Message string      `json:"message" example:"student.name cannot be null"`
	Type    string      `json:"type" example:"notNull Violation"`
	Path    string      `json:"path" example:"name"`
	Value   interface{} `json:"value"`
}

// ErrorResponse is the serialized form of a data-layer error. It is written
// as-is with status 500.
type ErrorResponse struct {
	Name    string      `json:"name" example:"ValidationError"`
	Message string      `json:"message" example:"notNull Violation: student.name cannot be null"`
	Errors  []ErrorItem `json:"errors,omitempty"`
}

// NewErrorResponse serializes err using its taxonomy name
func NewErrorResponse(err error) *ErrorResponse {
	cause := apperrors.Cause(err)
	resp := &ErrorResponse{
		Name:    apperrors.Name(cause),
		Message: cause.Error(),
	}

	if verr, ok := cause.(*apperrors.ValidationError); ok {
		for _, v := range verr.Violations {
			resp.Errors = append(resp.Errors, ErrorItem{
				Message: v.Message,
				Type:    v.Type,
				Path:    v.Path,
				Value:   v.Value,
			})
		}
	}

	return resp
}
