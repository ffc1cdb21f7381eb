package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mvsilva/adapta/internal/app/models/dto"
	"github.com/mvsilva/adapta/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. A CustomError's
// message overrides the generic text so ownership/role failures stay
// human-readable.
func HandleAPIError(c *gin.Context, err error) {
	message := func(fallback string) string {
		var customErr *apperrors.CustomError
		if errors.As(err, &customErr) && customErr.Message != "" {
			return customErr.Message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(401, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message("Não autorizado"))))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message("Credenciais inválidas"))))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeForbidden, message("Acesso negado"))))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Estudante não encontrado"))))
	case errors.Is(err, apperrors.ErrAdaptationNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Adaptação não encontrada"))))
	case errors.Is(err, apperrors.ErrReportNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Relato não encontrado"))))
	case errors.Is(err, apperrors.ErrUserNotFound), errors.Is(err, apperrors.ErrProfileNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Perfil não encontrado"))))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Recurso não encontrado"))))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(400, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message("Email já cadastrado"))))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message(err.Error()))))
	default:
		c.JSON(500, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Erro interno do servidor")))
	}
}
