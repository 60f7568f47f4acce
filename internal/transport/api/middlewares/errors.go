package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// InternalErrorText отдается клиенту вместо подробностей любой внутренней ошибки.
const InternalErrorText = "operation failed, try again or contact support"

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusPaymentRequired:
		return "insufficient funds"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	default:
		return InternalErrorText
	}
}

// invalidFields возвращает поля запроса, не прошедшие проверку.
func invalidFields(err error) []string {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return []string{valErr.Field}
	}
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		fields := make([]string, len(valErrs))
		for i, fe := range valErrs {
			fields[i] = fe.Field()
		}
		return fields
	}
	return nil
}

// Errors отдает клиенту первую ошибку из контекста gin. Публичные ошибки клиентских статусов отдаются
// текстом ошибки, все остальное общим текстом статуса.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		// тело уже отдано обработчиком
		if c.Writer.Size() > 0 {
			return
		}

		firstErr := c.Errors[0]
		status := c.Writer.Status()
		public := firstErr.IsType(gin.ErrorTypePublic) && status < http.StatusInternalServerError

		msg := statusErrorText(status)
		if public {
			msg = firstErr.Error()
		}

		accept := c.GetHeader("Accept")
		contentType := c.GetHeader("Content-Type")
		switch {
		case strings.Contains(accept, "application/json"),
			strings.Contains(contentType, "application/json"):
			body := gin.H{"error": msg}
			if fields := invalidFields(firstErr.Err); public && len(fields) > 0 {
				body["fields"] = fields
			}
			c.JSON(status, body)
		default:
			c.String(status, msg)
		}
		c.Abort()
	}
}
