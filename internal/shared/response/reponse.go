package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"biblioteca-api/internal/shared/apperror"
)

const (
	MsgNotFound      = "Recurso não encontrado"
	MsgInternalError = "Ocorreu um erro interno no servidor"
)

// MessageBody is the shape of every non-validation error and of delete confirmations
type MessageBody struct {
	Message string `json:"message"`
}

func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}

func NotFound(c *gin.Context) {
	Message(c, http.StatusNotFound, MsgNotFound)
}

// Error maps err onto a status and body:
//
//	validation.Errors          -> 400, field map
//	apperror KindNotFound      -> 404, {message}
//	apperror KindDomainRule    -> 400, {message}
//	anything else              -> 500, generic {message}, logged
func Error(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindNotFound:
			Message(c, http.StatusNotFound, appErr.Message)
			return
		case apperror.KindDomainRule:
			Message(c, http.StatusBadRequest, appErr.Message)
			return
		}
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled error")

	_ = c.Error(err)
	Message(c, http.StatusInternalServerError, MsgInternalError)
}
