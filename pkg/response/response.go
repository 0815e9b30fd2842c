package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/tutor-market/pkg/errors"
)

// User-facing texts for error responses. Details stay in the logs.
const (
	MessageNotFound = "Ничего не нашлось! Вот неудача, отправляйтесь на главную!"
	MessageCSRF     = "И кто это тут у нас про CSRF token забыл?"
	MessageConflict = "Это время уже заняли, выберите другое."
	MessageInvalid  = "Проверьте введённые данные."
	MessageInternal = "Что-то пошло не так, попробуйте позже."
)

const htmlContentType = "text/html; charset=utf-8"

// HTML writes a rendered page.
func HTML(c *gin.Context, status int, body []byte) {
	c.Data(status, htmlContentType, body)
}

// Redirect sends a 302 to location. Form posts always redirect after success.
func Redirect(c *gin.Context, location string) {
	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusFound, location)
}

// Error writes the fixed message for the error's status. The error itself is
// attached to the context so the request logger records it.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	_ = c.Error(err)
	c.Header("Cache-Control", "no-store")
	c.Data(appErr.Status, "text/plain; charset=utf-8", []byte(Message(appErr)))
}

// Message maps an error to the text shown to visitors.
func Message(err *appErrors.Error) string {
	switch {
	case err.Code == appErrors.ErrSecurityCheck.Code:
		return MessageCSRF
	case err.Status == http.StatusNotFound:
		return MessageNotFound
	case err.Status == http.StatusConflict:
		return MessageConflict
	case err.Status == http.StatusBadRequest:
		return MessageInvalid
	default:
		return MessageInternal
	}
}
