package resputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every JSON response. Code is the business
// error code, not the HTTP status; a Code of OK means Data is valid.
type Response[T any] struct {
	Code ErrorCode `json:"code"`
	Data T         `json:"data"`
	Msg  string    `json:"msg"`
}

// Success writes a 200 response with the given data.
func Success[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, Response[T]{
		Code: OK,
		Data: data,
	})
}

// Error writes a 500 response with the given message and business code.
func Error(c *gin.Context, msg string, code ErrorCode) {
	HTTPError(c, http.StatusInternalServerError, msg, code)
}

// BadRequestError writes a 400 response for malformed request parameters.
func BadRequestError(c *gin.Context, msg string) {
	HTTPError(c, http.StatusBadRequest, msg, InvalidRequest)
}

// HTTPError writes a response with an explicit HTTP status.
func HTTPError(c *gin.Context, status int, msg string, code ErrorCode) {
	c.JSON(status, Response[any]{
		Code: code,
		Msg:  msg,
	})
}
