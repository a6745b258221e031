package response

import (
	"net/http"

	apperrors "frontdesk/errors"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Fields     []string    `json:"fields,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Internal server error",
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

func BadRequest(c *gin.Context, message string, fields ...string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:   0,
		Mess:   message,
		Fields: fields,
	})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// FromError writes the status that matches err's code. Unknown errors are a 500
// and their detail is not exposed.
func FromError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		_ = c.Error(err)
		ServerError(c)
		return
	}
	switch appErr.Code {
	case apperrors.ErrCodeValidation:
		BadRequest(c, appErr.Message, appErr.Fields...)
	case apperrors.ErrCodeConflict:
		Conflict(c, appErr.Message)
	case apperrors.ErrCodeNotFound:
		NotFound(c, appErr.Message)
	default:
		_ = c.Error(err)
		ServerError(c)
	}
}
