package response

import (
	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	Current int   `json:"current"`
	Limit   int   `json:"limit"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:   total,
		Pages:   pages,
		Current: page,
		Limit:   limit,
	}
}

// Envelope is the shape every endpoint responds with.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	env := Envelope{
		Success: false,
		Message: message,
	}
	if errorCode != "" || details != nil {
		env.Error = map[string]any{
			"code":    errorCode,
			"details": details,
		}
	}
	c.JSON(status, env)
}
