package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// Success wraps a payload under its field name together with success=true,
// the envelope the web client expects from mutating endpoints.
func Success(c *gin.Context, field string, data any) {
	c.JSON(200, gin.H{field: data, "success": true})
}
