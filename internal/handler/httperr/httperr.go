package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the flat error body every surface returns. Redirect is set when
// the client should navigate somewhere instead of retrying.
type Response struct {
	Status   int    `json:"-"`
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// preserves original error on the gin stack for the request logger
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
