package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/Keoroanthony/storefront/internal/utils"
)

// Exception turns panics into a 500 problem response. The panic value and
// stack are only exposed to the client in development.
func Exception(logger *slog.Logger, development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			stack := string(debug.Stack())
			logger.Error("unhandled panic",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"panic", recovered,
				"stack", stack,
			)

			detail := ""
			if development {
				detail = fmt.Sprintf("%v\n%s", recovered, stack)
			}
			utils.AbortWithProblem(c, http.StatusInternalServerError, "Internal Server Error", detail)
		}()

		c.Next()
	}
}
