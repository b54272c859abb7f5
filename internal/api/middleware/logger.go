package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request.
func Logger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(p gin.LogFormatterParams) string {
		msg := ""
		if p.ErrorMessage != "" {
			msg = " err=" + p.ErrorMessage
		}
		return fmt.Sprintf("%s %s %s %d %s%s\n",
			p.TimeStamp.Format(time.RFC3339),
			p.Method,
			p.Path,
			p.StatusCode,
			p.Latency.Round(time.Microsecond),
			msg,
		)
	})
}
