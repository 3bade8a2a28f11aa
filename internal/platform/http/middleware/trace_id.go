// Package middleware provides the gin middleware chain shared by every route.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
)

const (
	HeaderTraceID = "X-Trace-Id"
	// ContextTraceID はgin.Contextに保存するトレースIDのキーです。
	ContextTraceID = "trace_id"
)

type traceIDKey struct{}

// TraceID はリクエストヘッダーのトレースIDを引き継ぎ、無ければxidで採番します。
// IDはレスポンスヘッダー、gin.Context、request contextのすべてに設定されます。
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(HeaderTraceID)
		if traceID == "" {
			traceID = xid.New().String()
		}

		c.Set(ContextTraceID, traceID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), traceIDKey{}, traceID))
		c.Header(HeaderTraceID, traceID)

		c.Next()
	}
}

// TraceIDFromContext はrequest contextからトレースIDを取り出します。
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}
