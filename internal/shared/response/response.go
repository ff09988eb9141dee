// Package response writes wire-contract responses: success payloads are bare
// JSON values, failures are plain-text messages the client surfaces verbatim.
package response

import "github.com/gin-gonic/gin"

// Error writes a plain-text error body with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.String(code, message)
}

// AbortError writes a plain-text error body and aborts the handler chain.
func AbortError(c *gin.Context, code int, message string) {
	Error(c, code, message)
	c.Abort()
}
