package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func bearerToken(ctx *gin.Context) (string, bool) {
	token := ctx.GetHeader("Authorization")
	if token == "" {
		return "", false
	}

	tokenSplit := strings.Split(token, " ")
	if len(tokenSplit) != 2 || strings.ToLower(tokenSplit[0]) != "bearer" {
		return "", false
	}

	return tokenSplit[1], true
}

func AuthenticatedMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Request"})
			ctx.Abort()
			return
		}

		viewer, err := TokenController.VerifyToken(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			ctx.Abort()
			return
		}

		/// Viewer identity travels explicitly with the request
		ctx.Set("viewer", viewer)
		ctx.Set("access_token", token)
		ctx.Next()
	}
}

// OptionalAuthMiddleware resolves the viewer when a valid token is present
// and lets the request through anonymously otherwise. Detail pages work both
// ways; only viewer-dependent reads are skipped for anonymous requests.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx)
		if ok {
			if viewer, err := TokenController.VerifyToken(token); err == nil {
				ctx.Set("viewer", viewer)
				ctx.Set("access_token", token)
			}
		}
		ctx.Next()
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {

		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST,HEAD,PATCH,OPTIONS,GET,PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
