package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func GetActiveViewer(ctx *gin.Context) (Viewer, error) {
	value, exists := ctx.Get("viewer")
	if !exists {
		return Viewer{}, fmt.Errorf("error occurred, not authorized to access this resource")
	}

	viewer, ok := value.(Viewer)
	if !ok {
		return Viewer{}, fmt.Errorf("an error occurred")
	}

	return viewer, nil
}

// GetAccessToken returns the raw bearer token the request arrived with, for
// pass-through calls to the auth provider.
func GetAccessToken(ctx *gin.Context) (string, error) {
	value, exists := ctx.Get("access_token")
	if !exists {
		return "", fmt.Errorf("error occurred, not authorized to access this resource")
	}

	token, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("an error occurred")
	}

	return token, nil
}
