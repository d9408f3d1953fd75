package utils

import (
	"github.com/gin-gonic/gin"
)

// Les deux API renvoient toujours les erreurs sous la forme {"detail": message}

// SendError envoie une réponse d'erreur
func SendError(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, gin.H{"detail": detail})
}

// SendDetail envoie une réponse de succès ne portant qu'un message
func SendDetail(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, gin.H{"detail": detail})
}
