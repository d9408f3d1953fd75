package middleware

import (
	"net/http"
	"strings"

	"github.com/gurpreetgarry91/pbs-backend/models"
	"github.com/gurpreetgarry91/pbs-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Clé de contexte sous laquelle l'utilisateur authentifié est stocké
const CurrentUserKey = "current_user"

func extractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		utils.SendError(c, http.StatusUnauthorized, "Authorization header missing")
		c.Abort()
		return "", false
	}

	authHeader = strings.Trim(authHeader, "\"' ")

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		utils.SendError(c, http.StatusUnauthorized, "Invalid authorization format, expected: Bearer <token>")
		c.Abort()
		return "", false
	}

	return strings.Trim(parts[1], "\"' "), true
}

// DashboardAuth résout le token Bearer vers une ligne utilisateur par
// correspondance exacte sur auth_token, puis vérifie le rôle. Le token
// n'est pas re-vérifié par signature: écraser auth_token au login est
// la seule révocation.
func DashboardAuth(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if !ok {
			return
		}

		var user models.User
		if err := database.Where("auth_token = ?", token).First(&user).Error; err != nil {
			utils.SendError(c, http.StatusUnauthorized, "Invalid authentication token")
			c.Abort()
			return
		}

		if !user.Role.IsPrivileged() {
			utils.SendError(c, http.StatusForbidden, "Insufficient privileges")
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser retourne l'utilisateur posé dans le contexte par DashboardAuth
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
