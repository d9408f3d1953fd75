package auth

import (
	"net/http"
	"strconv"

	"github.com/gurpreetgarry91/pbs-backend/models"
	"github.com/gurpreetgarry91/pbs-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

type LoginRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authentifie un utilisateur mobile par username/mot de passe
// @Summary Login mobile
// @Description Authentification par identifiants, retourne un token et l'id utilisateur
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Identifiants"
// @Success 200 {object} map[string]string "token, user_id"
// @Failure 400 {object} map[string]string "detail: Invalid request body"
// @Failure 401 {object} map[string]string "detail: Invalid credentials"
// @Router /mobile/login [post]
func (h *Handler) Login(c *gin.Context) {
	var payload LoginRequest

	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Même message que le username soit inconnu ou le mot de passe faux,
	// pour ne pas permettre l'énumération des comptes
	var user models.User
	if err := h.db.Where("user_name = ?", payload.UserName).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(payload.Password, user.Password) {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.UserID, string(user.Role))
	if err != nil {
		utils.LogErrorWithUser(user.UserID, err, "Error generating the token")
		utils.SendError(c, http.StatusInternalServerError, "Error generating the token")
		return
	}

	// Une seule session active: le token précédent est écrasé
	if err := h.db.Model(&user).Update("auth_token", token).Error; err != nil {
		utils.LogErrorWithUser(user.UserID, err, "Error storing the token")
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.LogSuccessWithUser(user.UserID, "User logged in")
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user_id": strconv.FormatUint(uint64(user.UserID), 10),
	})
}
