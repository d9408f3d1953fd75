package users

import (
	"errors"
	"net/http"

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

// GetAllUsers liste les utilisateurs des rôles connus, filtrable par q
// @Summary Liste des utilisateurs
// @Description Liste les utilisateurs, recherche insensible à la casse sur user_name et email
// @Tags users
// @Produce json
// @Param q query string false "Filtre sur user_name ou email"
// @Security BearerAuth
// @Success 200 {object} map[string][]models.User
// @Failure 401 {object} map[string]string "detail: Invalid authentication token"
// @Failure 403 {object} map[string]string "detail: Insufficient privileges"
// @Router /dashboard/users [get]
func (h *Handler) GetAllUsers(c *gin.Context) {
	allowedRoles := []models.Role{models.SuperAdminRole, models.EditorRole, models.SubscriberRole}
	query := h.db.Where("role IN ?", allowedRoles)

	if q := c.Query("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("user_name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUserByID retourne un utilisateur par son id
// @Summary Détail d'un utilisateur
// @Tags users
// @Produce json
// @Param id path int true "ID utilisateur"
// @Security BearerAuth
// @Success 200 {object} map[string]models.User
// @Failure 404 {object} map[string]string "detail: User not found"
// @Router /dashboard/users/{id} [get]
func (h *Handler) GetUserByID(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, "user_id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// CreateUser enregistre un nouvel utilisateur (dashboard uniquement)
// @Summary Création d'un utilisateur
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserCreate true "Utilisateur"
// @Security BearerAuth
// @Success 201 {object} map[string]models.User
// @Failure 400 {object} map[string]string "detail: Invalid input"
// @Failure 409 {object} map[string]string "detail: Username or email already exists"
// @Router /dashboard/users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var payload models.UserCreate

	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !payload.Role.IsValid() {
		utils.SendError(c, http.StatusBadRequest, "Unknown role: "+string(payload.Role))
		return
	}

	var existing models.User
	err := h.db.Where("user_name = ? OR email = ?", payload.UserName, payload.Email).First(&existing).Error
	if err == nil {
		utils.SendError(c, http.StatusConflict, "Username or email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error hashing the password")
		return
	}

	user := models.User{
		UserName: payload.UserName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Role:     payload.Role,
		Password: hashed,
		Active:   true,
	}
	if payload.Active != nil {
		user.Active = *payload.Active
	}

	if err := h.db.Create(&user).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.LogSuccessWithUser(user.UserID, "User created")
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// UpdateUser met à jour partiellement un utilisateur: chaque champ présent
// et non nul est appliqué indépendamment
// @Summary Mise à jour d'un utilisateur
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "ID utilisateur"
// @Param user body models.UserUpdate true "Champs à modifier"
// @Security BearerAuth
// @Success 200 {object} map[string]models.User
// @Failure 404 {object} map[string]string "detail: User not found"
// @Router /dashboard/users/{id} [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	var payload models.UserUpdate

	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, "user_id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	updates := map[string]interface{}{}
	if payload.UserName != nil {
		updates["user_name"] = *payload.UserName
	}
	if payload.Email != nil {
		updates["email"] = *payload.Email
	}
	if payload.Phone != nil {
		updates["phone"] = *payload.Phone
	}
	if payload.Role != nil {
		if !payload.Role.IsValid() {
			utils.SendError(c, http.StatusBadRequest, "Unknown role: "+string(*payload.Role))
			return
		}
		updates["role"] = *payload.Role
	}
	if payload.Password != nil {
		hashed, err := utils.HashPassword(*payload.Password)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Error hashing the password")
			return
		}
		updates["password"] = hashed
	}
	if payload.Active != nil {
		updates["active"] = *payload.Active
	}

	if len(updates) > 0 {
		if err := h.db.Model(&user).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser supprime définitivement un utilisateur. La suppression est
// refusée tant que des abonnements ou des médias référencent la ligne,
// pour ne pas laisser de références pendantes.
// @Summary Suppression d'un utilisateur
// @Tags users
// @Produce json
// @Param id path int true "ID utilisateur"
// @Security BearerAuth
// @Success 200 {object} map[string]string "detail: User deleted"
// @Failure 404 {object} map[string]string "detail: User not found"
// @Failure 409 {object} map[string]string "detail: User is referenced by existing records"
// @Router /dashboard/users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, "user_id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	var subCount int64
	if err := h.db.Model(&models.UserSubscription{}).
		Where("user_id = ? OR added_by = ?", user.UserID, user.UserID).
		Count(&subCount).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var mediaCount int64
	if err := h.db.Model(&models.Media{}).
		Where("user_id = ?", user.UserID).
		Count(&mediaCount).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if subCount > 0 || mediaCount > 0 {
		utils.SendError(c, http.StatusConflict, "User is referenced by existing records")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SendDetail(c, http.StatusOK, "User deleted")
}
