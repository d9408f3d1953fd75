package usersubscriptions

import (
	"net/http"

	"github.com/gurpreetgarry91/pbs-backend/middleware"
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

// GetAllUserSubscriptions liste les abonnements utilisateurs.
// Les lignes soft-deleted sont incluses par défaut (comportement
// historique); exclude_deleted=true les filtre.
// @Summary Liste des abonnements utilisateurs
// @Tags user-subscriptions
// @Produce json
// @Param q query string false "Filtre sur payment_method"
// @Param exclude_deleted query bool false "Exclure les lignes soft-deleted"
// @Security BearerAuth
// @Success 200 {object} map[string][]models.UserSubscription
// @Router /dashboard/user-subscriptions [get]
func (h *Handler) GetAllUserSubscriptions(c *gin.Context) {
	query := h.db.Model(&models.UserSubscription{})

	if q := c.Query("q"); q != "" {
		query = query.Where("payment_method ILIKE ?", "%"+q+"%")
	}
	if c.Query("exclude_deleted") == "true" {
		query = query.Where("is_deleted = ?", false)
	}

	var subscriptions []models.UserSubscription
	if err := query.Find(&subscriptions).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_subscriptions": subscriptions})
}

// GetUserSubscriptionByID retourne un abonnement par son id, soft-deleted compris
// @Summary Détail d'un abonnement utilisateur
// @Tags user-subscriptions
// @Produce json
// @Param id path int true "ID abonnement"
// @Security BearerAuth
// @Success 200 {object} map[string]models.UserSubscription
// @Failure 404 {object} map[string]string "detail: User subscription not found"
// @Router /dashboard/user-subscriptions/{id} [get]
func (h *Handler) GetUserSubscriptionByID(c *gin.Context) {
	var subscription models.UserSubscription
	if err := h.db.First(&subscription, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User subscription not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_subscription": subscription})
}

// CreateUserSubscription inscrit un utilisateur à une formule. added_by
// est estampillé avec l'utilisateur authentifié, jamais pris du payload.
// @Summary Création d'un abonnement utilisateur
// @Tags user-subscriptions
// @Accept json
// @Produce json
// @Param subscription body models.UserSubscriptionCreate true "Abonnement"
// @Security BearerAuth
// @Success 201 {object} map[string]models.UserSubscription
// @Failure 400 {object} map[string]string "detail: Invalid input"
// @Router /dashboard/user-subscriptions [post]
func (h *Handler) CreateUserSubscription(c *gin.Context) {
	currentUser, exists := middleware.CurrentUser(c)
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "Invalid authentication token")
		return
	}

	var payload models.UserSubscriptionCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	subscription := models.UserSubscription{
		UserID:             payload.UserID,
		SubscriptionID:     payload.SubscriptionID,
		StartDatetime:      payload.StartDatetime,
		EndDate:            payload.EndDate,
		PaymentMethod:      payload.PaymentMethod,
		SubscriptionStatus: "Active",
		AddedBy:            currentUser.UserID,
	}
	if payload.SubscriptionStatus != nil {
		subscription.SubscriptionStatus = *payload.SubscriptionStatus
	}

	if err := h.db.Create(&subscription).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.LogSuccessWithUser(currentUser.UserID, "User subscription created")
	c.JSON(http.StatusCreated, gin.H{"user_subscription": subscription})
}

// UpdateUserSubscription met à jour partiellement un abonnement,
// y compris le flag is_deleted (pas de route de restauration séparée)
// @Summary Mise à jour d'un abonnement utilisateur
// @Tags user-subscriptions
// @Accept json
// @Produce json
// @Param id path int true "ID abonnement"
// @Param subscription body models.UserSubscriptionUpdate true "Champs à modifier"
// @Security BearerAuth
// @Success 200 {object} map[string]models.UserSubscription
// @Failure 404 {object} map[string]string "detail: User subscription not found"
// @Router /dashboard/user-subscriptions/{id} [put]
func (h *Handler) UpdateUserSubscription(c *gin.Context) {
	var payload models.UserSubscriptionUpdate

	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var subscription models.UserSubscription
	if err := h.db.First(&subscription, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User subscription not found")
		return
	}

	updates := map[string]interface{}{}
	if payload.UserID != nil {
		updates["user_id"] = *payload.UserID
	}
	if payload.SubscriptionID != nil {
		updates["subscription_id"] = *payload.SubscriptionID
	}
	if payload.StartDatetime != nil {
		updates["start_datetime"] = *payload.StartDatetime
	}
	if payload.EndDate != nil {
		updates["end_date"] = *payload.EndDate
	}
	if payload.PaymentMethod != nil {
		updates["payment_method"] = *payload.PaymentMethod
	}
	if payload.SubscriptionStatus != nil {
		updates["subscription_status"] = *payload.SubscriptionStatus
	}
	if payload.IsDeleted != nil {
		updates["is_deleted"] = *payload.IsDeleted
	}

	if len(updates) > 0 {
		if err := h.db.Model(&subscription).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"user_subscription": subscription})
}

// DeleteUserSubscription passe is_deleted à true; la ligne reste
// récupérable par id
// @Summary Suppression (soft) d'un abonnement utilisateur
// @Tags user-subscriptions
// @Produce json
// @Param id path int true "ID abonnement"
// @Security BearerAuth
// @Success 200 {object} map[string]string "detail: User subscription marked deleted"
// @Failure 404 {object} map[string]string "detail: User subscription not found"
// @Router /dashboard/user-subscriptions/{id} [delete]
func (h *Handler) DeleteUserSubscription(c *gin.Context) {
	var subscription models.UserSubscription
	if err := h.db.First(&subscription, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User subscription not found")
		return
	}

	if err := h.db.Model(&subscription).Update("is_deleted", true).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SendDetail(c, http.StatusOK, "User subscription marked deleted")
}
