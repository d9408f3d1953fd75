package subscriptions

import (
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

// GetAllSubscriptions liste les formules, filtrables par nom
// @Summary Liste des formules d'abonnement
// @Tags subscriptions
// @Produce json
// @Param q query string false "Filtre sur subscription_name"
// @Security BearerAuth
// @Success 200 {object} map[string][]models.MasterSubscription
// @Router /dashboard/subscriptions [get]
func (h *Handler) GetAllSubscriptions(c *gin.Context) {
	query := h.db.Model(&models.MasterSubscription{})

	if q := c.Query("q"); q != "" {
		query = query.Where("subscription_name ILIKE ?", "%"+q+"%")
	}

	var subscriptions []models.MasterSubscription
	if err := query.Find(&subscriptions).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": subscriptions})
}

// GetSubscriptionByID retourne une formule par son id
// @Summary Détail d'une formule
// @Tags subscriptions
// @Produce json
// @Param id path int true "ID formule"
// @Security BearerAuth
// @Success 200 {object} map[string]models.MasterSubscription
// @Failure 404 {object} map[string]string "detail: Subscription not found"
// @Router /dashboard/subscriptions/{id} [get]
func (h *Handler) GetSubscriptionByID(c *gin.Context) {
	var subscription models.MasterSubscription
	if err := h.db.First(&subscription, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Subscription not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": subscription})
}

// CreateSubscription enregistre une nouvelle formule
// @Summary Création d'une formule
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body models.SubscriptionCreate true "Formule"
// @Security BearerAuth
// @Success 201 {object} map[string]models.MasterSubscription
// @Failure 400 {object} map[string]string "detail: Invalid input"
// @Router /dashboard/subscriptions [post]
func (h *Handler) CreateSubscription(c *gin.Context) {
	var payload models.SubscriptionCreate

	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	subscription := models.MasterSubscription{
		SubscriptionName: payload.SubscriptionName,
		Description:      payload.Description,
		Price:            payload.Price,
		Duration:         payload.Duration,
		Active:           true,
	}
	if payload.Active != nil {
		subscription.Active = *payload.Active
	}

	if err := h.db.Create(&subscription).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subscription": subscription})
}

// UpdateSubscription met à jour partiellement une formule
// @Summary Mise à jour d'une formule
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path int true "ID formule"
// @Param subscription body models.SubscriptionUpdate true "Champs à modifier"
// @Security BearerAuth
// @Success 200 {object} map[string]models.MasterSubscription
// @Failure 404 {object} map[string]string "detail: Subscription not found"
// @Router /dashboard/subscriptions/{id} [put]
func (h *Handler) UpdateSubscription(c *gin.Context) {
	var payload models.SubscriptionUpdate

	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var subscription models.MasterSubscription
	if err := h.db.First(&subscription, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Subscription not found")
		return
	}

	updates := map[string]interface{}{}
	if payload.SubscriptionName != nil {
		updates["subscription_name"] = *payload.SubscriptionName
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.Price != nil {
		updates["price"] = *payload.Price
	}
	if payload.Duration != nil {
		updates["duration"] = *payload.Duration
	}
	if payload.Active != nil {
		updates["active"] = *payload.Active
	}

	if len(updates) > 0 {
		if err := h.db.Model(&subscription).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"subscription": subscription})
}

// DeleteSubscription supprime définitivement une formule. Refusé tant
// que des abonnements utilisateurs la référencent.
// @Summary Suppression d'une formule
// @Tags subscriptions
// @Produce json
// @Param id path int true "ID formule"
// @Security BearerAuth
// @Success 200 {object} map[string]string "detail: Subscription deleted"
// @Failure 404 {object} map[string]string "detail: Subscription not found"
// @Failure 409 {object} map[string]string "detail: Subscription is referenced by existing user subscriptions"
// @Router /dashboard/subscriptions/{id} [delete]
func (h *Handler) DeleteSubscription(c *gin.Context) {
	var subscription models.MasterSubscription
	if err := h.db.First(&subscription, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Subscription not found")
		return
	}

	var count int64
	if err := h.db.Model(&models.UserSubscription{}).
		Where("subscription_id = ?", subscription.ID).
		Count(&count).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if count > 0 {
		utils.SendError(c, http.StatusConflict, "Subscription is referenced by existing user subscriptions")
		return
	}

	if err := h.db.Delete(&subscription).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SendDetail(c, http.StatusOK, "Subscription deleted")
}
