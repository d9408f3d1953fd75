package media

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gurpreetgarry91/pbs-backend/middleware"
	"github.com/gurpreetgarry91/pbs-backend/models"
	"github.com/gurpreetgarry91/pbs-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Handler struct {
	db        *gorm.DB
	uploadDir string
}

// New construit le handler media. uploadDir est la racine de stockage
// des fichiers, servie publiquement sous /uploads.
func New(db *gorm.DB, uploadDir string) *Handler {
	return &Handler{db: db, uploadDir: uploadDir}
}

// GetMedia liste les médias non supprimés d'un utilisateur pour une date
// @Summary Liste des médias
// @Tags media
// @Produce json
// @Param user_id query int true "ID utilisateur"
// @Param date query string true "Date au format YYYY-MM-DD"
// @Security BearerAuth
// @Success 200 {object} map[string][]map[string]interface{}
// @Failure 400 {object} map[string]string "detail: Invalid date format, expected YYYY-MM-DD"
// @Router /dashboard/media [get]
func (h *Handler) GetMedia(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid user_id")
		return
	}

	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	var medias []models.Media
	if err := h.db.Where("user_id = ? AND upload_date = ? AND is_deleted = ?", userID, date, false).
		Find(&medias).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	result := make([]gin.H, 0, len(medias))
	for _, m := range medias {
		result = append(result, gin.H{
			"id":            m.ID,
			"original_name": m.OriginalName,
			"url":           publicURL(m.StoredPath),
			"media_type":    m.MediaType,
			"created_at":    m.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"media": result})
}

// UploadMedia reçoit un ou plusieurs fichiers multipart. Chaque fichier
// est traité indépendamment: écriture disque puis insertion de la ligne,
// le fichier est retiré si l'insertion échoue. La réponse liste le
// résultat fichier par fichier, l'appelant sait donc exactement
// lesquels ont réussi.
// @Summary Upload de médias
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Fichiers"
// @Param user_id formData int true "ID utilisateur propriétaire"
// @Param date formData string true "Date au format YYYY-MM-DD"
// @Security BearerAuth
// @Success 200 {object} map[string][]map[string]interface{}
// @Failure 400 {object} map[string]string "detail: Invalid date format, expected YYYY-MM-DD"
// @Router /dashboard/media [post]
func (h *Handler) UploadMedia(c *gin.Context) {
	currentUser, exists := middleware.CurrentUser(c)
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "Invalid authentication token")
		return
	}

	userID, err := strconv.ParseUint(c.Request.FormValue("user_id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid user_id")
		return
	}

	dateStr := c.Request.FormValue("date")
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		utils.SendError(c, http.StatusBadRequest, "No files provided")
		return
	}

	subscriberDir := fmt.Sprintf("subscriber_%d", userID)
	baseDir := filepath.Join(h.uploadDir, subscriberDir, dateStr)
	// MkdirAll est idempotent, pas d'erreur si le dossier existe déjà
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error creating upload directory: "+err.Error())
		return
	}

	results := make([]gin.H, 0, len(files))
	for _, file := range files {
		storedName := storedFileName(file.Filename)
		dest := filepath.Join(baseDir, storedName)

		if err := c.SaveUploadedFile(file, dest); err != nil {
			utils.LogErrorWithUser(currentUser.UserID, err, "Error writing uploaded file")
			results = append(results, gin.H{
				"original_name": file.Filename,
				"detail":        "Error writing file",
			})
			continue
		}

		relPath := path.Join(subscriberDir, dateStr, storedName)
		addedBy := currentUser.UserID
		m := models.Media{
			UserID:       uint(userID),
			OriginalName: file.Filename,
			StoredPath:   relPath,
			MediaType:    classifyMediaType(file),
			UploadDate:   date,
			AddedBy:      &addedBy,
		}

		if err := h.db.Create(&m).Error; err != nil {
			// Pas de ligne, pas de fichier orphelin
			os.Remove(dest)
			utils.LogErrorWithUser(currentUser.UserID, err, "Error inserting media row")
			results = append(results, gin.H{
				"original_name": file.Filename,
				"detail":        "Error saving media record",
			})
			continue
		}

		results = append(results, gin.H{
			"id":            m.ID,
			"original_name": m.OriginalName,
			"url":           publicURL(m.StoredPath),
			"media_type":    m.MediaType,
		})
	}

	c.JSON(http.StatusOK, gin.H{"created": results})
}

// DeleteMedia marque la ligne supprimée et retire le fichier du disque.
// Les erreurs de suppression du fichier sont avalées pour que le delete
// reste idempotent côté appelant.
// @Summary Suppression (soft) d'un média
// @Tags media
// @Produce json
// @Param id path int true "ID média"
// @Security BearerAuth
// @Success 200 {object} map[string]string "detail: Media deleted"
// @Failure 404 {object} map[string]string "detail: Media not found"
// @Router /dashboard/media/{id} [delete]
func (h *Handler) DeleteMedia(c *gin.Context) {
	var m models.Media
	if err := h.db.First(&m, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Media not found")
		return
	}

	if err := os.Remove(filepath.Join(h.uploadDir, filepath.FromSlash(m.StoredPath))); err != nil && !os.IsNotExist(err) {
		utils.LogError(err, "Error removing media file")
	}

	if err := h.db.Model(&m).Update("is_deleted", true).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SendDetail(c, http.StatusOK, "Media deleted")
}

// sanitizeFileName retire les séquences de traversée et les séparateurs
// de chemin du nom d'origine
func sanitizeFileName(name string) string {
	safe := strings.ReplaceAll(name, "..", "")
	safe = strings.ReplaceAll(safe, "/", "_")
	safe = strings.ReplaceAll(safe, "\\", "_")
	return safe
}

// storedFileName préfixe un horodatage à la microseconde pour éviter
// les collisions entre fichiers de même nom
func storedFileName(original string) string {
	now := time.Now().UTC()
	timestamp := now.Format("20060102150405") + fmt.Sprintf("%06d", now.Nanosecond()/1000)
	return timestamp + "_" + sanitizeFileName(original)
}

func classifyMediaType(file *multipart.FileHeader) models.MediaType {
	ctype := strings.ToLower(file.Header.Get("Content-Type"))
	switch {
	case strings.HasPrefix(ctype, "image"):
		return models.MediaImage
	case strings.HasPrefix(ctype, "video"):
		return models.MediaVideo
	default:
		return models.MediaFile
	}
}

func publicURL(storedPath string) string {
	return "/uploads/" + storedPath
}
