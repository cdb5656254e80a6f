package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/policy"
)

// --- AdSense slots ---

type AdSenseSlotInput struct {
	Name       string             `json:"name" binding:"required"`
	Placement  models.AdPlacement `json:"placement" binding:"required"`
	ClientID   string             `json:"clientId"`
	SlotID     string             `json:"slotId"`
	Format     string             `json:"format"`
	Responsive *bool              `json:"responsive"`
	IsActive   *bool              `json:"isActive"`
	SortOrder  int                `json:"sortOrder"`
}

func ListAdSenseSlots(c *gin.Context) {
	id := middleware.Identity(c)

	query := database.DB.Model(&models.AdSenseSlot{}).Order("sort_order ASC")
	if !id.IsContentManager() {
		query = query.Where("is_active = ?", true)
	}
	if placement := c.Query("placement"); placement != "" {
		query = query.Where("placement = ?", placement)
	}

	var slots []models.AdSenseSlot
	if err := query.Find(&slots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ad slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func CreateAdSenseSlot(c *gin.Context) {
	var input AdSenseSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot := models.AdSenseSlot{
		Name:       input.Name,
		Placement:  input.Placement,
		ClientID:   input.ClientID,
		SlotID:     input.SlotID,
		Format:     input.Format,
		Responsive: true,
		IsActive:   true,
		SortOrder:  input.SortOrder,
	}
	if input.Responsive != nil {
		slot.Responsive = *input.Responsive
	}
	if input.IsActive != nil {
		slot.IsActive = *input.IsActive
	}

	if err := database.DB.Create(&slot).Error; err != nil {
		if database.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "A slot with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ad slot"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"slot": slot})
}

func UpdateAdSenseSlot(c *gin.Context) {
	var slot models.AdSenseSlot
	if err := database.DB.First(&slot, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ad slot not found"})
		return
	}

	var input AdSenseSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot.Name = input.Name
	slot.Placement = input.Placement
	slot.ClientID = input.ClientID
	slot.SlotID = input.SlotID
	slot.Format = input.Format
	slot.SortOrder = input.SortOrder
	if input.Responsive != nil {
		slot.Responsive = *input.Responsive
	}
	if input.IsActive != nil {
		slot.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&slot).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ad slot"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

func DeleteAdSenseSlot(c *gin.Context) {
	result := database.DB.Delete(&models.AdSenseSlot{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ad slot"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ad slot not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ad slot deleted"})
}

// --- Direct advertisements ---

type AdvertisementInput struct {
	Title           string             `json:"title" binding:"required"`
	Placement       models.AdPlacement `json:"placement" binding:"required"`
	AdType          models.AdType      `json:"adType"`
	Status          models.AdStatus    `json:"status"`
	ImagePath       string             `json:"imagePath"`
	VideoPath       string             `json:"videoPath"`
	HTMLSnippet     string             `json:"htmlSnippet"`
	LinkURL         string             `json:"linkUrl"`
	AdvertiserName  string             `json:"advertiserName"`
	AdvertiserEmail string             `json:"advertiserEmail"`
	AdvertiserPhone string             `json:"advertiserPhone"`
	StartAt         *time.Time         `json:"startAt"`
	EndAt           *time.Time         `json:"endAt"`
	IsActive        *bool              `json:"isActive"`
}

// ListAdvertisements returns currently-servable ads for the public
// (optionally by placement) and the full inventory for managers.
func ListAdvertisements(c *gin.Context) {
	id := middleware.Identity(c)

	query := database.DB.Scopes(policy.AdsVisible(id, time.Now())).Order("created_at DESC")
	if placement := c.Query("placement"); placement != "" {
		query = query.Where("placement = ?", placement)
	}

	var ads []models.Advertisement
	if err := query.Find(&ads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch advertisements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"advertisements": ads})
}

func CreateAdvertisement(c *gin.Context) {
	var input AdvertisementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ad := models.Advertisement{
		Title:           input.Title,
		Placement:       input.Placement,
		AdType:          input.AdType,
		Status:          input.Status,
		ImagePath:       input.ImagePath,
		VideoPath:       input.VideoPath,
		HTMLSnippet:     input.HTMLSnippet,
		LinkURL:         input.LinkURL,
		AdvertiserName:  input.AdvertiserName,
		AdvertiserEmail: input.AdvertiserEmail,
		AdvertiserPhone: input.AdvertiserPhone,
		StartAt:         input.StartAt,
		EndAt:           input.EndAt,
		IsActive:        true,
	}
	if ad.AdType == "" {
		ad.AdType = models.AdTypeImage
	}
	if ad.Status == "" {
		ad.Status = models.AdStatusDraft
	}
	if input.IsActive != nil {
		ad.IsActive = *input.IsActive
	}

	if err := database.DB.Create(&ad).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create advertisement"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"advertisement": ad})
}

func UpdateAdvertisement(c *gin.Context) {
	var ad models.Advertisement
	if err := database.DB.First(&ad, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Advertisement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch advertisement"})
		return
	}

	var input AdvertisementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ad.Title = input.Title
	ad.Placement = input.Placement
	ad.ImagePath = input.ImagePath
	ad.VideoPath = input.VideoPath
	ad.HTMLSnippet = input.HTMLSnippet
	ad.LinkURL = input.LinkURL
	ad.AdvertiserName = input.AdvertiserName
	ad.AdvertiserEmail = input.AdvertiserEmail
	ad.AdvertiserPhone = input.AdvertiserPhone
	ad.StartAt = input.StartAt
	ad.EndAt = input.EndAt
	if input.AdType != "" {
		ad.AdType = input.AdType
	}
	if input.Status != "" {
		ad.Status = input.Status
	}
	if input.IsActive != nil {
		ad.IsActive = *input.IsActive
	}

	if err := database.DB.Omit("impression_count", "click_count").Save(&ad).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update advertisement"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"advertisement": ad})
}

func DeleteAdvertisement(c *gin.Context) {
	result := database.DB.Delete(&models.Advertisement{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete advertisement"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Advertisement not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Advertisement deleted"})
}

// TrackAdImpression and TrackAdClick feed the advertiser reports. Fired
// from the frontend, no auth required.
func TrackAdImpression(c *gin.Context) {
	if err := engagementSvc().TrackImpression(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Advertisement not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recorded"})
}

func TrackAdClick(c *gin.Context) {
	if err := engagementSvc().TrackClick(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Advertisement not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recorded"})
}

// --- Ad requests (public "advertise with us" form) ---

type AdRequestInput struct {
	AdvertiserName  string             `json:"advertiserName" binding:"required"`
	AdvertiserEmail string             `json:"advertiserEmail" binding:"required,email"`
	AdvertiserPhone string             `json:"advertiserPhone"`
	CompanyName     string             `json:"companyName"`
	Placement       models.AdPlacement `json:"placement" binding:"required"`
	AdType          models.AdType      `json:"adType"`
	Budget          *float64           `json:"budget"`
	Message         string             `json:"message"`
}

func SubmitAdRequest(c *gin.Context) {
	var input AdRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := models.AdvertisementRequest{
		AdvertiserName:  input.AdvertiserName,
		AdvertiserEmail: input.AdvertiserEmail,
		AdvertiserPhone: input.AdvertiserPhone,
		CompanyName:     input.CompanyName,
		Placement:       input.Placement,
		AdType:          input.AdType,
		Budget:          input.Budget,
		Message:         input.Message,
		Status:          models.RequestPending,
	}
	if req.AdType == "" {
		req.AdType = models.AdTypeImage
	}

	if err := database.DB.Create(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"request": req})
}

func ListAdRequests(c *gin.Context) {
	query := database.DB.Model(&models.AdvertisementRequest{}).Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.AdvertisementRequest
	if err := query.Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

type AdRequestStatusInput struct {
	Status     models.RequestStatus `json:"status" binding:"required"`
	AdminNotes string               `json:"adminNotes"`
}

func UpdateAdRequest(c *gin.Context) {
	var input AdRequestStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req models.AdvertisementRequest
	if err := database.DB.First(&req, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	req.Status = input.Status
	req.AdminNotes = input.AdminNotes
	if err := database.DB.Save(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": req})
}
