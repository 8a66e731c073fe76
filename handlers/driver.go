package handlers

import (
	"net/http"

	"tourdesk/middleware"
	"tourdesk/services/driver"
	"tourdesk/services/storage"
	"tourdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const driversPath = "/company/drivers"

type DriverHandler struct {
	Drivers  driver.DriverService
	Uploader storage.Uploader
}

func NewDriverHandler(drivers driver.DriverService, uploader storage.Uploader) *DriverHandler {
	return &DriverHandler{Drivers: drivers, Uploader: uploader}
}

// Table handles GET /company/drivers/data.
func (h *DriverHandler) Table(c *gin.Context) {
	drivers, err := h.Drivers.List(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	rows := make([]gin.H, 0, len(drivers))
	for i, d := range drivers {
		rows = append(rows, gin.H{
			"index":          i + 1,
			"id":             d.ID,
			"name":           d.Name,
			"phone":          d.CountryCode + " " + d.PhoneNumber,
			"vehicle_type":   d.VehicleType,
			"vehicle_number": d.VehicleNumber,
			"seats":          d.Seats,
			"image":          d.Image,
			"action":         editDeleteActions(driversPath, d.ID),
		})
	}
	c.JSON(http.StatusOK, dataTable{Data: rows})
}

// uploadImage stores an optional "image" upload and returns its reference.
func (h *DriverHandler) uploadImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	if err := storage.ValidateImage(file); err != nil {
		return "", utils.NewValidationError("image", "Driver image must be an image file")
	}
	return h.Uploader.Save(c.Request.Context(), file, "drivers")
}

// Create handles POST /company/drivers.
func (h *DriverHandler) Create(c *gin.Context) {
	var in driver.DriverInput
	if !bindInput(c, &in, driversPath) {
		return
	}
	image, err := h.uploadImage(c)
	if err != nil {
		respondError(c, err, driversPath)
		return
	}
	in.Image = image
	d, err := h.Drivers.Create(c.Request.Context(), middleware.CompanyID(c), in)
	if err != nil {
		respondError(c, err, driversPath)
		return
	}
	respondSaved(c, http.StatusCreated, "Driver created successfully", driversPath, d)
}

// Edit handles GET /company/drivers/:id/edit.
func (h *DriverHandler) Edit(c *gin.Context) {
	d, err := h.Drivers.Get(c.Request.Context(), middleware.CompanyID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, driversPath)
		return
	}
	c.JSON(http.StatusOK, pageData(c, gin.H{"driver": d, "country_codes": utils.CountryCodes}))
}

// Update handles PUT /company/drivers/:id.
func (h *DriverHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	companyID, id := middleware.CompanyID(c), c.Param("id")
	var in driver.DriverInput
	if !bindInput(c, &in, driversPath) {
		return
	}
	existing, err := h.Drivers.Get(ctx, companyID, id)
	if err != nil {
		respondError(c, err, driversPath)
		return
	}
	image, err := h.uploadImage(c)
	if err != nil {
		respondError(c, err, driversPath)
		return
	}
	in.Image = image
	d, err := h.Drivers.Update(ctx, companyID, id, in)
	if err != nil {
		respondError(c, err, driversPath)
		return
	}
	if image != "" && existing.Image != "" && existing.Image != image {
		if err := h.Uploader.Delete(ctx, existing.Image); err != nil {
			getLogger(c).Warn("Failed to remove old driver image", zap.String("ref", existing.Image), zap.Error(err))
		}
	}
	respondSaved(c, http.StatusOK, "Driver updated successfully", driversPath, d)
}

// Delete handles DELETE /company/drivers/:id.
func (h *DriverHandler) Delete(c *gin.Context) {
	if err := h.Drivers.Delete(c.Request.Context(), middleware.CompanyID(c), c.Param("id")); err != nil {
		respondError(c, err, driversPath)
		return
	}
	respondSaved(c, http.StatusOK, "Driver deleted successfully", driversPath, nil)
}
