package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"tourdesk/middleware"
	"tourdesk/services/driver"
	"tourdesk/services/tourpackage"
	"tourdesk/utils"

	"github.com/gin-gonic/gin"
)

const packagesPath = "/company/tour-packages"

type TourPackageHandler struct {
	Packages tourpackage.TourPackageService
	Drivers  driver.DriverService
}

func NewTourPackageHandler(packages tourpackage.TourPackageService, drivers driver.DriverService) *TourPackageHandler {
	return &TourPackageHandler{Packages: packages, Drivers: drivers}
}

// packageImages pulls the cover and gallery uploads from a multipart form.
func packageImages(c *gin.Context) tourpackage.Images {
	var images tourpackage.Images
	if cover, err := c.FormFile("cover_image"); err == nil {
		images.Cover = cover
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		images.Gallery = append(images.Gallery, form.File["gallery_images"]...)
		images.Gallery = append(images.Gallery, form.File["gallery_images[]"]...)
	}
	return images
}

func listOptions(c *gin.Context) tourpackage.ListOptions {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("page_size"))
	return tourpackage.ListOptions{
		Search:     c.Query("search"),
		TravelDate: c.Query("travel_date"),
		Page:       page,
		PageSize:   size,
	}
}

// List handles GET /company/tour-packages.
func (h *TourPackageHandler) List(c *gin.Context) {
	page, err := h.Packages.List(c.Request.Context(), middleware.CompanyID(c), listOptions(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, pageData(c, gin.H{
		"packages":    page,
		"search":      c.Query("search"),
		"travel_date": c.Query("travel_date"),
	}))
}

// formData is shared by the create and edit pages.
func (h *TourPackageHandler) formData(c *gin.Context) (gin.H, error) {
	drivers, err := h.Drivers.List(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		return nil, err
	}
	return gin.H{
		"drivers":    drivers,
		"countries":  utils.Countries,
		"currencies": utils.Currencies,
	}, nil
}

// CreatePage handles GET /company/tour-packages/create.
func (h *TourPackageHandler) CreatePage(c *gin.Context) {
	data, err := h.formData(c)
	if err != nil {
		respondError(c, err, packagesPath)
		return
	}
	c.JSON(http.StatusOK, pageData(c, data))
}

// Create handles POST /company/tour-packages.
func (h *TourPackageHandler) Create(c *gin.Context) {
	var in tourpackage.PackageInput
	if !bindInput(c, &in, packagesPath+"/create") {
		return
	}
	pkg, err := h.Packages.Create(c.Request.Context(), middleware.CompanyID(c), in, packageImages(c))
	if err != nil {
		respondError(c, err, packagesPath+"/create")
		return
	}
	respondSaved(c, http.StatusCreated, "Tour package created successfully", packagesPath, pkg)
}

// Edit handles GET /company/tour-packages/:id/edit.
func (h *TourPackageHandler) Edit(c *gin.Context) {
	detail, err := h.Packages.Get(c.Request.Context(), middleware.CompanyID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, packagesPath)
		return
	}
	data, err := h.formData(c)
	if err != nil {
		respondError(c, err, packagesPath)
		return
	}
	assigned := make([]string, 0, len(detail.Drivers))
	for _, d := range detail.Drivers {
		assigned = append(assigned, d.ID)
	}
	data["package"] = detail
	data["assigned_driver_ids"] = assigned
	c.JSON(http.StatusOK, pageData(c, data))
}

// Update handles PUT /company/tour-packages/:id.
func (h *TourPackageHandler) Update(c *gin.Context) {
	id := c.Param("id")
	editPath := fmt.Sprintf("%s/%s/edit", packagesPath, id)
	var in tourpackage.PackageInput
	if !bindInput(c, &in, editPath) {
		return
	}
	pkg, err := h.Packages.Update(c.Request.Context(), middleware.CompanyID(c), id, in, packageImages(c))
	if err != nil {
		respondError(c, err, editPath)
		return
	}
	respondSaved(c, http.StatusOK, "Tour package updated successfully", packagesPath, pkg)
}

// Delete handles DELETE /company/tour-packages/:id.
func (h *TourPackageHandler) Delete(c *gin.Context) {
	if err := h.Packages.Delete(c.Request.Context(), middleware.CompanyID(c), c.Param("id")); err != nil {
		respondError(c, err, packagesPath)
		return
	}
	respondSaved(c, http.StatusOK, "Tour package deleted successfully", packagesPath, nil)
}

// DeleteImage handles DELETE /company/tour-packages/images/:imageId.
func (h *TourPackageHandler) DeleteImage(c *gin.Context) {
	if err := h.Packages.DeleteImage(c.Request.Context(), middleware.CompanyID(c), c.Param("imageId")); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image deleted"})
}

// PublicList handles GET /tour-packages.
func (h *TourPackageHandler) PublicList(c *gin.Context) {
	packages, err := h.Packages.PublicList(c.Request.Context(), listOptions(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

// PublicDetail handles GET /tour-packages/:id.
func (h *TourPackageHandler) PublicDetail(c *gin.Context) {
	detail, err := h.Packages.PublicDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"package": detail})
}
