package handlers

import (
	"net/http"

	"tourdesk/middleware"
	"tourdesk/services/admin"
	"tourdesk/services/storage"
	"tourdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const companiesPath = "/admin/companies"

// AdminHandler serves the admin company screens and the company's own profile.
type AdminHandler struct {
	Admin    admin.AdminService
	Uploader storage.Uploader
}

func NewAdminHandler(svc admin.AdminService, uploader storage.Uploader) *AdminHandler {
	return &AdminHandler{Admin: svc, Uploader: uploader}
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	counts, err := h.Admin.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, pageData(c, gin.H{"counts": counts}))
}

// CompaniesTable handles GET /admin/companies/data.
func (h *AdminHandler) CompaniesTable(c *gin.Context) {
	companies, err := h.Admin.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	rows := make([]gin.H, 0, len(companies))
	for i, co := range companies {
		rows = append(rows, gin.H{
			"index":        i + 1,
			"id":           co.ID,
			"company_name": co.CompanyName,
			"email":        co.Email,
			"phone":        co.CountryCode + " " + co.Phone,
			"currency":     co.Currency,
			"status":       co.Status,
			"action":       editDeleteActions(companiesPath, co.ID),
		})
	}
	c.JSON(http.StatusOK, dataTable{Data: rows})
}

// CreatePage handles GET /admin/companies/create.
func (h *AdminHandler) CreatePage(c *gin.Context) {
	c.JSON(http.StatusOK, pageData(c, gin.H{
		"currencies":    utils.Currencies,
		"country_codes": utils.CountryCodes,
		"countries":     utils.Countries,
	}))
}

// CreateCompany handles POST /admin/companies.
func (h *AdminHandler) CreateCompany(c *gin.Context) {
	var in admin.CompanyInput
	if !bindInput(c, &in, companiesPath+"/create") {
		return
	}
	company, err := h.Admin.CreateCompany(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, companiesPath+"/create")
		return
	}
	getLogger(c).Info("Company created", zap.String("id", company.ID), zap.String("email", company.Email))
	respondSaved(c, http.StatusCreated, "Company created successfully", companiesPath, company)
}

// EditCompany handles GET /admin/companies/:id/edit.
func (h *AdminHandler) EditCompany(c *gin.Context) {
	company, err := h.Admin.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, companiesPath)
		return
	}
	c.JSON(http.StatusOK, pageData(c, gin.H{
		"company":       company,
		"currencies":    utils.Currencies,
		"country_codes": utils.CountryCodes,
		"countries":     utils.Countries,
	}))
}

// UpdateCompany handles PUT /admin/companies/:id.
func (h *AdminHandler) UpdateCompany(c *gin.Context) {
	id := c.Param("id")
	var in admin.CompanyInput
	if !bindInput(c, &in, companiesPath+"/"+id+"/edit") {
		return
	}
	company, err := h.Admin.UpdateCompany(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, companiesPath+"/"+id+"/edit")
		return
	}
	respondSaved(c, http.StatusOK, "Company updated successfully", companiesPath, company)
}

// DeleteCompany handles DELETE /admin/companies/:id.
func (h *AdminHandler) DeleteCompany(c *gin.Context) {
	if err := h.Admin.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, companiesPath)
		return
	}
	respondSaved(c, http.StatusOK, "Company deleted successfully", companiesPath, nil)
}

// Profile handles GET /company/profile.
func (h *AdminHandler) Profile(c *gin.Context) {
	company, err := h.Admin.GetCompany(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, pageData(c, gin.H{
		"company":       company,
		"currencies":    utils.Currencies,
		"country_codes": utils.CountryCodes,
		"countries":     utils.Countries,
	}))
}

// UpdateProfile handles POST /company/profile. An optional "logo" file replaces the current logo.
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	const redirect = "/company/profile"
	ctx := c.Request.Context()
	var in admin.ProfileInput
	if !bindInput(c, &in, redirect) {
		return
	}

	var previousLogo string
	if file, err := c.FormFile("logo"); err == nil {
		if err := storage.ValidateImage(file); err != nil {
			respondError(c, utils.NewValidationError("logo", "Logo must be an image"), redirect)
			return
		}
		current, err := h.Admin.GetCompany(ctx, middleware.CompanyID(c))
		if err != nil {
			respondError(c, err, redirect)
			return
		}
		previousLogo = current.Logo
		if in.Logo, err = h.Uploader.Save(ctx, file, "logos"); err != nil {
			respondError(c, err, redirect)
			return
		}
	}

	company, err := h.Admin.UpdateProfile(ctx, middleware.CompanyID(c), in)
	if err != nil {
		respondError(c, err, redirect)
		return
	}
	if previousLogo != "" && previousLogo != company.Logo {
		if err := h.Uploader.Delete(ctx, previousLogo); err != nil {
			getLogger(c).Warn("Failed to remove old logo", zap.String("ref", previousLogo), zap.Error(err))
		}
	}
	respondSaved(c, http.StatusOK, "Profile updated successfully", redirect, company)
}
