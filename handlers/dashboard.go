package handlers

import (
	"net/http"

	"tourdesk/middleware"
	"tourdesk/services/dashboard"
	"tourdesk/services/tourpackage"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Dashboard dashboard.DashboardService
	Packages  tourpackage.TourPackageService
}

func NewDashboardHandler(svc dashboard.DashboardService, packages tourpackage.TourPackageService) *DashboardHandler {
	return &DashboardHandler{Dashboard: svc, Packages: packages}
}

// Index handles GET /company/dashboard.
func (h *DashboardHandler) Index(c *gin.Context) {
	summary, err := h.Dashboard.Summary(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, pageData(c, gin.H{"summary": summary}))
}

// Stats handles GET /company/dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.Dashboard.Stats(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ActivePackages handles GET /company/dashboard/packages.
func (h *DashboardHandler) ActivePackages(c *gin.Context) {
	packages, err := h.Packages.Active(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	rows := make([]gin.H, 0, len(packages))
	for i, p := range packages {
		rows = append(rows, gin.H{
			"index":    i + 1,
			"id":       p.ID,
			"title":    p.Title,
			"city":     p.City,
			"country":  p.Country,
			"price":    p.Price,
			"currency": p.Currency,
			"action": renderActions(
				actionLink{Label: "Availability", Href: packagesPath + "/" + p.ID + "/availability", Class: "btn btn-sm btn-info"},
				actionLink{Label: "Book", Href: bookingsPath + "/create?tour_package_id=" + p.ID, Class: "btn btn-sm btn-success"},
			),
		})
	}
	c.JSON(http.StatusOK, dataTable{Data: rows})
}

// Customers handles GET /company/dashboard/customers.
func (h *DashboardHandler) Customers(c *gin.Context) {
	guests, err := h.Dashboard.Guests(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	rows := make([]gin.H, 0, len(guests))
	for i, b := range guests {
		rows = append(rows, gin.H{
			"index":          i + 1,
			"guest_name":     b.GuestName,
			"phone":          b.CountryCode + " " + b.Phone,
			"email":          b.Email,
			"travel_date":    b.TravelDate,
			"payment_status": b.PaymentStatus.Label(),
		})
	}
	c.JSON(http.StatusOK, dataTable{Data: rows})
}
