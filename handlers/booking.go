package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"tourdesk/middleware"
	"tourdesk/models"
	"tourdesk/services/availability"
	"tourdesk/services/booking"
	"tourdesk/services/tourpackage"
	"tourdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const bookingsPath = "/company/bookings"

type BookingHandler struct {
	Bookings     booking.BookingService
	Packages     tourpackage.TourPackageService
	Availability availability.AvailabilityService
}

func NewBookingHandler(bookings booking.BookingService, packages tourpackage.TourPackageService, avail availability.AvailabilityService) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Packages: packages, Availability: avail}
}

// driversFor lists the package's drivers still free on date. Empty inputs yield nothing.
func (h *BookingHandler) driversFor(c *gin.Context, packageID, date string) ([]models.Driver, error) {
	if packageID == "" || date == "" {
		return []models.Driver{}, nil
	}
	if _, err := h.Packages.Get(c.Request.Context(), middleware.CompanyID(c), packageID); err != nil {
		return nil, err
	}
	return h.Availability.AvailableDrivers(c.Request.Context(), packageID, date)
}

// CreatePage handles GET /company/bookings/create?tour_package_id=&travel_date=.
func (h *BookingHandler) CreatePage(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := middleware.CompanyID(c)
	packageID, date := c.Query("tour_package_id"), c.Query("travel_date")

	packages, err := h.Packages.Active(ctx, companyID)
	if err != nil {
		respondError(c, err, bookingsPath)
		return
	}
	data := gin.H{
		"packages":      packages,
		"country_codes": utils.CountryCodes,
		"travel_date":   date,
	}
	if packageID != "" {
		selected, err := h.Packages.Get(ctx, companyID, packageID)
		if err != nil {
			respondError(c, err, bookingsPath)
			return
		}
		data["selected_package"] = selected
	}
	drivers, err := h.driversFor(c, packageID, date)
	if err != nil {
		respondError(c, err, bookingsPath)
		return
	}
	data["drivers"] = drivers
	c.JSON(http.StatusOK, pageData(c, data))
}

// CheckAvailability handles GET /company/bookings/availability?tour_package_id=&travel_date=.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	packageID, date := c.Query("tour_package_id"), c.Query("travel_date")
	if packageID == "" || date == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "tour_package_id and travel_date are required"})
		return
	}
	drivers, err := h.driversFor(c, packageID, date)
	if err != nil {
		respondError(c, err, "")
		return
	}
	capacity, err := h.Availability.Capacity(c.Request.Context(), packageID, date, "")
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"capacity": capacity, "drivers": drivers})
}

// BookedDates handles GET /company/tour-packages/:id/booked-dates.
func (h *BookingHandler) BookedDates(c *gin.Context) {
	dates, err := h.Bookings.BookedDates(c.Request.Context(), middleware.CompanyID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dates)
}

// AvailabilityPage handles GET /company/tour-packages/:id/availability.
func (h *BookingHandler) AvailabilityPage(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := middleware.CompanyID(c)
	detail, err := h.Packages.Get(ctx, companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, packagesPath)
		return
	}
	dates, err := h.Bookings.BookedDates(ctx, companyID, detail.ID)
	if err != nil {
		respondError(c, err, packagesPath)
		return
	}
	c.JSON(http.StatusOK, pageData(c, gin.H{"package": detail, "availability": dates}))
}

// Create handles POST /company/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var req booking.BookingRequest
	if !bindInput(c, &req, bookingsPath+"/create") {
		return
	}
	b, err := h.Bookings.Create(c.Request.Context(), middleware.CompanyID(c), req)
	if err != nil {
		respondError(c, err, bookingsPath+"/create")
		return
	}
	getLogger(c).Info("Booking created", zap.String("bookingID", b.ID), zap.String("travelDate", b.TravelDate))
	respondSaved(c, http.StatusCreated, "Booking created successfully", bookingsPath, b)
}

// Table handles GET /company/bookings/data.
func (h *BookingHandler) Table(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := middleware.CompanyID(c)
	bookings, err := h.Bookings.List(ctx, companyID)
	if err != nil {
		respondError(c, err, "")
		return
	}

	titles := map[string]string{}
	rows := make([]gin.H, 0, len(bookings))
	for i, b := range bookings {
		title, ok := titles[b.TourPackageID]
		if !ok {
			if detail, err := h.Packages.Get(ctx, companyID, b.TourPackageID); err == nil {
				title = detail.Title
			}
			titles[b.TourPackageID] = title
		}
		rows = append(rows, gin.H{
			"index":            i + 1,
			"id":               b.ID,
			"guest_name":       b.GuestName,
			"phone":            b.CountryCode + " " + b.Phone,
			"package":          title,
			"travel_date":      b.TravelDate,
			"adults":           b.Adults,
			"kids":             b.Kids,
			"total_amount":     b.TotalAmount,
			"advance_amount":   b.AdvanceAmount,
			"remaining_amount": b.RemainingAmount,
			"payment_status":   b.PaymentStatus.Label(),
			"action": renderActions(
				actionLink{Label: "Edit", Href: fmt.Sprintf("%s/%s/edit", bookingsPath, b.ID), Class: "btn btn-sm btn-primary"},
				actionLink{Label: "Voucher", Href: fmt.Sprintf("%s/%s/voucher", bookingsPath, b.ID), Class: "btn btn-sm btn-secondary"},
				actionLink{Label: "Cancel", Href: fmt.Sprintf("%s/%s/cancel", bookingsPath, b.ID), Method: http.MethodPost, Class: "btn btn-sm btn-warning"},
				actionLink{Label: "Delete", Href: fmt.Sprintf("%s/%s", bookingsPath, b.ID), Method: http.MethodDelete, Class: "btn btn-sm btn-danger"},
			),
		})
	}
	c.JSON(http.StatusOK, dataTable{Data: rows})
}

// Edit handles GET /company/bookings/:id/edit.
func (h *BookingHandler) Edit(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := middleware.CompanyID(c)
	b, err := h.Bookings.Get(ctx, companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, bookingsPath)
		return
	}
	packages, err := h.Packages.Active(ctx, companyID)
	if err != nil {
		respondError(c, err, bookingsPath)
		return
	}
	drivers, err := h.driversFor(c, b.TourPackageID, b.TravelDate)
	if err != nil {
		respondError(c, err, bookingsPath)
		return
	}
	// The booking's own driver stays selectable.
	if b.DriverID != "" {
		if detail, err := h.Packages.Get(ctx, companyID, b.TourPackageID); err == nil {
			for _, d := range detail.Drivers {
				if d.ID == b.DriverID && !containsDriver(drivers, d.ID) {
					drivers = append(drivers, d)
				}
			}
		}
	}
	c.JSON(http.StatusOK, pageData(c, gin.H{
		"booking":       b,
		"packages":      packages,
		"drivers":       drivers,
		"country_codes": utils.CountryCodes,
	}))
}

func containsDriver(drivers []models.Driver, id string) bool {
	for _, d := range drivers {
		if d.ID == id {
			return true
		}
	}
	return false
}

// Update handles PUT /company/bookings/:id.
func (h *BookingHandler) Update(c *gin.Context) {
	id := c.Param("id")
	editPath := fmt.Sprintf("%s/%s/edit", bookingsPath, id)
	var req booking.BookingRequest
	if !bindInput(c, &req, editPath) {
		return
	}
	b, err := h.Bookings.Update(c.Request.Context(), middleware.CompanyID(c), id, req)
	if err != nil {
		respondError(c, err, editPath)
		return
	}
	respondSaved(c, http.StatusOK, "Booking updated successfully", bookingsPath, b)
}

// Delete handles DELETE /company/bookings/:id.
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.Bookings.Delete(c.Request.Context(), middleware.CompanyID(c), c.Param("id")); err != nil {
		respondError(c, err, bookingsPath)
		return
	}
	respondSaved(c, http.StatusOK, "Booking deleted successfully", bookingsPath, nil)
}

// Cancel handles POST /company/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.Bookings.Cancel(c.Request.Context(), middleware.CompanyID(c), c.Param("id")); err != nil {
		respondError(c, err, bookingsPath)
		return
	}
	respondSaved(c, http.StatusOK, "Booking cancelled successfully", bookingsPath, nil)
}

// Voucher handles GET /company/bookings/:id/voucher.
func (h *BookingHandler) Voucher(c *gin.Context) {
	id := c.Param("id")
	var buf bytes.Buffer
	if err := h.Bookings.WriteVoucher(c.Request.Context(), middleware.CompanyID(c), id, &buf); err != nil {
		respondError(c, err, bookingsPath)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="voucher-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
