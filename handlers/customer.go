package handlers

import (
	"net/http"

	"tourdesk/middleware"
	"tourdesk/services/customer"
	"tourdesk/utils"

	"github.com/gin-gonic/gin"
)

const customersPath = "/company/customers"

type CustomerHandler struct {
	Customers customer.CustomerService
}

func NewCustomerHandler(customers customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{Customers: customers}
}

// Table handles GET /company/customers/data.
func (h *CustomerHandler) Table(c *gin.Context) {
	customers, err := h.Customers.List(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	rows := make([]gin.H, 0, len(customers))
	for i, cu := range customers {
		rows = append(rows, gin.H{
			"index":      i + 1,
			"id":         cu.ID,
			"guest_name": cu.GuestName,
			"phone":      cu.CountryCode + " " + cu.Phone,
			"email":      cu.Email,
			"action":     editDeleteActions(customersPath, cu.ID),
		})
	}
	c.JSON(http.StatusOK, dataTable{Data: rows})
}

// Create handles POST /company/customers. An existing customer with the same
// phone is returned instead of creating a duplicate.
func (h *CustomerHandler) Create(c *gin.Context) {
	var in customer.CustomerInput
	if !bindInput(c, &in, customersPath) {
		return
	}
	cu, created, err := h.Customers.Create(c.Request.Context(), middleware.CompanyID(c), in)
	if err != nil {
		respondError(c, err, customersPath)
		return
	}
	if !created {
		respondSaved(c, http.StatusOK, "Customer already exists", customersPath, cu)
		return
	}
	respondSaved(c, http.StatusCreated, "Customer created successfully", customersPath, cu)
}

// Edit handles GET /company/customers/:id/edit.
func (h *CustomerHandler) Edit(c *gin.Context) {
	cu, err := h.Customers.Get(c.Request.Context(), middleware.CompanyID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, customersPath)
		return
	}
	c.JSON(http.StatusOK, pageData(c, gin.H{"customer": cu, "country_codes": utils.CountryCodes}))
}

// Update handles PUT /company/customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	var in customer.CustomerInput
	if !bindInput(c, &in, customersPath) {
		return
	}
	cu, err := h.Customers.Update(c.Request.Context(), middleware.CompanyID(c), c.Param("id"), in)
	if err != nil {
		respondError(c, err, customersPath)
		return
	}
	respondSaved(c, http.StatusOK, "Customer updated successfully", customersPath, cu)
}

// Delete handles DELETE /company/customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.Customers.Delete(c.Request.Context(), middleware.CompanyID(c), c.Param("id")); err != nil {
		respondError(c, err, customersPath)
		return
	}
	respondSaved(c, http.StatusOK, "Customer deleted successfully", customersPath, nil)
}
