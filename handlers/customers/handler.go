package customers

import (
	"errors"
	"net/http"
	"time"

	"github.com/aangaziz1996/elanet-sub000/billing"
	"github.com/aangaziz1996/elanet-sub000/db"
	"github.com/aangaziz1996/elanet-sub000/models"
	"github.com/aangaziz1996/elanet-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// customerWithBilling decorates a customer with the derived billing fields
// the dashboard table shows.
type customerWithBilling struct {
	models.Customer
	NextDueDate string `json:"nextDueDate"`
	DueAmount   int64  `json:"dueAmount"`
}

func withBilling(cust models.Customer, payments []models.Payment, now time.Time) customerWithBilling {
	return customerWithBilling{
		Customer:    cust,
		NextDueDate: billing.NextDueDate(cust, payments, now).Format("2006-01-02"),
		DueAmount:   billing.DueAmount(cust, payments, now),
	}
}

// @Summary Create a new customer
// @Description Create a new customer record with empty payment history
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body models.CustomerCreate true "Customer information"
// @Success 201 {object} map[string]interface{} "message: Customer created successfully, id: customer ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 409 {object} map[string]interface{} "error: Customer ID already exists"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /customers [post]
func CreateCustomer(c *gin.Context) {
	var input models.CustomerCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !utils.ValidBillingDay(input.BillingDay) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The billing day must be between 1 and 28",
		})
		return
	}

	if input.Email != "" && !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email format",
		})
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid phone number",
		})
		return
	}

	joinDate, err := utils.ParseDate(input.JoinDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid join date, expected YYYY-MM-DD",
		})
		return
	}

	var installationDate *time.Time
	if input.InstallationDate != "" {
		parsed, err := utils.ParseDate(input.InstallationDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid installation date, expected YYYY-MM-DD",
			})
			return
		}
		installationDate = &parsed
	}

	var existing models.Customer
	if err := db.DB.Where("customer_id = ?", input.CustomerID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "This customer ID is already used",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error when checking the customer ID existence",
		})
		return
	}

	customer := models.Customer{
		CustomerID:       input.CustomerID,
		Name:             input.Name,
		Address:          input.Address,
		Phone:            input.Phone,
		Email:            input.Email,
		PackageName:      input.PackageName,
		JoinDate:         joinDate,
		InstallationDate: installationDate,
		BillingDay:       input.BillingDay,
		Status:           models.CustomerNew,
		Notes:            input.Notes,
	}

	result := db.DB.Create(&customer)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	utils.LogSuccess("Customer created: " + customer.CustomerID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Customer created successfully",
		"id":      customer.ID,
	})
}

// @Summary Get all customers
// @Description Retrieve all customers with their derived billing status, optionally filtered
// @Tags customers
// @Produce json
// @Param status query string false "Filter by lifecycle status"
// @Param package query string false "Filter by package name (substring)"
// @Success 200 {object} map[string]interface{} "customers: list of customers"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /customers [get]
func GetAllCustomers(c *gin.Context) {
	query := db.DB.Model(&models.Customer{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if pkg := c.Query("package"); pkg != "" {
		query = query.Where("package_name LIKE ?", "%"+pkg+"%")
	}

	var customers []models.Customer
	if err := query.Order("customer_id asc").Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving customers: " + err.Error(),
		})
		return
	}

	now := time.Now()
	annotated := make([]customerWithBilling, 0, len(customers))
	for _, cust := range customers {
		var payments []models.Payment
		if err := db.DB.Where("customer_id = ?", cust.ID).Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error retrieving payments: " + err.Error(),
			})
			return
		}
		annotated = append(annotated, withBilling(cust, payments, now))
	}

	c.JSON(http.StatusOK, gin.H{
		"customers": annotated,
	})
}

// @Summary Get a customer by ID
// @Description Retrieve one customer with payment history and derived billing status
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} map[string]interface{} "customer: the customer"
// @Failure 404 {object} map[string]interface{} "error: Customer not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /customers/{id} [get]
func GetCustomerByID(c *gin.Context) {
	if !utils.ValidUUID(c.Param("id")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var customer models.Customer
	if err := db.DB.First(&customer, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	var payments []models.Payment
	if err := db.DB.Where("customer_id = ?", customer.ID).Order("seq asc").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving payments: " + err.Error(),
		})
		return
	}
	customer.Payments = payments

	c.JSON(http.StatusOK, gin.H{
		"customer": withBilling(customer, payments, time.Now()),
	})
}

// @Summary Update a customer
// @Description Update a customer record; the status can move freely between any two states here
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body models.CustomerUpdate true "Fields to update"
// @Success 200 {object} map[string]interface{} "message: Customer updated successfully"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 404 {object} map[string]interface{} "error: Customer not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /customers/{id} [put]
func UpdateCustomer(c *gin.Context) {
	if !utils.ValidUUID(c.Param("id")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var customer models.Customer
	if err := db.DB.First(&customer, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	var input models.CustomerUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	updates := map[string]interface{}{}

	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Address != "" {
		updates["address"] = input.Address
	}
	if input.Phone != "" {
		if !utils.ValidatePhone(input.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
			return
		}
		updates["phone"] = input.Phone
	}
	if input.Email != "" {
		if !utils.ValidateEmail(input.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
			return
		}
		updates["email"] = input.Email
	}
	if input.PackageName != "" {
		updates["package_name"] = input.PackageName
	}
	if input.InstallationDate != "" {
		parsed, err := utils.ParseDate(input.InstallationDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid installation date, expected YYYY-MM-DD"})
			return
		}
		updates["installation_date"] = parsed
	}
	if input.BillingDay != 0 {
		if !utils.ValidBillingDay(input.BillingDay) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The billing day must be between 1 and 28"})
			return
		}
		updates["billing_day"] = input.BillingDay
	}
	if input.Status != "" {
		if !models.ValidCustomerStatus(input.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer status"})
			return
		}
		updates["status"] = input.Status
	}
	if input.Notes != "" {
		updates["notes"] = input.Notes
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to update"})
		return
	}

	if err := db.DB.Model(&customer).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	utils.LogSuccess("Customer updated: " + customer.CustomerID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Customer updated successfully",
	})
}

// @Summary Terminate a customer
// @Description Mark a customer as terminated. The record and its payments are kept.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} map[string]interface{} "message: Customer terminated successfully"
// @Failure 404 {object} map[string]interface{} "error: Customer not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func DeleteCustomer(c *gin.Context) {
	if !utils.ValidUUID(c.Param("id")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var customer models.Customer
	if err := db.DB.First(&customer, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	// Payments are never deleted, so neither is the customer that owns them.
	if err := db.DB.Model(&customer).Update("status", models.CustomerTerminated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	utils.LogSuccess("Customer terminated: " + customer.CustomerID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Customer terminated successfully",
	})
}
