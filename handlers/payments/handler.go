package payments

import (
	"errors"
	"net/http"
	"time"

	"github.com/aangaziz1996/elanet-sub000/billing"
	"github.com/aangaziz1996/elanet-sub000/db"
	"github.com/aangaziz1996/elanet-sub000/models"
	"github.com/aangaziz1996/elanet-sub000/utils"
	mailsmodels "github.com/aangaziz1996/elanet-sub000/utils/mails-models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// activateIfCovered flips a NEW or SUSPENDED customer to ACTIVE when the
// confirmed payment covers today. Runs inside the same transaction as the
// payment write so a reader never sees one without the other.
func activateIfCovered(tx *gorm.DB, customer *models.Customer, payment models.Payment) error {
	if payment.Status != models.PaymentConfirmed {
		return nil
	}
	if customer.Status != models.CustomerNew && customer.Status != models.CustomerSuspended {
		return nil
	}
	if !billing.CoversDate(payment, time.Now()) {
		return nil
	}
	return tx.Model(customer).Update("status", models.CustomerActive).Error
}

// @Summary Record a payment for a customer
// @Description Record a payment directly with any status. The billing period is derived when not provided.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param payment body models.PaymentCreate true "Payment information"
// @Success 201 {object} map[string]interface{} "message: Payment recorded successfully, id: payment ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 404 {object} map[string]interface{} "error: Customer not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /customers/{id}/payments [post]
func RecordPayment(c *gin.Context) {
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

	var input models.PaymentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if input.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The amount must be positive",
		})
		return
	}

	paymentDate, err := utils.ParseDate(input.PaymentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment date, expected YYYY-MM-DD",
		})
		return
	}

	method := input.Method
	if method == "" {
		method = models.MethodTransfer
	}
	if !models.ValidPaymentMethod(method) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
		return
	}

	status := input.Status
	if status == "" {
		status = models.PaymentConfirmed
	}
	if !models.ValidPaymentStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment status"})
		return
	}

	var periodStart, periodEnd time.Time
	switch {
	case input.PeriodStart != "" && input.PeriodEnd != "":
		periodStart, err = utils.ParseDate(input.PeriodStart)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period start, expected YYYY-MM-DD"})
			return
		}
		periodEnd, err = utils.ParseDate(input.PeriodEnd)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period end, expected YYYY-MM-DD"})
			return
		}
		if periodEnd.Before(periodStart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The period end cannot be before the period start"})
			return
		}
	case input.PeriodStart == "" && input.PeriodEnd == "":
		var payments []models.Payment
		if err := db.DB.Where("customer_id = ?", customer.ID).Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving payments: " + err.Error()})
			return
		}
		periodStart, periodEnd = billing.Period(customer, payments)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide both period dates or neither"})
		return
	}

	payment := models.Payment{
		CustomerID:  customer.ID,
		PaymentDate: paymentDate,
		Amount:      input.Amount,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		ProofURL:    input.ProofURL,
		Signature:   input.Signature,
		Method:      method,
		Notes:       input.Notes,
		Status:      status,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return activateIfCovered(tx, &customer, payment)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	utils.LogSuccess("Payment recorded for customer " + customer.CustomerID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment recorded successfully",
		"id":      payment.ID,
	})
}

// @Summary Get all payments
// @Description Retrieve payments across customers, optionally filtered by status or customer
// @Tags payments
// @Produce json
// @Param status query string false "Filter by payment status"
// @Param customerId query string false "Filter by customer ID"
// @Success 200 {object} map[string]interface{} "payments: list of payments"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /payments [get]
func GetAllPayments(c *gin.Context) {
	query := db.DB.Model(&models.Payment{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if customerID := c.Query("customerId"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var payments []models.Payment
	if err := query.Order("seq desc").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving payments: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
	})
}

// @Summary Confirm or reject a payment
// @Description Transition a pending payment to CONFIRMED or REJECTED. Confirming a payment that covers today activates a new or suspended customer in the same transaction.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param status body models.PaymentStatusUpdate true "New status"
// @Success 200 {object} map[string]interface{} "message: Payment status updated successfully"
// @Failure 400 {object} map[string]interface{} "error: Invalid status or payment already reviewed"
// @Failure 404 {object} map[string]interface{} "error: Payment not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /payments/{id}/status [put]
func UpdatePaymentStatus(c *gin.Context) {
	if !utils.ValidUUID(c.Param("id")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	var payment models.Payment
	if err := db.DB.First(&payment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	var input models.PaymentStatusUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if input.Status != models.PaymentConfirmed && input.Status != models.PaymentRejected {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The status can only move to CONFIRMED or REJECTED",
		})
		return
	}

	// CONFIRMED and REJECTED are terminal.
	if payment.Status != models.PaymentPending {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "This payment has already been reviewed",
		})
		return
	}

	var customer models.Customer
	if err := db.DB.First(&customer, "id = ?", payment.CustomerID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching the customer"})
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&payment).Update("status", input.Status).Error; err != nil {
			return err
		}
		payment.Status = input.Status
		return activateIfCovered(tx, &customer, payment)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	if customer.Email != "" {
		go mailsmodels.PaymentStatusUpdate(customer.Email, customer.Name, payment)
	}

	utils.LogSuccess("Payment " + payment.ID + " moved to " + string(input.Status))
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment status updated successfully",
	})
}
