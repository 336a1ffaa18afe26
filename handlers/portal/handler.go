package portal

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

// currentCustomer resolves the customer record linked to the authenticated
// account. The token only carries the account reference, never a customer ID
// picked by the client.
func currentCustomer(c *gin.Context) (models.Customer, bool) {
	userID := c.MustGet("user_id").(string)

	var customer models.Customer
	if err := db.DB.First(&customer, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return models.Customer{}, false
	}
	return customer, true
}

// @Summary Get own account
// @Description Retrieve the authenticated customer's record with next due date and due amount
// @Tags portal
// @Produce json
// @Success 200 {object} map[string]interface{} "customer, nextDueDate, dueAmount"
// @Failure 404 {object} map[string]interface{} "error: Customer not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /portal/me [get]
func GetMe(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	var payments []models.Payment
	if err := db.DB.Where("customer_id = ?", customer.ID).Order("seq asc").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving payments: " + err.Error(),
		})
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"customer":    customer,
		"nextDueDate": billing.NextDueDate(customer, payments, now).Format("2006-01-02"),
		"dueAmount":   billing.DueAmount(customer, payments, now),
	})
}

// @Summary Update own contact details
// @Description The customer can edit name, phone, address and email; every other field is admin-only
// @Tags portal
// @Accept json
// @Produce json
// @Param profile body models.CustomerProfileUpdate true "Contact fields"
// @Success 200 {object} map[string]interface{} "message: Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 404 {object} map[string]interface{} "error: Customer not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /portal/me [put]
func UpdateMe(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	var input models.CustomerProfileUpdate
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
	if input.Phone != "" {
		if !utils.ValidatePhone(input.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
			return
		}
		updates["phone"] = input.Phone
	}
	if input.Address != "" {
		updates["address"] = input.Address
	}
	if input.Email != "" {
		if !utils.ValidateEmail(input.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
			return
		}
		updates["email"] = input.Email
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

	utils.LogSuccessWithUser(customer.UserID, "Profile updated by customer "+customer.CustomerID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
	})
}

// @Summary Get own payment history
// @Description Retrieve the authenticated customer's payments in insertion order
// @Tags portal
// @Produce json
// @Success 200 {object} map[string]interface{} "payments: list of payments"
// @Failure 404 {object} map[string]interface{} "error: Customer not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /portal/payments [get]
func GetMyPayments(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	var payments []models.Payment
	if err := db.DB.Where("customer_id = ?", customer.ID).Order("seq asc").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving payments: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
	})
}

// @Summary Submit a payment confirmation
// @Description Submit a payment with an optional proof image or URL. The payment is stored awaiting admin confirmation.
// @Tags portal
// @Accept multipart/form-data
// @Produce json
// @Param paymentDate formData string true "Payment date (YYYY-MM-DD)"
// @Param amount formData int true "Amount in Rupiah"
// @Param method formData string false "Payment method" default(TRANSFER)
// @Param proofUrl formData string false "External proof URL"
// @Param signature formData string false "Signature text"
// @Param notes formData string false "Notes"
// @Param file formData file false "Proof image"
// @Success 201 {object} map[string]interface{} "message: Payment submitted successfully, id: payment ID"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 404 {object} map[string]interface{} "error: Customer not found"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Security BearerAuth
// @Router /portal/payments [post]
func SubmitPaymentConfirmation(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	var input models.PaymentConfirmationCreate
	if err := c.ShouldBind(&input); err != nil {
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

	method := models.PaymentMethod(input.Method)
	if method == "" {
		method = models.MethodTransfer
	}
	if !models.ValidPaymentMethod(method) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
		return
	}

	proofURL := input.ProofURL
	if file, err := c.FormFile("file"); err == nil && file != nil {
		uploadedURL, err := utils.UploadImage(file, "payment_proofs", "proof")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Error uploading the proof image: " + err.Error(),
			})
			return
		}
		proofURL = uploadedURL
	}

	var payments []models.Payment
	if err := db.DB.Where("customer_id = ?", customer.ID).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error retrieving payments: " + err.Error(),
		})
		return
	}
	periodStart, periodEnd := billing.Period(customer, payments)

	// Status is forced to PENDING no matter what the client sends; only an
	// admin review moves it further.
	payment := models.Payment{
		CustomerID:  customer.ID,
		PaymentDate: paymentDate,
		Amount:      input.Amount,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		ProofURL:    proofURL,
		Signature:   input.Signature,
		Method:      method,
		Notes:       input.Notes,
		Status:      models.PaymentPending,
	}

	if err := db.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	utils.LogSuccessWithUser(customer.UserID, "Payment confirmation submitted by customer "+customer.CustomerID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment submitted successfully",
		"id":      payment.ID,
	})
}
