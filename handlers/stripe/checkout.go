package stripe

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/aangaziz1996/elanet-sub000/billing"
	"github.com/aangaziz1996/elanet-sub000/db"
	"github.com/aangaziz1996/elanet-sub000/models"
	"github.com/aangaziz1996/elanet-sub000/utils"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	session "github.com/stripe/stripe-go/v82/checkout/session"
	"gorm.io/gorm"
)

// @Summary Create a Stripe Checkout session for the current due amount
// @Description Start an online payment for the authenticated customer. A PENDING payment is recorded and confirmed by the webhook once Stripe reports the session as paid.
// @Tags portal
// @Produce json
// @Success 200 {object} map[string]string "sessionId: ID of the Stripe Checkout session, url: Stripe Checkout URL"
// @Failure 400 {object} map[string]string "error: Nothing is currently due"
// @Failure 404 {object} map[string]string "error: Customer not found"
// @Failure 500 {object} map[string]string "error: Stripe error or server error"
// @Security BearerAuth
// @Router /portal/checkout [post]
func CreateCheckoutSession(c *gin.Context) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	userID := c.MustGet("user_id").(string)

	var customer models.Customer
	if err := db.DB.First(&customer, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	var payments []models.Payment
	if err := db.DB.Where("customer_id = ?", customer.ID).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving payments: " + err.Error()})
		return
	}

	now := time.Now()
	dueAmount := billing.DueAmount(customer, payments, now)
	if dueAmount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Nothing is currently due, or a payment is already awaiting confirmation",
		})
		return
	}

	periodStart, periodEnd := billing.Period(customer, payments)

	payment := models.Payment{
		CustomerID:  customer.ID,
		PaymentDate: billing.DateOnly(now),
		Amount:      dueAmount,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Method:      models.MethodOnline,
		Status:      models.PaymentPending,
	}
	if err := db.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("idr"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("ELaNet " + customer.PackageName),
					},
					// Stripe counts IDR in sen
					UnitAmount: stripe.Int64(dueAmount * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(os.Getenv("CHECKOUT_SUCCESS_URL")),
		CancelURL:         stripe.String(os.Getenv("CHECKOUT_CANCEL_URL")),
		ClientReferenceID: stripe.String(payment.ID),
	}

	s, err := session.New(params)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the Stripe session in CreateCheckoutSession")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := db.DB.Model(&payment).Update("stripe_session_id", s.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Stripe Checkout session created in CreateCheckoutSession")
	c.JSON(http.StatusOK, gin.H{"sessionId": s.ID, "url": s.URL})
}
