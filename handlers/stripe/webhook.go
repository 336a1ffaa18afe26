package stripe

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/aangaziz1996/elanet-sub000/billing"
	"github.com/aangaziz1996/elanet-sub000/db"
	"github.com/aangaziz1996/elanet-sub000/models"
	"github.com/aangaziz1996/elanet-sub000/utils"
	mailsmodels "github.com/aangaziz1996/elanet-sub000/utils/mails-models"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"gorm.io/gorm"
)

func StripeWebhookHandler(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Cannot read the request body"})
		return
	}

	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sig, secret)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stripe signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		handleCheckoutSessionCompleted(c, event)
	case "checkout.session.expired":
		handleCheckoutSessionExpired(c, event)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
	}
}

func handleCheckoutSessionCompleted(c *gin.Context, event stripe.Event) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing CheckoutSession"})
		return
	}

	paymentID := session.ClientReferenceID
	if paymentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ClientReferenceID missing"})
		return
	}

	if session.PaymentStatus != "paid" {
		c.JSON(http.StatusOK, gin.H{"message": "Session completed but not paid yet"})
		return
	}

	var payment models.Payment
	if err := db.DB.First(&payment, "id = ?", paymentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found for this session"})
		return
	}

	// Stripe retries webhooks; a payment already confirmed is not an error.
	if payment.Status != models.PaymentPending {
		c.JSON(http.StatusOK, gin.H{"message": "Payment already reviewed"})
		return
	}

	var customer models.Customer
	if err := db.DB.First(&customer, "id = ?", payment.CustomerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found for this payment"})
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&payment).Update("status", models.PaymentConfirmed).Error; err != nil {
			return err
		}
		payment.Status = models.PaymentConfirmed

		if customer.Status != models.CustomerNew && customer.Status != models.CustomerSuspended {
			return nil
		}
		if !billing.CoversDate(payment, time.Now()) {
			return nil
		}
		return tx.Model(&customer).Update("status", models.CustomerActive).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if customer.Email != "" {
		go mailsmodels.PaymentStatusUpdate(customer.Email, customer.Name, payment)
	}

	utils.LogSuccess("Online payment confirmed via Stripe webhook: " + payment.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Payment confirmed"})
}

func handleCheckoutSessionExpired(c *gin.Context, event stripe.Event) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing CheckoutSession"})
		return
	}

	paymentID := session.ClientReferenceID
	if paymentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ClientReferenceID missing"})
		return
	}

	var payment models.Payment
	if err := db.DB.First(&payment, "id = ?", paymentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found for this session"})
		return
	}

	if payment.Status != models.PaymentPending {
		c.JSON(http.StatusOK, gin.H{"message": "Payment already reviewed"})
		return
	}

	if err := db.DB.Model(&payment).Update("status", models.PaymentRejected).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.LogInfo("Online payment session expired, payment rejected: " + payment.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Payment rejected"})
}
