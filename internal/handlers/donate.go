package handlers

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"

	"msvosa_back_end/internal/utils"
)

// GET /api/donate/qr?amount=25.00&cause=scholarship
//
// Returns an EPC QR code for a donation by bank transfer, encoding the
// association's account details.
func DonationQR(c *gin.Context) {
	amount, err := decimal.NewFromString(c.DefaultQuery("amount", "25.00"))
	if err != nil || amount.IsNegative() || amount.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	iban := os.Getenv("ASSOCIATION_IBAN")
	bic := os.Getenv("ASSOCIATION_BIC")
	name := os.Getenv("ASSOCIATION_NAME")
	if name == "" {
		name = "MSVOSA"
	}
	if iban == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "bank transfer donations not configured"})
		return
	}

	cause := c.DefaultQuery("cause", "general")
	ref := fmt.Sprintf("DON-%s-%d", cause, time.Now().Unix())

	qr, err := utils.GenerateDonationQR(iban, bic, name, ref, amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate QR code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"qr": qr, "reference": ref})
}

// POST /api/donate/session — card donations via Stripe Checkout.
func CreateDonationSession(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount"`
		Cause  string  `json:"cause"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	if stripe.Key == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "card donations not configured"})
		return
	}

	cause := input.Cause
	if cause == "" {
		cause = "General Association Fund"
	}

	baseURL := os.Getenv("FRONTEND_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("MSVOSA Donation — " + cause),
				},
				UnitAmount: stripe.Int64(int64(input.Amount * 100)),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(baseURL + "/donate?status=success"),
		CancelURL:  stripe.String(baseURL + "/donate?status=cancelled"),
	}

	s, err := session.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create donation session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}
