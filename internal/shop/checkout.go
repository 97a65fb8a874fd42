package shop

import (
	"context"
	"errors"
	"strings"

	"msvosa_back_end/internal/models"
	"msvosa_back_end/internal/store"
)

// CheckoutState tracks where a checkout session is in its lifecycle.
type CheckoutState int

const (
	StateIdle CheckoutState = iota
	StateFormOpen
	StateSubmitting
	StateComplete
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrMissingCustomer  = errors.New("name, email and phone are required")
	ErrAlreadyInFlight  = errors.New("a submission is already in progress")
	ErrNotAcceptingForm = errors.New("checkout form is not open")
)

// CustomerInfo is the contact form filled in before placing an order.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (ci CustomerInfo) validate() error {
	if strings.TrimSpace(ci.Name) == "" ||
		strings.TrimSpace(ci.Email) == "" ||
		strings.TrimSpace(ci.Phone) == "" {
		return ErrMissingCustomer
	}
	return nil
}

// Checkout turns a cart plus customer info into a persisted order.
// The flow either fully succeeds (order recorded, cart cleared) or
// fully fails (nothing recorded, cart intact); no partial-order state
// is ever visible.
type Checkout struct {
	cart  *Cart
	store store.ContentStore

	state      CheckoutState
	submitting bool // guard flag, blocks re-entry while a submission is in flight
	customer   CustomerInfo
	order      *models.Order
}

func NewCheckout(cart *Cart, contentStore store.ContentStore) *Checkout {
	return &Checkout{cart: cart, store: contentStore, state: StateIdle}
}

func (co *Checkout) State() CheckoutState { return co.state }

// Order returns the persisted order once the checkout completed.
func (co *Checkout) Order() *models.Order { return co.order }

// Begin opens the checkout form. It refuses an empty cart.
func (co *Checkout) Begin() error {
	if co.cart.IsEmpty() {
		return ErrEmptyCart
	}
	co.state = StateFormOpen
	return nil
}

// Cancel abandons the checkout before the submission commits. The cart
// is untouched.
func (co *Checkout) Cancel() {
	if co.state == StateSubmitting || co.state == StateComplete {
		return
	}
	co.state = StateIdle
	co.customer = CustomerInfo{}
}

// Submit validates the customer info and persists the order with a
// deep snapshot of the cart and the total computed right now. Success
// clears the live cart; failure leaves it unmodified so the user can
// retry.
func (co *Checkout) Submit(ctx context.Context, customer CustomerInfo) error {
	if co.state != StateFormOpen {
		return ErrNotAcceptingForm
	}
	if co.submitting {
		return ErrAlreadyInFlight
	}
	if err := customer.validate(); err != nil {
		return err
	}
	if co.cart.IsEmpty() {
		return ErrEmptyCart
	}

	co.submitting = true
	co.state = StateSubmitting
	co.customer = customer

	created, err := co.store.AddOrder(ctx, models.NewOrder{
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		Items:         co.cart.Snapshot(),
		TotalAmount:   co.cart.Total(),
		Status:        models.OrderStatusPending,
	})
	if err != nil {
		// Failure path: cart preserved, guard cleared, form reopened.
		co.submitting = false
		co.state = StateFormOpen
		return err
	}

	co.order = &created
	co.cart.Clear()
	co.submitting = false
	co.state = StateComplete
	return nil
}

// Reset dismisses the confirmation and wipes all checkout-local state.
func (co *Checkout) Reset() {
	co.state = StateIdle
	co.submitting = false
	co.customer = CustomerInfo{}
	co.order = nil
}
