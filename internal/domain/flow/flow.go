// internal/domain/flow/flow.go
package flow

import (
	"errors"
	"fmt"
)

// View identifies a storefront screen
type View string

const (
	ViewHome           View = "HOME"
	ViewStandardConfig View = "STANDARD_CONFIG"
	ViewCustomBuilder  View = "CUSTOM_BUILDER"
	ViewCheckout       View = "CHECKOUT"
	ViewSuccess        View = "SUCCESS"
)

// ErrInvalidTransition is returned when a navigation is not allowed from
// the current view
var ErrInvalidTransition = errors.New("invalid flow transition")

// ErrCartEmpty is returned when checkout is requested with an empty cart
var ErrCartEmpty = errors.New("cart is empty")

// Valid reports whether the view is one of the known screens
func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewStandardConfig, ViewCustomBuilder, ViewCheckout, ViewSuccess:
		return true
	}
	return false
}

// transitions is the forward transition table. HOME is additionally
// reachable from every state.
var transitions = map[View][]View{
	ViewHome:           {ViewStandardConfig, ViewCustomBuilder, ViewCheckout},
	ViewStandardConfig: {ViewCheckout},
	ViewCustomBuilder:  {ViewCheckout},
	ViewCheckout:       {ViewSuccess},
	ViewSuccess:        {},
}

// Controller sequences the user through the storefront screens. It owns
// no pricing or cart logic; the caller supplies the checkout guard.
type Controller struct {
	Current View `json:"current"`
}

// NewController creates a controller positioned at the home screen
func NewController() *Controller {
	return &Controller{Current: ViewHome}
}

// Navigate moves to the target view. Checkout requires a non-empty cart
// when entered from home; finalizing a builder always lands on checkout.
// Illegal transitions leave the current view unchanged.
func (c *Controller) Navigate(to View, cartEmpty bool) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown view %q", ErrInvalidTransition, string(to))
	}

	// Home is reachable from everywhere
	if to == ViewHome {
		c.Current = ViewHome
		return nil
	}

	// Staying on the current view is always allowed
	if to == c.Current {
		return nil
	}

	if to == ViewCheckout && c.Current == ViewHome && cartEmpty {
		return ErrCartEmpty
	}

	for _, allowed := range transitions[c.Current] {
		if allowed == to {
			c.Current = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Current, to)
}
