// internal/session/state.go
package session

import (
	"time"

	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/basket"
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/cart"
	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/flow"
)

// State is the whole storefront session for one visitor: the active
// screen, the cart, both builder working sets and the order-level note.
// It is snapshotted as JSON; nothing survives past the session TTL.
type State struct {
	Flow            *flow.Controller        `json:"flow"`
	Cart            *cart.Cart              `json:"cart"`
	CustomBuilder   *basket.CustomBuilder   `json:"custom_builder"`
	StandardBuilder *basket.StandardBuilder `json:"standard_builder"`
	OrderNote       string                  `json:"order_note"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// NewState creates a fresh session positioned at the home screen
func NewState() *State {
	now := time.Now().UTC()
	return &State{
		Flow:            flow.NewController(),
		Cart:            cart.New(),
		CustomBuilder:   basket.NewCustomBuilder(),
		StandardBuilder: basket.NewStandardBuilder(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// normalize fills nil sub-states after a JSON round trip so callers never
// see a partially initialized session.
func (s *State) normalize() {
	if s.Flow == nil {
		s.Flow = flow.NewController()
	}
	if s.Cart == nil {
		s.Cart = cart.New()
	}
	if s.CustomBuilder == nil {
		s.CustomBuilder = basket.NewCustomBuilder()
	}
	if s.StandardBuilder == nil {
		s.StandardBuilder = basket.NewStandardBuilder()
	}
}
