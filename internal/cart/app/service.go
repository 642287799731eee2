package app

import (
	"context"
	"math"
	"sync"
	"time"

	cartdomain "github.com/stonique/storefront/internal/cart/domain"
	catalogdomain "github.com/stonique/storefront/internal/catalog/domain"
)

// defaultPulseDecay is how long the cart-icon bounce signal stays raised
// after an add.
const defaultPulseDecay = 500 * time.Millisecond

// Service is the authoritative cart state for one session. Every mutation
// is a total function: a missing id or an out-of-range quantity is a no-op,
// never an error. All methods are safe for concurrent use.
type Service struct {
	mu    sync.Mutex
	items []cartdomain.LineItem

	pulse      bool
	pulseTimer *time.Timer
	pulseDecay time.Duration

	snapshots SnapshotStore
}

// NewService builds an empty cart. snapshots may be nil, in which case the
// cart is purely in-memory.
func NewService(snapshots SnapshotStore) *Service {
	return &Service{
		snapshots:  snapshots,
		pulseDecay: defaultPulseDecay,
	}
}

// Rehydrate replaces the cart contents with the persisted snapshot, if one
// exists. Absent or malformed snapshots leave the cart empty.
func (s *Service) Rehydrate(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	items, err := s.snapshots.Load(ctx)
	if err != nil || items == nil {
		return
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// AddProduct appends a quantity-1 line for the product, or increments the
// existing line when the product is already in the cart. It raises the
// pulse signal for the cart-icon animation.
func (s *Service) AddProduct(ctx context.Context, p catalogdomain.Product) {
	s.mu.Lock()

	found := false
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, cartdomain.LineItem{
			ID:       p.ID,
			Title:    p.Title,
			Price:    p.Price,
			Image:    p.Image,
			Category: p.Category,
			Quantity: 1,
		})
	}

	s.raisePulse()
	s.mu.Unlock()

	s.persist(ctx)
}

// Remove drops the line with the given id. Missing ids are a no-op.
func (s *Service) Remove(ctx context.Context, id int) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.persist(ctx)
}

// SetQuantity sets the line's quantity. Quantities below 1 are rejected as
// a no-op; removal is always an explicit Remove, never a side effect of a
// quantity change.
func (s *Service) SetQuantity(ctx context.Context, id, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()

	s.persist(ctx)
}

// Clear empties the cart unconditionally.
func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.persist(ctx)
}

// Items returns a copy of the current line items in insertion order.
func (s *Service) Items() []cartdomain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]cartdomain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of quantities across all lines, not the line count.
func (s *Service) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// Subtotal is the sum of price times quantity over all lines, rounded
// half-up to 2 decimals.
func (s *Service) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum float64
	for _, it := range s.items {
		sum += it.Price * float64(it.Quantity)
	}
	return round2(sum)
}

// Total is the subtotal plus a flat shipping fee, rounded to 2 decimals.
func (s *Service) Total(shipping float64) float64 {
	return round2(s.Subtotal() + shipping)
}

// Pulse reports whether the add animation signal is currently raised.
func (s *Service) Pulse() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pulse
}

// raisePulse sets the pulse and schedules its decay. Overlapping adds
// coalesce onto a single pending timer, so the pulse clears one decay
// interval after the last add. Callers must hold s.mu.
func (s *Service) raisePulse() {
	s.pulse = true
	if s.pulseTimer != nil {
		s.pulseTimer.Stop()
	}
	s.pulseTimer = time.AfterFunc(s.pulseDecay, func() {
		s.mu.Lock()
		s.pulse = false
		s.pulseTimer = nil
		s.mu.Unlock()
	})
}

// persist writes the current items to the snapshot store. Persistence is
// best effort: a failed write never surfaces to the caller.
func (s *Service) persist(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	_ = s.snapshots.Save(ctx, s.Items())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
