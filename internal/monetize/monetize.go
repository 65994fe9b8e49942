// Package monetize mocks the ad and in-app-purchase surfaces. Rewards
// resolve after a simulated delay driven by the frame clock, so the
// shop behaves asynchronously without owning any timers.
package monetize

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var (
	ErrAdsDisabled    = errors.New("monetize: ads are disabled")
	ErrIAPDisabled    = errors.New("monetize: purchases are disabled")
	ErrUnknownProduct = errors.New("monetize: unknown product")
)

// Flags gates the two monetization surfaces. Injected at construction
// so tests can vary them without process-wide state.
type Flags struct {
	AdsEnabled bool
	IAPEnabled bool
}

// Result is the outcome of an ad view or purchase.
type Result struct {
	Success       bool
	ProductID     string
	TransactionID string
	Coins         int
	Lives         int
	Err           error
}

// Product is a purchasable bundle in the mock storefront.
type Product struct {
	ID    string
	Name  string
	Price string // Display price; nothing is actually charged
	Coins int
	Lives int
}

// Products is the static storefront catalog.
func Products() []Product {
	return []Product{
		{ID: "coins_small", Name: "Pouch of Coins", Price: "$0.99", Coins: 100},
		{ID: "coins_large", Name: "Chest of Coins", Price: "$4.99", Coins: 650},
		{ID: "extra_lives", Name: "Extra Lives", Price: "$1.99", Lives: 3},
		{ID: "starter_pack", Name: "Starter Pack", Price: "$2.99", Coins: 200, Lives: 1},
	}
}

const (
	adReward      = 25  // Coins per watched ad
	adDelay       = 1.5 // Simulated ad playback, seconds
	purchaseDelay = 0.8 // Simulated store round trip, seconds
)

type pending struct {
	remaining float64
	result    Result
	resolve   func(Result)
}

// Shop owns the mock monetization state. Completion is polled through
// Update(dt) on the host's frame cadence.
type Shop struct {
	flags  Flags
	queue  []pending
	logger *log.Logger
}

// NewShop creates a shop gated by the given flags.
func NewShop(flags Flags) *Shop {
	return &Shop{
		flags: flags,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "shop",
		}),
	}
}

// WatchAd starts a simulated rewarded ad. The callback fires from a
// later Update call, or immediately when ads are disabled.
func (s *Shop) WatchAd(resolve func(Result)) {
	if !s.flags.AdsEnabled {
		resolve(Result{Success: false, Err: ErrAdsDisabled})
		return
	}

	s.logger.Debug("ad started", "reward", adReward)
	s.queue = append(s.queue, pending{
		remaining: adDelay,
		result: Result{
			Success:       true,
			TransactionID: uuid.NewString(),
			Coins:         adReward,
		},
		resolve: resolve,
	})
}

// Purchase starts a simulated IAP for the given product. The callback
// fires from a later Update call; unknown products and disabled IAP
// fail immediately.
func (s *Shop) Purchase(productID string, resolve func(Result)) {
	if !s.flags.IAPEnabled {
		resolve(Result{Success: false, ProductID: productID, Err: ErrIAPDisabled})
		return
	}

	var product *Product
	for _, p := range Products() {
		if p.ID == productID {
			product = &p
			break
		}
	}
	if product == nil {
		resolve(Result{
			Success:   false,
			ProductID: productID,
			Err:       fmt.Errorf("%w: %s", ErrUnknownProduct, productID),
		})
		return
	}

	s.logger.Debug("purchase started", "product", productID)
	s.queue = append(s.queue, pending{
		remaining: purchaseDelay,
		result: Result{
			Success:       true,
			ProductID:     product.ID,
			TransactionID: uuid.NewString(),
			Coins:         product.Coins,
			Lives:         product.Lives,
		},
		resolve: resolve,
	})
}

// Pending reports how many operations are still in flight.
func (s *Shop) Pending() int {
	return len(s.queue)
}

// Update advances the simulated delays and resolves finished
// operations in request order.
func (s *Shop) Update(dt float64) {
	if len(s.queue) == 0 {
		return
	}

	var due []pending
	remaining := s.queue[:0]
	for _, p := range s.queue {
		p.remaining -= dt
		if p.remaining > 0 {
			remaining = append(remaining, p)
		} else {
			due = append(due, p)
		}
	}
	// Swap the queue before resolving so a callback can safely start
	// another operation.
	s.queue = remaining

	for _, p := range due {
		s.logger.Debug("resolved", "tx", p.result.TransactionID, "coins", p.result.Coins)
		p.resolve(p.result)
	}
}
