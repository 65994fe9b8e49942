package monetize

import (
	"errors"
	"testing"
)

func TestWatchAdResolvesAfterDelay(t *testing.T) {
	shop := NewShop(Flags{AdsEnabled: true})

	var results []Result
	shop.WatchAd(func(r Result) { results = append(results, r) })

	if shop.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", shop.Pending())
	}

	shop.Update(1.0)
	if len(results) != 0 {
		t.Fatal("ad resolved before the simulated playback finished")
	}

	shop.Update(1.0)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	r := results[0]
	if !r.Success || r.Coins != adReward || r.Err != nil {
		t.Fatalf("result = %+v, want successful ad reward", r)
	}
	if r.TransactionID == "" {
		t.Fatal("ad reward must carry a transaction id")
	}
	if shop.Pending() != 0 {
		t.Fatalf("Pending() = %d after resolution, want 0", shop.Pending())
	}
}

func TestWatchAdDisabledFailsImmediately(t *testing.T) {
	shop := NewShop(Flags{})

	var results []Result
	shop.WatchAd(func(r Result) { results = append(results, r) })

	if len(results) != 1 {
		t.Fatalf("got %d results, want immediate failure", len(results))
	}
	if results[0].Success || !errors.Is(results[0].Err, ErrAdsDisabled) {
		t.Fatalf("result = %+v, want ads-disabled failure", results[0])
	}
	if shop.Pending() != 0 {
		t.Fatal("disabled ad must not queue an operation")
	}
}

func TestPurchaseGrantsBundle(t *testing.T) {
	shop := NewShop(Flags{IAPEnabled: true})

	var results []Result
	shop.Purchase("starter_pack", func(r Result) { results = append(results, r) })

	shop.Update(1.0)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	r := results[0]
	if !r.Success || r.ProductID != "starter_pack" {
		t.Fatalf("result = %+v, want starter_pack success", r)
	}
	if r.Coins != 200 || r.Lives != 1 {
		t.Fatalf("bundle = %d coins / %d lives, want 200/1", r.Coins, r.Lives)
	}
}

func TestPurchaseUnknownProductFails(t *testing.T) {
	shop := NewShop(Flags{IAPEnabled: true})

	var results []Result
	shop.Purchase("no_such_product", func(r Result) { results = append(results, r) })

	if len(results) != 1 {
		t.Fatal("unknown product should fail immediately")
	}
	if results[0].Success || !errors.Is(results[0].Err, ErrUnknownProduct) {
		t.Fatalf("result = %+v, want unknown-product failure", results[0])
	}
}

func TestPurchaseDisabledFailsImmediately(t *testing.T) {
	shop := NewShop(Flags{AdsEnabled: true})

	var results []Result
	shop.Purchase("coins_small", func(r Result) { results = append(results, r) })

	if len(results) != 1 || !errors.Is(results[0].Err, ErrIAPDisabled) {
		t.Fatalf("results = %+v, want iap-disabled failure", results)
	}
}

func TestOperationsResolveInRequestOrder(t *testing.T) {
	shop := NewShop(Flags{AdsEnabled: true, IAPEnabled: true})

	var order []string
	shop.Purchase("coins_small", func(r Result) { order = append(order, "purchase") })
	shop.WatchAd(func(r Result) { order = append(order, "ad") })

	shop.Update(2.0)

	if len(order) != 2 || order[0] != "purchase" || order[1] != "ad" {
		t.Fatalf("resolution order = %v, want [purchase ad]", order)
	}
}

func TestCallbackMayStartAnotherOperation(t *testing.T) {
	shop := NewShop(Flags{AdsEnabled: true})

	resolved := 0
	shop.WatchAd(func(r Result) {
		resolved++
		shop.WatchAd(func(Result) { resolved++ })
	})

	shop.Update(2.0)
	if resolved != 1 || shop.Pending() != 1 {
		t.Fatalf("resolved=%d pending=%d, want chained op queued", resolved, shop.Pending())
	}

	shop.Update(2.0)
	if resolved != 2 {
		t.Fatalf("resolved=%d, want chained op resolved", resolved)
	}
}

func TestTransactionIDsAreUnique(t *testing.T) {
	shop := NewShop(Flags{AdsEnabled: true})

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		shop.WatchAd(func(r Result) {
			if seen[r.TransactionID] {
				t.Errorf("duplicate transaction id %s", r.TransactionID)
			}
			seen[r.TransactionID] = true
		})
	}
	shop.Update(2.0)

	if len(seen) != 5 {
		t.Fatalf("resolved %d ads, want 5", len(seen))
	}
}
