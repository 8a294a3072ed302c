package market

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"tradesense/internal/model/entity"
)

func TestGenerateStocks(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	now := time.Now()
	stocks := GenerateStocks(r, now)
	if len(stocks) != 8 {
		t.Fatalf("expected 8 sample stocks, got %d", len(stocks))
	}
	seen := map[string]bool{}
	for _, s := range stocks {
		if seen[s.Symbol] {
			t.Errorf("duplicate symbol %s", s.Symbol)
		}
		seen[s.Symbol] = true
		if s.CurrentPrice <= 0 || s.PreviousClose <= 0 {
			t.Errorf("%s has non-positive price: %+v", s.Symbol, s)
		}
		if s.Volume < 100000 {
			t.Errorf("%s volume below floor: %d", s.Symbol, s.Volume)
		}
		// change 与价格口径一致
		if math.Abs((s.CurrentPrice-s.PreviousClose)-s.Change) > 0.02 {
			t.Errorf("%s change inconsistent: price %v close %v change %v",
				s.Symbol, s.CurrentPrice, s.PreviousClose, s.Change)
		}
		if s.LastUpdated != now.UnixMilli() {
			t.Errorf("%s lastUpdated not set", s.Symbol)
		}
	}
}

func TestNextPriceStaysPositive(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	price := 0.02
	for i := 0; i < 10000; i++ {
		price = NextPrice(r, price)
		if price <= 0 {
			t.Fatalf("price went non-positive at step %d", i)
		}
	}
}

func TestNextPriceBounded(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		next := NextPrice(r, 1000)
		if next < 994 || next > 1006 {
			t.Fatalf("step too large: 1000 -> %v", next)
		}
	}
}

func TestReprice(t *testing.T) {
	now := time.Now()
	s := entity.Stock{Symbol: "TCS", CurrentPrice: 100, PreviousClose: 80}
	out := Reprice(s, 90, now)
	if out.CurrentPrice != 90 || out.Change != 10 {
		t.Errorf("reprice wrong: %+v", out)
	}
	if out.ChangePercent != 12.5 {
		t.Errorf("changePercent = %v, want 12.5", out.ChangePercent)
	}
	if out.LastUpdated != now.UnixMilli() {
		t.Error("lastUpdated not refreshed")
	}
}

func TestRepriceZeroClose(t *testing.T) {
	out := Reprice(entity.Stock{PreviousClose: 0}, 10, time.Now())
	if out.ChangePercent != 0 {
		t.Errorf("changePercent must be 0 on zero close, got %v", out.ChangePercent)
	}
}
