package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMarketService_Market(t *testing.T) {
	t.Parallel()

	source := newStubSource()
	source.raw["market"] = `{"it":[{"i":"p1","n":"Kane","prc":3.2e7,"exp":1750000000,"ofc":2,"slr":{"i":"u1","n":"kim"}}]}`

	svc := NewMarketService(source, nil, nil)
	listings, err := svc.Market(context.Background(), "l1")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.Equal(t, "Kane", listings[0].LastName)
	require.EqualValues(t, 32000000, listings[0].Price)
	require.Equal(t, "kim", listings[0].Seller.Name)
}

func TestMarketService_EnrichedMarket_FailedLookupKeepsShallow(t *testing.T) {
	t.Parallel()

	source := newStubSource()
	source.raw["market"] = `{"it":[{"i":"p1","n":"Kane","prc":100},{"i":"p2","n":"Wirtz","prc":200}]}`
	source.raw["detail:p1"] = `{"id":"p1","firstName":"Harry","lastName":"Kane","tid":"t2","tn":"Bayern"}`
	source.errs["detail:p2"] = errors.New("timeout")

	svc := NewMarketService(source, source, nil)
	listings, err := svc.EnrichedMarket(context.Background(), "l1")
	require.NoError(t, err)
	require.Len(t, listings, 2)

	require.Equal(t, "Harry", listings[0].FirstName)
	require.Equal(t, "Bayern", listings[0].TeamName)
	require.EqualValues(t, 100, listings[0].Price)

	// The failed lookup degrades to the shallow market fields.
	require.Equal(t, "Wirtz", listings[1].LastName)
	require.Empty(t, listings[1].TeamName)
	require.EqualValues(t, 200, listings[1].Price)
}

func TestMarketService_EnrichedMarket_NoDetailLookupConfigured(t *testing.T) {
	t.Parallel()

	source := newStubSource()
	source.raw["market"] = `{"it":[{"i":"p1","n":"Kane","prc":100}]}`

	svc := NewMarketService(source, nil, nil)
	listings, err := svc.EnrichedMarket(context.Background(), "l1")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.Equal(t, 0, source.callCount("detail:p1"))
}

func TestNewMarketService_WithEnrichWorkers(t *testing.T) {
	t.Parallel()

	svc := NewMarketService(newStubSource(), nil, nil, WithEnrichWorkers(2))
	require.Equal(t, 2, svc.enrichWorkers)

	// Out-of-range values keep the default.
	svc = NewMarketService(newStubSource(), nil, nil, WithEnrichWorkers(0))
	require.Equal(t, defaultEnrichWorkers, svc.enrichWorkers)
}

func TestMarketService_ValueChange(t *testing.T) {
	t.Parallel()

	source := newStubSource()
	source.raw["history:p1"] = `{"mvh":[{"d":19998,"m":900000},{"d":19999,"m":1000000}]}`

	svc := NewMarketService(source, nil, nil)
	svc.now = func() time.Time { return time.Unix(int64(20000)*86400, 0).UTC() }

	change, err := svc.ValueChange(context.Background(), "l1", "p1")
	require.NoError(t, err)
	require.EqualValues(t, 100000, change.AbsoluteChange)
	require.InDelta(t, 11.11, change.PercentageChange, 0.01)
	require.Equal(t, 1, change.DaysSinceUpdate)
}

func TestMarketService_ValueChange_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := NewMarketService(newStubSource(), nil, nil)

	_, err := svc.ValueChange(context.Background(), "", "p1")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	_, err = svc.ValueChange(context.Background(), "l1", " ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
