package parse

import (
	"reflect"
	"testing"
)

func TestMarketPayloadVariants(t *testing.T) {
	t.Parallel()

	variants := map[string]string{
		"full":        `{"market":[{"id":"p5","firstName":"Jamal","lastName":"Musiala","price":42000000,"expiry":1750000000,"offers":3,"seller":{"id":"u2","name":"kim"}}]}`,
		"abbreviated": `{"it":[{"i":"p5","fn":"Jamal","ln":"Musiala","prc":4.2e7,"exp":1750000000,"ofc":3,"slr":{"i":"u2","n":"kim"}}]}`,
		"legacy":      `{"players":[{"id":"p5","vorname":"Jamal","nachname":"Musiala","price":42000000,"e":1750000000,"offerCount":3,"u":{"id":"u2","unm":"kim"}}]}`,
	}

	for name, raw := range variants {
		raw := raw
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			listings := Market(mustDecode(t, raw))
			if len(listings) != 1 {
				t.Fatalf("expected 1 listing, got %d", len(listings))
			}
			got := listings[0]
			if got.ID != "p5" {
				t.Fatalf("id = %q", got.ID)
			}
			if got.FirstName != "Jamal" || got.LastName != "Musiala" {
				t.Fatalf("name = %q %q", got.FirstName, got.LastName)
			}
			if got.Price != 42000000 {
				t.Fatalf("price = %d", got.Price)
			}
			if got.Expiry != 1750000000 {
				t.Fatalf("expiry = %d", got.Expiry)
			}
			if got.Offers != 3 {
				t.Fatalf("offers = %d", got.Offers)
			}
			if got.Seller.ID != "u2" || got.Seller.Name != "kim" {
				t.Fatalf("seller = %+v", got.Seller)
			}
		})
	}
}

func TestMarket_RepeatedParseYieldsEqualListings(t *testing.T) {
	t.Parallel()

	// Every listing here carries a provider id, so two passes over the same
	// record must agree in every field. Listings without ids get a fresh
	// generated id per pass and sit outside this guarantee.
	root := mustDecode(t, `{"it":[
		{"i":"p5","fn":"Jamal","ln":"Musiala","prc":4.2e7,"exp":1750000000,"ofc":3,"slr":{"i":"u2","n":"kim"},"owner":{"id":"u7","name":"lena"}},
		{"i":"p6","n":"Kane","prc":100}
	]}`)

	first := Market(root)
	second := Market(root)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated parse diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestMarketPlayerOwner(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		raw       string
		wantOwner bool
	}{
		{
			name:      "owner with id and name",
			raw:       `{"id":"p1","name":"Kane","owner":{"id":"u7","name":"lena","vf":true,"st":2,"uim":"lena.png"}}`,
			wantOwner: true,
		},
		{
			name:      "owner missing name",
			raw:       `{"id":"p1","name":"Kane","owner":{"id":"u7"}}`,
			wantOwner: false,
		},
		{
			name:      "owner missing id",
			raw:       `{"id":"p1","name":"Kane","usr":{"name":"lena"}}`,
			wantOwner: false,
		},
		{
			name:      "no owner at all",
			raw:       `{"id":"p1","name":"Kane","price":100}`,
			wantOwner: false,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			listing := MarketPlayer(mustDecode(t, tc.raw))
			if tc.wantOwner {
				if listing.Owner == nil {
					t.Fatal("expected owner, got nil")
				}
				if listing.Owner.ID != "u7" || listing.Owner.Name != "lena" {
					t.Fatalf("owner = %+v", listing.Owner)
				}
				if !listing.Owner.Verified || listing.Owner.Status != 2 || listing.Owner.Image != "lena.png" {
					t.Fatalf("owner detail = %+v", listing.Owner)
				}
				return
			}
			if listing.Owner != nil {
				t.Fatalf("expected no owner, got %+v", listing.Owner)
			}
		})
	}
}
