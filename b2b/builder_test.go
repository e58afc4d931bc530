package b2b

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validOrderBuilder() *OrderBuilder {
	item, _ := NewCartItemBuilder().
		SetGoodID("g-1").
		SetName("milk").
		SetQuantity(2).
		SetPrice(79.90).
		Build()

	collect, _ := NewCollectBuilder().SetStrategy("express").Build()

	return NewOrderBuilder().
		SetOriginalOrderID("ext-42").
		SetStoreCode("store-7").
		SetCustomer("Ivan", "+79001234567").
		SetCollect(collect).
		SetCart([]Payload{item}).
		SetPrice(159.80)
}

func TestOrderBuilder_Build(t *testing.T) {
	t.Parallel()

	order, err := validOrderBuilder().
		SetComment("leave at the door").
		Build()
	require.NoError(t, err)

	require.Equal(t, "ext-42", order["original_order_id"])
	require.Equal(t, "store-7", order["store_code"])
	require.Equal(t, "leave at the door", order["comment"])

	customer, ok := order["customer"].(Payload)
	require.True(t, ok)
	require.Equal(t, "Ivan", customer["name"])
	require.Equal(t, "+79001234567", customer["phone"])

	price, ok := order["price"].(Payload)
	require.True(t, ok)
	total, ok := price["total"].(Payload)
	require.True(t, ok)
	require.Equal(t, int64(15980), total["value"])
	require.Equal(t, "RUB", total["currency"])

	cart, ok := order["cart"].(Payload)
	require.True(t, ok)
	items, ok := cart["items"].([]Payload)
	require.True(t, ok)
	require.Len(t, items, 1)

	// delivery was never set and must not appear
	_, hasDelivery := order["delivery"]
	require.False(t, hasDelivery)
}

func TestOrderBuilder_RequiredFieldOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		omit      string
		wantField string
	}{
		{name: "no original id", omit: "original_order_id", wantField: "original_order_id"},
		{name: "no store code", omit: "store_code", wantField: "store_code"},
		{name: "no customer", omit: "customer", wantField: "customer"},
		{name: "no collect", omit: "collect", wantField: "collect"},
		{name: "no cart", omit: "cart", wantField: "cart"},
		{name: "no price", omit: "price", wantField: "price"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := validOrderBuilder()
			delete(b.order, tt.omit)

			_, err := b.Build()
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestOrderBuilder_FirstMissingFieldWins(t *testing.T) {
	t.Parallel()

	// Only customer is set: the error must name original_order_id, the
	// first field in the documented order.
	_, err := NewOrderBuilder().SetCustomer("Ivan", "89001234567").Build()
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "original_order_id", ve.Field)
	require.True(t, IsValidationError(err))
}

func TestOrderBuilder_BuildCopyIsIndependent(t *testing.T) {
	t.Parallel()

	b := validOrderBuilder()
	built, err := b.Build()
	require.NoError(t, err)

	b.SetStoreCode("mutated")
	b.SetCustomer("Eva", "111")

	require.Equal(t, "store-7", built["store_code"])
	customer := built["customer"].(Payload)
	require.Equal(t, "Ivan", customer["name"])
}

func TestCartItemBuilder_Build(t *testing.T) {
	t.Parallel()

	item, err := NewCartItemBuilder().
		SetGoodID("g-9").
		SetName("bread").
		SetQuantity(3, "kg").
		SetPrice(49.99, "RUB").
		SetMarking(Payload{"codes": []any{"0104600"}}).
		Build()
	require.NoError(t, err)

	require.Equal(t, "g-9", item["good_id"])
	require.Equal(t, 3, item["qnty"])
	require.Equal(t, "kg", item["unit"])

	price := item["price"].(Payload)
	original := price["original"].(Payload)
	require.Equal(t, int64(4999), original["value"])
}

func TestCartItemBuilder_DefaultUnit(t *testing.T) {
	t.Parallel()

	item, err := NewCartItemBuilder().
		SetGoodID("g-1").
		SetName("milk").
		SetQuantity(1).
		SetPrice(10).
		Build()
	require.NoError(t, err)
	require.Equal(t, "apiece", item["unit"])
}

func TestCartItemBuilder_RequiredFields(t *testing.T) {
	t.Parallel()

	_, err := NewCartItemBuilder().SetName("milk").Build()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "good_id", ve.Field)
}

func TestDeliveryBuilder_EmptyIsValid(t *testing.T) {
	t.Parallel()

	delivery, err := NewDeliveryBuilder().Build()
	require.NoError(t, err)
	require.Empty(t, delivery)
}

func TestDeliveryBuilder_AllFields(t *testing.T) {
	t.Parallel()

	delivery, err := NewDeliveryBuilder().
		SetTimeSlot("2026-09-01T10:00:00Z", "2026-09-01T12:00:00Z").
		SetAddress(Payload{"city": "Krasnodar", "street": "Krasnaya", "house": "1"}).
		SetCoordinates(45.0355, 38.9753).
		SetPrice(199.50).
		Build()
	require.NoError(t, err)

	slot := delivery["time_slot"].(Payload)
	require.Equal(t, "2026-09-01T10:00:00Z", slot["from"])

	coords := delivery["coordinates"].(Payload)
	require.Equal(t, 45.0355, coords["lat"])
	require.Equal(t, 38.9753, coords["lng"])

	price := delivery["price"].(Payload)
	base := price["base"].(Payload)
	require.Equal(t, int64(19950), base["value"])
	require.Equal(t, "RUB", base["currency"])
}

func TestCollectBuilder_StrategyRequired(t *testing.T) {
	t.Parallel()

	_, err := NewCollectBuilder().SetDesiredAt("2026-09-01T10:00:00Z").Build()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "strategy", ve.Field)

	collect, err := NewCollectBuilder().
		SetStrategy("by_time").
		SetDesiredAt("2026-09-01T10:00:00Z").
		Build()
	require.NoError(t, err)
	require.Equal(t, "by_time", collect["strategy"])
	require.Equal(t, "2026-09-01T10:00:00Z", collect["desired_at"])
}
