package b2b

// Payload is a JSON-compatible request fragment assembled by a builder.
type Payload map[string]any

// clonePayload copies a payload deeply enough that a built result cannot be
// mutated through the builder (nested Payload values and []Payload slices
// are copied; leaf values are shared).
func clonePayload(p Payload) Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Payload:
		return clonePayload(t)
	case map[string]any:
		return clonePayload(Payload(t))
	case []Payload:
		items := make([]Payload, len(t))
		for i, item := range t {
			items[i] = clonePayload(item)
		}
		return items
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = cloneValue(item)
		}
		return items
	default:
		return v
	}
}

// requireFields reports the first missing key, in the given order.
func requireFields(p Payload, fields []string) error {
	for _, f := range fields {
		if _, ok := p[f]; !ok {
			return &ValidationError{Field: f}
		}
	}
	return nil
}

// OrderBuilder assembles an order submission for Client.CreateOrder.
// Builders are single-use: configure, Build, discard.
type OrderBuilder struct {
	order Payload
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{order: Payload{}}
}

func (b *OrderBuilder) SetOriginalOrderID(id string) *OrderBuilder {
	b.order["original_order_id"] = id
	return b
}

func (b *OrderBuilder) SetStoreCode(code string) *OrderBuilder {
	b.order["store_code"] = code
	return b
}

// SetCustomer records the recipient. The phone number is canonicalized, see
// normalizePhone.
func (b *OrderBuilder) SetCustomer(name, phone string) *OrderBuilder {
	b.order["customer"] = Payload{
		"name":  name,
		"phone": normalizePhone(phone),
	}
	return b
}

func (b *OrderBuilder) SetDelivery(delivery Payload) *OrderBuilder {
	b.order["delivery"] = delivery
	return b
}

func (b *OrderBuilder) SetCollect(collect Payload) *OrderBuilder {
	b.order["collect"] = collect
	return b
}

func (b *OrderBuilder) SetCart(items []Payload) *OrderBuilder {
	b.order["cart"] = Payload{"items": items}
	return b
}

// SetPrice records the order total in major units; it is stored truncated
// to minor units. Currency defaults to RUB.
func (b *OrderBuilder) SetPrice(total float64, currency ...string) *OrderBuilder {
	b.order["price"] = Payload{
		"total": moneyValue(total, currency),
	}
	return b
}

func (b *OrderBuilder) SetComment(comment string) *OrderBuilder {
	b.order["comment"] = comment
	return b
}

var orderRequiredFields = []string{"original_order_id", "store_code", "customer", "collect", "cart", "price"}

// Build validates required fields and returns an independent copy of the
// accumulated order.
func (b *OrderBuilder) Build() (Payload, error) {
	if err := requireFields(b.order, orderRequiredFields); err != nil {
		return nil, err
	}
	return clonePayload(b.order), nil
}

// CartItemBuilder assembles one cart line for OrderBuilder.SetCart.
type CartItemBuilder struct {
	item Payload
}

func NewCartItemBuilder() *CartItemBuilder {
	return &CartItemBuilder{item: Payload{}}
}

func (b *CartItemBuilder) SetGoodID(goodID string) *CartItemBuilder {
	b.item["good_id"] = goodID
	return b
}

func (b *CartItemBuilder) SetName(name string) *CartItemBuilder {
	b.item["name"] = name
	return b
}

// SetQuantity records the ordered quantity. Unit defaults to "apiece".
func (b *CartItemBuilder) SetQuantity(quantity int, unit ...string) *CartItemBuilder {
	u := "apiece"
	if len(unit) > 0 {
		u = unit[0]
	}
	b.item["qnty"] = quantity
	b.item["unit"] = u
	return b
}

// SetPrice records the per-line price in major units, truncated to minor
// units. Currency defaults to RUB.
func (b *CartItemBuilder) SetPrice(price float64, currency ...string) *CartItemBuilder {
	b.item["price"] = Payload{
		"original": moneyValue(price, currency),
	}
	return b
}

// SetMarking attaches mandatory-marking (chestny znak) data to the line.
func (b *CartItemBuilder) SetMarking(marking Payload) *CartItemBuilder {
	b.item["marking"] = marking
	return b
}

var cartItemRequiredFields = []string{"good_id", "name", "qnty", "unit", "price"}

func (b *CartItemBuilder) Build() (Payload, error) {
	if err := requireFields(b.item, cartItemRequiredFields); err != nil {
		return nil, err
	}
	return clonePayload(b.item), nil
}

// DeliveryBuilder assembles the optional delivery section of an order.
// Every field is optional; an empty Build result is valid.
type DeliveryBuilder struct {
	delivery Payload
}

func NewDeliveryBuilder() *DeliveryBuilder {
	return &DeliveryBuilder{delivery: Payload{}}
}

func (b *DeliveryBuilder) SetTimeSlot(from, to string) *DeliveryBuilder {
	b.delivery["time_slot"] = Payload{
		"from": from,
		"to":   to,
	}
	return b
}

func (b *DeliveryBuilder) SetAddress(address Payload) *DeliveryBuilder {
	b.delivery["address"] = address
	return b
}

func (b *DeliveryBuilder) SetCoordinates(lat, lng float64) *DeliveryBuilder {
	b.delivery["coordinates"] = Payload{
		"lat": lat,
		"lng": lng,
	}
	return b
}

// SetPrice records the base delivery price in major units, truncated to
// minor units. Currency defaults to RUB.
func (b *DeliveryBuilder) SetPrice(price float64, currency ...string) *DeliveryBuilder {
	b.delivery["price"] = Payload{
		"base": moneyValue(price, currency),
	}
	return b
}

func (b *DeliveryBuilder) Build() (Payload, error) {
	return clonePayload(b.delivery), nil
}

// CollectBuilder assembles the collect section of an order.
type CollectBuilder struct {
	collect Payload
}

func NewCollectBuilder() *CollectBuilder {
	return &CollectBuilder{collect: Payload{}}
}

func (b *CollectBuilder) SetStrategy(strategy string) *CollectBuilder {
	b.collect["strategy"] = strategy
	return b
}

func (b *CollectBuilder) SetDesiredAt(datetime string) *CollectBuilder {
	b.collect["desired_at"] = datetime
	return b
}

func (b *CollectBuilder) Build() (Payload, error) {
	if err := requireFields(b.collect, []string{"strategy"}); err != nil {
		return nil, err
	}
	return clonePayload(b.collect), nil
}

func moneyValue(major float64, currency []string) Payload {
	cur := "RUB"
	if len(currency) > 0 {
		cur = currency[0]
	}
	return Payload{
		"value":    minorUnits(major),
		"currency": cur,
	}
}
