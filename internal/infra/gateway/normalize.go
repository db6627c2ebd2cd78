package gateway

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"waiter/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type object map[string]json.RawMessage

// unwrapData returns the value under "data" when body is an object carrying
// that key, and body unchanged otherwise.
func unwrapData(body []byte) json.RawMessage {
	obj, ok := asObject(body)
	if !ok {
		return body
	}
	if data, ok := obj["data"]; ok {
		return data
	}

	return body
}

// errorMessage extracts the backend's human-readable message from an error body.
func errorMessage(body []byte) string {
	obj, ok := asObject(body)
	if !ok {
		return ""
	}

	return obj.str("message", "error")
}

func asObject(raw []byte) (object, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}

	var obj object
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, false
	}

	return obj, true
}

func asArray(raw []byte) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(trimmed, &arr); err != nil {
		return nil, false
	}

	return arr, true
}

// str returns the first key holding a non-empty string or a number, as text.
func (o object) str(keys ...string) string {
	for _, key := range keys {
		raw, ok := o[key]
		if !ok {
			continue
		}
		if s, ok := scalarText(raw); ok && s != "" {
			return s
		}
	}

	return ""
}

// integer returns the first key holding a whole number, accepting numeric strings.
func (o object) integer(keys ...string) (int, bool) {
	for _, key := range keys {
		raw, ok := o[key]
		if !ok {
			continue
		}
		s, ok := scalarText(raw)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, true
		}
		if d, err := decimal.NewFromString(strings.TrimSpace(s)); err == nil && d.IsInteger() {
			return int(d.IntPart()), true
		}
	}

	return 0, false
}

// amount returns the first key holding a number or numeric string.
func (o object) amount(keys ...string) (decimal.Decimal, bool) {
	for _, key := range keys {
		raw, ok := o[key]
		if !ok {
			continue
		}
		s, ok := scalarText(raw)
		if !ok {
			continue
		}
		if d, err := decimal.NewFromString(strings.TrimSpace(s)); err == nil {
			return d, true
		}
	}

	return decimal.Zero, false
}

// scalarText renders a JSON string or number as text. Other kinds are rejected.
func scalarText(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", false
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false
		}

		return s, true
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return "", false
		}

		return n.String(), true
	default:
		return "", false
	}
}

// decodeOrderList accepts a bare array or {orders: [...]}. Any other shape,
// and any entry that is not an order object with an id, is dropped.
func decodeOrderList(raw json.RawMessage) []*entity.Order {
	entries, ok := asArray(raw)
	if !ok {
		obj, isObj := asObject(raw)
		if !isObj {
			return []*entity.Order{}
		}
		if entries, ok = asArray(obj["orders"]); !ok {
			return []*entity.Order{}
		}
	}

	orders := make([]*entity.Order, 0, len(entries))
	for _, entry := range entries {
		order, ok := decodeOrder(entry)
		if !ok || order.ID == "" {
			continue
		}
		orders = append(orders, order)
	}

	return orders
}

// decodeOrder reads one order, tolerating the backend's alternate key names.
func decodeOrder(raw json.RawMessage) (*entity.Order, bool) {
	obj, ok := asObject(raw)
	if !ok {
		return nil, false
	}

	order := &entity.Order{
		ID:           obj.str("id", "_id", "orderId"),
		CustomerName: obj.str("customerName"),
	}
	order.TableNumber, _ = obj.integer("tableNumber", "table_no")

	status := obj.str("status", "orderStatus", "state")
	if parsed, ok := entity.ParseOrderStatus(status); ok {
		order.Status = parsed
	} else {
		order.Status = entity.OrderStatus(status)
	}

	if items, ok := asArray(obj["items"]); ok {
		order.Items = make([]entity.OrderItem, 0, len(items))
		for _, rawItem := range items {
			itemObj, ok := asObject(rawItem)
			if !ok {
				continue
			}
			item := entity.OrderItem{Name: itemObj.str("name")}
			item.Quantity, _ = itemObj.integer("quantity")
			item.Price, _ = itemObj.amount("price")
			order.Items = append(order.Items, item)
		}
	}

	// Missing amounts are derived from the items the same way the create form does.
	totals := entity.ComputeTotals(order.Items)
	var found bool
	if order.Subtotal, found = obj.amount("subtotal"); !found {
		order.Subtotal = totals.Subtotal
	}
	if order.VAT, found = obj.amount("vat"); !found {
		order.VAT = totals.VAT
	}
	if order.Total, found = obj.amount("total", "totalAmount"); !found {
		order.Total = order.Subtotal.Add(order.VAT)
	}

	return order, true
}

// decodeUser reads a staff user from a login or "me" response, looking
// inside a nested "user" object when present.
func decodeUser(raw json.RawMessage) (*entity.StaffUser, bool) {
	obj, ok := asObject(raw)
	if !ok {
		return nil, false
	}
	if nested, ok := asObject(obj["user"]); ok {
		obj = nested
	}

	return &entity.StaffUser{
		Role: entity.Role(obj.str("role")),
		Name: obj.str("fullName", "name", "username"),
	}, true
}

func decodeProfile(raw json.RawMessage) *entity.Profile {
	profile := &entity.Profile{AttendanceDates: []string{}}

	obj, ok := asObject(raw)
	if !ok {
		return profile
	}

	profile.Name = obj.str("name")
	profile.CompletedOrdersCount, _ = obj.integer("completedOrdersCount")
	if dates, ok := asArray(obj["attendanceDates"]); ok {
		for _, rawDate := range dates {
			if s, ok := scalarText(rawDate); ok && s != "" {
				profile.AttendanceDates = append(profile.AttendanceDates, s)
			}
		}
	}

	return profile
}

func decodeSettings(raw json.RawMessage) *entity.RestaurantSettings {
	settings := &entity.RestaurantSettings{}
	if obj, ok := asObject(raw); ok {
		settings.LogoURL = obj.str("logoUrl")
		settings.Name = obj.str("name", "restaurantName", "title")
	}

	return settings
}

// jsonAmount writes an exact decimal as a JSON number.
func jsonAmount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
