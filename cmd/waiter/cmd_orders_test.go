package main

import (
	"testing"

	"waiter/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItem(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    entity.OrderItem
		wantErr bool
	}{
		{
			name: "plain",
			raw:  "Mango Lassi:1:3.75",
			want: entity.OrderItem{Name: "Mango Lassi", Quantity: 1, Price: decimal.RequireFromString("3.75")},
		},
		{
			name: "name with colon",
			raw:  "Combo: Rice & Curry:2:9",
			want: entity.OrderItem{Name: "Combo: Rice & Curry", Quantity: 2, Price: decimal.NewFromInt(9)},
		},
		{
			name: "zero quantity is left for validation",
			raw:  "Tea:0:1.00",
			want: entity.OrderItem{Name: "Tea", Quantity: 0, Price: decimal.RequireFromString("1.00")},
		},
		{name: "missing price", raw: "Tea:1", wantErr: true},
		{name: "no separators", raw: "Tea", wantErr: true},
		{name: "bad quantity", raw: "Tea:x:1", wantErr: true},
		{name: "bad price", raw: "Tea:1:abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseItem(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.Quantity, got.Quantity)
			assert.True(t, tt.want.Price.Equal(got.Price))
		})
	}
}

func TestBuildFilter(t *testing.T) {
	filter, err := buildFilter([]string{"ready", "Preparing"}, " 4 ")
	require.NoError(t, err)
	assert.Equal(t, []entity.OrderStatus{entity.OrderStatusReady, entity.OrderStatusPreparing}, filter.Statuses)
	assert.Equal(t, "4", filter.TableQuery)

	_, err = buildFilter([]string{"cooking"}, "")
	assert.Error(t, err)
}

func TestStatusOrRaw(t *testing.T) {
	assert.Equal(t, entity.OrderStatusServed, statusOrRaw("served"))
	assert.Equal(t, entity.OrderStatus("Cooking"), statusOrRaw(" Cooking "))
	assert.Equal(t, entity.OrderStatus(""), statusOrRaw(""))
}
