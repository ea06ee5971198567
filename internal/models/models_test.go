package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalAcceptsStringAndNumber(t *testing.T) {
	tests := []struct {
		name string
		body string
		want ID
	}{
		{"string id", `{"id":"42"}`, "42"},
		{"numeric id", `{"id":42}`, "42"},
		{"uuid id", `{"id":"a2c4e6"}`, "a2c4e6"},
		{"null id", `{"id":null}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				ID ID `json:"id"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &out))
			assert.Equal(t, tt.want, out.ID)
		})
	}
}

func TestID_UnmarshalNestedRecord(t *testing.T) {
	body := `{"id":7,"name":"Taller","type_of_event_id":"3","location_id":12}`

	var e Event
	require.NoError(t, json.Unmarshal([]byte(body), &e))

	assert.Equal(t, ID("7"), e.ID)
	assert.Equal(t, ID("3"), e.TypeOfEventID)
	assert.Equal(t, ID("12"), e.LocationID)
	assert.False(t, e.ID.IsZero())
}

func TestModality_Valid(t *testing.T) {
	assert.True(t, ModalityVirtual.Valid())
	assert.True(t, ModalityPresencial.Valid())
	assert.True(t, ModalityHibrido.Valid())
	assert.False(t, Modality("").Valid())
	assert.False(t, Modality("remota").Valid())
}

func TestModality_RequiresVideoLink(t *testing.T) {
	assert.True(t, ModalityVirtual.RequiresVideoLink())
	assert.True(t, ModalityHibrido.RequiresVideoLink())
	assert.False(t, ModalityPresencial.RequiresVideoLink())
}

func TestResource_TotalCost(t *testing.T) {
	r := Resource{QuantityAvailable: 3, Price: 1500}
	assert.Equal(t, 4500.0, r.TotalCost())

	f := Food{QuantityAvailable: 0, Price: 1500}
	assert.Equal(t, 0.0, f.TotalCost())
}

func TestInvoice_Total(t *testing.T) {
	inv := Invoice{
		Items: []InvoiceItem{
			{Description: "Alquiler de sala", Quantity: 1, UnitPrice: 100000},
			{Description: "Refrigerios", Quantity: 50, UnitPrice: 2500},
		},
	}
	assert.Equal(t, 225000.0, inv.Total())
}
