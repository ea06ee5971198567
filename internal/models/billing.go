package models

import "time"

// InvoiceItem is one line of an event invoice.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// TotalCost is quantity times unit price.
func (i InvoiceItem) TotalCost() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Invoice is the billing summary of one event.
type Invoice struct {
	ID         ID            `json:"id"`
	EventID    ID            `json:"event_id"`
	ClientID   ID            `json:"client_id,omitempty"`
	ClientName string        `json:"client_name,omitempty"`
	Items      []InvoiceItem `json:"items"`
	IssuedAt   time.Time     `json:"issued_at"`
	Paid       bool          `json:"paid"`
}

// Total sums all line totals.
func (inv Invoice) Total() float64 {
	var total float64
	for _, item := range inv.Items {
		total += item.TotalCost()
	}
	return total
}
