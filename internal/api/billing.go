package api

import (
	"context"

	"github.com/eventosia/client/internal/models"
)

// GetEventInvoice returns the billing summary for one event.
func (c *Client) GetEventInvoice(ctx context.Context, eventID models.ID) (*models.Invoice, error) {
	var out models.Invoice
	if err := c.get(ctx, "/billing/events/"+eventID.String(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LinkInvoiceClient attaches a client (the billed user) to an invoice.
func (c *Client) LinkInvoiceClient(ctx context.Context, invoiceID, clientID models.ID) (*models.Invoice, error) {
	payload := map[string]string{"client_id": clientID.String()}
	var out models.Invoice
	if err := c.put(ctx, "/billing/"+invoiceID.String()+"/client", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkInvoicePaid settles an invoice.
func (c *Client) MarkInvoicePaid(ctx context.Context, invoiceID models.ID) (*models.Invoice, error) {
	var out models.Invoice
	if err := c.put(ctx, "/billing/"+invoiceID.String()+"/pay", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
