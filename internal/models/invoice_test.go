package models

import (
	"testing"
	"time"
)

func TestInvoiceRecalculate(t *testing.T) {
	inv := Invoice{
		Items: []LineItem{
			{Description: "Audit", Quantity: 2, Rate: 10000, Tax: 18},
			{Description: "Filing", Quantity: 1, Rate: 5000, Tax: 0},
		},
	}
	inv.Recalculate()

	if inv.Items[0].Subtotal != 20000 || inv.Items[0].TaxAmount != 3600 || inv.Items[0].Total != 23600 {
		t.Errorf("first line item = %+v", inv.Items[0])
	}
	if inv.Subtotal != 25000 {
		t.Errorf("Subtotal = %v, want 25000", inv.Subtotal)
	}
	if inv.Tax != 3600 {
		t.Errorf("Tax = %v, want 3600", inv.Tax)
	}
	if inv.Total != 28600 {
		t.Errorf("Total = %v, want 28600", inv.Total)
	}
}

func TestInvoiceRecalculateNoItems(t *testing.T) {
	inv := Invoice{Subtotal: 99, Tax: 9, Total: 108}
	inv.Recalculate()
	if inv.Subtotal != 0 || inv.Tax != 0 || inv.Total != 0 {
		t.Errorf("empty invoice totals = %+v, want zeros", inv)
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  InvoiceStatus
		dueDate Date
		want    InvoiceStatus
	}{
		{name: "paid stays paid", status: InvoicePaid, dueDate: mustDate(t, "2024-01-01"), want: InvoicePaid},
		{name: "past due", status: InvoicePending, dueDate: mustDate(t, "2024-06-01"), want: InvoiceOverdue},
		{name: "not yet due", status: InvoicePending, dueDate: mustDate(t, "2024-07-01"), want: InvoicePending},
		{name: "no due date", status: InvoicePending, want: InvoicePending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := Invoice{Status: tt.status, DueDate: tt.dueDate}
			if got := inv.EffectiveStatus(now); got != tt.want {
				t.Errorf("EffectiveStatus = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInvoiceSetAggregations(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	is := NewInvoiceSet([]Invoice{
		{ID: "i1", Status: InvoicePaid, Total: 10000, DueDate: mustDate(t, "2024-05-01")},
		{ID: "i2", Status: InvoicePending, Total: 20000, DueDate: mustDate(t, "2024-06-01")},
		{ID: "i3", Status: InvoicePending, Total: 5000, DueDate: mustDate(t, "2024-07-01")},
	})

	if got := is.Unpaid().Len(); got != 2 {
		t.Errorf("Unpaid = %d, want 2", got)
	}
	if got := is.Overdue(now).Len(); got != 1 {
		t.Errorf("Overdue = %d, want 1", got)
	}
	if got := is.Overdue(now).SumTotal(); got != 20000 {
		t.Errorf("Overdue total = %v, want 20000", got)
	}
	if got := is.CountPaid(); got != 1 {
		t.Errorf("CountPaid = %d, want 1", got)
	}
	if got := is.SumTotal(); got != 35000 {
		t.Errorf("SumTotal = %v, want 35000", got)
	}
}
