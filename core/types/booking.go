// Package types - Booking snapshot types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the booking lifecycle state
type BookingStatus string

const (
	// StatusPendingVendorConfirmation means the vendor has not yet accepted
	StatusPendingVendorConfirmation BookingStatus = "pending_vendor_confirmation"

	// StatusPendingDepositPayment means the vendor accepted, deposit outstanding
	StatusPendingDepositPayment BookingStatus = "pending_deposit_payment"

	// StatusPendingFinalPayment means the deposit cleared, balance outstanding
	StatusPendingFinalPayment BookingStatus = "pending_final_payment"

	// StatusConfirmed means the booking is fully paid and locked in
	StatusConfirmed BookingStatus = "confirmed"

	// StatusCompleted means the event took place
	StatusCompleted BookingStatus = "completed"

	// StatusCancelled means the couple cancelled the booking
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentType classifies a payment against a booking
type PaymentType string

const (
	PaymentDeposit PaymentType = "deposit"
	PaymentFinal   PaymentType = "final_payment"
	PaymentFull    PaymentType = "full_payment"
)

// Payment is a single payment recorded against a booking
type Payment struct {
	// Amount is the paid amount
	Amount decimal.Decimal `json:"amount"`

	// PaymentType classifies the payment
	PaymentType PaymentType `json:"payment_type"`

	// PaidAt is when the payment cleared
	PaidAt time.Time `json:"paid_at,omitempty"`
}

// SelectedService is one listing selected on a booking, priced at
// booking time by the price quoter.
type SelectedService struct {
	// ServiceListing is the listing that was booked
	ServiceListing *ServiceListing `json:"service_listing"`

	// TotalPrice is the quoted price persisted on the booking
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Booking is the engine's read-only snapshot of a booking. The caller
// must supply a consistent point-in-time view of the booking and its
// payments; the engine never re-fetches.
type Booking struct {
	// ID identifies the booking
	ID string `json:"id"`

	// Status is the lifecycle state at snapshot time
	Status BookingStatus `json:"status"`

	// ReservedDate is the date of the event
	ReservedDate time.Time `json:"reserved_date"`

	// SelectedServices are the booked listings with their quoted prices
	SelectedServices []SelectedService `json:"selected_services"`

	// Payments are the payments recorded so far, in order
	Payments []Payment `json:"payments,omitempty"`
}

// AmountPaid sums all recorded payments (zero when none)
func (b *Booking) AmountPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range b.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// TotalAmount sums the quoted prices across selected services
func (b *Booking) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, s := range b.SelectedServices {
		total = total.Add(s.TotalPrice)
	}
	return total
}
