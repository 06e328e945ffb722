// Package types defines the shared domain types for shipment pricing
// and carrier normalization.
package types

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how the receiver pays for a shipment
type PaymentMethod string

const (
	// PaymentPrepaid means the shipment was paid for up front
	PaymentPrepaid PaymentMethod = "prepaid"

	// PaymentCOD means cash is collected on delivery
	PaymentCOD PaymentMethod = "cod"
)

// ParsePaymentMethod normalizes the payment method strings seen in
// shipment records. Anything that is not recognizably COD is prepaid.
func ParsePaymentMethod(s string) PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cod", "cash-on-delivery", "cash_on_delivery", "cashondelivery":
		return PaymentCOD
	default:
		return PaymentPrepaid
	}
}

// IsCOD reports whether the method is cash-on-delivery
func (m PaymentMethod) IsCOD() bool {
	return ParsePaymentMethod(string(m)) == PaymentCOD
}

// Direction is the travel direction of a shipment
type Direction string

const (
	// DirectionForward is a normal outbound shipment
	DirectionForward Direction = "forward"

	// DirectionReverse is a return shipment back to origin
	DirectionReverse Direction = "reverse"
)

// ParseDirection normalizes direction strings from shipment records
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reverse", "return", "rto":
		return DirectionReverse
	default:
		return DirectionForward
	}
}

// IsReverse reports whether the shipment travels back to origin
func (d Direction) IsReverse() bool {
	return ParseDirection(string(d)) == DirectionReverse
}

// Shipment is a read-only snapshot of one shipment as handed to the
// pricing and normalization core. It is never mutated here.
type Shipment struct {
	// ID uniquely identifies the shipment
	ID string `json:"id"`

	// Carrier is the shipping carrier name (e.g. "smsa", "aramex")
	Carrier string `json:"carrier"`

	// ServiceType is the carrier service tier (e.g. "express")
	ServiceType string `json:"service_type"`

	// Weight is the declared weight in kilograms
	Weight decimal.Decimal `json:"weight"`

	// PaymentMethod is prepaid or cod
	PaymentMethod PaymentMethod `json:"payment_method"`

	// Direction is forward or reverse
	Direction Direction `json:"direction"`

	// TrackingNumber is the shipment-level tracking number, if known
	TrackingNumber string `json:"tracking_number,omitempty"`

	// TotalOverride is the carrier-reported authoritative total.
	// When present it takes precedence over the computed total.
	TotalOverride *decimal.Decimal `json:"total_override,omitempty"`

	// Status is the latest delivery status
	Status string `json:"status,omitempty"`

	// Boxes is the number of boxes in the shipment
	Boxes int `json:"boxes,omitempty"`

	// Sender and Receiver identify the two parties
	Sender        string `json:"sender,omitempty"`
	Receiver      string `json:"receiver,omitempty"`
	SenderEmail   string `json:"sender_email,omitempty"`
	ReceiverEmail string `json:"receiver_email,omitempty"`

	// CreatedAt is when the shipment was created
	CreatedAt time.Time `json:"created_at"`
}

// BestTracking returns the best available tracking identifier for the
// shipment: its tracking number when set, otherwise its ID.
func (s Shipment) BestTracking() string {
	if t := strings.TrimSpace(s.TrackingNumber); t != "" {
		return t
	}
	return strings.TrimSpace(s.ID)
}
