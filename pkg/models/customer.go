package models

// PaymentSummary holds the financial snapshot for a customer's plant order.
type PaymentSummary struct {
	TotalPrice float64 `json:"total_price" yaml:"total_price"`
	PaidToDate float64 `json:"paid_to_date" yaml:"paid_to_date"`
}

// DocumentRef points to an already-uploaded customer document.
type DocumentRef struct {
	Kind string `json:"kind" yaml:"kind"`
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// PlantSpec describes the solar plant ordered by the customer.
type PlantSpec struct {
	CapacityKW float64 `json:"capacity_kw" yaml:"capacity_kw"`
	PanelCount int     `json:"panel_count" yaml:"panel_count"`
	Structure  string  `json:"structure" yaml:"structure"`
}

// CustomerSnapshot is a denormalized, read-only projection of a registered
// customer attached to a task. It is owned by the external registration
// subsystem and refreshed on task fetch; the core never writes to it directly.
type CustomerSnapshot struct {
	ID        string         `json:"id" yaml:"id"`
	Name      string         `json:"name" yaml:"name"`
	Phone     string         `json:"phone" yaml:"phone"`
	Address   string         `json:"address" yaml:"address"`
	Plant     PlantSpec      `json:"plant" yaml:"plant"`
	Payments  PaymentSummary `json:"payments" yaml:"payments"`
	Documents []DocumentRef  `json:"documents,omitempty" yaml:"documents,omitempty"`
}
