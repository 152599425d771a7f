// Package party holds the counterparty read models the order lifecycle
// consults: customers, companies and import records. They are owned by
// other modules and only read here, so they are plain records rather
// than guarded aggregates.
package party

import "time"

// Customer is a billing counterparty. DefaultCurrency and DeptAbbr are
// optional; blank means the customer record carries no value and callers
// fall through to their defaults.
type Customer struct {
	Name            string
	DefaultCurrency string
	DeptAbbr        string
}

// Company is the owning legal entity. Abbr is the last fallback when
// resolving the invoice naming abbreviation.
type Company struct {
	Name string
	Abbr string
}

// Import is an inbound shipment record. The sweep creates transport
// orders for imports that are still open long past their ETA.
type Import struct {
	Name                string
	Status              string
	ETA                 *time.Time
	ReferenceFileNumber string
}
