// Package vehicle provides the fleet read model consulted by the order
// lifecycle. Vehicles and their trips are maintained elsewhere; this
// service only reads their status to guard against double-booking.
package vehicle

// Status is the fleet status of a vehicle. The set is open: the fleet
// module owns the vocabulary and only InTrip matters here.
type Status string

// InTrip means the vehicle is currently dispatched on a trip.
const InTrip Status = "In Trip"
