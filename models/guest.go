package models

// Guest is keyed by name; there is no separate guest id.
type Guest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`

	// Ids of the bookings made under this name, oldest first. Back-references
	// only, the bookings themselves live in the store's booking list.
	BookingIDs []int `json:"bookingIds"`
}
