package booking

// MaxActivePerProvider is how many future reservations a non-owner may hold
// with one provider.
const MaxActivePerProvider = 1

// HasRoom is the capacity gate. Listings of available slots use it too.
func HasRoom(reserved, capacity int) bool {
	return reserved < capacity
}

// MayBook is the booking-limit gate. active counts the customer's
// reservations with the provider whose slot starts at or after now.
func MayBook(isOwner bool, active int) bool {
	if isOwner {
		return true
	}
	return active < MaxActivePerProvider
}
