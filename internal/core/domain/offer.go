package domain

// Offer is a job posting. Only active offers are visible on the public API;
// the dashboard sees all of them. No route currently toggles the flag.
type Offer struct {
	ID       int64  `db:"id"`
	Position string `db:"position"`
	Details  string `db:"details"`
	Active   bool   `db:"active"`
}

func NewOffer(position, details string) *Offer {
	return &Offer{
		Position: position,
		Details:  details,
		Active:   true,
	}
}
