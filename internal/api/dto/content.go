package dto

// ActivityResponse is the public API shape for an activity. Date is
// formatted DD/MM/YYYY; the consuming site depends on that exact format.
type ActivityResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// OfferResponse is the public API shape for a job offer. The active flag is
// deliberately omitted; only active offers are serialized at all.
type OfferResponse struct {
	ID       int64  `json:"id"`
	Position string `json:"position"`
	Details  string `json:"details"`
}
