package request_models

// CreateFeedbackRequest keeps Rating as a pointer so that an absent rating
// can be told apart from an explicit 0. It is decoded as a float so 4.0 is
// accepted like 4; fractional values are rejected by the service.
type CreateFeedbackRequest struct {
	UserID  string   `json:"userId"`
	Content string   `json:"content"`
	Rating  *float64 `json:"rating"`
	GivenBy string   `json:"givenBy"`
}
