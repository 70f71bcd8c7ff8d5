package request_models

type UpsertUserRequest struct {
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
