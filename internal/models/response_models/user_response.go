package response_models

import "feedbackapi/internal/models/db_models"

type UpsertUserResponse struct {
	Message string         `json:"message"`
	User    db_models.User `json:"user"`
}
