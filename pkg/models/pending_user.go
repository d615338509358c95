package models

// PendingUser is one row of the pending_users table, a user awaiting
// approval. FromWhom records where the registration request came from.
type PendingUser struct {
	TelegramID int64   `json:"telegram_id"`
	Username   string  `json:"username"`
	FirstName  string  `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	Phone      string  `json:"phone"`
	FromWhom   string  `json:"from_whom"`
}
