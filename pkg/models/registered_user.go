package models

// RegisteredUser is one row of the registered_users table. LastName and
// Email are nullable in the schema; nil maps to SQL NULL.
type RegisteredUser struct {
	TelegramID int64   `json:"telegram_id"`
	Username   string  `json:"username"`
	FirstName  string  `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	Phone      string  `json:"phone"`
	Role       string  `json:"role"`
}
