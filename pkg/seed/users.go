// Package seed holds the fixed QA rows applied by the seed loader. The
// values are compatibility-pinned: QA flows and cleanup reference these
// exact telegram_ids, so edits here must stay in sync with both.
package seed

import "qaseed/pkg/models"

var registeredUsers = []models.RegisteredUser{
	{TelegramID: 999000001, Username: "qa_alice", FirstName: "Alice", LastName: ptr("Anderson"), Email: ptr("alice.qa@example.com"), Phone: "+999000001", Role: "admin"},
	{TelegramID: 999000003, Username: "qa_carol", FirstName: "Carol", LastName: ptr("Davis"), Email: ptr("carol.qa@example.com"), Phone: "+999000003", Role: "user"},
	{TelegramID: 999000004, Username: "qa_bob", FirstName: "Bob", LastName: ptr("Smith"), Email: ptr("bob.qa@example.com"), Phone: "+999000004", Role: "manager"},
	{TelegramID: 999000005, Username: "qa_dave", FirstName: "Dave", LastName: nil, Email: ptr("dave.qa@example.com"), Phone: "+999000005", Role: "user"},
	{TelegramID: 999000006, Username: "qa_eve", FirstName: "Eve", LastName: ptr("Miller"), Email: nil, Phone: "+999000006", Role: "user"},
}

var pendingUsers = []models.PendingUser{
	{TelegramID: 999000002, Username: "qa_pete", FirstName: "Pete", LastName: ptr("Wilson"), Email: ptr("pete.qa@example.com"), Phone: "+999000002", FromWhom: "referral"},
	{TelegramID: 999000007, Username: "qa_grace", FirstName: "Grace", LastName: ptr("Lee"), Email: ptr("grace.qa@example.com"), Phone: "+999000007", FromWhom: "invite_link"},
	{TelegramID: 999000008, Username: "qa_frank", FirstName: "Frank", LastName: nil, Email: nil, Phone: "+999000008", FromWhom: "web_form"},
	{TelegramID: 999000009, Username: "qa_henry", FirstName: "Henry", LastName: ptr("Brown"), Email: ptr("henry.qa@example.com"), Phone: "+999000009", FromWhom: "support_chat"},
	{TelegramID: 999000010, Username: "qa_irene", FirstName: "Irene", LastName: ptr("Clark"), Email: ptr("irene.qa@example.com"), Phone: "+999000010", FromWhom: "manual_admin"},
}

// RegisteredUsers returns the five registered_users fixture rows.
func RegisteredUsers() []models.RegisteredUser {
	return registeredUsers
}

// PendingUsers returns the five pending_users fixture rows.
func PendingUsers() []models.PendingUser {
	return pendingUsers
}

// RegisteredIDs returns the telegram_ids seeded into registered_users.
func RegisteredIDs() []int64 {
	ids := make([]int64, 0, len(registeredUsers))
	for _, u := range registeredUsers {
		ids = append(ids, u.TelegramID)
	}
	return ids
}

// PendingIDs returns the telegram_ids seeded into pending_users.
func PendingIDs() []int64 {
	ids := make([]int64, 0, len(pendingUsers))
	for _, u := range pendingUsers {
		ids = append(ids, u.TelegramID)
	}
	return ids
}

func ptr(s string) *string {
	return &s
}
