package models

// WaitlistSignup is one waitlist registration. Identity for the uniqueness
// constraint is the normalized (trimmed, lowercased) email, enforced by the
// unique index so concurrent submissions cannot both succeed.
type WaitlistSignup struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Email string  `gorm:"not null;uniqueIndex" json:"email"`
	Name  *string `json:"name"`
	// CreatedAt is the ISO-8601 string produced at sanitization time, stored
	// verbatim. Never supplied by the caller.
	CreatedAt string `gorm:"column:created_at;not null" json:"created_at"`
}

func (WaitlistSignup) TableName() string {
	return "waitlist_signups"
}
