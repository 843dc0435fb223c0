package models

// Comment is one feedback/contact submission. Unlike waitlist signups there
// is no uniqueness constraint: the same email may comment any number of times.
type Comment struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      *string `json:"name"`
	Email     string  `gorm:"not null" json:"email"`
	Subject   *string `json:"subject"`
	Comment   string  `gorm:"column:comment;not null" json:"comment"`
	CreatedAt string  `gorm:"column:created_at;not null" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
