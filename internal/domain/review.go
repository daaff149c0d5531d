package domain

// Review is a submitted product review together with the sentiment computed when it was saved.
// Rows are append-only: nothing updates or deletes them after insert.
type Review struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:text" json:"name"`
	Email       string `gorm:"type:text" json:"email"`
	ProductName string `gorm:"type:text" json:"product_name"`
	Rating      int    `json:"rating"`
	ReviewText  string `gorm:"type:text" json:"review_text"`
	Sentiment   string `gorm:"type:text" json:"sentiment"`
}

// TableName returns the database table name for Review.
func (Review) TableName() string {
	return "reviews"
}
