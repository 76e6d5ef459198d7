package types

type Brand struct {
	ID      int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string    `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Website *string   `gorm:"column:website" json:"website,omitempty"`
	Paddles []*Paddle `gorm:"foreignKey:BrandID;references:ID" json:"paddles,omitempty"`
}

func (Brand) TableName() string { return "brands" }

type BrandRead struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Website *string `json:"website,omitempty"`
}

func NewBrandRead(b *Brand) BrandRead {
	return BrandRead{ID: b.ID, Name: b.Name, Website: b.Website}
}
