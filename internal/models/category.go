package models

// Category represents a user-defined expense category.
type Category struct {
	Base
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`
	Icon   string `json:"icon"`
}

// BuiltinCategories is the fixed category set every user gets, whether
// or not they have created any of their own. Built-ins are not persisted
// per user; they are merged into reads.
func BuiltinCategories() []Category {
	return []Category{
		{Name: "Food", Icon: "🍔"},
		{Name: "Transport", Icon: "🚕"},
		{Name: "Bills", Icon: "🧾"},
		{Name: "Shopping", Icon: "🛍️"},
		{Name: "Entertainment", Icon: "🎬"},
	}
}
