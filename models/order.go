package models

import "time"

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"       // Order placed, not yet handled
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the goods
	OrderStatusCanceled  OrderStatus = "canceled"  // Order will not be fulfilled
)

type Order struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    *uint          `gorm:"index" json:"user_id"` // nil for manually entered orders
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FirstName string         `gorm:"not null" json:"first_name"`
	LastName  string         `json:"last_name"`
	Phone     string         `gorm:"not null" json:"phone"`
	Email     string         `json:"email"`
	Status    OrderStatus    `gorm:"type:VARCHAR(20);default:'new'" json:"status"`
	Products  []OrderProduct `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	CreatedAt time.Time      `json:"created_at"`
}

// OrderProduct is one line of an order: a product and how many of it.
type OrderProduct struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Amount    int     `gorm:"not null;check:amount >= 1" json:"amount"`
}
