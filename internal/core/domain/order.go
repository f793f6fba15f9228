package domain

import "time"

type Order struct {
	ID            ID
	UserID        ID
	Items         []OrderItem
	Amount        Amount
	Address       map[string]string
	Status        string
	PaymentMethod string
	Payment       bool
	Date          time.Time
}

type OrderItem struct {
	ProductID ID
	Name      string
	Size      string
	Quantity  int
	Price     Amount
}
