package document

import (
	"time"

	"github.com/trendloom/backoffice/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderDocument struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	UserID        primitive.ObjectID  `bson:"user_id"`
	Items         []OrderItemDocument `bson:"items"`
	Amount        int64               `bson:"amount"`
	Address       map[string]string   `bson:"address"`
	Status        string              `bson:"status"`
	PaymentMethod string              `bson:"payment_method"`
	Payment       bool                `bson:"payment"`
	Date          time.Time           `bson:"date"`
}

type OrderItemDocument struct {
	ProductID primitive.ObjectID `bson:"product_id"`
	Name      string             `bson:"name"`
	Size      string             `bson:"size"`
	Quantity  int                `bson:"quantity"`
	Price     int64              `bson:"price"`
}

func (doc OrderDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *OrderDocument) ToDomain() *domain.Order {
	items := make([]domain.OrderItem, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = domain.OrderItem{
			ProductID: domain.ID(item.ProductID.Hex()),
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Price:     domain.Amount(item.Price),
		}
	}

	return &domain.Order{
		ID:            domain.ID(doc.ID.Hex()),
		UserID:        domain.ID(doc.UserID.Hex()),
		Items:         items,
		Amount:        domain.Amount(doc.Amount),
		Address:       doc.Address,
		Status:        doc.Status,
		PaymentMethod: doc.PaymentMethod,
		Payment:       doc.Payment,
		Date:          doc.Date,
	}
}
