package document

import (
	"time"

	"github.com/trendloom/backoffice/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       int64              `bson:"price"`
	Category    string             `bson:"category"`
	SubCategory string             `bson:"sub_category"`
	Sizes       []string           `bson:"sizes"`
	Bestseller  bool               `bson:"bestseller"`
	Image       []string           `bson:"image"`
	Date        time.Time          `bson:"date"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (doc ProductDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() *domain.Product {
	return &domain.Product{
		ID:          domain.ID(doc.ID.Hex()),
		Name:        doc.Name,
		Description: doc.Description,
		Price:       domain.Amount(doc.Price),
		Category:    doc.Category,
		SubCategory: doc.SubCategory,
		Sizes:       doc.Sizes,
		Bestseller:  doc.Bestseller,
		Image:       doc.Image,
		Date:        doc.Date,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func ToProductDocument(p *domain.Product) *ProductDocument {
	return &ProductDocument{
		Name:        p.Name,
		Description: p.Description,
		Price:       int64(p.Price),
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Sizes:       p.Sizes,
		Bestseller:  p.Bestseller,
		Image:       p.Image,
		Date:        p.Date,
		UpdatedAt:   p.UpdatedAt,
	}
}
