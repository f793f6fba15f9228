package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// MaxImages is the maximum number of images a product can carry.
const MaxImages = 4

type Product struct {
	ID          ID
	Name        string
	Description string
	Price       Amount
	Category    string
	SubCategory string
	Sizes       []string
	Bestseller  bool
	Image       []string
	Date        time.Time
	UpdatedAt   time.Time
}

func NewProduct(name, description string, price Amount, category, subCategory string, sizes []string, bestseller bool, image []string) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		SubCategory: subCategory,
		Sizes:       sizes,
		Bestseller:  bestseller,
		Image:       image,
		Date:        time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// ProductUpdate is the normalized form of an edit request. Nil fields are
// left untouched by the persisted update; a nil Image slice keeps the
// product's existing image sequence.
type ProductUpdate struct {
	Name        *string
	Description *string
	Category    *string
	SubCategory *string
	Price       *Amount
	Sizes       []string
	HasSizes    bool
	Bestseller  *bool
	Image       []string
}

func (u *ProductUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Category == nil &&
		u.SubCategory == nil && u.Price == nil && !u.HasSizes &&
		u.Bestseller == nil && u.Image == nil
}

type sizeWrapper struct {
	Size string `json:"size"`
}

// DecodeSizes decodes the serialized size list submitted by the admin
// client. Two element encodings are accepted: a bare label ("S") or a
// wrapped object ({"size":"S"}). Order is preserved, duplicates are
// allowed, and a label that is empty after trimming is an error. Malformed
// input is an error, never an empty list.
func DecodeSizes(raw string) ([]string, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, fmt.Errorf("sizes is not a valid list: %w", err)
	}
	if elems == nil {
		return nil, fmt.Errorf("sizes is not a valid list")
	}

	sizes := make([]string, 0, len(elems))
	for i, elem := range elems {
		var label string
		if err := json.Unmarshal(elem, &label); err != nil {
			var wrapped sizeWrapper
			if err := json.Unmarshal(elem, &wrapped); err != nil {
				return nil, fmt.Errorf("sizes[%d]: expected a label or {\"size\": ...}", i)
			}
			label = wrapped.Size
		}
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, fmt.Errorf("sizes[%d]: empty label", i)
		}
		sizes = append(sizes, label)
	}

	return sizes, nil
}

// ParseBestseller maps a form value to a boolean.
//
//	"true" -> true
//	anything else (including "", "1", "TRUE") -> false
func ParseBestseller(s string) bool {
	return s == "true"
}

type ProductUpdatedEvent struct {
	ProductID ID        `json:"product_id"`
	Name      string    `json:"name"`
	Price     Amount    `json:"price"`
	Images    int       `json:"images"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *ProductUpdatedEvent) GetName() string {
	return "product.updated"
}

func (e *ProductUpdatedEvent) GetEntityName() string {
	return "product"
}

func NewProductUpdatedEvent(productID ID, name string, price Amount, images int, updatedAt time.Time) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		ProductID: productID,
		Name:      name,
		Price:     price,
		Images:    images,
		UpdatedAt: updatedAt,
	}
}

type ProductRemovedEvent struct {
	ProductID ID        `json:"product_id"`
	RemovedAt time.Time `json:"removed_at"`
}

func (e *ProductRemovedEvent) GetName() string {
	return "product.removed"
}

func (e *ProductRemovedEvent) GetEntityName() string {
	return "product"
}

func NewProductRemovedEvent(productID ID, removedAt time.Time) *ProductRemovedEvent {
	return &ProductRemovedEvent{ProductID: productID, RemovedAt: removedAt}
}
