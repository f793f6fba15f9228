package dto

import "io"

// ImageFile is a newly uploaded image, decoupled from the HTTP transport.
// Open must return a fresh reader; concurrent uploads each open their own.
type ImageFile struct {
	Filename string
	Open     func() (io.ReadCloser, error)
}

type AddProductRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
	Price       string `form:"price" binding:"required"`
	Category    string `form:"category" binding:"required"`
	SubCategory string `form:"subCategory" binding:"required"`
	Sizes       string `form:"sizes" binding:"required"`
	Bestseller  string `form:"bestseller"`
}

// EditProductRequest carries raw form values for a partial update. Nil
// pointers mean the field was absent from the submitted form and must not
// overwrite stored state. Price is always required.
type EditProductRequest struct {
	Name        *string
	Description *string
	Price       string
	Category    *string
	SubCategory *string
	Sizes       *string
	Bestseller  *string
}

type RemoveProductRequest struct {
	ID string `json:"id" binding:"required"`
}

type SingleProductRequest struct {
	ProductID string `json:"productId" binding:"required"`
}
