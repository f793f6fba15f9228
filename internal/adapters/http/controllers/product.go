package controllers

import (
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trendloom/backoffice/internal/adapters/http/handlers"
	"github.com/trendloom/backoffice/internal/core/domain"
	"github.com/trendloom/backoffice/internal/core/dto"
	"github.com/trendloom/backoffice/internal/core/service"
	"github.com/trendloom/backoffice/internal/core/serviceerrors"
)

type ProductController struct {
	productService *service.ProductService
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

type ProductResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	SubCategory string    `json:"subCategory"`
	Sizes       []string  `json:"sizes"`
	Bestseller  bool      `json:"bestseller"`
	Image       []string  `json:"image"`
	Date        time.Time `json:"date"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          string(product.ID),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.Float64(),
		Category:    product.Category,
		SubCategory: product.SubCategory,
		Sizes:       product.Sizes,
		Bestseller:  product.Bestseller,
		Image:       product.Image,
		Date:        product.Date,
	}
}

// formImageFiles flattens every uploaded file across all form fields. The
// admin panel submits image1..image4, so field names are walked in sorted
// order to keep the slot order stable.
func formImageFiles(form *multipart.Form) []dto.ImageFile {
	if form == nil || len(form.File) == 0 {
		return nil
	}

	fields := make([]string, 0, len(form.File))
	for field := range form.File {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var files []dto.ImageFile
	for _, field := range fields {
		for _, header := range form.File[field] {
			files = append(files, dto.ImageFile{
				Filename: header.Filename,
				Open: func() (io.ReadCloser, error) {
					return header.Open()
				},
			})
		}
	}
	return files
}

// Add godoc
// @Summary     Add a product
// @Description Creates a catalog product with up to four images
// @Tags        products
// @Accept      multipart/form-data
// @Produce     json
// @Param       name formData string true "Product name"
// @Param       price formData string true "Price, e.g. 19.99"
// @Param       sizes formData string true "JSON array of size labels"
// @Success     201 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     502 {object} handlers.ErrorResponse
// @Router      /api/product/add [post]
func (pc *ProductController) Add(c *gin.Context) {
	var request dto.AddProductRequest
	if err := c.ShouldBind(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	form, _ := c.MultipartForm()
	files := formImageFiles(form)

	idempotencyKey := c.GetHeader("Idempotency-Key")

	product, err := pc.productService.AddProduct(c.Request.Context(), idempotencyKey, &request, files)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product Added",
		"product": NewProductResponse(product),
	})
}

// Edit godoc
// @Summary     Edit a product
// @Description Overwrites submitted fields; new images replace the whole set, zero images keep the stored set
// @Tags        products
// @Accept      multipart/form-data
// @Produce     json
// @Param       productId path string true "Product ID"
// @Param       price formData string true "Price, e.g. 19.99"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     502 {object} handlers.ErrorResponse
// @Router      /api/product/edit/{productId} [put]
func (pc *ProductController) Edit(c *gin.Context) {
	productID := c.Param("productId")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("invalid product id"))
		return
	}

	form, _ := c.MultipartForm()

	request := dto.EditProductRequest{Price: c.PostForm("price")}
	if v, ok := c.GetPostForm("name"); ok {
		request.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		request.Description = &v
	}
	if v, ok := c.GetPostForm("category"); ok {
		request.Category = &v
	}
	if v, ok := c.GetPostForm("subCategory"); ok {
		request.SubCategory = &v
	}
	if v, ok := c.GetPostForm("sizes"); ok {
		request.Sizes = &v
	}
	if v, ok := c.GetPostForm("bestseller"); ok {
		request.Bestseller = &v
	}

	product, err := pc.productService.UpdateProduct(c.Request.Context(), domain.ID(productID), &request, formImageFiles(form))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product Updated",
		"product": NewProductResponse(product),
	})
}

// List godoc
// @Summary     List products
// @Tags        products
// @Produce     json
// @Success     200 {array} ProductResponse
// @Router      /api/product/list [get]
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.productService.GetAll(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": response})
}

// Single godoc
// @Summary     Get one product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body dto.SingleProductRequest true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/product/single [post]
func (pc *ProductController) Single(c *gin.Context) {
	var request dto.SingleProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if !domain.ValidateID(request.ProductID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("invalid product id"))
		return
	}

	product, err := pc.productService.GetByID(c.Request.Context(), domain.ID(request.ProductID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": NewProductResponse(product)})
}

// Remove godoc
// @Summary     Remove a product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body dto.RemoveProductRequest true "Product ID"
// @Success     200 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/product/remove [post]
func (pc *ProductController) Remove(c *gin.Context) {
	var request dto.RemoveProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if !domain.ValidateID(request.ID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("invalid product id"))
		return
	}

	if err := pc.productService.RemoveProduct(c.Request.Context(), domain.ID(request.ID)); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product Removed"})
}
