package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trendloom/backoffice/internal/core/domain"
	"github.com/trendloom/backoffice/internal/core/dto"
	"github.com/trendloom/backoffice/internal/core/logger"
	"github.com/trendloom/backoffice/internal/core/port"
	"github.com/trendloom/backoffice/internal/core/serviceerrors"
	"github.com/trendloom/backoffice/internal/core/utils"
)

const (
	productCacheTTL = 60 * time.Second
	productListKey  = "products:all"

	// uploadTimeout bounds each media store call; the media host defines
	// no retry policy, so a slow upload fails the whole edit.
	uploadTimeout = 30 * time.Second
)

type ProductService struct {
	productRepository port.ProductPort
	media             port.MediaStorePort
	listCache         port.CachePort[[]*domain.Product]
	productCache      port.CachePort[domain.Product]
	idempotency       *IdempotencyService[domain.Product]
}

func NewProductService(
	productRepository port.ProductPort,
	media port.MediaStorePort,
	listCache port.CachePort[[]*domain.Product],
	productCache port.CachePort[domain.Product],
	idempotency *IdempotencyService[domain.Product],
) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		media:             media,
		listCache:         listCache,
		productCache:      productCache,
		idempotency:       idempotency,
	}
}

func (s *ProductService) productKey(id domain.ID) string {
	return fmt.Sprintf("product:%s", id)
}

// uploadImages stores every file concurrently and returns the public URLs
// in submission order. All uploads are awaited; the first failure cancels
// the rest and fails the whole batch.
func (s *ProductService) uploadImages(ctx context.Context, files []dto.ImageFile) ([]string, error) {
	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			rc, err := file.Open()
			if err != nil {
				return serviceerrors.NewUploadFailedError(fmt.Sprintf("open %s: %v", file.Filename, err))
			}
			defer rc.Close()

			uploadCtx, cancel := context.WithTimeout(gctx, uploadTimeout)
			defer cancel()

			url, err := s.media.Upload(uploadCtx, rc, file.Filename)
			if err != nil {
				return serviceerrors.NewUploadFailedError(fmt.Sprintf("upload %s: %v", file.Filename, err))
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "product: image upload failed", err, map[string]any{
			"files": len(files),
		})
		return nil, err
	}

	return urls, nil
}

func (s *ProductService) processAdd(ctx context.Context, request *dto.AddProductRequest, files []dto.ImageFile) (*domain.Product, error) {
	if len(files) > domain.MaxImages {
		return nil, serviceerrors.NewInvalidRequestError(fmt.Sprintf("at most %d images are allowed", domain.MaxImages))
	}

	price, err := domain.ParseAmount(request.Price)
	if err != nil {
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}

	sizes, err := domain.DecodeSizes(request.Sizes)
	if err != nil {
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}

	urls, err := s.uploadImages(ctx, files)
	if err != nil {
		return nil, err
	}

	product := domain.NewProduct(
		request.Name,
		request.Description,
		price,
		request.Category,
		request.SubCategory,
		sizes,
		domain.ParseBestseller(request.Bestseller),
		urls,
	)

	if err := s.productRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"name": request.Name,
		})
		return nil, err
	}

	s.invalidateList(ctx)

	logger.Info(ctx, "Product added", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *ProductService) AddProduct(ctx context.Context, idempotencyKey string, request *dto.AddProductRequest, files []dto.ImageFile) (*domain.Product, error) {
	if idempotencyKey == "" {
		return s.processAdd(ctx, request, files)
	}

	payloadHash := utils.HashJSON(request)

	existing, err := s.idempotency.Claim(ctx, idempotencyKey, payloadHash)
	if err != nil {
		logger.Error(ctx, "idempotency: claim failed", err, map[string]any{
			"idempotency_key": idempotencyKey,
		})
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	product, err := s.processAdd(ctx, request, files)
	if err != nil {
		s.idempotency.Release(ctx, idempotencyKey)
		return nil, err
	}

	s.idempotency.Complete(ctx, idempotencyKey, payloadHash, product)

	return product, nil
}

// UpdateProduct applies an edit request: scalar fields overwrite when
// present, new images replace the whole image sequence, and zero new
// images keep the stored sequence untouched. All normalization happens
// before any upload; any upload failure aborts before persistence.
func (s *ProductService) UpdateProduct(ctx context.Context, id domain.ID, request *dto.EditProductRequest, files []dto.ImageFile) (*domain.Product, error) {
	if len(files) > domain.MaxImages {
		return nil, serviceerrors.NewInvalidRequestError(fmt.Sprintf("at most %d images are allowed", domain.MaxImages))
	}

	current, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	price, err := domain.ParseAmount(request.Price)
	if err != nil {
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}

	update := domain.ProductUpdate{
		Name:        request.Name,
		Description: request.Description,
		Category:    request.Category,
		SubCategory: request.SubCategory,
		Price:       &price,
	}

	if request.Sizes != nil {
		sizes, err := domain.DecodeSizes(*request.Sizes)
		if err != nil {
			return nil, serviceerrors.NewInvalidRequestError(err.Error())
		}
		update.Sizes = sizes
		update.HasSizes = true
	}

	if request.Bestseller != nil {
		bestseller := domain.ParseBestseller(*request.Bestseller)
		update.Bestseller = &bestseller
	}

	if len(files) > 0 {
		urls, err := s.uploadImages(ctx, files)
		if err != nil {
			return nil, err
		}
		update.Image = urls
	}

	name := current.Name
	if update.Name != nil {
		name = *update.Name
	}
	images := len(current.Image)
	if update.Image != nil {
		images = len(update.Image)
	}
	event := domain.NewProductUpdatedEvent(current.ID, name, price, images, time.Now())

	updated, err := s.productRepository.UpdateWithOutbox(ctx, id, update, event)
	if err != nil {
		logger.Error(ctx, "product: update failed", err, map[string]any{
			"product_id": id,
		})
		return nil, err
	}

	s.invalidateList(ctx)
	s.invalidateProduct(ctx, id)

	logger.Info(ctx, "Product updated", map[string]any{
		"product_id": updated.ID,
		"new_images": len(files),
	})
	return updated, nil
}

func (s *ProductService) GetAll(ctx context.Context) ([]*domain.Product, error) {
	cached, err := s.listCache.Get(ctx, productListKey)
	if err != nil {
		logger.Error(ctx, "cache: get product list failed", err, nil)
	}
	if cached != nil {
		return *cached, nil
	}

	products, err := s.productRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.listCache.Set(ctx, productListKey, &products, productCacheTTL); err != nil {
		logger.Error(ctx, "cache: set product list failed", err, nil)
	}

	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	cached, err := s.productCache.Get(ctx, s.productKey(id))
	if err != nil {
		logger.Error(ctx, "cache: get product failed", err, map[string]any{
			"product_id": id,
		})
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.productCache.Set(ctx, s.productKey(id), product, productCacheTTL); err != nil {
		logger.Error(ctx, "cache: set product failed", err, map[string]any{
			"product_id": id,
		})
	}

	return product, nil
}

func (s *ProductService) RemoveProduct(ctx context.Context, id domain.ID) error {
	event := domain.NewProductRemovedEvent(id, time.Now())
	if err := s.productRepository.DeleteWithOutbox(ctx, id, event); err != nil {
		return err
	}

	s.invalidateList(ctx)
	s.invalidateProduct(ctx, id)

	logger.Info(ctx, "Product removed", map[string]any{"product_id": id})
	return nil
}

func (s *ProductService) invalidateList(ctx context.Context) {
	if err := s.listCache.Del(ctx, productListKey); err != nil {
		logger.Error(ctx, "cache: invalidate product list failed", err, nil)
	}
}

func (s *ProductService) invalidateProduct(ctx context.Context, id domain.ID) {
	if err := s.productCache.Del(ctx, s.productKey(id)); err != nil {
		logger.Error(ctx, "cache: invalidate product failed", err, map[string]any{
			"product_id": id,
		})
	}
}
