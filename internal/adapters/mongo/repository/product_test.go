package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/trendloom/backoffice/internal/adapters/mongo/repository"
	"github.com/trendloom/backoffice/internal/core/domain"
	"github.com/trendloom/backoffice/internal/core/serviceerrors"
)

func createTestProduct(name string) *domain.Product {
	return domain.NewProduct(
		name,
		"Relaxed fit, heavyweight cotton",
		domain.Amount(4900),
		"Men",
		"Topwear",
		[]string{"S", "M", "L"},
		false,
		[]string{"https://cdn.example.com/img/one.png", "https://cdn.example.com/img/two.png"},
	)
}

func strPtr(s string) *string { return &s }

func amountPtr(a domain.Amount) *domain.Amount { return &a }

func TestProductRepository_Create(t *testing.T) {
	outboxRepo := repository.NewOutboxRepository(testDB)
	repo := repository.NewProductRepository(testDB, outboxRepo)
	ctx := context.Background()

	t.Run("creates product and assigns ID", func(t *testing.T) {
		product := createTestProduct("Oversized Hoodie")

		err := repo.Create(ctx, product)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.ID == "" {
			t.Fatal("expected ID to be assigned")
		}
		if len(product.ID) != 24 {
			t.Fatalf("expected 24-char hex ID, got %q", product.ID)
		}
	})
}

func TestProductRepository_GetByID(t *testing.T) {
	outboxRepo := repository.NewOutboxRepository(testDB)
	repo := repository.NewProductRepository(testDB, outboxRepo)
	ctx := context.Background()

	t.Run("returns stored product", func(t *testing.T) {
		product := createTestProduct("Slim Fit Tee")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		got, err := repo.GetByID(ctx, product.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Name != "Slim Fit Tee" {
			t.Fatalf("expected name 'Slim Fit Tee', got %q", got.Name)
		}
		if got.Price != domain.Amount(4900) {
			t.Fatalf("expected price 4900, got %d", got.Price)
		}
		if len(got.Sizes) != 3 {
			t.Fatalf("expected 3 sizes, got %d", len(got.Sizes))
		}
		if len(got.Image) != 2 {
			t.Fatalf("expected 2 images, got %d", len(got.Image))
		}
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "aabbccddee112233aabbccdd")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected NotFound kind, got %v", err)
		}
	})

	t.Run("returns invalid request for malformed ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "bad-id")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected InvalidRequest kind, got %v", err)
		}
	})
}

func TestProductRepository_GetAll(t *testing.T) {
	// Fresh database so other tests' products don't leak in
	db := testClient.Database("test_product_getall")
	outboxRepo := repository.NewOutboxRepository(db)
	repo := repository.NewProductRepository(db, outboxRepo)
	ctx := context.Background()

	t.Run("returns empty slice when no products", func(t *testing.T) {
		products, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 0 {
			t.Fatalf("expected 0 products, got %d", len(products))
		}
	})

	t.Run("returns all products newest first", func(t *testing.T) {
		first := createTestProduct("First Drop")
		second := createTestProduct("Second Drop")
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if err := repo.Create(ctx, second); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		products, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
		if products[0].Name != "Second Drop" {
			t.Fatalf("expected newest product first, got %q", products[0].Name)
		}
	})
}

func TestProductRepository_UpdateWithOutbox(t *testing.T) {
	db := testClient.Database("test_product_update")
	outboxRepo := repository.NewOutboxRepository(db)
	repo := repository.NewProductRepository(db, outboxRepo)
	ctx := context.Background()

	t.Run("overwrites present fields and keeps absent ones", func(t *testing.T) {
		product := createTestProduct("Boxy Hoodie")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		update := domain.ProductUpdate{
			Name:  strPtr("Boxy Hoodie v2"),
			Price: amountPtr(domain.Amount(5500)),
		}
		event := domain.NewProductUpdatedEvent(product.ID, "Boxy Hoodie v2", 5500, len(product.Image), product.UpdatedAt)

		updated, err := repo.UpdateWithOutbox(ctx, product.ID, update, event)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if updated.Name != "Boxy Hoodie v2" {
			t.Fatalf("expected updated name, got %q", updated.Name)
		}
		if updated.Price != domain.Amount(5500) {
			t.Fatalf("expected price 5500, got %d", updated.Price)
		}
		if updated.Description != product.Description {
			t.Fatalf("expected description to be retained, got %q", updated.Description)
		}
		if len(updated.Image) != 2 {
			t.Fatalf("expected images to be retained, got %d", len(updated.Image))
		}
		if len(updated.Sizes) != 3 {
			t.Fatalf("expected sizes to be retained, got %d", len(updated.Sizes))
		}
	})

	t.Run("replaces sizes and images when provided", func(t *testing.T) {
		product := createTestProduct("Cargo Pants")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		update := domain.ProductUpdate{
			Price:    amountPtr(domain.Amount(4900)),
			Sizes:    []string{"XL"},
			HasSizes: true,
			Image:    []string{"https://cdn.example.com/img/new.png"},
		}
		event := domain.NewProductUpdatedEvent(product.ID, product.Name, 4900, 1, product.UpdatedAt)

		updated, err := repo.UpdateWithOutbox(ctx, product.ID, update, event)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(updated.Sizes) != 1 || updated.Sizes[0] != "XL" {
			t.Fatalf("expected sizes [XL], got %v", updated.Sizes)
		}
		if len(updated.Image) != 1 || updated.Image[0] != "https://cdn.example.com/img/new.png" {
			t.Fatalf("expected replaced image list, got %v", updated.Image)
		}
	})

	t.Run("writes outbox entry in the same transaction", func(t *testing.T) {
		db := testClient.Database("test_product_update_outbox")
		outboxRepo := repository.NewOutboxRepository(db)
		repo := repository.NewProductRepository(db, outboxRepo)

		product := createTestProduct("Track Jacket")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		update := domain.ProductUpdate{Price: amountPtr(domain.Amount(7900))}
		event := domain.NewProductUpdatedEvent(product.ID, product.Name, 7900, len(product.Image), product.UpdatedAt)

		if _, err := repo.UpdateWithOutbox(ctx, product.ID, update, event); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		entries, err := outboxRepo.FetchPending(ctx, 10)
		if err != nil {
			t.Fatalf("fetch pending failed: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 outbox entry, got %d", len(entries))
		}
		if entries[0].EventName != "product.updated" {
			t.Fatalf("expected event name 'product.updated', got %q", entries[0].EventName)
		}
		if entries[0].EntityName != "product" {
			t.Fatalf("expected entity name 'product', got %q", entries[0].EntityName)
		}
	})

	t.Run("returns not found for unknown product", func(t *testing.T) {
		update := domain.ProductUpdate{Price: amountPtr(domain.Amount(100))}
		event := domain.NewProductUpdatedEvent("aabbccddee112233aabbccdd", "ghost", 100, 0, time.Now())

		_, err := repo.UpdateWithOutbox(ctx, "aabbccddee112233aabbccdd", update, event)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected NotFound kind, got %v", err)
		}
	})
}

func TestProductRepository_DeleteWithOutbox(t *testing.T) {
	db := testClient.Database("test_product_delete")
	outboxRepo := repository.NewOutboxRepository(db)
	repo := repository.NewProductRepository(db, outboxRepo)
	ctx := context.Background()

	t.Run("removes product and writes outbox entry", func(t *testing.T) {
		product := createTestProduct("Discontinued Tee")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		event := domain.NewProductRemovedEvent(product.ID, time.Now())
		if err := repo.DeleteWithOutbox(ctx, product.ID, event); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		_, err := repo.GetByID(ctx, product.ID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected product to be gone, got %v", err)
		}

		entries, err := outboxRepo.FetchPending(ctx, 10)
		if err != nil {
			t.Fatalf("fetch pending failed: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 outbox entry, got %d", len(entries))
		}
		if entries[0].EventName != "product.removed" {
			t.Fatalf("expected event name 'product.removed', got %q", entries[0].EventName)
		}
	})

	t.Run("returns not found for unknown product", func(t *testing.T) {
		event := domain.NewProductRemovedEvent("aabbccddee112233aabbccdd", time.Now())

		err := repo.DeleteWithOutbox(ctx, "aabbccddee112233aabbccdd", event)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected NotFound kind, got %v", err)
		}
	})
}
