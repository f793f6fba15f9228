package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/trendloom/backoffice/internal/adapters/mongo/repository"
	"github.com/trendloom/backoffice/internal/core/domain"
	"github.com/trendloom/backoffice/internal/core/serviceerrors"
)

func createTestUser(email string) *domain.User {
	return domain.NewUser("Jordan Reyes", email, "$2a$10$fakehashfakehashfakehash")
}

func TestUserRepository_Create(t *testing.T) {
	db := testClient.Database("test_user_create")
	outboxRepo := repository.NewOutboxRepository(db)
	repo := repository.NewUserRepository(db, outboxRepo)
	ctx := context.Background()

	t.Run("creates user and assigns ID", func(t *testing.T) {
		user := createTestUser("jordan@example.com")

		err := repo.Create(ctx, user)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user.ID == "" {
			t.Fatal("expected ID to be assigned")
		}
		if user.CreatedAt.IsZero() {
			t.Fatal("expected CreatedAt to be set")
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		first := createTestUser("dup@example.com")
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		second := createTestUser("dup@example.com")
		err := repo.Create(ctx, second)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			t.Fatalf("expected Conflict kind, got %v", err)
		}
	})

	t.Run("rejects user with existing ID", func(t *testing.T) {
		user := createTestUser("preset@example.com")
		user.ID = "aabbccddee112233aabbccdd"

		err := repo.Create(ctx, user)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := testClient.Database("test_user_getbyemail")
	outboxRepo := repository.NewOutboxRepository(db)
	repo := repository.NewUserRepository(db, outboxRepo)
	ctx := context.Background()

	t.Run("returns stored user", func(t *testing.T) {
		user := createTestUser("lookup@example.com")
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		got, err := repo.GetByEmail(ctx, "lookup@example.com")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID != user.ID {
			t.Fatalf("expected ID %q, got %q", user.ID, got.ID)
		}
		if got.PasswordHash != user.PasswordHash {
			t.Fatal("expected password hash to round-trip")
		}
	})

	t.Run("returns not found for unknown email", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected NotFound kind, got %v", err)
		}
	})
}

func TestUserRepository_GetAll(t *testing.T) {
	db := testClient.Database("test_user_getall")
	outboxRepo := repository.NewOutboxRepository(db)
	repo := repository.NewUserRepository(db, outboxRepo)
	ctx := context.Background()

	t.Run("returns all users", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			user := createTestUser(fmt.Sprintf("user%d@example.com", i))
			if err := repo.Create(ctx, user); err != nil {
				t.Fatalf("create failed: %v", err)
			}
			time.Sleep(5 * time.Millisecond)
		}

		users, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(users) != 3 {
			t.Fatalf("expected 3 users, got %d", len(users))
		}
		if users[0].Email != "user2@example.com" {
			t.Fatalf("expected newest user first, got %q", users[0].Email)
		}
	})
}

func TestUserRepository_SetBlockedWithOutbox(t *testing.T) {
	db := testClient.Database("test_user_setblocked")
	outboxRepo := repository.NewOutboxRepository(db)
	repo := repository.NewUserRepository(db, outboxRepo)
	ctx := context.Background()

	t.Run("flips flag and writes outbox entry", func(t *testing.T) {
		user := createTestUser("blockme@example.com")
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		event := domain.NewUserBlockToggledEvent(user.ID, true, time.Now())
		if err := repo.SetBlockedWithOutbox(ctx, user.ID, true, event); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got, err := repo.GetByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !got.IsBlocked {
			t.Fatal("expected user to be blocked")
		}

		entries, err := outboxRepo.FetchPending(ctx, 10)
		if err != nil {
			t.Fatalf("fetch pending failed: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 outbox entry, got %d", len(entries))
		}
		if entries[0].EventName != "user.block_toggled" {
			t.Fatalf("expected event name 'user.block_toggled', got %q", entries[0].EventName)
		}
		if entries[0].EntityName != "user" {
			t.Fatalf("expected entity name 'user', got %q", entries[0].EntityName)
		}
	})

	t.Run("returns not found for unknown user", func(t *testing.T) {
		event := domain.NewUserBlockToggledEvent("aabbccddee112233aabbccdd", true, time.Now())

		err := repo.SetBlockedWithOutbox(ctx, "aabbccddee112233aabbccdd", true, event)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected NotFound kind, got %v", err)
		}
	})
}
