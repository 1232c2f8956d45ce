package db_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pythonccino/goccino/internal/auth/entity"
	"github.com/pythonccino/goccino/internal/auth/outbound/db"
	"github.com/pythonccino/goccino/internal/pkg/goerror"
	"github.com/pythonccino/goccino/internal/pkg/instrument"
	"go.etcd.io/bbolt"
)

func newStore(t *testing.T) *db.Bolt {
	t.Helper()

	path := filepath.Join(t.TempDir(), "auth.db")
	bdb, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		t.Fatalf("open bolt failed: %v", err)
	}
	t.Cleanup(func() { bdb.Close() })

	return db.NewBolt(bdb, instrument.NewNoop())
}

func TestTOTPEnrollmentUpsert(t *testing.T) {
	// Arrange
	store := newStore(t)
	ctx := context.Background()
	first := entity.TOTPEnrollment{Username: "staff", Secret: []byte("one")}
	second := entity.TOTPEnrollment{Username: "staff", Secret: []byte("two")}

	// Act
	if err := store.SaveTOTPEnrollment(ctx, first); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.SaveTOTPEnrollment(ctx, second); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, err := store.GetTOTPEnrollment(ctx, "staff")

	// Assert
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got.Secret) != "two" {
		t.Fatalf("expected the later enrollment to win, got %q", got.Secret)
	}
}

func TestTOTPEnrollmentAbsent(t *testing.T) {
	// Arrange
	store := newStore(t)

	// Act
	_, err := store.GetTOTPEnrollment(context.Background(), "nobody")

	// Assert
	if !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTOTPEnrollmentConcurrentSaves(t *testing.T) {
	// Arrange
	store := newStore(t)
	ctx := context.Background()

	// Act: concurrent writers must not corrupt the record; afterwards a
	// final write is the observable state.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n byte) {
			defer wg.Done()
			_ = store.SaveTOTPEnrollment(ctx, entity.TOTPEnrollment{
				Username: "staff",
				Secret:   []byte{n},
			})
		}(byte(i))
	}
	wg.Wait()

	final := entity.TOTPEnrollment{Username: "staff", Secret: []byte("final")}
	if err := store.SaveTOTPEnrollment(ctx, final); err != nil {
		t.Fatalf("final save failed: %v", err)
	}
	got, err := store.GetTOTPEnrollment(ctx, "staff")

	// Assert
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got.Secret) != "final" {
		t.Fatalf("expected the last write to win, got %q", got.Secret)
	}
}

func TestEmailChallengeLifecycle(t *testing.T) {
	// Arrange
	store := newStore(t)
	ctx := context.Background()
	challenge := entity.EmailChallenge{
		Username:   "staff",
		CodeDigest: "digest",
		ExpiresAt:  time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC),
	}

	// Act
	if err := store.SaveEmailChallenge(ctx, challenge); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := store.GetEmailChallenge(ctx, "staff")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if err := store.DeleteEmailChallenge(ctx, "staff"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, errAfter := store.GetEmailChallenge(ctx, "staff")

	// Assert
	if got.CodeDigest != "digest" || !got.ExpiresAt.Equal(challenge.ExpiresAt) {
		t.Fatalf("unexpected challenge: %+v", got)
	}
	if !errors.Is(errAfter, goerror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", errAfter)
	}
}

func TestDeleteEmailChallengeAbsent(t *testing.T) {
	// Arrange
	store := newStore(t)

	// Act: deleting a challenge that never existed is not an error.
	err := store.DeleteEmailChallenge(context.Background(), "nobody")

	// Assert
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
