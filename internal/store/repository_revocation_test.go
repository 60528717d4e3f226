package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRevoke_IgnoresConflicts(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProofRevocationRepository(db)

	exp := time.Date(2026, 1, 1, 0, 5, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO proof_revocations (.+) ON CONFLICT \\(jti\\) DO NOTHING").
		WithArgs("jti-1", exp).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Revoke(context.Background(), "jti-1", exp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIsRevoked(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "revoked", count: 1, want: true},
		{name: "not revoked", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewProofRevocationRepository(db)

			mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM proof_revocations").
				WithArgs("jti-1").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := repo.IsRevoked(context.Background(), "jti-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsRevoked_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProofRevocationRepository(db)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("down"))

	if _, err := repo.IsRevoked(context.Background(), "jti-1"); !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestPurgeExpired(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewProofRevocationRepository(db)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("DELETE FROM proof_revocations WHERE expires_at <").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 4))

	purged, err := repo.PurgeExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purged != 4 {
		t.Errorf("expected 4 purged, got %d", purged)
	}
}
