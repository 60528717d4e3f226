package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-key-keeper/models"
)

var secretRowColumns = []string{"id", "key_id", "algorithm", "nonce", "ciphertext", "associated_data", "created_at"}

func TestSaveSecret(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSecretRepository(db)

	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	secret := models.SealedSecret{
		ID:             "0190",
		KeyID:          "k",
		Algorithm:      models.ChaCha20Poly1305,
		Nonce:          []byte{1},
		Ciphertext:     []byte{2, 3},
		AssociatedData: []byte("label"),
		CreatedAt:      now,
	}

	mock.ExpectExec("INSERT INTO sealed_secrets").
		WithArgs("0190", "k", "CHACHA20-POLY1305", []byte{1}, []byte{2, 3}, []byte("label"), now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveSecret(context.Background(), secret); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveSecret_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSecretRepository(db)

	mock.ExpectExec("INSERT INTO sealed_secrets").WillReturnError(errors.New("disk full"))

	err := repo.SaveSecret(context.Background(), models.SealedSecret{ID: "x"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetSecret(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSecretRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM sealed_secrets WHERE id").
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(secretRowColumns).
			AddRow("s1", "k", "X25519-AGE", nil, []byte("ct"), nil, now))

	secret, err := repo.GetSecret(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret.Algorithm != models.X25519Age || secret.KeyID != "k" {
		t.Errorf("unexpected secret %+v", secret)
	}
	if len(secret.Nonce) != 0 {
		t.Errorf("expected empty nonce, got %v", secret.Nonce)
	}
	if !bytes.Equal(secret.Ciphertext, []byte("ct")) {
		t.Errorf("unexpected ciphertext %v", secret.Ciphertext)
	}
}

func TestGetSecret_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSecretRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM sealed_secrets").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSecret(context.Background(), "nope")
	if !errors.Is(err, ErrSealedSecretNotFound) {
		t.Fatalf("expected ErrSealedSecretNotFound, got %v", err)
	}
}

func TestListSecrets(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSecretRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM sealed_secrets WHERE key_id (.+) ORDER BY created_at, id").
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows(secretRowColumns).
			AddRow("s1", "k", "AES-256-GCM", []byte{1}, []byte{2}, nil, now).
			AddRow("s2", "k", "AES-256-GCM", []byte{3}, []byte{4}, nil, now.Add(time.Second)))

	secrets, err := repo.ListSecrets(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(secrets) != 2 || secrets[0].ID != "s1" || secrets[1].ID != "s2" {
		t.Fatalf("unexpected secrets %+v", secrets)
	}
}

func TestListSecrets_RowError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSecretRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM sealed_secrets").
		WillReturnRows(sqlmock.NewRows(secretRowColumns).
			AddRow("s1", "k", "AES-256-GCM", []byte{1}, []byte{2}, nil, now).
			RowError(0, errors.New("broken row")))

	_, err := repo.ListSecrets(context.Background(), "k")
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}

func TestDeleteSecret(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "present", affected: 1, want: true},
		{name: "absent", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewSecretRepository(db)

			mock.ExpectExec("DELETE FROM sealed_secrets WHERE id").
				WithArgs("s1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			deleted, err := repo.DeleteSecret(context.Background(), "s1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if deleted != tt.want {
				t.Errorf("expected deleted=%v, got %v", tt.want, deleted)
			}
		})
	}
}

func TestSaveWrappedKey_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewKeyMaterialRepository(db)

	mock.ExpectExec("INSERT INTO key_material").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.SaveWrappedKey(context.Background(), models.WrappedKey{KeyID: "k"})
	if !errors.Is(err, ErrKeyAlreadyExists) {
		t.Fatalf("expected ErrKeyAlreadyExists, got %v", err)
	}
}

func TestGetWrappedKey(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewKeyMaterialRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM key_material WHERE key_id").
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"key_id", "algorithm", "salt", "material", "public_key"}).
			AddRow("k", "ED25519", []byte("salt"), []byte("wrapped"), []byte("pub")))

	wrapped, err := repo.GetWrappedKey(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wrapped.Algorithm != models.Ed25519 || string(wrapped.Material) != "wrapped" {
		t.Errorf("unexpected wrapped key %+v", wrapped)
	}
}

func TestGetWrappedKey_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewKeyMaterialRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM key_material").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetWrappedKey(context.Background(), "k")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestDeleteWrappedKey(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewKeyMaterialRepository(db)

	mock.ExpectExec("DELETE FROM key_material WHERE key_id").
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteWrappedKey(context.Background(), "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
