package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/adapter/persistence/postgres"
)

func TestPublisherRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO publishers`)).
		WithArgs("Daily Wire", "https://cdn.example.com/dw.png", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	repo := postgres.NewPublisherRepo(db)
	publisher := &entity.Publisher{
		Name: "Daily Wire", LogoURL: "https://cdn.example.com/dw.png", CreatedAt: now,
	}
	if err := repo.Create(context.Background(), publisher); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if publisher.ID != 3 {
		t.Fatalf("Create expected ID 3, got %d", publisher.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPublisherRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "logo_url", "created_at"}).
		AddRow(1, "Daily Wire", "https://cdn.example.com/dw.png", now).
		AddRow(2, "Metro Times", "https://cdn.example.com/mt.png", now)

	mock.ExpectQuery(`FROM publishers`).
		WillReturnRows(rows)

	repo := postgres.NewPublisherRepo(db)
	publishers, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(publishers) != 2 {
		t.Fatalf("List expected 2 publishers, got %d", len(publishers))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
