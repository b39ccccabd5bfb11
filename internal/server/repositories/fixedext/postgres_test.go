package fixedext

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/fileblock/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestListByUser_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+user_id,\s*name,\s*is_blocked\s+FROM\s+fixed_extensions\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+name\s*$`

	rows := sqlmock.NewRows([]string{"user_id", "name", "is_blocked"}).
		AddRow("u1", "bat", false).
		AddRow("u1", "exe", true)
	mock.ExpectQuery(q).WithArgs("u1").WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[1].Name != "exe" || !got[1].IsBlocked {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListByUser_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+user_id`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "is_blocked"}))

	got, err := repo.ListByUser(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %+v", got)
	}
}

func TestListByUser_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+user_id`).
		WithArgs("u1").
		WillReturnError(errors.New("db down"))

	_, err := repo.ListByUser(context.Background(), "u1")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+fixed_extensions\s*\(user_id,\s*name,\s*is_blocked,\s*updated_at\).*ON\s+CONFLICT\s*\(user_id,\s*name\).*RETURNING\s+user_id,\s*name,\s*is_blocked\s*$`

	rows := sqlmock.NewRows([]string{"user_id", "name", "is_blocked"}).AddRow("u1", "exe", true)
	mock.ExpectQuery(q).WithArgs("u1", "exe", true).WillReturnRows(rows)

	got, err := repo.Upsert(context.Background(), &models.FixedExtension{UserID: "u1", Name: "exe", IsBlocked: true})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if got.Name != "exe" || !got.IsBlocked {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+fixed_extensions`).
		WithArgs("u1", "exe", false).
		WillReturnError(errors.New("db down"))

	_, err := repo.Upsert(context.Background(), &models.FixedExtension{UserID: "u1", Name: "exe"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
