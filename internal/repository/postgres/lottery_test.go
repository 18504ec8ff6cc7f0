package postgres

import (
	"database/sql"
	"testing"
	"time"

	"rafflebot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestLotteryRepo_GetByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLotteryRepo(db)

	created := time.Date(2024, 11, 25, 11, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "description", "created_at"}).
		AddRow(3, "Projector2024", "умный проектор", created)

	mock.ExpectQuery("SELECT id, name, description, created_at FROM lotteries").
		WithArgs("Projector2024").
		WillReturnRows(rows)

	lottery, err := repo.GetByName("Projector2024")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), lottery.ID)
	assert.Equal(t, "Projector2024", lottery.Name)
	assert.Equal(t, created, lottery.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLotteryRepo_GetByName_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLotteryRepo(db)

	mock.ExpectQuery("SELECT id, name, description, created_at FROM lotteries").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	lottery, err := repo.GetByName("missing")

	assert.ErrorIs(t, err, domain.ErrLotteryNotFound)
	assert.Nil(t, lottery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLotteryRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLotteryRepo(db)

	created := time.Date(2024, 11, 25, 11, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "description", "created_at"}).
		AddRow(3, "Projector2024", "умный проектор", created)

	mock.ExpectQuery("INSERT INTO lotteries").
		WithArgs("Projector2024", "умный проектор").
		WillReturnRows(rows)

	lottery, err := repo.Create("Projector2024", "умный проектор")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), lottery.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLotteryRepo_Create_DuplicateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLotteryRepo(db)

	mock.ExpectQuery("INSERT INTO lotteries").
		WithArgs("Projector2024", "").
		WillReturnError(&pq.Error{Code: "23505"})

	lottery, err := repo.Create("Projector2024", "")

	assert.ErrorIs(t, err, domain.ErrLotteryExists)
	assert.Nil(t, lottery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
