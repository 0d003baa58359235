package dao

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrCelebrantNotFound     = errors.New("celebrant not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrCelebrantRefNotExists = errors.New("celebrant with the given code does not exist")
	ErrUpdateConflict        = errors.New("record was modified or removed concurrently")
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Celebrant{},
		&Booking{},
	)
}

// IsForeignKeyViolation reports whether err was raised by a failed foreign key
// check, either by postgres or by sqlite.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}

	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
