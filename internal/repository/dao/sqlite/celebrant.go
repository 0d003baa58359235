package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/repository/dao"
)

const celebrantColumns = "code, first_name, last_name, email, phone, date_of_birth, note, created_at, updated_at"

type CelebrantDAO struct {
	db       *sql.DB
	bookings *BookingDAO
}

func NewCelebrantDAO(db *sql.DB) *CelebrantDAO {
	return &CelebrantDAO{
		db:       db,
		bookings: NewBookingDAO(db),
	}
}

func scanCelebrant(row rowScanner) (dao.Celebrant, error) {
	var c dao.Celebrant
	var dateOfBirth, note, updated sql.NullString
	var created string

	err := row.Scan(&c.Code, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &dateOfBirth, &note, &created, &updated)
	if err != nil {
		return dao.Celebrant{}, err
	}

	if c.DateOfBirth, err = parseNullTime(dateOfBirth); err != nil {
		return dao.Celebrant{}, err
	}
	if c.CreatedAt, err = parseTime(created); err != nil {
		return dao.Celebrant{}, err
	}
	if c.UpdatedAt, err = parseNullTime(updated); err != nil {
		return dao.Celebrant{}, err
	}
	c.Note = stringPtr(note)

	return c, nil
}

func (d *CelebrantDAO) queryPlain(ctx context.Context) ([]dao.Celebrant, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT "+celebrantColumns+" FROM celebrants ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("failed to list celebrants: %w", err)
	}
	defer rows.Close()

	var celebrants []dao.Celebrant
	for rows.Next() {
		c, err := scanCelebrant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan celebrant: %w", err)
		}
		celebrants = append(celebrants, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate celebrants: %w", err)
	}

	return celebrants, nil
}

// FindAll loads every celebrant with its bookings in two queries.
func (d *CelebrantDAO) FindAll(ctx context.Context) ([]dao.Celebrant, error) {
	celebrants, err := d.queryPlain(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := d.bookings.findAllPlain(ctx)
	if err != nil {
		return nil, err
	}

	byCelebrant := make(map[uint][]dao.Booking)
	for _, b := range bookings {
		byCelebrant[b.CelebrantCode] = append(byCelebrant[b.CelebrantCode], b)
	}
	for i := range celebrants {
		celebrants[i].Bookings = byCelebrant[celebrants[i].Code]
	}

	return celebrants, nil
}

func (d *CelebrantDAO) FindByCode(ctx context.Context, code uint) (dao.Celebrant, error) {
	c, err := d.findPlain(ctx, code)
	if err != nil {
		return dao.Celebrant{}, err
	}

	c.Bookings, err = d.bookings.findByCelebrant(ctx, code)
	if err != nil {
		return dao.Celebrant{}, err
	}

	return c, nil
}

func (d *CelebrantDAO) findPlain(ctx context.Context, code uint) (dao.Celebrant, error) {
	row := d.db.QueryRowContext(ctx, "SELECT "+celebrantColumns+" FROM celebrants WHERE code = ?", code)

	c, err := scanCelebrant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return dao.Celebrant{}, dao.ErrCelebrantNotFound
	}
	if err != nil {
		return dao.Celebrant{}, fmt.Errorf("failed to get celebrant: %w", err)
	}

	return c, nil
}

func (d *CelebrantDAO) Exists(ctx context.Context, code uint) (bool, error) {
	var exists bool

	err := d.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM celebrants WHERE code = ?)", code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check celebrant: %w", err)
	}

	return exists, nil
}

func (d *CelebrantDAO) Insert(ctx context.Context, c dao.Celebrant) (dao.Celebrant, error) {
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO celebrants (first_name, last_name, email, phone, date_of_birth, note, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.FirstName, c.LastName, c.Email, c.Phone, nullTime(c.DateOfBirth), nullString(c.Note),
		formatTime(c.CreatedAt), nullTime(c.UpdatedAt),
	)
	if err != nil {
		return dao.Celebrant{}, fmt.Errorf("failed to insert celebrant: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return dao.Celebrant{}, fmt.Errorf("failed to read celebrant code: %w", err)
	}

	return d.findPlain(ctx, uint(id))
}

func (d *CelebrantDAO) Update(ctx context.Context, c dao.Celebrant) error {
	res, err := d.db.ExecContext(ctx,
		`UPDATE celebrants
		 SET first_name = ?, last_name = ?, email = ?, phone = ?, date_of_birth = ?, note = ?, updated_at = ?
		 WHERE code = ?`,
		c.FirstName, c.LastName, c.Email, c.Phone, nullTime(c.DateOfBirth), nullString(c.Note),
		nullTime(c.UpdatedAt), c.Code,
	)
	if err != nil {
		return fmt.Errorf("failed to update celebrant: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return dao.ErrUpdateConflict
	}

	return nil
}

// Delete relies on ON DELETE CASCADE to remove the celebrant's bookings.
func (d *CelebrantDAO) Delete(ctx context.Context, code uint) error {
	res, err := d.db.ExecContext(ctx, "DELETE FROM celebrants WHERE code = ?", code)
	if err != nil {
		return fmt.Errorf("failed to delete celebrant: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return dao.ErrCelebrantNotFound
	}

	return nil
}
