package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/repository/dao"
)

const bookingColumns = `code, celebrant_code, title, start_at, end_at, package, guest_count, status,
	price, deposit, deposit_paid, note, created_at, updated_at`

type BookingDAO struct {
	db *sql.DB
}

func NewBookingDAO(db *sql.DB) *BookingDAO {
	return &BookingDAO{
		db: db,
	}
}

func scanBooking(row rowScanner) (dao.Booking, error) {
	var b dao.Booking
	var start, created string
	var end, pkg, status, note, updated sql.NullString
	var guests sql.NullInt64
	var price, deposit sql.NullFloat64
	var depositPaid sql.NullBool

	err := row.Scan(&b.Code, &b.CelebrantCode, &b.Title, &start, &end, &pkg, &guests, &status,
		&price, &deposit, &depositPaid, &note, &created, &updated)
	if err != nil {
		return dao.Booking{}, err
	}

	if b.StartAt, err = parseTime(start); err != nil {
		return dao.Booking{}, err
	}
	if b.EndAt, err = parseNullTime(end); err != nil {
		return dao.Booking{}, err
	}
	if b.CreatedAt, err = parseTime(created); err != nil {
		return dao.Booking{}, err
	}
	if b.UpdatedAt, err = parseNullTime(updated); err != nil {
		return dao.Booking{}, err
	}
	b.Package = stringPtr(pkg)
	b.GuestCount = intPtr(guests)
	b.Status = stringPtr(status)
	b.Price = floatPtr(price)
	b.Deposit = floatPtr(deposit)
	b.DepositPaid = boolPtr(depositPaid)
	b.Note = stringPtr(note)

	return b, nil
}

func (d *BookingDAO) query(ctx context.Context, query string, args ...any) ([]dao.Booking, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []dao.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}

	return bookings, nil
}

func (d *BookingDAO) findAllPlain(ctx context.Context) ([]dao.Booking, error) {
	return d.query(ctx, "SELECT "+bookingColumns+" FROM bookings ORDER BY code")
}

func (d *BookingDAO) findByCelebrant(ctx context.Context, celebrantCode uint) ([]dao.Booking, error) {
	return d.query(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE celebrant_code = ? ORDER BY code", celebrantCode)
}

func (d *BookingDAO) FindAll(ctx context.Context) ([]dao.Booking, error) {
	bookings, err := d.findAllPlain(ctx)
	if err != nil {
		return nil, err
	}

	celebrants := NewCelebrantDAO(d.db)
	cache := make(map[uint]*dao.Celebrant)
	for i := range bookings {
		code := bookings[i].CelebrantCode
		c, ok := cache[code]
		if !ok {
			found, err := celebrants.findPlain(ctx, code)
			if err != nil && !errors.Is(err, dao.ErrCelebrantNotFound) {
				return nil, err
			}
			if err == nil {
				c = &found
			}
			cache[code] = c
		}
		bookings[i].Celebrant = c
	}

	return bookings, nil
}

func (d *BookingDAO) FindByCode(ctx context.Context, code uint) (dao.Booking, error) {
	row := d.db.QueryRowContext(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE code = ?", code)

	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return dao.Booking{}, dao.ErrBookingNotFound
	}
	if err != nil {
		return dao.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	c, err := NewCelebrantDAO(d.db).findPlain(ctx, b.CelebrantCode)
	if err != nil && !errors.Is(err, dao.ErrCelebrantNotFound) {
		return dao.Booking{}, err
	}
	if err == nil {
		b.Celebrant = &c
	}

	return b, nil
}

func (d *BookingDAO) Exists(ctx context.Context, code uint) (bool, error) {
	var exists bool

	err := d.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM bookings WHERE code = ?)", code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check booking: %w", err)
	}

	return exists, nil
}

func (d *BookingDAO) Insert(ctx context.Context, b dao.Booking) (dao.Booking, error) {
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO bookings (celebrant_code, title, start_at, end_at, package, guest_count, status,
		     price, deposit, deposit_paid, note, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.CelebrantCode, b.Title, formatTime(b.StartAt), nullTime(b.EndAt), nullString(b.Package),
		nullInt(b.GuestCount), nullString(b.Status), nullFloat(b.Price), nullFloat(b.Deposit),
		nullBool(b.DepositPaid), nullString(b.Note), formatTime(b.CreatedAt), nullTime(b.UpdatedAt),
	)
	if err != nil {
		if dao.IsForeignKeyViolation(err) {
			return dao.Booking{}, dao.ErrCelebrantRefNotExists
		}
		return dao.Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return dao.Booking{}, fmt.Errorf("failed to read booking code: %w", err)
	}

	return d.FindByCode(ctx, uint(id))
}

func (d *BookingDAO) Update(ctx context.Context, b dao.Booking) error {
	res, err := d.db.ExecContext(ctx,
		`UPDATE bookings
		 SET celebrant_code = ?, title = ?, start_at = ?, end_at = ?, package = ?, guest_count = ?,
		     status = ?, price = ?, deposit = ?, deposit_paid = ?, note = ?, updated_at = ?
		 WHERE code = ?`,
		b.CelebrantCode, b.Title, formatTime(b.StartAt), nullTime(b.EndAt), nullString(b.Package),
		nullInt(b.GuestCount), nullString(b.Status), nullFloat(b.Price), nullFloat(b.Deposit),
		nullBool(b.DepositPaid), nullString(b.Note), nullTime(b.UpdatedAt), b.Code,
	)
	if err != nil {
		if dao.IsForeignKeyViolation(err) {
			return dao.ErrCelebrantRefNotExists
		}
		return fmt.Errorf("failed to update booking: %w", err)
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

func (d *BookingDAO) Delete(ctx context.Context, code uint) error {
	res, err := d.db.ExecContext(ctx, "DELETE FROM bookings WHERE code = ?", code)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return dao.ErrBookingNotFound
	}

	return nil
}
