package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/thientruong51/asms-booking/pkg/database"
	"github.com/thientruong51/asms-booking/pkg/events"
	bookingdomain "github.com/thientruong51/asms-booking/services/booking/domain"
	domainevents "github.com/thientruong51/asms-booking/services/booking/domain/events"
	"github.com/thientruong51/asms-booking/services/booking/domain/models"
	"github.com/thientruong51/asms-booking/services/booking/domain/repositories"
)

// BookingRepository implements repositories.BookingRepository against
// PostgreSQL.
type BookingRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewBookingRepository returns a BookingRepository backed by the given
// connection pool and event bus. The bus is used to publish
// BookingCreatedEvents within the same transaction as the insert.
func NewBookingRepository(db *database.Database, bus *events.EventBus) *BookingRepository {
	return &BookingRepository{db: db, bus: bus}
}

// Save persists a new Booking and its lines, and publishes a
// BookingCreatedEvent within the same transaction.
func (r *BookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO bookings (id, customer_id, order_code, total, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			booking.ID, booking.CustomerID, booking.OrderCode, booking.Total, booking.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("booking %s already exists", booking.ID)
			}
			return fmt.Errorf("insert booking: %w", err)
		}

		for i, line := range booking.Lines {
			categories, err := json.Marshal(line.GoodsCategoryIDs)
			if err != nil {
				return fmt.Errorf("marshal goods categories: %w", err)
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO booking_lines (booking_id, position, offering_id, quantity, unit_price, goods_category_ids)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				booking.ID, i, line.OfferingID, line.Quantity, line.UnitPrice, categories)
			if err != nil {
				return fmt.Errorf("insert booking line: %w", err)
			}
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, booking); err != nil {
				return fmt.Errorf("publish booking created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a Booking by ID scoped to the given customer. Returns
// ErrBookingNotFound if not found.
func (r *BookingRepository) GetByID(ctx context.Context, customerID, id uuid.UUID) (*models.Booking, error) {
	booking := &models.Booking{}
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT id, customer_id, order_code, total, created_at
		FROM bookings
		WHERE id = $1 AND customer_id = $2`, id, customerID).
		Scan(&booking.ID, &booking.CustomerID, &booking.OrderCode, &booking.Total, &booking.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookingdomain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("query booking: %w", err)
	}

	lines, err := r.linesFor(ctx, []uuid.UUID{booking.ID})
	if err != nil {
		return nil, err
	}
	booking.Lines = lines[booking.ID]
	return booking, nil
}

// FindByCustomerID retrieves a paginated list of bookings and total count
// for the given customer, newest first.
func (r *BookingRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, opts repositories.QueryOpts) ([]*models.Booking, int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, customer_id, order_code, total, created_at
		FROM bookings
		WHERE customer_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`, customerID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	var ids []uuid.UUID
	for rows.Next() {
		b := &models.Booking{}
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.OrderCode, &b.Total, &b.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate bookings: %w", err)
	}

	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for _, b := range bookings {
		b.Lines = lines[b.ID]
	}

	var total int
	err = r.db.DB().QueryRowContext(ctx, `
		SELECT COUNT(*) FROM bookings WHERE customer_id = $1`, customerID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}
	return bookings, total, nil
}

// linesFor loads the lines for the given booking ids, keyed by booking id
// and ordered by line position.
func (r *BookingRepository) linesFor(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]models.BookingLine, error) {
	out := make(map[uuid.UUID][]models.BookingLine, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = id.String()
	}
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT booking_id, offering_id, quantity, unit_price, goods_category_ids
		FROM booking_lines
		WHERE booking_id = ANY($1::uuid[])
		ORDER BY booking_id, position`, idStrs)
	if err != nil {
		return nil, fmt.Errorf("query booking lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID uuid.UUID
		var line models.BookingLine
		var categories []byte
		if err := rows.Scan(&bookingID, &line.OfferingID, &line.Quantity, &line.UnitPrice, &categories); err != nil {
			return nil, fmt.Errorf("scan booking line: %w", err)
		}
		if err := json.Unmarshal(categories, &line.GoodsCategoryIDs); err != nil {
			return nil, fmt.Errorf("unmarshal goods categories: %w", err)
		}
		out[bookingID] = append(out[bookingID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking lines: %w", err)
	}
	return out, nil
}

func (r *BookingRepository) publishCreated(tx *sql.Tx, booking *models.Booking) error {
	event := domainevents.BookingCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		OrderCode:  booking.OrderCode,
		Total:      booking.Total,
		OccurredAt: booking.CreatedAt,
	}
	for _, line := range booking.Lines {
		event.Lines = append(event.Lines, domainevents.BookingLinePayload{
			OfferingID:       line.OfferingID,
			Quantity:         line.Quantity,
			UnitPrice:        line.UnitPrice,
			GoodsCategoryIDs: line.GoodsCategoryIDs,
		})
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicBookingCreated, msg)
}
