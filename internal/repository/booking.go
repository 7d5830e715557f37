package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"ceremonia/internal/domain"
)

// BookingRepository is the remote booking store: a postgres table holding the
// canonical cross-device copy of finalized bookings.
type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking and returns its remote id. A duplicate
// reference returns the id already stored, so a replayed write never
// produces a second record.
func (r *BookingRepository) Create(ctx context.Context, b *domain.PersistedBooking) (string, error) {
	participants, err := json.Marshal(b.AdditionalParticipants)
	if err != nil {
		return "", fmt.Errorf("marshal participants: %w", err)
	}

	id := uuid.New().String()
	query := `INSERT INTO remote_bookings (
				id, reference, event_id, event_name, event_date, event_time, event_location,
				main_name, main_email, main_phone, main_age, emergency_contact,
				payment_method, whatsapp_number, is_group_booking, additional_participants,
				total_participants, subtotal, discount_amount, total_amount, deposit_amount,
				currency, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
					  $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, b.BookingReference, b.Event.EventID, b.Event.Name, b.Event.Date,
		b.Event.Time, b.Event.Location,
		b.MainParticipant.Name, b.MainParticipant.Email, b.MainParticipant.Phone,
		b.MainParticipant.Age, b.MainParticipant.EmergencyContact,
		b.MainParticipant.PaymentMethod, b.MainParticipant.WhatsAppNumber,
		b.IsGroupBooking, participants,
		b.Pricing.TotalParticipants, b.Pricing.Subtotal, b.Pricing.DiscountAmount,
		b.Pricing.TotalAmount, b.Pricing.DepositAmount,
		b.Event.Currency, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return r.existingID(ctx, b.BookingReference)
		}
		return "", fmt.Errorf("insert booking: %w", err)
	}

	return id, nil
}

func (r *BookingRepository) existingID(ctx context.Context, reference string) (string, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT id FROM remote_bookings WHERE reference = $1`, reference)
	if err != nil {
		return "", fmt.Errorf("get existing booking: %w", err)
	}

	var id string
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrBookingNotFound
		}
		return "", fmt.Errorf("scan existing booking: %w", err)
	}

	return id, nil
}
