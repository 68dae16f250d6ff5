package postgres

import (
	"database/sql"

	"wordofday/internal/domain"
)

// SubscriptionRepo implements repository.SubscriptionRepository
type SubscriptionRepo struct {
	db *sql.DB
}

// NewSubscriptionRepo creates a new subscription repository
func NewSubscriptionRepo(db *sql.DB) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

// SaveSubscription creates or replaces the chat's subscription
func (r *SubscriptionRepo) SaveSubscription(sub domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (chat_id, message_id, surface, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (chat_id)
		DO UPDATE SET message_id = EXCLUDED.message_id, surface = EXCLUDED.surface
	`
	_, err := r.db.Exec(query, sub.ChatID, sub.MessageID, string(sub.Surface), sub.CreatedAt)
	return err
}

// GetSubscription returns the chat's subscription, or nil if there is none
func (r *SubscriptionRepo) GetSubscription(chatID int64) (*domain.Subscription, error) {
	var sub domain.Subscription
	var surface string
	query := `SELECT chat_id, message_id, surface, created_at FROM subscriptions WHERE chat_id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&sub.ChatID, &sub.MessageID, &surface, &sub.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sub.Surface = domain.Surface(surface)
	return &sub, nil
}

// ListSubscriptions returns every subscription
func (r *SubscriptionRepo) ListSubscriptions() ([]domain.Subscription, error) {
	query := `
		SELECT chat_id, message_id, surface, created_at
		FROM subscriptions
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		var sub domain.Subscription
		var surface string
		if err := rows.Scan(&sub.ChatID, &sub.MessageID, &surface, &sub.CreatedAt); err != nil {
			return nil, err
		}
		sub.Surface = domain.Surface(surface)
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

// UpdateMessageID points the subscription at a new message
func (r *SubscriptionRepo) UpdateMessageID(chatID int64, messageID int) error {
	query := `
		UPDATE subscriptions
		SET message_id = $2
		WHERE chat_id = $1
	`
	_, err := r.db.Exec(query, chatID, messageID)
	return err
}

// DeleteSubscription removes the chat's subscription
func (r *SubscriptionRepo) DeleteSubscription(chatID int64) error {
	query := `DELETE FROM subscriptions WHERE chat_id = $1`
	_, err := r.db.Exec(query, chatID)
	return err
}
