package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/imharvol/bog-utils-bot/internal/domain"
	"github.com/imharvol/bog-utils-bot/internal/ports"
)

// SubscriptionRepository stores event subscriptions in sqlite. Wildcard
// matching and subsumption are expressed as single SQL statements so each
// operation stays atomic.
type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

var _ ports.SubscriptionStore = (*SubscriptionRepository)(nil)

// Subscribe inserts the subscription unless an equivalent or subsuming row
// exists. A new wildcard row deletes the concrete rows it subsumes; the
// cleanup and the insert run in one transaction so a crash cannot leave the
// table with both.
func (r *SubscriptionRepository) Subscribe(ctx context.Context, sub domain.Subscription) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&subscriptionRecord{}).
			Where("user_id = ? AND (event_name = ? OR event_name = ?) AND (address = ? OR address = ?)",
				sub.UserID, sub.EventName, domain.Wildcard, sub.Address, domain.Wildcard).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check existing subscriptions: %w", err)
		}
		if count > 0 {
			return domain.ErrAlreadySubscribed
		}

		if sub.EventName == domain.Wildcard {
			if err := tx.Where("user_id = ? AND address = ?", sub.UserID, sub.Address).
				Delete(&subscriptionRecord{}).Error; err != nil {
				return fmt.Errorf("failed to delete subsumed subscriptions: %w", err)
			}
		}
		if sub.Address == domain.Wildcard {
			if err := tx.Where("user_id = ? AND event_name = ?", sub.UserID, sub.EventName).
				Delete(&subscriptionRecord{}).Error; err != nil {
				return fmt.Errorf("failed to delete subsumed subscriptions: %w", err)
			}
		}

		record := subscriptionRecord{UserID: sub.UserID, EventName: sub.EventName, Address: sub.Address}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to insert subscription: %w", err)
		}
		return nil
	})
	return err
}

func (r *SubscriptionRepository) Unsubscribe(ctx context.Context, sub domain.Subscription) error {
	db := r.db.WithContext(ctx)

	switch {
	case sub.EventName == domain.Wildcard && sub.Address == domain.Wildcard:
		return deleteWhere(db, "user_id = ?", sub.UserID)
	case sub.EventName == domain.Wildcard:
		return deleteWhere(db, "user_id = ? AND address = ?", sub.UserID, sub.Address)
	case sub.Address == domain.Wildcard:
		return deleteWhere(db, "user_id = ? AND event_name = ?", sub.UserID, sub.EventName)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND event_name = ? AND address = ?",
			sub.UserID, sub.EventName, sub.Address).
			Delete(&subscriptionRecord{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete subscription: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotSubscribed
		}
		return nil
	})
}

func deleteWhere(db *gorm.DB, query string, args ...interface{}) error {
	if err := db.Where(query, args...).Delete(&subscriptionRecord{}).Error; err != nil {
		return fmt.Errorf("failed to delete subscriptions: %w", err)
	}
	return nil
}

// ListSubscriptions returns the user's subscriptions in insertion order.
func (r *SubscriptionRepository) ListSubscriptions(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	var records []subscriptionRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("rowid").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subs := make([]domain.Subscription, len(records))
	for i, rec := range records {
		subs[i] = domain.Subscription{UserID: rec.UserID, EventName: rec.EventName, Address: rec.Address}
	}
	return subs, nil
}

// MatchSubscribers returns the distinct user ids with a row matching the
// event name and address, with the wildcard matching either position.
func (r *SubscriptionRepository) MatchSubscribers(ctx context.Context, eventName, address string) ([]int64, error) {
	var userIDs []int64
	err := r.db.WithContext(ctx).
		Model(&subscriptionRecord{}).
		Distinct("user_id").
		Where("(event_name = ? OR event_name = ?) AND (address = ? OR address = ?)",
			eventName, domain.Wildcard, address, domain.Wildcard).
		Order("user_id").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to match subscribers: %w", err)
	}
	return userIDs, nil
}
