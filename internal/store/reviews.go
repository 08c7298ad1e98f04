package store

import (
	"database/sql"
	"math"
	"sort"
	"sync"
	"time"

	"chicchariot/internal/models"
	"chicchariot/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Reviews holds customer reviews, most recent first. Ratings are clamped
// into [1,5] on write; the average is always derived, never stored.
type Reviews struct {
	db   *sql.DB
	mu   sync.Mutex
	subs subscribers[[]models.Review]

	reviews []models.Review
}

func NewReviews(db *sql.DB) (*Reviews, error) {
	r := &Reviews{db: db}

	if _, err := storage.Load(db, storage.KeyReviews, &r.reviews); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Reviews) Subscribe(fn func([]models.Review)) int {
	return r.subs.add(fn)
}

func (r *Reviews) Unsubscribe(id int) {
	r.subs.remove(id)
}

// Add records a review for an item, assigning id and timestamp.
func (r *Reviews) Add(itemID, userID, userName string, rating int, comment string) models.Review {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	review := models.Review{
		ID:       uuid.NewString(),
		ItemID:   itemID,
		UserID:   userID,
		UserName: userName,
		Rating:   rating,
		Comment:  comment,
		Date:     time.Now(),
	}

	r.mu.Lock()
	r.reviews = append([]models.Review{review}, r.reviews...)
	snapshot := r.commitLocked()
	r.mu.Unlock()

	r.subs.notify(snapshot)
	return review
}

// Remove deletes the review with the given id. Unknown ids are a silent
// no-op.
func (r *Reviews) Remove(id string) {
	r.mu.Lock()
	kept := r.reviews[:0]
	removed := false
	for _, review := range r.reviews {
		if review.ID == id {
			removed = true
			continue
		}
		kept = append(kept, review)
	}
	if !removed {
		r.mu.Unlock()
		return
	}
	r.reviews = kept
	snapshot := r.commitLocked()
	r.mu.Unlock()

	r.subs.notify(snapshot)
}

// ListByItem returns the reviews for an item, newest first.
func (r *Reviews) ListByItem(itemID string) []models.Review {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Review
	for _, review := range r.reviews {
		if review.ItemID == itemID {
			matched = append(matched, review)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	return matched
}

// AverageRating returns the item's mean rating rounded to one decimal
// place, and the review count. Items without reviews report 0, 0.
func (r *Reviews) AverageRating(itemID string) (float64, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sum, count := 0, 0
	for _, review := range r.reviews {
		if review.ItemID == itemID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}

	average := math.Round(float64(sum)/float64(count)*10) / 10
	return average, count
}

func (r *Reviews) snapshotLocked() []models.Review {
	reviews := make([]models.Review, len(r.reviews))
	copy(reviews, r.reviews)
	return reviews
}

func (r *Reviews) commitLocked() []models.Review {
	if err := storage.Save(r.db, storage.KeyReviews, r.reviews); err != nil {
		log.Error().Err(err).Msg("failed to persist reviews")
	}
	return r.snapshotLocked()
}
