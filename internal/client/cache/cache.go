// Package cache holds the client's authoritative in-memory view of the hoot
// collection between refreshes.
//
// Coherence rules:
//   - Entries only ever come from backend responses; the cache never holds
//     a locally fabricated entity.
//   - Every mutation is one atomic transition: an update or delete replaces
//     or removes the whole entity, and a comment write substitutes the whole
//     owning hoot rather than mutating its embedded sequence in place.
//   - A nested mutation whose owning hoot is absent is dropped and recorded
//     as an inconsistency fault; the next session activation reloads the
//     full list and re-establishes consistency.
package cache

import (
	"context"
	"sync"

	"github.com/caojohnny91/hoot-client/internal/client/models"
	"github.com/caojohnny91/hoot-client/internal/logging"
)

// Subscriber receives a snapshot of the cache after every state transition.
// Snapshots are defensive copies and safe to keep.
type Subscriber func(hoots []models.Hoot)

// HootCache is an ordered hoot collection, newest first. All transitions
// happen under one lock so observers never see a partial update.
type HootCache struct {
	mu          sync.Mutex
	hoots       []models.Hoot
	subscribers []Subscriber
	faults      int
	log         logging.Logger
}

func New(log logging.Logger) *HootCache {
	return &HootCache{log: log.With("component", "cache")}
}

// Subscribe registers fn to be called with a snapshot after every
// transition. Subscribers cannot be removed; a consumer that goes away
// simply ignores late snapshots.
func (c *HootCache) Subscribe(fn Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Load replaces the entire cache content with hoots, in the given order.
// Used after a successful list call; stale entries never survive a refresh.
func (c *HootCache) Load(hoots []models.Hoot) {
	c.mu.Lock()
	c.hoots = copyHoots(hoots)
	c.mu.Unlock()
	c.notify()
}

// Clear discards all entries, e.g. on sign-out.
func (c *HootCache) Clear() {
	c.mu.Lock()
	c.hoots = nil
	c.mu.Unlock()
	c.notify()
}

// InsertHoot prepends hoot so the newest entry is first. Callers pass only
// backend responses, never locally synthesized values.
func (c *HootCache) InsertHoot(hoot models.Hoot) {
	c.mu.Lock()
	hoots := make([]models.Hoot, 0, len(c.hoots)+1)
	hoots = append(hoots, copyHoot(hoot))
	hoots = append(hoots, c.hoots...)
	c.hoots = hoots
	c.mu.Unlock()
	c.notify()
}

// ReplaceHoot substitutes the entry matching hootID wholesale. When no
// entry matches, the cache is left unchanged and a fault is recorded.
func (c *HootCache) ReplaceHoot(hootID string, hoot models.Hoot) bool {
	c.mu.Lock()
	idx := c.indexOf(hootID)
	if idx < 0 {
		c.recordFault("replace hoot", hootID)
		c.mu.Unlock()
		return false
	}
	c.hoots[idx] = copyHoot(hoot)
	c.mu.Unlock()
	c.notify()
	return true
}

// RemoveHoot filters out the entry matching hootID. Removing an id that is
// already gone is a no-op, so the operation is idempotent.
func (c *HootCache) RemoveHoot(hootID string) {
	c.mu.Lock()
	changed := false
	hoots := c.hoots[:0]
	for _, h := range c.hoots {
		if h.ID == hootID {
			changed = true
			continue
		}
		hoots = append(hoots, h)
	}
	c.hoots = hoots
	c.mu.Unlock()
	if changed {
		c.notify()
	}
}

// InsertComment appends comment to the owning hoot's sequence and writes
// the whole hoot back. Dropped with a fault when the hoot is absent.
func (c *HootCache) InsertComment(hootID string, comment models.Comment) bool {
	return c.mutateComments("insert comment", hootID, func(comments []models.Comment) []models.Comment {
		return append(comments, comment)
	})
}

// ReplaceComment substitutes the comment matching commentID inside the
// owning hoot. Dropped with a fault when the hoot is absent.
func (c *HootCache) ReplaceComment(hootID, commentID string, comment models.Comment) bool {
	return c.mutateComments("replace comment", hootID, func(comments []models.Comment) []models.Comment {
		out := make([]models.Comment, len(comments))
		for i, cm := range comments {
			if cm.ID == commentID {
				out[i] = comment
			} else {
				out[i] = cm
			}
		}
		return out
	})
}

// RemoveComment filters the comment matching commentID out of the owning
// hoot. Dropped with a fault when the hoot is absent.
func (c *HootCache) RemoveComment(hootID, commentID string) bool {
	return c.mutateComments("remove comment", hootID, func(comments []models.Comment) []models.Comment {
		out := make([]models.Comment, 0, len(comments))
		for _, cm := range comments {
			if cm.ID == commentID {
				continue
			}
			out = append(out, cm)
		}
		return out
	})
}

// Hoots returns a snapshot of the collection, newest first.
func (c *HootCache) Hoots() []models.Hoot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyHoots(c.hoots)
}

// Get returns a copy of the hoot matching hootID.
func (c *HootCache) Get(hootID string) (models.Hoot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(hootID)
	if idx < 0 {
		return models.Hoot{}, false
	}
	return copyHoot(c.hoots[idx]), true
}

// Len returns the number of cached hoots.
func (c *HootCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.hoots)
}

// Faults returns how many mutations were dropped because their target was
// absent from the cache.
func (c *HootCache) Faults() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.faults
}

// mutateComments produces a new hoot value with a transformed comment
// sequence and substitutes it for the old one in a single transition.
func (c *HootCache) mutateComments(op, hootID string, fn func([]models.Comment) []models.Comment) bool {
	c.mu.Lock()
	idx := c.indexOf(hootID)
	if idx < 0 {
		c.recordFault(op, hootID)
		c.mu.Unlock()
		return false
	}
	hoot := copyHoot(c.hoots[idx])
	c.hoots[idx] = hoot.WithComments(fn(hoot.Comments))
	c.mu.Unlock()
	c.notify()
	return true
}

// indexOf must be called with the lock held. Matching is by id, not by
// reference: the entity may have been replaced since the original load.
func (c *HootCache) indexOf(hootID string) int {
	for i, h := range c.hoots {
		if h.ID == hootID {
			return i
		}
	}
	return -1
}

// recordFault must be called with the lock held.
func (c *HootCache) recordFault(op, hootID string) {
	c.faults++
	c.log.Warn(context.Background(), "dropped mutation targeting absent hoot", "op", op, "hoot_id", hootID)
}

func (c *HootCache) notify() {
	c.mu.Lock()
	subs := make([]Subscriber, len(c.subscribers))
	copy(subs, c.subscribers)
	snapshot := copyHoots(c.hoots)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(copyHoots(snapshot))
	}
}

func copyHoot(h models.Hoot) models.Hoot {
	if h.Comments != nil {
		comments := make([]models.Comment, len(h.Comments))
		copy(comments, h.Comments)
		h.Comments = comments
	}
	return h
}

func copyHoots(hoots []models.Hoot) []models.Hoot {
	out := make([]models.Hoot, len(hoots))
	for i, h := range hoots {
		out[i] = copyHoot(h)
	}
	return out
}
