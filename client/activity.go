package client

import (
	"context"
	"sync"

	"ripple/internal/models"
)

// ActivityLimit is the maximum number of activity items requested.
const ActivityLimit = 30

// ActivityFeed loads the merged notification feed for the signed-in user.
// Merging happens server-side; the client just renders what it gets.
type ActivityFeed struct {
	gateway Gateway

	mu    sync.Mutex
	items []models.Activity
}

// NewActivityFeed creates an empty feed; call Refresh before reading.
func NewActivityFeed(gateway Gateway) *ActivityFeed {
	return &ActivityFeed{gateway: gateway}
}

// Refresh reloads the activity list.
func (a *ActivityFeed) Refresh(ctx context.Context) error {
	items, err := a.gateway.GetActivity(ctx, ActivityLimit)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.items = items
	a.mu.Unlock()
	return nil
}

// Items returns the loaded activity items, newest first.
func (a *ActivityFeed) Items() []models.Activity {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.items
}
