package services

import "context"

// SeedService populates the demo account on first startup. Safe to run on
// every boot; does nothing when the account already exists.
type SeedService interface {
	SeedDemoData(ctx context.Context) error
}
