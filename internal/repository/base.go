package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// baseRepository carries the handle a repository queries through. The handle is
// either the shared pool or a single open transaction.
type baseRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func (r baseRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r baseRepository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}
