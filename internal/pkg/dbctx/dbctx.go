package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context carries the request context and, inside a transaction, the transaction handle.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

// For starts a Context outside any transaction.
func For(ctx context.Context) Context {
	return Context{Ctx: ctx}
}

func (c Context) WithTx(tx *gorm.DB) Context {
	c.Tx = tx
	return c
}
