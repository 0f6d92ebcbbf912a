package repository

import (
	"context"

	"github.com/iancoleman/strcase"
)

// Settings persists user preferences such as the page size of every table.
type Settings interface {
	GetPageSize(ctx context.Context, table string) (size int, ok bool, err error)
	SetPageSize(ctx context.Context, table string, size int) error
}

// SettingKey normalizes a table id ("AccountTransactions", "account-transactions")
// into the key used by every Settings implementation.
func SettingKey(table string) string {
	return "page_size." + strcase.ToSnake(table)
}
