package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"

	"taskboard/internal/core/domain"
)

const (
	mysqlErrDuplicateEntry     = 1062
	mysqlErrNoReferencedRow    = 1452
	mysqlErrNoReferencedRowOld = 1216
)

// storeError wraps err as a StoreError, translating the MySQL codes the
// board cares about into domain sentinels.
func storeError(op string, err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrNoReferencedRow, mysqlErrNoReferencedRowOld:
			return domain.NewStoreError(op, errors.Join(domain.ErrUserNotFound, err))
		case mysqlErrDuplicateEntry:
			return domain.NewStoreError(op, errors.Join(domain.ErrInvalidUserInput, err))
		}
	}
	return domain.NewStoreError(op, err)
}
