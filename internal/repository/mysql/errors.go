package mysql

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const codeDuplicateEntry = 1062

// isDuplicateEntry reports whether err is a MySQL duplicate-key violation.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == codeDuplicateEntry
}
