package errors

import crdb "github.com/cockroachdb/errors"

var (
	ErrNotFound        = crdb.New("not found")
	ErrInvalidArgument = crdb.New("invalid argument")
)

// NotFoundf wraps ErrNotFound; errors.Is still matches the sentinel.
func NotFoundf(format string, args ...any) error {
	return crdb.Wrapf(ErrNotFound, format, args...)
}
