package repository

const (
	DefaultPageSize int64 = 10
	MaxPageSize     int64 = 50
)

// PageVerify clamps page and size to sane bounds in place.
func PageVerify(page, size *int64) {
	if *page < 1 {
		*page = 1
	}
	if *size < 1 || *size > MaxPageSize {
		*size = DefaultPageSize
	}
}

// PageOffset converts a 1-based page number into a row offset.
func PageOffset(page, size int64) int64 {
	return (page - 1) * size
}
