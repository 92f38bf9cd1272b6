package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation, см. https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgCodeUniqueViolation = "23505"

// IsUniqueViolation сообщает, что запрос уперся в уникальный индекс.
// Репозитории переводят такую ошибку в свои sentinel-ошибки
// (например ErrOrderAlreadyExists), наружу pgconn не протекает.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCodeUniqueViolation
	}
	return false
}
