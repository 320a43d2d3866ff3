package postgre

import (
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"nexstock/internal/catalog/repository"
	"nexstock/pkg/log"
)

const tableProducts = "products"

type implRepository struct {
	db      *sql.DB
	dialect goqu.DialectWrapper
	l       log.Logger
}

// New creates a new PostgreSQL-backed Repository for the catalog domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("catalog/repository/postgre: db is required")
	}
	return &implRepository{db: db, dialect: goqu.Dialect("postgres"), l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/postgre.%s", method)
}
