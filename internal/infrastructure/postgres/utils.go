package postgres

import (
	"errors"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registra el dialecto
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
)

const dialectPostgres = "postgres"

var dialect = goqu.Dialect(dialectPostgres)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// likeEscaper escapa los comodines de LIKE para buscar el texto literal.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// pageQueries arma la consulta paginada (orden por id) y su COUNT a partir del mismo dataset filtrado.
func pageQueries(ds *goqu.SelectDataset, columns []any, page repository.PageRequest) (listSQL string, listArgs []any, countSQL string, countArgs []any, err error) {
	listSQL, listArgs, err = ds.Prepared(true).
		Select(columns...).
		Order(goqu.I("id").Asc()).
		Limit(uint(page.Size)).
		Offset(uint(page.Offset())).
		ToSQL()
	if err != nil {
		return "", nil, "", nil, err
	}
	countSQL, countArgs, err = ds.Prepared(true).Select(goqu.COUNT(goqu.Star())).ToSQL()
	if err != nil {
		return "", nil, "", nil, err
	}
	return listSQL, listArgs, countSQL, countArgs, nil
}
