package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/travel-budget-estimator/internal/dto"
)

// MapDBError translates pgx errors into HTTP responses. Check violations on
// the leads table surface as 400s so a client bug shows up as a validation
// failure rather than a 500.
func MapDBError(err error) (int, dto.Response) {
	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, dto.Fail("resource not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict, dto.Fail("resource already exists")
		case "23503": // foreign_key_violation
			return http.StatusBadRequest, dto.Fail("referenced resource does not exist")
		case "23514": // check_violation
			return http.StatusBadRequest, dto.Fail("constraint violation: " + pgErr.ConstraintName)
		}
	}

	log.Error().Err(err).Msg("unhandled database error")
	return http.StatusInternalServerError, dto.Fail("internal server error")
}

// ErrorHandler is the safety net for handlers that push errors onto the gin
// context instead of responding directly.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			status, resp := MapDBError(err)
			c.JSON(status, resp)
		}
	}
}
