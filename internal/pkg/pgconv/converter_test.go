//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"math/big"
	"testing"
	"time"

	"petstore-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	cases := []string{"0", "25.5", "99.99", "1234567.125", "-3.2"}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			d := decimal.RequireFromString(c)
			got, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		})
	}
}

func TestDecimalFromNumeric(t *testing.T) {
	t.Run("null is zero", func(t *testing.T) {
		got, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("NaN rejected", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
	})

	t.Run("scaled integer", func(t *testing.T) {
		got, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(2550), Exp: -2, Valid: true})
		require.NoError(t, err)
		assert.Equal(t, "25.5", got.String())
	})
}

func TestDates(t *testing.T) {
	local := time.Date(2025, 1, 10, 22, 15, 0, 0, time.FixedZone("X", -5*60*60))
	pd := pgconv.DateToPgtype(local)
	require.True(t, pd.Valid)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(pd))

	assert.False(t, pgconv.DateToPgtype(time.Time{}).Valid)
	assert.True(t, pgconv.DateFromPgtype(pgtype.Date{}).IsZero())
}

func TestTextAndInt8(t *testing.T) {
	assert.False(t, pgconv.StringToPgtype("").Valid)
	assert.Equal(t, "x", pgconv.StringFromPgtype(pgconv.StringToPgtype("x")))
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))

	id := int64(5)
	assert.Equal(t, &id, pgconv.Int8PtrFromPgtype(pgconv.Int8PtrToPgtype(&id)))
	assert.Nil(t, pgconv.Int8PtrFromPgtype(pgconv.Int8PtrToPgtype(nil)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(errors.New("other")))
}
