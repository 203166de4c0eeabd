package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("bookings").
		Where(squirrel.Eq{"service_id": "s-1"}).
		Where(squirrel.Eq{"booking_date": "2026-10-19"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM bookings WHERE service_id = $1 AND booking_date = $2", query)
	assert.Equal(t, []interface{}{"s-1", "2026-10-19"}, args)
}
