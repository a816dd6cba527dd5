package manualblock

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	id, projectID, createdBy int64
	startsAt, endsAt         time.Time
	reason                   sql.NullString
	err                      error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.id
	*dest[1].(*int64) = r.projectID
	*dest[2].(*time.Time) = r.startsAt
	*dest[3].(*time.Time) = r.endsAt
	*dest[4].(*sql.NullString) = r.reason
	*dest[5].(*int64) = r.createdBy
	*dest[6].(*sql.NullTime) = sql.NullTime{Time: r.startsAt, Valid: true}
	return nil
}

func TestScanBlock(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	row := fakeRow{
		id:        1,
		projectID: 42,
		createdBy: 7,
		startsAt:  time.Date(2026, 10, 20, 12, 0, 0, 0, moscow),
		endsAt:    time.Date(2026, 10, 20, 14, 0, 0, 0, moscow),
		reason:    sql.NullString{String: "vacation", Valid: true},
	}

	block, err := scanBlock(row)

	require.NoError(t, err)
	assert.Equal(t, time.UTC, block.StartsAt.Location())
	assert.Equal(t, 9, block.StartsAt.Hour())
	require.NotNil(t, block.Reason)
	assert.Equal(t, "vacation", *block.Reason)
	assert.True(t, block.IsOwnedBy(7))
	assert.Equal(t, "vacation", block.ToBlockedRange().Reason)
}

func TestScanBlock_NoReason(t *testing.T) {
	block, err := scanBlock(fakeRow{
		startsAt: time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
		endsAt:   time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Nil(t, block.Reason)
	assert.Equal(t, "manual", block.ToBlockedRange().Reason)
}

func TestScanBlock_PropagatesNoRows(t *testing.T) {
	_, err := scanBlock(fakeRow{err: sql.ErrNoRows})

	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
