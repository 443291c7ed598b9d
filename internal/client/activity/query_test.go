package activity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veriscan/veriscan-go/internal/client/models"
)

func rec(id string, kind models.ContentKind, ai bool) models.VerificationRecord {
	return models.VerificationRecord{
		ID:         id,
		Type:       kind,
		Result:     ai,
		Confidence: 0.9,
		Timestamp:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestComputeView_SearchMatchesClassificationLabel(t *testing.T) {
	cache := []models.VerificationRecord{
		rec("1", models.KindText, true),
		rec("2", models.KindImage, false),
	}
	q := NewQueryState()
	q.Search = "ai"

	v := ComputeView(cache, q)

	require.Len(t, v.Visible, 1)
	assert.Equal(t, "1", v.Visible[0].ID)
	assert.Equal(t, 1, v.TotalCount)
}

func TestComputeView_SearchMatchesKindName(t *testing.T) {
	cache := []models.VerificationRecord{
		rec("1", models.KindText, true),
		rec("2", models.KindImage, false),
		rec("3", models.KindVideo, true),
	}
	q := NewQueryState()
	q.Search = "IMA" // case-insensitive substring of "image"

	v := ComputeView(cache, q)
	require.Len(t, v.Visible, 1)
	assert.Equal(t, "2", v.Visible[0].ID)
}

func TestComputeView_FilterAndSearchCompose(t *testing.T) {
	cache := []models.VerificationRecord{
		rec("1", models.KindText, true),
		rec("2", models.KindText, false),
		rec("3", models.KindImage, true),
	}
	q := NewQueryState()
	q.Filter = string(models.KindText)
	q.Search = "human"

	v := ComputeView(cache, q)
	require.Len(t, v.Visible, 1)
	assert.Equal(t, "2", v.Visible[0].ID)
}

func TestComputeView_Pagination(t *testing.T) {
	var cache []models.VerificationRecord
	for i := 0; i < 25; i++ {
		cache = append(cache, rec(fmt.Sprintf("%d", i), models.KindText, true))
	}

	q := NewQueryState() // page size 10

	v := ComputeView(cache, q)
	assert.Equal(t, 25, v.TotalCount)
	assert.Equal(t, 3, v.TotalPages)
	require.Len(t, v.Visible, 10)
	assert.Equal(t, "0", v.Visible[0].ID)

	q.PageIndex = 2
	v = ComputeView(cache, q)
	require.Len(t, v.Visible, 5, "last page holds the remainder")
	assert.Equal(t, "20", v.Visible[0].ID)

	// page past the end yields an empty slice, not a panic
	q.PageIndex = 7
	v = ComputeView(cache, q)
	assert.Empty(t, v.Visible)
}

func TestComputeView_EmptyResult(t *testing.T) {
	q := NewQueryState()

	v := ComputeView(nil, q)
	assert.Equal(t, 0, v.TotalCount)
	assert.Equal(t, 0, v.TotalPages, "totalPages must be 0 when nothing matches")
	assert.Empty(t, v.Visible)

	q.Search = "nothing-matches-this"
	v = ComputeView([]models.VerificationRecord{rec("1", models.KindText, true)}, q)
	assert.Equal(t, 0, v.TotalCount)
	assert.Equal(t, 0, v.TotalPages)
}

func TestComputeView_ZeroValueQueryState(t *testing.T) {
	cache := []models.VerificationRecord{
		rec("1", models.KindText, true),
		rec("2", models.KindImage, false),
	}

	// a zero-value query (PageSize 0, Filter "") must not divide by zero
	v := ComputeView(cache, QueryState{Filter: FilterAll})
	assert.Equal(t, 2, v.TotalCount)
	assert.Equal(t, 1, v.TotalPages)
	assert.Len(t, v.Visible, 2)
}

func TestComputeView_Pure(t *testing.T) {
	cache := []models.VerificationRecord{
		rec("1", models.KindText, true),
		rec("2", models.KindImage, false),
		rec("3", models.KindVideo, true),
	}
	q := QueryState{Filter: FilterAll, Search: "ai", PageIndex: 0, PageSize: 20}

	first := ComputeView(cache, q)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeView(cache, q), "identical inputs must yield identical output")
	}
}

func TestComputeView_TotalPagesCeil(t *testing.T) {
	tests := []struct {
		records  int
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 50, 2},
		{101, 50, 3},
	}
	for _, tc := range tests {
		var cache []models.VerificationRecord
		for i := 0; i < tc.records; i++ {
			cache = append(cache, rec(fmt.Sprintf("%d", i), models.KindText, true))
		}
		q := NewQueryState()
		q.PageSize = tc.pageSize
		assert.Equal(t, tc.want, ComputeView(cache, q).TotalPages,
			"%d records / page size %d", tc.records, tc.pageSize)
	}
}
