package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projstat/internal/model"
)

func TestAggregateEmpty(t *testing.T) {
	result := Aggregate(nil)

	assert.NotNil(t, result.Files)
	assert.Zero(t, result.TotalLines)
	assert.Zero(t, result.TotalBlankLines)
	assert.Nil(t, result.Longest)
	assert.Nil(t, result.Shortest)
}

func TestAggregateTotals(t *testing.T) {
	records := []model.FileRecord{
		{Path: "a", LineCount: 10, BlankLineCount: 2},
		{Path: "b", LineCount: 0, BlankLineCount: 0},
		{Path: "c", LineCount: 7, BlankLineCount: 7},
	}

	result := Aggregate(records)

	assert.Equal(t, 17, result.TotalLines)
	assert.Equal(t, 9, result.TotalBlankLines)
	require.NotNil(t, result.Longest)
	require.NotNil(t, result.Shortest)
	assert.Equal(t, "a", result.Longest.Path)
	assert.Equal(t, "b", result.Shortest.Path)
}

// TestAggregateTieBreak 验证行数相同时先出现的文件胜出。
func TestAggregateTieBreak(t *testing.T) {
	records := []model.FileRecord{
		{Path: "first-short", LineCount: 1},
		{Path: "first-long", LineCount: 5},
		{Path: "second-long", LineCount: 5},
		{Path: "second-short", LineCount: 1},
	}

	result := Aggregate(records)

	assert.Equal(t, "first-long", result.Longest.Path)
	assert.Equal(t, "first-short", result.Shortest.Path)
}

// TestAggregateExtremesAreElements 验证最长/最短文件指向 Files 中的元素。
func TestAggregateExtremesAreElements(t *testing.T) {
	result := Aggregate([]model.FileRecord{
		{Path: "only", LineCount: 3},
	})

	assert.Same(t, &result.Files[0], result.Longest)
	assert.Same(t, &result.Files[0], result.Shortest)
}
