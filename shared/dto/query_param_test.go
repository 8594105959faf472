package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelsite/shared/dto"
)

func TestNewestFirst(t *testing.T) {
	params := dto.NewestFirst()

	assert.Equal(t, "created_at", params.SortBy)
	assert.Equal(t, dto.SortDirDesc, params.SortDir)
	assert.Zero(t, params.Page)
	assert.Zero(t, params.Limit)
}
