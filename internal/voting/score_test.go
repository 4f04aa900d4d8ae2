package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emilythestrangee/breadit-api/internal/models"
)

func votesOf(types ...models.VoteType) []models.VoteRecord {
	votes := make([]models.VoteRecord, 0, len(types))
	for _, t := range types {
		votes = append(votes, models.VoteRecord{Type: t})
	}
	return votes
}

func TestScore(t *testing.T) {
	up, down := models.VoteTypeUp, models.VoteTypeDown

	assert.Equal(t, 1, Score(votesOf(up, up, down)))
	assert.Equal(t, 0, Score(votesOf()))
	assert.Equal(t, 0, Score(nil))
	assert.Equal(t, -2, Score(votesOf(down, down)))
	assert.Equal(t, 5, Score(votesOf(up, up, up, up, up)))
}
