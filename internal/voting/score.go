package voting

import "github.com/emilythestrangee/breadit-api/internal/models"

// Score is the number of UP votes minus the number of DOWN votes.
func Score(votes []models.VoteRecord) int {
	score := 0
	for _, v := range votes {
		switch v.Type {
		case models.VoteTypeUp:
			score++
		case models.VoteTypeDown:
			score--
		}
	}
	return score
}
