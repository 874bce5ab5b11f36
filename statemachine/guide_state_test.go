package statemachine

import (
	"testing"

	"delivery-guides-api/models"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, IsValid(s), s)
	}
	assert.False(t, IsValid("shipped"))
	assert.False(t, IsValid(""))
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.Equal(t, []models.GuideStatus{models.GuideInTransit}, ValidTransitionsFrom(models.GuidePending))
	assert.ElementsMatch(t,
		[]models.GuideStatus{models.GuideDelivered, models.GuideFailed},
		ValidTransitionsFrom(models.GuideInTransit))
	assert.Empty(t, ValidTransitionsFrom(models.GuideDelivered))
}

func TestTerminalStatuses(t *testing.T) {
	assert.Equal(t, []models.GuideStatus{models.GuideDelivered, models.GuideFailed}, TerminalStatuses())
	assert.False(t, IsTerminal("unknown"))
}

func TestGetAllTransitionsIsACopy(t *testing.T) {
	all := GetAllTransitions()
	all[0].To = models.GuideFailed
	assert.Equal(t, models.GuideInTransit, GetAllTransitions()[0].To)
}
