package statemachine

import (
	"delivery-guides-api/models"
)

// Transition is one step of the delivery lifecycle
type Transition struct {
	From        models.GuideStatus `json:"from"`
	To          models.GuideStatus `json:"to"`
	Description string             `json:"description"`
}

// statuses lists every status a guide may hold, in lifecycle order
var statuses = []models.GuideStatus{
	models.GuidePending,
	models.GuideInTransit,
	models.GuideDelivered,
	models.GuideFailed,
}

// lifecycle is the documented flow. Updates replace the whole record, so it is
// advisory: any valid status may be written over any other.
var lifecycle = []Transition{
	{From: models.GuidePending, To: models.GuideInTransit, Description: "courier picked up the shipment"},
	{From: models.GuideInTransit, To: models.GuideDelivered, Description: "shipment handed to the customer"},
	{From: models.GuideInTransit, To: models.GuideFailed, Description: "delivery attempt failed"},
}

var valid = func() map[models.GuideStatus]bool {
	m := make(map[models.GuideStatus]bool, len(statuses))
	for _, s := range statuses {
		m[s] = true
	}
	return m
}()

// Statuses returns all guide statuses in lifecycle order
func Statuses() []models.GuideStatus {
	out := make([]models.GuideStatus, len(statuses))
	copy(out, statuses)
	return out
}

// IsValid reports whether s is a known guide status
func IsValid(s models.GuideStatus) bool {
	return valid[s]
}

// ValidTransitionsFrom returns the next states the lifecycle expects after status
func ValidTransitionsFrom(status models.GuideStatus) []models.GuideStatus {
	var nexts []models.GuideStatus
	for _, t := range lifecycle {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// IsTerminal reports whether status ends the lifecycle
func IsTerminal(status models.GuideStatus) bool {
	return IsValid(status) && len(ValidTransitionsFrom(status)) == 0
}

// TerminalStatuses returns the statuses with no outgoing transition
func TerminalStatuses() []models.GuideStatus {
	var out []models.GuideStatus
	for _, s := range statuses {
		if IsTerminal(s) {
			out = append(out, s)
		}
	}
	return out
}

// GetAllTransitions returns the full lifecycle for documentation
func GetAllTransitions() []Transition {
	out := make([]Transition, len(lifecycle))
	copy(out, lifecycle)
	return out
}
