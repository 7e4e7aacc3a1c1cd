package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-intake-backend/internal/domain"
)

func TestToolCatalog(t *testing.T) {
	t.Run("Starter is offered a strict subset of the catalog", func(t *testing.T) {
		tools := domain.ToolsForPlan(domain.PlanStarter)
		assert.Len(t, tools, 6)
		for _, tool := range tools {
			assert.True(t, tool.Key.OfferedTo(domain.PlanStarter), "%s listed but not offered", tool.Key)
		}

		keys := make(map[domain.ToolKey]bool, len(tools))
		for _, tool := range tools {
			keys[tool.Key] = true
		}
		for _, business := range []domain.ToolKey{
			domain.ToolSlack, domain.ToolZoom, domain.ToolLinkedIn,
			domain.ToolApple, domain.ToolWindows, domain.ToolAndroid,
		} {
			assert.False(t, keys[business], "%s must not be offered to starter", business)
		}
	})

	t.Run("Business is offered the whole catalog", func(t *testing.T) {
		tools := domain.ToolsForPlan(domain.PlanBusiness)
		assert.Len(t, tools, len(domain.ToolCatalog))
	})

	t.Run("Listing and membership agree for every plan and key", func(t *testing.T) {
		for _, plan := range domain.ValidPlans() {
			listed := make(map[domain.ToolKey]bool)
			for _, tool := range domain.ToolsForPlan(plan) {
				listed[tool.Key] = true
			}
			for _, tool := range domain.ToolCatalog {
				assert.Equal(t, tool.Key.OfferedTo(plan), listed[tool.Key],
					"plan %s, tool %s", plan, tool.Key)
			}
		}
	})

	t.Run("Labels fall back to the raw key outside the catalog", func(t *testing.T) {
		assert.Equal(t, "Stripe", domain.ToolStripe.Label())
		assert.Equal(t, "crm-maison", domain.ToolKey("crm-maison").Label())
		assert.False(t, domain.ToolKey("crm-maison").IsValid())
	})
}

func TestTimeSlots(t *testing.T) {
	assert.True(t, domain.IsValidTimeSlot("09:00"))
	assert.True(t, domain.IsValidTimeSlot("17:00"))
	assert.False(t, domain.IsValidTimeSlot("12:00"), "lunch break is not bookable")
	assert.False(t, domain.IsValidTimeSlot("17:30"))
	assert.False(t, domain.IsValidTimeSlot(""))
}
