package handlers

import (
	"net/http"

	"github.com/arnavshah/roster-analytics-go/pkg/calendar"
	"github.com/arnavshah/roster-analytics-go/pkg/clock"
	"github.com/arnavshah/roster-analytics-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// ValidateInput checks a shift list before analysis: structural problems are
// errors, while shifts the engines would silently skip are only reported.
func (h *Handler) ValidateInput(c *gin.Context) {
	var input struct {
		Shifts []models.Shift `json:"shifts"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(input.Shifts) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one shift is required",
		})
		return
	}

	// Check for duplicate IDs
	shiftIDs := make(map[string]bool)
	for _, s := range input.Shifts {
		if shiftIDs[s.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate shift ID: " + s.ID})
			return
		}
		shiftIDs[s.ID] = true
	}

	// Count the shifts every computation would drop
	invalidDates := 0
	invalidTimes := 0
	for _, s := range input.Shifts {
		if _, ok := calendar.Parse(s.Date); !ok {
			invalidDates++
			continue
		}
		if _, ok := clock.Duration(s.StartTime, s.EndTime); !ok {
			invalidTimes++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"shift_count":        len(input.Shifts),
			"invalid_date_count": invalidDates,
			"invalid_time_count": invalidTimes,
			"excluded_count":     invalidDates + invalidTimes,
		},
	})
}
