package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"scheduler/models"
	"scheduler/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(db *gorm.DB) *MatchHandler {
	return &MatchHandler{
		matchService: services.NewMatchService(db),
	}
}

func matchValidationError(err error) bool {
	return errors.Is(err, models.ErrMatchTitleRequired) ||
		errors.Is(err, models.ErrMatchDateRequired) ||
		errors.Is(err, models.ErrNegativeScore)
}

// CreateMatch creates a match together with its appointment
// @Summary Create a new match
// @Description Create a match; its calendar appointment is created in the same transaction
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match body models.CreateMatchRequest true "Match data"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.CreateMatch(req)
	if err != nil {
		switch {
		case err.Error() == "opponent team not found":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case matchValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, match)
}

// GetMatch gets a match by ID
// @Summary Get match by ID
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	match, err := h.matchService.GetMatchByID(uint(id))
	if err != nil {
		if err.Error() == "match not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// UpdateMatch updates a match
// @Summary Update match
// @Description Update match fields; opponent_id 0 clears the opponent, and the appointment invariant is re-established on every save
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param match body models.UpdateMatchRequest true "Match update data"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches/{id} [put]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	var req models.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.UpdateMatch(uint(id), req)
	if err != nil {
		switch {
		case err.Error() == "match not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err.Error() == "opponent team not found" || matchValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// DeleteMatch deletes a match and its appointment
// @Summary Delete match
// @Description Delete a match; its appointment is removed with it (admin only)
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	err = h.matchService.DeleteMatch(uint(id))
	if err != nil {
		if err.Error() == "match not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Match deleted successfully"})
}

// GetAllMatches gets all matches with pagination
// @Summary Get all matches
// @Description Get all matches ordered by title descending
// @Tags matches
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} models.PaginatedMatchesResponse
// @Failure 500 {object} map[string]string
// @Router /matches [get]
func (h *MatchHandler) GetAllMatches(c *gin.Context) {
	page, pageSize := parsePagination(c)

	result, err := h.matchService.GetAllMatches(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
