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

type PropositionHandler struct {
	propositionService *services.PropositionService
}

func NewPropositionHandler(db *gorm.DB) *PropositionHandler {
	return &PropositionHandler{
		propositionService: services.NewPropositionService(db),
	}
}

// CreateProposition creates an availability window for the current user
// @Summary Create a proposition
// @Description Declare an availability window (date + time range) for the authenticated user
// @Tags propositions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param proposition body models.CreatePropositionRequest true "Availability window"
// @Success 201 {object} models.Proposition
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /propositions [post]
func (h *PropositionHandler) CreateProposition(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreatePropositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proposition, err := h.propositionService.CreateProposition(userID, req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, proposition)
}

// GetAllPropositions lists every user's availability windows
// @Summary Get all propositions
// @Description Get all availability windows ordered by start time then end time, both descending
// @Tags propositions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} models.PaginatedPropositionsResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /propositions [get]
func (h *PropositionHandler) GetAllPropositions(c *gin.Context) {
	page, pageSize := parsePagination(c)

	result, err := h.propositionService.GetAllPropositions(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMyPropositions lists the current user's availability windows
// @Summary Get own propositions
// @Tags propositions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} models.PaginatedPropositionsResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /propositions/mine [get]
func (h *PropositionHandler) GetMyPropositions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page, pageSize := parsePagination(c)

	result, err := h.propositionService.GetPropositionsByUser(userID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateProposition updates an availability window
// @Summary Update proposition
// @Description Update an availability window; only the owner or an admin may do this
// @Tags propositions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Proposition ID"
// @Param proposition body models.UpdatePropositionRequest true "Updated window"
// @Success 200 {object} models.Proposition
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /propositions/{id} [put]
func (h *PropositionHandler) UpdateProposition(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposition ID"})
		return
	}

	var req models.UpdatePropositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proposition, err := h.propositionService.UpdateProposition(uint(id), userID, isAdmin(c), req)
	if err != nil {
		switch {
		case err.Error() == "proposition not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err.Error() == "proposition does not belong to user":
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, models.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, proposition)
}

// DeleteProposition removes an availability window
// @Summary Delete proposition
// @Description Delete an availability window; only the owner or an admin may do this
// @Tags propositions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Proposition ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /propositions/{id} [delete]
func (h *PropositionHandler) DeleteProposition(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposition ID"})
		return
	}

	err = h.propositionService.DeleteProposition(uint(id), userID, isAdmin(c))
	if err != nil {
		switch {
		case err.Error() == "proposition not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err.Error() == "proposition does not belong to user":
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Proposition deleted successfully"})
}
