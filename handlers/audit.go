package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultAuditLimit = 50

func auditLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultAuditLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, false
	}
	return limit, true
}

func (h *Handlers) auditAvailable(c *gin.Context) bool {
	if h.audit == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Audit trail is not available"})
		return false
	}
	return true
}

// ListChangesHandler lists audited employee changes
// @Summary      Change history
// @Description  ADD, UPDATE and DELETE events, newest first
// @Tags         Audit
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of events (default 50)"
// @Success      200    {object}  map[string][]models.ChangeEvent  "Changes"
// @Failure      400    {object}  map[string]string                "Invalid limit"
// @Failure      500    {object}  map[string]string                "Audit store error"
// @Router       /api/audit/changes [get]
func (h *Handlers) ListChangesHandler(c *gin.Context) {
	if !h.auditAvailable(c) {
		return
	}
	limit, ok := auditLimit(c)
	if !ok {
		return
	}

	changes, err := h.audit.ListChanges(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load change history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"changes": changes})
}

// ListFailuresHandler lists recorded failures
// @Summary      Failure history
// @Tags         Audit
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of events (default 50)"
// @Success      200    {object}  map[string][]models.FailureEvent  "Failures"
// @Failure      400    {object}  map[string]string                 "Invalid limit"
// @Failure      500    {object}  map[string]string                 "Audit store error"
// @Router       /api/audit/failures [get]
func (h *Handlers) ListFailuresHandler(c *gin.Context) {
	if !h.auditAvailable(c) {
		return
	}
	limit, ok := auditLimit(c)
	if !ok {
		return
	}

	failures, err := h.audit.ListFailures(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load failure history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"failures": failures})
}
