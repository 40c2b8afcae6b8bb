package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"employeehub/models"
	"employeehub/search"

	"github.com/gin-gonic/gin"
)

const metadataTTL = 30 * time.Second

var searchExamples = []models.SearchExample{
	{Prompt: "all females with salary above 5 lakh", Description: "Filter by gender and salary"},
	{Prompt: "senior developers in Pune with 5+ years experience", Description: "Multiple conditions"},
	{Prompt: "employees in Sales department earning more than 8 lakh", Description: "Department and salary filter"},
	{Prompt: "all managers in Mumbai or Bangalore", Description: "Location with OR condition"},
	{Prompt: "junior engineers under 30 years old", Description: "Age-based filtering"},
	{Prompt: "top 10 highest paid employees", Description: "Sorting and limiting"},
	{Prompt: "employees with salary between 6 to 10 lakh", Description: "Range queries"},
	{Prompt: "HR employees with more than 3 years experience", Description: "Department and experience"},
	{Prompt: "female managers in Engineering department", Description: "Gender, role, and department"},
	{Prompt: "developers in Bangalore earning above 12 lakh", Description: "Role, location, and high salary"},
}

// SearchHandler answers a natural-language question with employee rows
// @Summary      Natural-language employee search
// @Description  Generate a SELECT statement with the local model, sanitize it, execute it and correct it once on failure
// @Tags         Search
// @Accept       json
// @Produce      json
// @Param        request  body      models.SearchRequest         true  "Search prompt"
// @Success      200      {object}  models.SearchResponse        "Matching employees"
// @Failure      400      {object}  models.SearchErrorResponse   "Rejected SQL or bad request"
// @Failure      500      {object}  models.SearchErrorResponse   "Generation or execution failure"
// @Router       /api/search [post]
func (h *Handlers) SearchHandler(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt field is required"})
		return
	}

	prompt := strings.TrimSpace(*req.Prompt)
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt cannot be empty"})
		return
	}

	requestID := c.GetString(requestIDKey)
	log.Printf("[%s] Query: %q", requestID, prompt)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.searchTimeout)
	defer cancel()

	result, err := h.searcher.Search(ctx, prompt)
	if err != nil {
		errType := search.ErrorType(err)
		status := http.StatusInternalServerError
		if errType == search.TypeValidation {
			status = http.StatusBadRequest
			log.Printf("[%s] Validation error: %v", requestID, err)
		} else {
			log.Printf("[%s] Search failed: %v", requestID, err)
		}
		h.recordFailure("SEARCH", err.Error())
		c.JSON(status, models.SearchErrorResponse{Success: false, Error: err.Error(), Type: errType})
		return
	}

	resp := models.SearchResponse{
		Success: true,
		Query:   prompt,
		Count:   len(result.Rows),
		Results: result.Rows,
	}
	if req.Explain {
		resp.GeneratedSQL = result.SQL
	}

	log.Printf("[%s] Returning %d results", requestID, resp.Count)
	c.JSON(http.StatusOK, resp)
}

// SearchExamplesHandler lists example prompts
// @Summary      Example search prompts
// @Tags         Search
// @Produce      json
// @Success      200  {object}  map[string][]models.SearchExample  "Examples"
// @Router       /api/search/examples [get]
func (h *Handlers) SearchExamplesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"examples": searchExamples})
}

// SearchStatusHandler reports the model and database behind search
// @Summary      Search status
// @Tags         Search
// @Produce      json
// @Success      200  {object}  models.SearchStatus  "Operational"
// @Failure      500  {object}  map[string]string    "Database unavailable"
// @Router       /api/search/status [get]
func (h *Handlers) SearchStatusHandler(c *gin.Context) {
	h.cached(c, "search:status", func(ctx context.Context) (interface{}, error) {
		count, err := h.employees.Count(ctx)
		if err != nil {
			return nil, err
		}
		return models.SearchStatus{
			Status:                "operational",
			Model:                 h.info.Model,
			Database:              h.info.Engine,
			DatabaseName:          h.info.DatabaseName,
			EmployeeCount:         count,
			LLMProvider:           h.info.LLMProvider,
			EstimatedResponseTime: "2-5 seconds",
		}, nil
	}, func(err error) gin.H {
		return gin.H{"status": "error", "error": err.Error()}
	})
}

// SearchSchemaHandler describes the employees table
// @Summary      Employees table schema
// @Tags         Search
// @Produce      json
// @Success      200  {object}  models.SchemaInfo   "Columns and sample rows"
// @Failure      500  {object}  map[string]string   "Database unavailable"
// @Router       /api/search/schema [get]
func (h *Handlers) SearchSchemaHandler(c *gin.Context) {
	h.cached(c, "search:schema", func(ctx context.Context) (interface{}, error) {
		columns, err := h.employees.Describe(ctx)
		if err != nil {
			return nil, err
		}
		sample, err := h.employees.Sample(ctx, 3)
		if err != nil {
			return nil, err
		}
		return models.SchemaInfo{
			Table:      "employees",
			Database:   h.info.DatabaseName,
			Columns:    columns,
			SampleData: sample,
		}, nil
	}, func(err error) gin.H {
		return gin.H{"error": err.Error()}
	})
}

// cached serves key from the cache, or computes, stores and serves it. Failures
// are never cached.
func (h *Handlers) cached(c *gin.Context, key string, compute func(ctx context.Context) (interface{}, error), onError func(error) gin.H) {
	ctx := c.Request.Context()
	if body, ok := h.cache.Get(ctx, key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	value, err := compute(ctx)
	if err != nil {
		log.Printf("Error computing %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, onError(err))
		return
	}

	body, err := json.Marshal(value)
	if err != nil {
		c.JSON(http.StatusInternalServerError, onError(err))
		return
	}
	h.cache.Set(ctx, key, body, metadataTTL)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
