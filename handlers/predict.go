package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"employeehub/models"
	"employeehub/service"
	"employeehub/validation"

	"github.com/gin-gonic/gin"
)

// PredictHandler estimates a salary
// @Summary      Predict salary
// @Description  Predict the annual salary from experience, age, gender, position, job role and location
// @Tags         Prediction
// @Accept       json
// @Produce      json
// @Param        request  body      models.PredictInput     true  "Model features"
// @Success      200      {object}  models.PredictResponse  "Prediction"
// @Failure      400      {object}  map[string]string       "Invalid input"
// @Failure      500      {object}  map[string]string       "Model not loaded"
// @Router       /api/predict [post]
func (h *Handlers) PredictHandler(c *gin.Context) {
	if h.predictor == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ML model or encoders not loaded. Check server logs."})
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid data format: %v", err)})
		return
	}

	in, err := validation.ValidatePrediction(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prediction, err := h.predictor.Predict(*in)
	if err != nil {
		var inputErr *service.InvalidInputError
		if errors.As(err, &inputErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Prediction error: %v", err)})
		return
	}

	c.JSON(http.StatusOK, models.PredictResponse{Prediction: prediction, Input: *in})
}
