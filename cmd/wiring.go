package cmd

import (
	"fmt"
	"log"

	"employeehub/ai"
	"employeehub/config"
	"employeehub/search"
	"employeehub/service"
)

// newPipeline connects the language model and the employees database into a search pipeline.
func newPipeline(cfg config.Config, database *service.Database) (*search.Pipeline, *ai.AIService, error) {
	aiService, err := ai.New(cfg.LLM)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	opts := ai.PromptOptions{Engine: database.Engine(), Database: database.Name()}
	pipeline := search.NewPipeline(aiService, database, opts, cfg.Search.MaxAttempts)
	log.Printf("Search uses %s via %s (max %d attempts)", aiService.ModelName(), aiService.Provider(), cfg.Search.MaxAttempts)
	return pipeline, aiService, nil
}

// loadPredictor returns nil when no model is available; prediction requests then fail with 500.
func loadPredictor(path string) *service.SalaryModel {
	model, err := service.LoadSalaryModel(path)
	if err != nil {
		log.Printf("Warning: salary model not loaded from %s: %v", path, err)
		return nil
	}
	log.Printf("Salary model (%s) loaded from %s", model.Type, path)
	return model
}
