package models

// Employee is a row of the employees table as written by the CRUD endpoints.
type Employee struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	ExperienceYears float64 `json:"experience_years"`
	Age             int     `json:"age"`
	Gender          string  `json:"gender"`
	Position        string  `json:"position"`
	Department      string  `json:"department"`
	Location        string  `json:"location"`
	JobRole         string  `json:"job_role"`
	Salary          float64 `json:"salary"`
}

// Map returns the employee keyed by column name, the shape used for audit and mail payloads.
func (e *Employee) Map() map[string]interface{} {
	return map[string]interface{}{
		"id":               e.ID,
		"name":             e.Name,
		"experience_years": e.ExperienceYears,
		"age":              e.Age,
		"gender":           e.Gender,
		"position":         e.Position,
		"department":       e.Department,
		"location":         e.Location,
		"job_role":         e.JobRole,
		"salary":           e.Salary,
	}
}

type SearchRequest struct {
	Prompt  *string `json:"prompt"`
	Explain bool    `json:"explain"`
}

type SearchResponse struct {
	Success      bool                     `json:"success"`
	Query        string                   `json:"query"`
	Count        int                      `json:"count"`
	Results      []map[string]interface{} `json:"results"`
	GeneratedSQL string                   `json:"generated_sql,omitempty"`
}

type SearchErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Type    string `json:"type"` // "validation_error" or "execution_error"
}

type SearchExample struct {
	Prompt      string `json:"prompt"`
	Description string `json:"description"`
}

type SearchStatus struct {
	Status                string `json:"status"`
	Model                 string `json:"model"`
	Database              string `json:"database"`
	DatabaseName          string `json:"database_name"`
	EmployeeCount         int64  `json:"employee_count"`
	LLMProvider           string `json:"llm_provider"`
	EstimatedResponseTime string `json:"estimated_response_time"`
}

type SchemaInfo struct {
	Table      string                   `json:"table"`
	Database   string                   `json:"database"`
	Columns    []map[string]interface{} `json:"columns"`
	SampleData []map[string]interface{} `json:"sample_data"`
}

type PredictInput struct {
	ExperienceYears float64 `json:"experience_years"`
	Age             int     `json:"age"`
	Gender          string  `json:"gender"`
	Position        string  `json:"position"`
	JobRole         string  `json:"job_role"`
	Location        string  `json:"location"`
}

type PredictResponse struct {
	Prediction float64      `json:"prediction"`
	Input      PredictInput `json:"input"`
}

// Audit trail models
type ChangeAction string

const (
	ActionAdd    ChangeAction = "ADD"
	ActionUpdate ChangeAction = "UPDATE"
	ActionDelete ChangeAction = "DELETE"
)

type ChangeEvent struct {
	Action    ChangeAction           `json:"action"`
	User      string                 `json:"user"`
	Data      map[string]interface{} `json:"data"`
	Timestamp string                 `json:"timestamp"`
}

type FailureEvent struct {
	Context   string `json:"context"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
