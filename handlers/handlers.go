package handlers

import (
	"context"
	"time"

	"employeehub/cache"
	"employeehub/models"
	"employeehub/search"
	"employeehub/service"

	"github.com/gin-gonic/gin"
)

// @title           Employee Hub API
// @version         1.0
// @description     Employee records with salary prediction and natural-language search backed by a local LLM
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5000
// @BasePath  /

// @schemes   http https

// EmployeeStore is the employees table plus the metadata the search endpoints expose.
type EmployeeStore interface {
	List(ctx context.Context) ([]service.Record, error)
	Get(ctx context.Context, id int64) (service.Record, error)
	Create(ctx context.Context, e *models.Employee, user string) (*models.Employee, error)
	Update(ctx context.Context, id int64, e *models.Employee, user string) (*models.Employee, error)
	Delete(ctx context.Context, id int64, user string) error
	Count(ctx context.Context) (int64, error)
	Describe(ctx context.Context) ([]service.Record, error)
	Sample(ctx context.Context, n int) ([]service.Record, error)
}

type Searcher interface {
	Search(ctx context.Context, prompt string) (*search.Result, error)
}

type Predictor interface {
	Predict(in models.PredictInput) (float64, error)
}

type AuditLog interface {
	ListChanges(limit int) ([]models.ChangeEvent, error)
	ListFailures(limit int) ([]models.FailureEvent, error)
	StoreFailure(context string, message string) error
}

// SystemInfo describes the backing model and database for the status endpoints.
type SystemInfo struct {
	Model        string
	LLMProvider  string
	Engine       string
	DatabaseName string
}

// Dependencies are the collaborators of Handlers. Predictor may be nil when no
// model could be loaded; DatabaseUp may be nil when there is no database.
// Without Audit the audit endpoints answer 500 and failures go unrecorded.
type Dependencies struct {
	Employees     EmployeeStore
	Searcher      Searcher
	Predictor     Predictor
	Audit         AuditLog
	Cache         cache.Store
	Info          SystemInfo
	SearchTimeout time.Duration
	DatabaseUp    func(ctx context.Context) bool
}

type Handlers struct {
	employees     EmployeeStore
	searcher      Searcher
	predictor     Predictor
	audit         AuditLog
	cache         cache.Store
	info          SystemInfo
	searchTimeout time.Duration
	databaseUp    func(ctx context.Context) bool
}

func New(deps Dependencies) *Handlers {
	store := deps.Cache
	if store == nil {
		store = cache.New()
	}
	timeout := deps.SearchTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Handlers{
		employees:     deps.Employees,
		searcher:      deps.Searcher,
		predictor:     deps.Predictor,
		audit:         deps.Audit,
		cache:         store,
		info:          deps.Info,
		searchTimeout: timeout,
		databaseUp:    deps.DatabaseUp,
	}
}

// Register mounts every API route on r.
func (h *Handlers) Register(r *gin.Engine) {
	r.GET("/health", h.HealthHandler)

	api := r.Group("/api")
	{
		api.GET("/employees", h.ListEmployeesHandler)
		api.GET("/employees/export", h.ExportEmployeesHandler)
		api.GET("/employees/:id", h.GetEmployeeHandler)
		api.POST("/employees", h.CreateEmployeeHandler)
		api.PUT("/employees/:id", h.UpdateEmployeeHandler)
		api.DELETE("/employees/:id", h.DeleteEmployeeHandler)

		api.POST("/predict", h.PredictHandler)

		api.POST("/search", h.SearchHandler)
		api.GET("/search/examples", h.SearchExamplesHandler)
		api.GET("/search/status", h.SearchStatusHandler)
		api.GET("/search/schema", h.SearchSchemaHandler)

		api.GET("/audit/changes", h.ListChangesHandler)
		api.GET("/audit/failures", h.ListFailuresHandler)
	}

	r.NoRoute(h.NotFoundHandler)
}

// recordFailure stores a failure event; the audit trail is best-effort.
func (h *Handlers) recordFailure(where, message string) {
	if h.audit == nil {
		return
	}
	_ = h.audit.StoreFailure(where, message)
}
