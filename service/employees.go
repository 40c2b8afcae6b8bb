package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"employeehub/models"
)

var ErrNotFound = errors.New("Employee not found")

var employeeColumns = []string{"name", "experience_years", "age", "gender", "position", "department", "location", "job_role", "salary"}

// AuditTrail records database changes and failures.
type AuditTrail interface {
	StoreChange(action models.ChangeAction, user string, data map[string]interface{}) error
	StoreFailure(context string, message string) error
}

// ChangeNotifier is told about every successful mutation.
type ChangeNotifier interface {
	NotifyChange(action models.ChangeAction, data map[string]interface{}) error
}

// DatabaseError wraps a failure of the relational store.
type DatabaseError struct {
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("Database error: %v", e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

type EmployeeService struct {
	db       *Database
	audit    AuditTrail
	notifier ChangeNotifier
}

// NewEmployeeService wires CRUD to the store. audit and notifier may be nil.
func NewEmployeeService(db *Database, audit AuditTrail, notifier ChangeNotifier) *EmployeeService {
	return &EmployeeService{
		db:       db,
		audit:    audit,
		notifier: notifier,
	}
}

func (s *EmployeeService) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryAll(ctx, "SELECT * FROM employees ORDER BY id DESC")
	if err != nil {
		return nil, s.fail("GET_EMPLOYEES", err)
	}
	log.Printf("Fetched %d employees", len(rows))
	return rows, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (Record, error) {
	row, err := s.db.QueryOne(ctx, "SELECT * FROM employees WHERE id = ?", id)
	if err != nil {
		return nil, s.fail("GET_ONE_EMPLOYEE", err)
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return row, nil
}

func (s *EmployeeService) Create(ctx context.Context, e *models.Employee, user string) (*models.Employee, error) {
	id, err := s.db.Insert(ctx, "employees", employeeColumns, employeeValues(e))
	if err != nil {
		return nil, s.fail("ADD_EMPLOYEE", err)
	}

	created := *e
	created.ID = id
	log.Printf("Added employee ID: %d", id)
	s.recordChange(models.ActionAdd, user, created.Map())
	return &created, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int64, e *models.Employee, user string) (*models.Employee, error) {
	existing, err := s.db.QueryOne(ctx, "SELECT id FROM employees WHERE id = ?", id)
	if err != nil {
		return nil, s.fail("UPDATE_EMPLOYEE", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	query := "UPDATE employees SET name = ?, experience_years = ?, age = ?, gender = ?, position = ?, " +
		"department = ?, location = ?, job_role = ?, salary = ? WHERE id = ?"
	if _, err := s.db.Exec(ctx, query, append(employeeValues(e), id)...); err != nil {
		return nil, s.fail("UPDATE_EMPLOYEE", err)
	}

	updated := *e
	updated.ID = id
	log.Printf("Updated employee ID: %d", id)
	s.recordChange(models.ActionUpdate, user, updated.Map())
	return &updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64, user string) error {
	existing, err := s.db.QueryOne(ctx, "SELECT * FROM employees WHERE id = ?", id)
	if err != nil {
		return s.fail("DELETE_EMPLOYEE", err)
	}
	if existing == nil {
		return ErrNotFound
	}

	if _, err := s.db.Exec(ctx, "DELETE FROM employees WHERE id = ?", id); err != nil {
		return s.fail("DELETE_EMPLOYEE", err)
	}

	log.Printf("Deleted employee ID: %d", id)
	s.recordChange(models.ActionDelete, user, existing)
	return nil
}

func (s *EmployeeService) Count(ctx context.Context) (int64, error) {
	row, err := s.db.QueryOne(ctx, "SELECT COUNT(*) AS count FROM employees")
	if err != nil {
		return 0, err
	}
	switch n := row["count"].(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case float64:
		return int64(n), nil
	}
	return 0, fmt.Errorf("unexpected count value %v", row["count"])
}

func (s *EmployeeService) Describe(ctx context.Context) ([]Record, error) {
	return s.db.Describe(ctx)
}

func (s *EmployeeService) Sample(ctx context.Context, n int) ([]Record, error) {
	return s.db.Sample(ctx, n)
}

// recordChange writes the audit entry, then mails in the background. Neither
// can fail the request; their errors become failure events.
func (s *EmployeeService) recordChange(action models.ChangeAction, user string, data map[string]interface{}) {
	if s.audit != nil {
		if err := s.audit.StoreChange(action, user, data); err != nil {
			log.Printf("Error storing %s audit entry: %v", action, err)
		}
	}

	if s.notifier == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Panic in change notification: %v", r)
			}
		}()
		if err := s.notifier.NotifyChange(action, data); err != nil {
			log.Printf("Failed to send email: %v", err)
			s.storeFailure("EMAIL_NOTIFICATION", fmt.Sprintf("Failed to send email: %v", err))
		}
	}()
}

func (s *EmployeeService) fail(where string, err error) error {
	dbErr := &DatabaseError{Err: err}
	log.Printf("%s: %v", where, dbErr)
	s.storeFailure(where, dbErr.Error())
	return dbErr
}

func (s *EmployeeService) storeFailure(where, message string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.StoreFailure(where, message); err != nil {
		log.Printf("Error storing failure event: %v", err)
	}
}

func employeeValues(e *models.Employee) []interface{} {
	return []interface{}{e.Name, e.ExperienceYears, e.Age, e.Gender, e.Position, e.Department, e.Location, e.JobRole, e.Salary}
}
