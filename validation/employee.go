package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"employeehub/models"
)

var requiredEmployeeFields = []string{"name", "experience_years", "age", "gender", "position", "department", "location", "job_role", "salary"}

var Departments = []string{"HR", "Tech", "Finance", "Operations", "Marketing", "Sales", "Support"}

// FieldError is returned when an employee payload fails validation.
type FieldError struct {
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) *FieldError {
	return &FieldError{Message: fmt.Sprintf(format, args...)}
}

// ValidateEmployee checks a decoded JSON payload and converts it into an Employee.
// Numeric fields may arrive as JSON numbers or numeric strings.
func ValidateEmployee(data map[string]interface{}) (*models.Employee, error) {
	for _, field := range requiredEmployeeFields {
		v, ok := data[field]
		if !ok {
			return nil, invalid("Missing required field: %s", field)
		}
		if v == nil || strings.TrimSpace(fmt.Sprint(v)) == "" {
			return nil, invalid("Field cannot be empty: %s", field)
		}
	}

	exp, err := toFloat(data["experience_years"])
	if err != nil {
		return nil, invalid("Invalid data format: %v", err)
	}
	age, err := toInt(data["age"])
	if err != nil {
		return nil, invalid("Invalid data format: %v", err)
	}
	salary, err := toFloat(data["salary"])
	if err != nil {
		return nil, invalid("Invalid data format: %v", err)
	}

	e := &models.Employee{
		Name:            strings.TrimSpace(fmt.Sprint(data["name"])),
		ExperienceYears: exp,
		Age:             age,
		Salary:          salary,
		Gender:          strings.TrimSpace(fmt.Sprint(data["gender"])),
		Position:        strings.TrimSpace(fmt.Sprint(data["position"])),
		Department:      strings.TrimSpace(fmt.Sprint(data["department"])),
		Location:        strings.TrimSpace(fmt.Sprint(data["location"])),
		JobRole:         strings.TrimSpace(fmt.Sprint(data["job_role"])),
	}

	if n := len(e.Name); n < 2 || n > 100 {
		return nil, invalid("Name must be between 2 and 100 characters")
	}
	if e.ExperienceYears < 0 || e.ExperienceYears > 50 {
		return nil, invalid("Experience must be between 0 and 50 years")
	}
	if e.Age < 18 || e.Age > 100 {
		return nil, invalid("Age must be between 18 and 100")
	}
	if e.Salary < 0 {
		return nil, invalid("Salary must be positive")
	}
	switch strings.ToLower(e.Gender) {
	case "male":
		e.Gender = "Male"
	case "female":
		e.Gender = "Female"
	default:
		return nil, invalid("Gender must be 'Male' or 'Female'")
	}
	if !contains(Departments, e.Department) {
		return nil, invalid("Invalid department")
	}
	if n := len(e.Position); n < 2 || n > 100 {
		return nil, invalid("Position must be between 2 and 100 characters")
	}
	if n := len(e.Location); n < 2 || n > 50 {
		return nil, invalid("Location must be between 2 and 50 characters")
	}
	if n := len(e.JobRole); n < 2 || n > 100 {
		return nil, invalid("Job role must be between 2 and 100 characters")
	}

	return e, nil
}

func toFloat(v interface{}) (float64, error) {
	f, err := parseFloat(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value must be a finite number: '%v'", v)
	}
	return f, nil
}

// toInt accepts whole numbers only; "25.7" is an error, not 25.
func toInt(v interface{}) (int, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("could not convert to integer: '%v'", v)
	}
	return int(f), nil
}

func parseFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		return n.Float64()
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("could not convert string to float: '%s'", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported value %v", v)
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
