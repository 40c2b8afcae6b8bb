package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":             "  Asha Rao ",
		"experience_years": 6.5,
		"age":              "31",
		"gender":           "female",
		"position":         "Senior",
		"department":       "Tech",
		"location":         "Pune",
		"job_role":         "Developer",
		"salary":           "1200000",
	}
}

func TestValidateEmployee_Valid(t *testing.T) {
	e, err := ValidateEmployee(validPayload())
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", e.Name)
	assert.Equal(t, 6.5, e.ExperienceYears)
	assert.Equal(t, 31, e.Age)
	assert.Equal(t, "Female", e.Gender)
	assert.Equal(t, 1200000.0, e.Salary)
	assert.Equal(t, "Developer", e.JobRole)

	payload := validPayload()
	payload["age"] = 40.0
	e, err = ValidateEmployee(payload)
	require.NoError(t, err)
	assert.Equal(t, 40, e.Age)
}

func TestValidateEmployee_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m map[string]interface{})
		want   string
	}{
		{"missing field", func(m map[string]interface{}) { delete(m, "salary") }, "Missing required field: salary"},
		{"null field", func(m map[string]interface{}) { m["location"] = nil }, "Field cannot be empty: location"},
		{"blank field", func(m map[string]interface{}) { m["position"] = "   " }, "Field cannot be empty: position"},
		{"short name", func(m map[string]interface{}) { m["name"] = "A" }, "Name must be between 2 and 100 characters"},
		{"negative experience", func(m map[string]interface{}) { m["experience_years"] = -1.0 }, "Experience must be between 0 and 50 years"},
		{"too old", func(m map[string]interface{}) { m["age"] = 101.0 }, "Age must be between 18 and 100"},
		{"too young", func(m map[string]interface{}) { m["age"] = "17" }, "Age must be between 18 and 100"},
		{"negative salary", func(m map[string]interface{}) { m["salary"] = -5.0 }, "Salary must be positive"},
		{"bad gender", func(m map[string]interface{}) { m["gender"] = "other" }, "Gender must be 'Male' or 'Female'"},
		{"bad department", func(m map[string]interface{}) { m["department"] = "Engineering" }, "Invalid department"},
		{"short location", func(m map[string]interface{}) { m["location"] = "X" }, "Location must be between 2 and 50 characters"},
		{"short job role", func(m map[string]interface{}) { m["job_role"] = "D" }, "Job role must be between 2 and 100 characters"},
		{"nan experience", func(m map[string]interface{}) { m["experience_years"] = "NaN" }, "Invalid data format: value must be a finite number: 'NaN'"},
		{"infinite salary", func(m map[string]interface{}) { m["salary"] = "Inf" }, "Invalid data format: value must be a finite number: 'Inf'"},
		{"fractional age", func(m map[string]interface{}) { m["age"] = "25.7" }, "Invalid data format: could not convert to integer: '25.7'"},
		{"fractional age number", func(m map[string]interface{}) { m["age"] = 30.5 }, "Invalid data format: could not convert to integer: '30.5'"},
		{"non numeric salary", func(m map[string]interface{}) { m["salary"] = "lots" }, "Invalid data format: could not convert string to float: 'lots'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(payload)

			e, err := ValidateEmployee(payload)
			require.Error(t, err)
			assert.Nil(t, e)
			assert.Equal(t, tt.want, err.Error())

			var fieldErr *FieldError
			assert.ErrorAs(t, err, &fieldErr)
		})
	}
}
