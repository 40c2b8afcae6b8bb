package validation

import (
	"fmt"
	"strings"

	"employeehub/models"
)

var predictFields = []string{"experience_years", "age", "gender", "position", "job_role", "location"}

// ValidatePrediction checks the six model features of a prediction request.
func ValidatePrediction(data map[string]interface{}) (*models.PredictInput, error) {
	var missing []string
	for _, field := range predictFields {
		if _, ok := data[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, invalid("Missing required fields: %s", strings.Join(missing, ", "))
	}

	exp, err := toFloat(data["experience_years"])
	if err != nil {
		return nil, invalid("Invalid data format: %v", err)
	}
	age, err := toInt(data["age"])
	if err != nil {
		return nil, invalid("Invalid data format: %v", err)
	}

	in := &models.PredictInput{
		ExperienceYears: exp,
		Age:             age,
		Gender:          strings.TrimSpace(fmt.Sprint(data["gender"])),
		Position:        strings.TrimSpace(fmt.Sprint(data["position"])),
		JobRole:         strings.TrimSpace(fmt.Sprint(data["job_role"])),
		Location:        strings.TrimSpace(fmt.Sprint(data["location"])),
	}

	if in.ExperienceYears < 0 || in.ExperienceYears > 50 {
		return nil, invalid("Experience must be between 0 and 50 years")
	}
	if in.Age < 18 || in.Age > 100 {
		return nil, invalid("Age must be between 18 and 100")
	}
	return in, nil
}
