package service

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"employeehub/models"
)

// PositionLevels encodes seniority the same way the model was trained.
var PositionLevels = map[string]int{
	"Intern":   0,
	"Junior":   1,
	"Senior":   2,
	"Lead":     3,
	"Manager":  4,
	"Director": 5,
}

var positionOrder = []string{"Intern", "Junior", "Senior", "Lead", "Manager", "Director"}

// InvalidInputError reports a prediction input the model cannot encode.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// Tree is one regression tree in flattened array form. A node is a leaf when
// Left is -1; otherwise samples with x[Feature] <= Threshold go left.
type Tree struct {
	Feature   []int     `json:"feature"`
	Threshold []float64 `json:"threshold"`
	Left      []int     `json:"left"`
	Right     []int     `json:"right"`
	Value     []float64 `json:"value"`
}

type LinearModel struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// SalaryModel is an exported regression model with its label encoders.
// Encoders list classes in sorted order; the index is the code.
type SalaryModel struct {
	Type     string              `json:"type"` // "linear" or "forest"
	Encoders map[string][]string `json:"encoders"`
	Linear   *LinearModel        `json:"linear,omitempty"`
	Trees    []Tree              `json:"trees,omitempty"`
}

const featureCount = 6

func LoadSalaryModel(path string) (*SalaryModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}
	return ParseSalaryModel(data)
}

func ParseSalaryModel(data []byte) (*SalaryModel, error) {
	var m SalaryModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model: %w", err)
	}

	for _, name := range []string{"gender", "job_role", "location"} {
		if len(m.Encoders[name]) == 0 {
			return nil, fmt.Errorf("model is missing the %s encoder", name)
		}
	}

	switch m.Type {
	case "linear":
		if m.Linear == nil || len(m.Linear.Coefficients) != featureCount {
			return nil, fmt.Errorf("linear model needs %d coefficients", featureCount)
		}
	case "forest":
		if len(m.Trees) == 0 {
			return nil, fmt.Errorf("forest model has no trees")
		}
		for i, t := range m.Trees {
			if err := t.check(); err != nil {
				return nil, fmt.Errorf("tree %d: %w", i, err)
			}
		}
	default:
		return nil, fmt.Errorf("unknown model type %q", m.Type)
	}

	return &m, nil
}

func (t Tree) check() error {
	n := len(t.Value)
	if n == 0 || len(t.Left) != n || len(t.Right) != n || len(t.Feature) != n || len(t.Threshold) != n {
		return fmt.Errorf("node arrays differ in length")
	}
	for i := 0; i < n; i++ {
		if t.Left[i] == -1 {
			continue
		}
		if t.Left[i] <= i || t.Left[i] >= n || t.Right[i] <= i || t.Right[i] >= n {
			return fmt.Errorf("node %d has an invalid child", i)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= featureCount {
			return fmt.Errorf("node %d splits on unknown feature %d", i, t.Feature[i])
		}
	}
	return nil
}

func (t Tree) predict(x []float64) float64 {
	node := 0
	for t.Left[node] != -1 {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.Left[node]
		} else {
			node = t.Right[node]
		}
	}
	return t.Value[node]
}

// Predict encodes in and returns the predicted annual salary. Unknown categories
// yield *InvalidInputError.
func (m *SalaryModel) Predict(in models.PredictInput) (float64, error) {
	x, err := m.features(in)
	if err != nil {
		return 0, err
	}

	if m.Type == "linear" {
		y := m.Linear.Intercept
		for i, c := range m.Linear.Coefficients {
			y += c * x[i]
		}
		return y, nil
	}

	var sum float64
	for _, t := range m.Trees {
		sum += t.predict(x)
	}
	return sum / float64(len(m.Trees)), nil
}

// features builds the vector experience, age, gender, position, job role, location.
func (m *SalaryModel) features(in models.PredictInput) ([]float64, error) {
	gender, err := encode(m.Encoders["gender"], in.Gender, "gender")
	if err != nil {
		return nil, err
	}
	position, ok := PositionLevels[in.Position]
	if !ok {
		return nil, &InvalidInputError{Message: "Invalid position. Must be one of " + pyList(positionOrder)}
	}
	jobRole, err := encode(m.Encoders["job_role"], in.JobRole, "job role")
	if err != nil {
		return nil, err
	}
	location, err := encode(m.Encoders["location"], in.Location, "location")
	if err != nil {
		return nil, err
	}

	return []float64{in.ExperienceYears, float64(in.Age), gender, float64(position), jobRole, location}, nil
}

func encode(classes []string, value, label string) (float64, error) {
	for i, c := range classes {
		if c == value {
			return float64(i), nil
		}
	}
	return 0, &InvalidInputError{Message: fmt.Sprintf("Invalid %s. Must be one of %s", label, pyList(classes))}
}

// pyList renders values as ['a', 'b'], the format clients already parse.
func pyList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
