package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/smtp"
	"strings"
	"sync"
	"testing"
	"time"

	"employeehub/config"
	"employeehub/db"
	"employeehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const createEmployees = `CREATE TABLE employees (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR(100) NOT NULL,
	experience_years REAL,
	age INTEGER,
	gender VARCHAR(10),
	position VARCHAR(100),
	department VARCHAR(50),
	location VARCHAR(50),
	job_role VARCHAR(100),
	salary REAL,
	email VARCHAR(100)
)`

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	database, err := NewDatabase(config.DatabaseConfig{Driver: "sqlite3", Path: ":memory:", Name: "company_db"})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(context.Background(), createEmployees)
	require.NoError(t, err)
	return database
}

func sampleEmployee(name string) *models.Employee {
	return &models.Employee{
		Name:            name,
		ExperienceYears: 4,
		Age:             29,
		Gender:          "Female",
		Position:        "Senior",
		Department:      "Tech",
		Location:        "Pune",
		JobRole:         "Developer",
		Salary:          1500000,
	}
}

type recordingNotifier struct {
	mu      sync.Mutex
	actions []models.ChangeAction
	err     error
	sent    chan struct{}
}

func newRecordingNotifier(err error) *recordingNotifier {
	return &recordingNotifier{err: err, sent: make(chan struct{}, 10)}
}

func (n *recordingNotifier) NotifyChange(action models.ChangeAction, _ map[string]interface{}) error {
	n.mu.Lock()
	n.actions = append(n.actions, action)
	n.mu.Unlock()
	n.sent <- struct{}{}
	return n.err
}

func (n *recordingNotifier) wait(t *testing.T) {
	t.Helper()
	select {
	case <-n.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not sent")
	}
}

func newTestAudit(t *testing.T) *db.DB {
	t.Helper()
	audit, err := db.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { audit.Close() })
	return audit
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	_, err := NewDatabase(config.DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
}

func TestBuildConnectionString(t *testing.T) {
	mysqlDSN, err := buildConnectionString(config.DatabaseConfig{
		Driver: "mysql", Host: "db", Port: "3306", User: "root", Password: "secret", Name: "company_db",
	})
	require.NoError(t, err)
	assert.Contains(t, mysqlDSN, "root:secret@tcp(db:3306)/company_db")
	assert.Contains(t, mysqlDSN, "parseTime=true")

	mssqlDSN, err := buildConnectionString(config.DatabaseConfig{
		Driver: "sqlserver", Host: "db", Port: "1433", User: "sa", Password: "pw", Name: "company_db", Encrypt: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "server=db;port=1433;database=company_db;user id=sa;password=pw;encrypt=true;TrustServerCertificate=true", mssqlDSN)

	_, err = buildConnectionString(config.DatabaseConfig{Driver: "sqlserver"})
	assert.Error(t, err)

	_, err = buildConnectionString(config.DatabaseConfig{Driver: "sqlite3"})
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	mssql := &Database{dialect: dialects["sqlserver"]}
	assert.Equal(t, "SELECT * FROM employees WHERE id = @p1 AND age > @p2", mssql.Rebind("SELECT * FROM employees WHERE id = ? AND age > ?"))

	mysqlDB := &Database{dialect: dialects["mysql"]}
	assert.Equal(t, "SELECT ?", mysqlDB.Rebind("SELECT ?"))

	t.Run("quoted question marks are kept", func(t *testing.T) {
		query := "SELECT * FROM employees WHERE name = 'Who?' OR job_role LIKE '%?%' AND [odd?] = ? AND \"q?\" = ?"
		assert.Equal(t,
			"SELECT * FROM employees WHERE name = 'Who?' OR job_role LIKE '%?%' AND [odd?] = @p1 AND \"q?\" = @p2",
			mssql.Rebind(query))
		assert.Equal(t, "SELECT 'it''s?' , @p1", mssql.Rebind("SELECT 'it''s?' , ?"))
	})

	t.Run("statements without arguments run unchanged", func(t *testing.T) {
		query := "SELECT TOP 5 * FROM employees WHERE name LIKE '%?' OR location = ?"
		assert.Equal(t, query, mssql.bind(query, nil))
		assert.Equal(t, "SELECT * FROM employees WHERE id = @p1", mssql.bind("SELECT * FROM employees WHERE id = ?", []interface{}{1}))
	})
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, int64(42), normalizeValue("BIGINT", []byte("42")))
	assert.Equal(t, 1.5, normalizeValue("DECIMAL", []byte("1.5")))
	assert.Equal(t, "Pune", normalizeValue("VARCHAR", []byte("Pune")))
	assert.Equal(t, "n/a", normalizeValue("INT", []byte("n/a")))
	assert.Equal(t, int64(7), normalizeValue("INT", int64(7)))
	assert.Nil(t, normalizeValue("INT", nil))
}

func TestDatabase_QueryAll(t *testing.T) {
	database := newTestDatabase(t)
	ctx := context.Background()

	id, err := database.Insert(ctx, "employees", employeeColumns, employeeValues(sampleEmployee("Asha Rao")))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	rows, err := database.QueryAll(ctx, "SELECT id, name, salary FROM employees WHERE location = ?", "Pune")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0]["id"])
	assert.Equal(t, "Asha Rao", rows[0]["name"])
	assert.Equal(t, 1500000.0, rows[0]["salary"])

	none, err := database.QueryAll(ctx, "SELECT * FROM employees WHERE location = ?", "Delhi")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = database.QueryAll(ctx, "SELECT * FROM employes")
	assert.Error(t, err)
}

func TestDatabase_DescribeAndSample(t *testing.T) {
	database := newTestDatabase(t)
	ctx := context.Background()
	for _, name := range []string{"A1", "B2", "C3", "D4"} {
		_, err := database.Insert(ctx, "employees", employeeColumns, employeeValues(sampleEmployee(name)))
		require.NoError(t, err)
	}

	columns, err := database.Describe(ctx)
	require.NoError(t, err)
	require.Len(t, columns, 11)
	assert.Equal(t, "id", columns[0]["Field"])
	assert.Equal(t, "NO", columns[1]["Null"])

	sample, err := database.Sample(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, sample, 3)

	assert.Equal(t, "SQLite", database.Engine())
	assert.Equal(t, "company_db", database.Name())
	assert.True(t, database.IsConnected(ctx))
}

func TestEmployeeService_CRUD(t *testing.T) {
	database := newTestDatabase(t)
	audit := newTestAudit(t)
	notifier := newRecordingNotifier(nil)
	svc := NewEmployeeService(database, audit, notifier)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleEmployee("Asha Rao"), "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	notifier.wait(t)

	second, err := svc.Create(ctx, sampleEmployee("Vikram Shah"), "admin")
	require.NoError(t, err)
	notifier.wait(t)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0]["id"])

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got["name"])

	changed := sampleEmployee("Asha R.")
	changed.Salary = 1800000
	updated, err := svc.Update(ctx, created.ID, changed, "")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	notifier.wait(t)

	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1800000.0, got["salary"])

	require.NoError(t, svc.Delete(ctx, created.ID, ""))
	notifier.wait(t)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	changes, err := audit.ListChanges(0)
	require.NoError(t, err)
	require.Len(t, changes, 4)
	assert.Equal(t, models.ActionDelete, changes[0].Action)
	assert.Equal(t, "Asha R.", changes[0].Data["name"])
	assert.Equal(t, models.ActionAdd, changes[3].Action)
	assert.Equal(t, "System", changes[3].User)
	assert.Equal(t, "admin", changes[2].User)
}

func TestEmployeeService_NotFound(t *testing.T) {
	svc := NewEmployeeService(newTestDatabase(t), nil, nil)
	ctx := context.Background()

	_, err := svc.Update(ctx, 99, sampleEmployee("Nobody"), "")
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, 99, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmployeeService_DatabaseErrorIsRecorded(t *testing.T) {
	database := newTestDatabase(t)
	audit := newTestAudit(t)
	svc := NewEmployeeService(database, audit, nil)
	ctx := context.Background()

	_, err := database.Exec(ctx, "DROP TABLE employees")
	require.NoError(t, err)

	_, err = svc.List(ctx)
	require.Error(t, err)
	var dbErr *DatabaseError
	require.ErrorAs(t, err, &dbErr)
	assert.True(t, strings.HasPrefix(err.Error(), "Database error: "))

	failures, err := audit.ListFailures(0)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "GET_EMPLOYEES", failures[0].Context)
}

func TestEmployeeService_MailFailureIsRecorded(t *testing.T) {
	audit := newTestAudit(t)
	notifier := newRecordingNotifier(errors.New("connection refused"))
	svc := NewEmployeeService(newTestDatabase(t), audit, notifier)

	_, err := svc.Create(context.Background(), sampleEmployee("Asha Rao"), "")
	require.NoError(t, err)
	notifier.wait(t)

	assert.Eventually(t, func() bool {
		failures, err := audit.ListFailures(0)
		return err == nil && len(failures) == 1 && failures[0].Context == "EMAIL_NOTIFICATION"
	}, 2*time.Second, 10*time.Millisecond)
}

const linearModelJSON = `{
	"type": "linear",
	"encoders": {
		"gender": ["Female", "Male"],
		"job_role": ["Analyst", "Developer"],
		"location": ["Mumbai", "Pune"]
	},
	"linear": {"intercept": 100000, "coefficients": [50000, 1000, 0, 200000, 30000, 10000]}
}`

func TestSalaryModel_Linear(t *testing.T) {
	m, err := ParseSalaryModel([]byte(linearModelJSON))
	require.NoError(t, err)

	got, err := m.Predict(models.PredictInput{
		ExperienceYears: 5, Age: 30, Gender: "Male", Position: "Senior", JobRole: "Developer", Location: "Pune",
	})
	require.NoError(t, err)
	// 100000 + 5*50000 + 30*1000 + 2*200000 + 1*30000 + 1*10000
	assert.InDelta(t, 820000.0, got, 0.001)
}

func TestSalaryModel_Forest(t *testing.T) {
	data := `{
		"type": "forest",
		"encoders": {"gender": ["Female", "Male"], "job_role": ["Developer"], "location": ["Pune"]},
		"trees": [
			{"feature": [0, -2, -2], "threshold": [5, -2, -2], "left": [1, -1, -1], "right": [2, -1, -1], "value": [0, 400000, 900000]},
			{"feature": [3, -2, -2], "threshold": [1.5, -2, -2], "left": [1, -1, -1], "right": [2, -1, -1], "value": [0, 500000, 1100000]}
		]
	}`
	m, err := ParseSalaryModel([]byte(data))
	require.NoError(t, err)

	got, err := m.Predict(models.PredictInput{
		ExperienceYears: 8, Age: 35, Gender: "Female", Position: "Lead", JobRole: "Developer", Location: "Pune",
	})
	require.NoError(t, err)
	assert.InDelta(t, 1000000.0, got, 0.001)

	got, err = m.Predict(models.PredictInput{
		ExperienceYears: 1, Age: 22, Gender: "Female", Position: "Intern", JobRole: "Developer", Location: "Pune",
	})
	require.NoError(t, err)
	assert.InDelta(t, 450000.0, got, 0.001)
}

func TestSalaryModel_InvalidInput(t *testing.T) {
	m, err := ParseSalaryModel([]byte(linearModelJSON))
	require.NoError(t, err)

	base := models.PredictInput{ExperienceYears: 5, Age: 30, Gender: "Male", Position: "Senior", JobRole: "Developer", Location: "Pune"}

	tests := []struct {
		name   string
		mutate func(in *models.PredictInput)
		want   string
	}{
		{"gender", func(in *models.PredictInput) { in.Gender = "X" }, "Invalid gender. Must be one of ['Female', 'Male']"},
		{"position", func(in *models.PredictInput) { in.Position = "CEO" }, "Invalid position. Must be one of ['Intern', 'Junior', 'Senior', 'Lead', 'Manager', 'Director']"},
		{"job role", func(in *models.PredictInput) { in.JobRole = "Chef" }, "Invalid job role. Must be one of ['Analyst', 'Developer']"},
		{"location", func(in *models.PredictInput) { in.Location = "Delhi" }, "Invalid location. Must be one of ['Mumbai', 'Pune']"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := m.Predict(in)
			var inputErr *InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestParseSalaryModel_Errors(t *testing.T) {
	tests := map[string]string{
		"bad json":         `{`,
		"missing encoder":  `{"type": "linear", "encoders": {"gender": ["F"]}, "linear": {"coefficients": [1,2,3,4,5,6]}}`,
		"short linear":     `{"type": "linear", "encoders": {"gender": ["F"], "job_role": ["D"], "location": ["P"]}, "linear": {"coefficients": [1]}}`,
		"empty forest":     `{"type": "forest", "encoders": {"gender": ["F"], "job_role": ["D"], "location": ["P"]}}`,
		"bad child":        `{"type": "forest", "encoders": {"gender": ["F"], "job_role": ["D"], "location": ["P"]}, "trees": [{"feature": [0], "threshold": [1], "left": [0], "right": [0], "value": [1]}]}`,
		"unknown type":     `{"type": "svm", "encoders": {"gender": ["F"], "job_role": ["D"], "location": ["P"]}}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSalaryModel([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestMailNotifier(t *testing.T) {
	cfg := config.MailConfig{
		SMTPServer:     "smtp.example.com",
		SMTPPort:       "587",
		SenderEmail:    "alerts@example.com",
		SenderPassword: "pw",
		RecipientEmail: "hr@example.com",
	}

	var gotAddr string
	var gotTo []string
	var gotMsg []byte
	n := NewMailNotifier(cfg).WithSender(func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, msg
		return nil
	})

	err := n.NotifyChange(models.ActionAdd, map[string]interface{}{"id": int64(3), "name": "Asha <Rao>", "salary": 1200000.0})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"hr@example.com"}, gotTo)
	msg := string(gotMsg)
	assert.Contains(t, msg, "Subject: Database Alert: Employee ADD\r\n")
	assert.Contains(t, msg, "New Employee Added")
	assert.Contains(t, msg, "Asha &lt;Rao&gt;")

	called := false
	disabled := NewMailNotifier(config.MailConfig{}).WithSender(func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	})
	require.NoError(t, disabled.NotifyChange(models.ActionDelete, nil))
	assert.False(t, called)
}

func TestExport(t *testing.T) {
	records := []Record{
		{"id": int64(2), "name": "Vikram", "experience_years": 3.5, "age": int64(28), "gender": "Male",
			"position": "Junior", "department": "Sales", "location": "Mumbai", "job_role": "Analyst",
			"salary": 1200000.0, "email": nil},
	}

	var csvOut bytes.Buffer
	require.NoError(t, WriteCSV(&csvOut, records))
	lines := strings.Split(strings.TrimSpace(csvOut.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,experience_years,age,gender,position,department,location,job_role,salary,email", lines[0])
	assert.Equal(t, "2,Vikram,3.5,28,Male,Junior,Sales,Mumbai,Analyst,1200000,", lines[1])

	var jsonOut bytes.Buffer
	require.NoError(t, WriteJSON(&jsonOut, records))
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Vikram", decoded[0]["name"])

	jsonOut.Reset()
	require.NoError(t, WriteJSON(&jsonOut, nil))
	assert.Equal(t, "[]\n", jsonOut.String())
}
