package ai

import (
	"fmt"
	"strings"
)

// PromptOptions describe the target database in the generation prompts.
type PromptOptions struct {
	Engine   string // "MySQL", "SQL Server", "SQLite"
	Database string
}

// topN renders the engine specific "first n rows" example.
func (o PromptOptions) topN(n int) string {
	if o.Engine == "SQL Server" {
		return fmt.Sprintf("SELECT TOP %d * FROM employees ORDER BY salary DESC;", n)
	}
	return fmt.Sprintf("SELECT * FROM employees ORDER BY salary DESC LIMIT %d;", n)
}

// SchemaDescription is the fixed instruction block describing the employees table.
func SchemaDescription(opts PromptOptions) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("You are a SQL expert for %s. Generate ONLY the SQL query, nothing else.\n\n", opts.Engine))
	b.WriteString(fmt.Sprintf("Database: %s\n", opts.Database))
	b.WriteString("Table: employees\n\n")
	b.WriteString("Columns:\n")
	b.WriteString("* id (INT) - Primary key\n")
	b.WriteString("* name (VARCHAR) - Employee full name\n")
	b.WriteString("* gender (VARCHAR) - 'Male' or 'Female'\n")
	b.WriteString("* age (INT) - Age in years\n")
	b.WriteString("* department (VARCHAR) - Department name (HR, Tech, Finance, Operations, Marketing, Sales, Support)\n")
	b.WriteString("* position (VARCHAR) - Seniority level (Intern, Junior, Senior, Lead, Manager, Director)\n")
	b.WriteString("* job_role (VARCHAR) - Job title (Developer, Analyst, Designer, Tester, etc.)\n")
	b.WriteString("* location (VARCHAR) - City name (Pune, Mumbai, Bangalore, Delhi, Hyderabad, Chennai)\n")
	b.WriteString("* salary (INT) - Annual salary in INR\n")
	b.WriteString("* experience_years (INT) - Years of experience\n")
	b.WriteString("* email (VARCHAR) - Email address\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("1. Always use SELECT * FROM employees WHERE ...\n")
	b.WriteString("2. Salary: 1 lakh = 100000, 5 lakh = 500000, 10 lakh = 1000000\n")
	b.WriteString("3. Use LIKE for text matching: job_role LIKE '%Developer%'\n")
	b.WriteString("4. Return ONLY the SQL query\n")
	b.WriteString("5. No explanations, no markdown, no comments\n")
	b.WriteString("6. A single statement that ends with a semicolon\n\n")
	b.WriteString("Examples:\n")
	b.WriteString("Query: all females with salary above 5 lakh\n")
	b.WriteString("SQL: SELECT * FROM employees WHERE gender = 'Female' AND salary > 500000;\n\n")
	b.WriteString("Query: senior developers in Pune\n")
	b.WriteString("SQL: SELECT * FROM employees WHERE position = 'Senior' AND job_role LIKE '%Developer%' AND location = 'Pune';\n\n")
	b.WriteString("Query: top 10 highest paid\n")
	b.WriteString("SQL: " + opts.topN(10) + "\n\n")
	b.WriteString("Generate SQL for this query:\n")
	return b.String()
}

// BuildSQLPrompt constructs the initial generation prompt for a natural-language question.
func BuildSQLPrompt(opts PromptOptions, question string) string {
	return SchemaDescription(opts) + "\nQuery: " + question + "\nSQL:"
}

// BuildCorrectionPrompt asks the model to repair a statement the database rejected.
func BuildCorrectionPrompt(opts PromptOptions, failingSQL string, errorMessage string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("This SQL query failed: %s\n\n", failingSQL))
	b.WriteString(fmt.Sprintf("Error: %s\n\n", errorMessage))
	b.WriteString(fmt.Sprintf("Database: %s, Table: employees\n\n", opts.Engine))
	b.WriteString("Generate a corrected SQL query that fixes the error.\n")
	b.WriteString("Return ONLY the SQL query, nothing else.")
	return b.String()
}
