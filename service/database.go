package service

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"employeehub/config"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/microsoft/go-mssqldb"
)

// Record is one result row keyed by column name.
type Record = map[string]interface{}

type dialect struct {
	engine   string
	describe string
	sample   string // takes the row count
	// numbered placeholders (@p1, @p2, ...) instead of "?"
	numbered bool
	// insert statements need an OUTPUT clause to report the new id
	outputID bool
}

var dialects = map[string]dialect{
	"mysql": {
		engine:   "MySQL",
		describe: "DESCRIBE employees",
		sample:   "SELECT * FROM employees LIMIT %d",
	},
	"sqlserver": {
		engine: "SQL Server",
		describe: "SELECT COLUMN_NAME AS Field, DATA_TYPE AS Type, IS_NULLABLE AS [Null], COLUMN_DEFAULT AS [Default] " +
			"FROM INFORMATION_SCHEMA.COLUMNS WHERE TABLE_NAME = 'employees' ORDER BY ORDINAL_POSITION",
		sample:   "SELECT TOP %d * FROM employees",
		numbered: true,
		outputID: true,
	},
	"sqlite3": {
		engine:   "SQLite",
		describe: "SELECT name AS Field, type AS Type, CASE WHEN \"notnull\" = 1 THEN 'NO' ELSE 'YES' END AS \"Null\", " +
			"dflt_value AS \"Default\" FROM pragma_table_info('employees') ORDER BY cid",
		sample: "SELECT * FROM employees LIMIT %d",
	},
}

// Database is the relational store holding the employees table.
type Database struct {
	db      *sql.DB
	driver  string
	name    string
	dialect dialect
}

func NewDatabase(cfg config.DatabaseConfig) (*Database, error) {
	d, ok := dialects[cfg.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	connectionString, err := buildConnectionString(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", d.engine, err)
	}

	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 5
	}
	if cfg.Driver == "sqlite3" {
		// every connection to ":memory:" is a separate database
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(poolSize)
		db.SetMaxIdleConns(poolSize)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		// The server may come up after us; report it and keep going.
		log.Printf("Warning: failed to ping %s during initialization: %v", d.engine, err)
	}

	return &Database{
		db:      db,
		driver:  cfg.Driver,
		name:    cfg.Name,
		dialect: d,
	}, nil
}

func buildConnectionString(cfg config.DatabaseConfig) (string, error) {
	switch cfg.Driver {
	case "mysql":
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
		mc.DBName = cfg.Name
		mc.ParseTime = true
		return mc.FormatDSN(), nil

	case "sqlserver":
		if cfg.Host == "" || cfg.Name == "" {
			return "", fmt.Errorf("SQL Server configuration is incomplete")
		}
		connStr := fmt.Sprintf("server=%s;port=%s;database=%s", cfg.Host, cfg.Port, cfg.Name)
		if cfg.User != "" {
			connStr += fmt.Sprintf(";user id=%s;password=%s", cfg.User, cfg.Password)
		} else {
			connStr += ";trusted_connection=true"
		}
		if cfg.Encrypt {
			connStr += ";encrypt=true;TrustServerCertificate=true"
		} else {
			connStr += ";encrypt=false"
		}
		return connStr, nil

	case "sqlite3":
		if cfg.Path == "" {
			return "", fmt.Errorf("DB_PATH is required for sqlite3")
		}
		return cfg.Path, nil
	}
	return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

func (d *Database) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Engine is the human readable name of the database product, e.g. "MySQL".
func (d *Database) Engine() string {
	return d.dialect.engine
}

// Name is the configured database (schema) name.
func (d *Database) Name() string {
	return d.name
}

func (d *Database) IsConnected(ctx context.Context) bool {
	if d.db == nil {
		return false
	}
	return d.db.PingContext(ctx) == nil
}

// Rebind rewrites "?" placeholders for drivers that use numbered parameters.
// Question marks inside quoted literals or identifiers are left alone.
func (d *Database) Rebind(query string) string {
	if !d.dialect.numbered {
		return query
	}
	var b strings.Builder
	n := 0
	var quote rune
	for _, r := range query {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
		case r == '[':
			quote = ']'
		case r == '?':
			n++
			b.WriteString("@p" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// bind prepares query for execution. Statements without arguments, such as
// generated search SQL, run exactly as given.
func (d *Database) bind(query string, args []interface{}) string {
	if len(args) == 0 {
		return query
	}
	return d.Rebind(query)
}

// QueryAll runs a query and returns every row. Driver byte slices are converted
// to int64, float64 or string according to the column type.
func (d *Database) QueryAll(ctx context.Context, query string, args ...interface{}) ([]Record, error) {
	if d.db == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	rows, err := d.db.QueryContext(ctx, d.bind(query, args), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	records := []Record{}
	for rows.Next() {
		values := make([]interface{}, len(columnTypes))
		valuePtrs := make([]interface{}, len(columnTypes))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		record := make(Record, len(columnTypes))
		for i, ct := range columnTypes {
			record[ct.Name()] = normalizeValue(ct.DatabaseTypeName(), values[i])
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// QueryOne returns the first row of query or nil when there is none.
func (d *Database) QueryOne(ctx context.Context, query string, args ...interface{}) (Record, error) {
	records, err := d.QueryAll(ctx, query, args...)
	if err != nil || len(records) == 0 {
		return nil, err
	}
	return records[0], nil
}

// Exec runs a statement that returns no rows and reports the affected row count.
func (d *Database) Exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	if d.db == nil {
		return 0, fmt.Errorf("database connection is not initialized")
	}

	result, err := d.db.ExecContext(ctx, d.bind(query, args), args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Insert adds a row to table and returns its generated id.
func (d *Database) Insert(ctx context.Context, table string, columns []string, values []interface{}) (int64, error) {
	if d.db == nil {
		return 0, fmt.Errorf("database connection is not initialized")
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	if d.dialect.outputID {
		query := fmt.Sprintf("INSERT INTO %s (%s) OUTPUT INSERTED.id VALUES (%s)",
			table, strings.Join(columns, ", "), placeholders)
		var id int64
		if err := d.db.QueryRowContext(ctx, d.Rebind(query), values...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders)
	result, err := d.db.ExecContext(ctx, d.Rebind(query), values...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Describe lists the columns of the employees table.
func (d *Database) Describe(ctx context.Context) ([]Record, error) {
	return d.QueryAll(ctx, d.dialect.describe)
}

// Sample returns the first n employees in storage order.
func (d *Database) Sample(ctx context.Context, n int) ([]Record, error) {
	return d.QueryAll(ctx, fmt.Sprintf(d.dialect.sample, n))
}

func normalizeValue(typeName string, v interface{}) interface{} {
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	s := string(b)
	switch strings.ToUpper(typeName) {
	case "INT", "INTEGER", "TINYINT", "SMALLINT", "MEDIUMINT", "BIGINT", "UNSIGNED INT", "UNSIGNED BIGINT":
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	case "DECIMAL", "NUMERIC", "FLOAT", "DOUBLE", "REAL", "MONEY", "SMALLMONEY":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
