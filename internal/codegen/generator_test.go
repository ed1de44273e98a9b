package codegen_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sadopc/dbcodegen/internal/adapter"
	"github.com/sadopc/dbcodegen/internal/adapter/mysql"
	"github.com/sadopc/dbcodegen/internal/codegen"
	"github.com/sadopc/dbcodegen/internal/codegen/golang"
	"github.com/sadopc/dbcodegen/internal/codegen/rust"
)

var columnHeader = []string{"COLUMN_NAME", "ORDINAL_POSITION", "COLUMN_DEFAULT", "IS_NULLABLE",
	"COLUMN_TYPE", "COLUMN_COMMENT", "COLUMN_KEY", "EXTRA"}

type mockTable struct {
	name    string
	comment string
	rows    [][]any
}

func usersTable() mockTable {
	return mockTable{
		name:    "users",
		comment: "User accounts",
		rows: [][]any{
			{"id", 1, nil, "NO", "int unsigned", "Primary key", "PRI", "auto_increment"},
			{"name", 2, nil, "NO", "varchar(100)", "Display name", "", ""},
			{"meta", 3, nil, "YES", "json", "Extra data", "", ""},
		},
	}
}

// newSource returns an introspector expecting the schema and table queries
// for tables, and column queries for the tables named in selected.
func newSource(t *testing.T, tables []mockTable, selected ...string) (*mysql.Conn, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DATABASE()")).
		WillReturnRows(sqlmock.NewRows([]string{"DATABASE()"}).AddRow("shop"))

	tableRows := sqlmock.NewRows([]string{"TABLE_SCHEMA", "TABLE_NAME", "TABLE_COMMENT"})
	byName := make(map[string]mockTable, len(tables))
	for _, tbl := range tables {
		tableRows.AddRow("shop", tbl.name, tbl.comment)
		byName[tbl.name] = tbl
	}
	mock.ExpectQuery(`FROM information_schema\.TABLES`).WithArgs("shop").WillReturnRows(tableRows)

	for _, name := range selected {
		rows := sqlmock.NewRows(columnHeader)
		for _, r := range byName[name].rows {
			values := make([]driver.Value, len(r))
			for i, v := range r {
				values[i] = v
			}
			rows.AddRow(values...)
		}
		mock.ExpectQuery(`FROM information_schema\.COLUMNS`).WithArgs("shop", name).WillReturnRows(rows)
	}
	return mysql.NewFromDB(db), mock
}

func TestGenerate_Users_Rust(t *testing.T) {
	src, mock := newSource(t, []mockTable{usersTable()}, "users")

	gen := codegen.NewGenerator(src, rust.Language{}, codegen.Settings{}, zaptest.NewLogger(t))
	res, err := gen.Generate(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	want := `use serde::{Serialize, Deserialize};
use sqlx::FromRow;
use sqlx::types::Json;

use super::json;

/// User accounts
#[derive(Debug, Clone, Deserialize, Serialize, FromRow)]
pub struct Users {
    /// Primary key
    pub id: u32,
    /// Display name
    pub name: String,
    /// Extra data
    pub meta: Option<Json<serde_json::Value>>,
}
`
	assert.Equal(t, want, string(res.Source))
	assert.Equal(t, "shop", res.Schema)
	assert.Equal(t, []string{"users"}, res.Tables)
	assert.True(t, res.Features.Has(codegen.FeatureJSON))
}

func TestGenerate_Users_Go(t *testing.T) {
	src, mock := newSource(t, []mockTable{usersTable()}, "users")

	gen := codegen.NewGenerator(src, golang.Language{}, codegen.Settings{}, zaptest.NewLogger(t))
	res, err := gen.Generate(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	out := string(res.Source)
	assert.True(t, strings.HasPrefix(out, golang.Header+"\n\npackage models\n"), out)
	assert.Contains(t, out, `"github.com/sadopc/dbcodegen/pkg/sqljson"`)
	assert.Contains(t, out, "// Users User accounts\ntype Users struct {")
	assert.Regexp(t, `// Primary key\n\s+ID\s+uint32\s+`+"`"+`db:"id" json:"id"`+"`", out)
	assert.Regexp(t, `Name\s+string\s+`+"`"+`db:"name" json:"name"`+"`", out)
	assert.Regexp(t, `Meta\s+\*sqljson\.Raw\s+`+"`"+`db:"meta" json:"meta"`+"`", out)
	assert.Contains(t, out, "func (Users) TableName() string {\n\treturn \"users\"\n}")
	assert.NotContains(t, out, `"time"`)
}

func TestGenerate_OnlyAndExclude(t *testing.T) {
	all := []mockTable{
		{name: "a", comment: "A", rows: [][]any{{"id", 1, nil, "NO", "int", "", "PRI", ""}}},
		{name: "b", comment: "B", rows: [][]any{{"id", 1, nil, "NO", "int", "", "PRI", ""}}},
		{name: "c", comment: "C", rows: [][]any{{"id", 1, nil, "NO", "int", "", "PRI", ""}}},
	}

	t.Run("only", func(t *testing.T) {
		src, mock := newSource(t, all, "b", "a")
		gen := codegen.NewGenerator(src, rust.Language{}, codegen.Settings{
			Only:    []string{"b", "z", "a"},
			Exclude: []string{"a"},
		}, zaptest.NewLogger(t))
		res, err := gen.Generate(context.Background())
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
		assert.Equal(t, []string{"b", "a"}, res.Tables)

		out := string(res.Source)
		assert.Less(t, strings.Index(out, "pub struct B "), strings.Index(out, "pub struct A "))
		assert.NotContains(t, out, "pub struct C ")
		assert.NotContains(t, out, "use super::json;")
	})

	t.Run("exclude", func(t *testing.T) {
		src, mock := newSource(t, all, "a", "b")
		gen := codegen.NewGenerator(src, rust.Language{}, codegen.Settings{Exclude: []string{"c"}}, nil)
		res, err := gen.Generate(context.Background())
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
		assert.Equal(t, []string{"a", "b"}, res.Tables)
	})
}

func TestGenerate_ClassificationErrorsAcrossTables(t *testing.T) {
	all := []mockTable{
		{name: "a", rows: [][]any{{"state", 1, nil, "NO", "enum('x','y')", "", "", ""}}},
		{name: "b", rows: [][]any{{"id", 1, nil, "NO", "int", "", "", ""}}},
		{name: "c", rows: [][]any{{"tags", 1, nil, "YES", "set('p','q')", "", "", ""}}},
	}
	src, mock := newSource(t, all, "a", "b", "c")

	gen := codegen.NewGenerator(src, rust.Language{}, codegen.Settings{}, zaptest.NewLogger(t))
	res, err := gen.Generate(context.Background())
	require.Error(t, err)
	assert.Nil(t, res)
	require.NoError(t, mock.ExpectationsWereMet())

	errs := codegen.ClassificationErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "a", errs[0].Table)
	assert.Equal(t, "state", errs[0].Column)
	assert.Equal(t, "c", errs[1].Table)
	assert.Equal(t, "set('p','q')", errs[1].Type)
	assert.True(t, errors.Is(err, codegen.ErrUnknownType))
}

func TestGenerate_RecordNameCollision(t *testing.T) {
	all := []mockTable{
		{name: "user_roles", rows: [][]any{{"id", 1, nil, "NO", "int", "", "", ""}}},
		{name: "userRoles", rows: [][]any{{"id", 1, nil, "NO", "int", "", "", ""}}},
		{name: "c", rows: [][]any{{"tags", 1, nil, "YES", "set('p','q')", "", "", ""}}},
	}

	for _, lang := range []codegen.Language{golang.Language{}, rust.Language{}} {
		t.Run(lang.Name(), func(t *testing.T) {
			src, mock := newSource(t, all, "user_roles", "userRoles", "c")

			res, err := codegen.NewGenerator(src, lang, codegen.Settings{}, zaptest.NewLogger(t)).Generate(context.Background())
			require.Error(t, err)
			assert.Nil(t, res)
			require.NoError(t, mock.ExpectationsWereMet())

			collisions := codegen.NameCollisions(err)
			require.Len(t, collisions, 1)
			assert.Equal(t, "UserRoles", collisions[0].Name)
			assert.Equal(t, "user_roles", collisions[0].First)
			assert.Equal(t, "userRoles", collisions[0].Second)
			assert.Empty(t, collisions[0].Table)
			assert.Len(t, codegen.ClassificationErrors(err), 1)
		})
	}
}

func TestGenerate_RepeatedOnlyTableIsNotACollision(t *testing.T) {
	src, mock := newSource(t, []mockTable{usersTable()}, "users", "users")

	res, err := codegen.NewGenerator(src, rust.Language{}, codegen.Settings{
		Only: []string{"users", "users"},
	}, nil).Generate(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []string{"users", "users"}, res.Tables)
}

func TestGenerate_CustomTypeAvoidsClassification(t *testing.T) {
	all := []mockTable{
		{name: "a", comment: "A", rows: [][]any{{"state", 1, nil, "YES", "enum('x','y')", "", "", ""}}},
	}
	src, _ := newSource(t, all, "a")

	gen := codegen.NewGenerator(src, rust.Language{}, codegen.Settings{
		Overrides: codegen.Overrides{"a": {"state": {CustomType: "State"}}},
	}, nil)
	res, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(res.Source), "pub state: Option<State>,")
}

func TestGenerate_IntrospectionErrorAborts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DATABASE()")).
		WillReturnRows(sqlmock.NewRows([]string{"DATABASE()"}).AddRow("shop"))
	mock.ExpectQuery(`FROM information_schema\.TABLES`).
		WithArgs("shop").
		WillReturnRows(sqlmock.NewRows([]string{"TABLE_SCHEMA", "TABLE_NAME", "TABLE_COMMENT"}).
			AddRow("shop", "a", "").
			AddRow("shop", "b", ""))
	mock.ExpectQuery(`FROM information_schema\.COLUMNS`).
		WithArgs("shop", "a").
		WillReturnError(errors.New("connection reset"))

	gen := codegen.NewGenerator(mysql.NewFromDB(db), rust.Language{}, codegen.Settings{}, nil)
	res, err := gen.Generate(context.Background())
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, adapter.ErrIntrospection))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerate_NoSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DATABASE()")).
		WillReturnRows(sqlmock.NewRows([]string{"DATABASE()"}).AddRow(nil))

	gen := codegen.NewGenerator(mysql.NewFromDB(db), golang.Language{}, codegen.Settings{}, nil)
	_, err = gen.Generate(context.Background())
	assert.True(t, errors.Is(err, adapter.ErrNoSchema))
}
