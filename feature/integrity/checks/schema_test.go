package checks

import (
	"testing"

	"tataru/core/database"
	"tataru/core/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func columnRows(cols map[string]string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for name, typ := range cols {
		rows.AddRow(name, typ, "YES", "", nil, "")
	}
	return rows
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_SQLiteMigrated(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	_, err = store.NewDatabaseBackend(db)
	require.NoError(t, err)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.True(t, report.Matched, "errors: %v tables: %v", report.Errors, report.Tables)
	assert.Equal(t, "sqlite", report.Driver)
	assert.Equal(t, "ok", report.Tables["items"].Status)
	assert.Equal(t, "ok", report.Tables["recipe_ingredients"].Status)
}

func TestCheckSchema_SQLiteMissingTables(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 2)
	assert.Contains(t, report.Tables["items"].MissingColumns, "name")
}

func TestCheckSchema_MissingColumn(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `items`").WillReturnRows(columnRows(map[string]string{
		"id":   "bigint",
		"name": "varchar(255)",
	}))
	mock.ExpectQuery("SHOW COLUMNS FROM `recipe_ingredients`").WillReturnRows(columnRows(map[string]string{
		"item_id":       "bigint",
		"slot":          "bigint",
		"ingredient_id": "bigint",
		"quantity":      "bigint",
	}))

	report, err := CheckSchema(db)
	assert.NoError(t, err)
	assert.False(t, report.Matched)

	tbl, ok := report.Tables["items"]
	assert.True(t, ok)
	assert.Equal(t, "error", tbl.Status)
	assert.Contains(t, tbl.MissingColumns, "emoji")
	assert.Contains(t, tbl.MissingColumns, "price")
	assert.Equal(t, "ok", report.Tables["recipe_ingredients"].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSchema_TypeMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `items`").WillReturnRows(columnRows(map[string]string{
		"id":           "bigint",
		"name":         "varchar(255)",
		"emoji":        "varchar(64)",
		"category":     "varchar(128)",
		"icon_url":     "varchar(512)",
		"price":        "int(11)", // expect text
		"recipe_id":    "bigint",
		"craft_type":   "varchar(64)",
		"recipe_yield": "bigint",
		"has_recipe":   "tinyint(1)",
		"hydrated":     "tinyint(1)",
		"updated_at":   "datetime(3)",
	}))
	mock.ExpectQuery("SHOW COLUMNS FROM `recipe_ingredients`").WillReturnRows(columnRows(map[string]string{
		"item_id":       "bigint",
		"slot":          "bigint",
		"ingredient_id": "bigint",
		"quantity":      "bigint",
	}))

	report, err := CheckSchema(db)
	assert.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["items"]
	assert.Empty(t, tbl.MissingColumns)
	assert.Equal(t, []string{"price: expected text, got int(11)"}, tbl.TypeMismatches)
}

func TestCheckSchema_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `items`").WillReturnError(assert.AnError)
	mock.ExpectQuery("SHOW COLUMNS FROM `recipe_ingredients`").WillReturnError(assert.AnError)

	report, err := CheckSchema(db)
	assert.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 2)
	assert.Empty(t, report.Tables)
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "price", parseGormColumn("column:price;type:text;serializer:json"))
	assert.Equal(t, "text", parseGormType("column:price;type:text;serializer:json"))
	assert.Equal(t, "", parseGormType("column:id"))
}
