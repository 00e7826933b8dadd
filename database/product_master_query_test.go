package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gs1scan/barcode"
	"gs1scan/database"
	"gs1scan/loader"
	"gs1scan/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, loader.InitDatabase(db))
	return db
}

var fixedNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func decode(input string) *barcode.Result {
	return barcode.NewDecoder(func() time.Time { return fixedNow }).Decode(input)
}

func seedMasters(t *testing.T, db *sqlx.DB) {
	t.Helper()
	inputs := []model.ProductMasterInput{
		{ProductCode: "9506000134352", Gs1Code: "09506000134352", ProductName: "サンプル錠10mg", Origin: "CSV"},
		{ProductCode: "0036141456789", ProductName: "コード一致のみ", Origin: "CSV"},
		{ProductCode: "LOCAL-001", ProductName: "院内製剤", Origin: "MANUAL"},
	}
	for _, in := range inputs {
		require.NoError(t, database.UpsertProductMaster(db, in))
	}
}

func TestUpsertProductMaster_InsertsAndUpdates(t *testing.T) {
	db := newTestDB(t)
	seedMasters(t, db)

	count, err := database.CountProductMasters(db)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, database.UpsertProductMaster(db, model.ProductMasterInput{
		ProductCode: "LOCAL-001", ProductName: "院内製剤(改)", NhiPrice: 12.5, Origin: "MANUAL",
	}))
	count, err = database.CountProductMasters(db)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	master, err := database.GetProductMasterByCode(db, "LOCAL-001")
	require.NoError(t, err)
	require.NotNil(t, master)
	assert.Equal(t, "院内製剤(改)", master.ProductName)
	assert.InDelta(t, 12.5, master.NhiPrice, 0.0001)
}

func TestGetProductMasterByCode_NotFound(t *testing.T) {
	db := newTestDB(t)
	master, err := database.GetProductMasterByCode(db, "nope")
	assert.NoError(t, err)
	assert.Nil(t, master)
}

func TestGetProductMasterForScan(t *testing.T) {
	db := newTestDB(t)
	seedMasters(t, db)

	tests := []struct {
		name     string
		input    string
		wantCode string
	}{
		{"gs1 code match", "(01)09506000134352(17)271231", "9506000134352"},
		{"jan fallback", "(01)00036141456789", "0036141456789"},
		{"linear ean13", "9506000134352", "9506000134352"},
		{"no gtin uses raw data", "  LOCAL-001 ", "LOCAL-001"},
		{"invalid gtin never matches", "(01)09506000134353", ""},
		{"unknown gtin", "(01)04901234567894", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			master, err := database.GetProductMasterForScan(db, decode(tt.input))
			require.NoError(t, err)
			if tt.wantCode == "" {
				assert.Nil(t, master)
				return
			}
			require.NotNil(t, master)
			assert.Equal(t, tt.wantCode, master.ProductCode)
		})
	}
}

func TestGetProductMasterByGs1Code_DatabaseError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "sqlmock")

	mock.ExpectQuery(`FROM product_master WHERE gs1_code = \?`).
		WithArgs("09506000134352").
		WillReturnError(errors.New("disk I/O error"))

	master, err := database.GetProductMasterByGs1Code(db, "09506000134352")
	assert.Nil(t, master)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}
