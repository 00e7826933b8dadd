package mappers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gs1scan/barcode"
	"gs1scan/model"
)

func decode(input string) *barcode.Result {
	return barcode.NewDecoder(func() time.Time {
		return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	}).Decode(input)
}

func TestToScanRecord(t *testing.T) {
	res := decode("(01)09506000134352(17)271231(10)LOT1(21)SN1")
	at := time.Date(2026, 10, 15, 18, 30, 0, 0, time.FixedZone("JST", 9*60*60))

	rec := ToScanRecord(res, "4950600013435", at)

	_, err := uuid.Parse(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15T09:30:00.000Z", rec.ScannedAt)
	assert.Equal(t, "GS1-DataMatrix", rec.BarcodeType)
	assert.Equal(t, "09506000134352", rec.Gtin)
	assert.Equal(t, "2027-12-31", rec.ExpiryDate)
	assert.Equal(t, "LOT1", rec.BatchNumber)
	assert.Equal(t, "SN1", rec.SerialNumber)
	assert.Equal(t, "50600-0134-35", rec.Ndc)
	assert.Equal(t, "4950600013435", rec.ProductCode)
	assert.True(t, rec.Success)
	assert.Empty(t, rec.Warnings)
}

func TestToScanRecord_Warnings(t *testing.T) {
	res := decode("(01)09506000134353(17)25AB31")
	rec := ToScanRecord(res, "", time.Now())

	assert.False(t, rec.Success)
	assert.Equal(t, "Invalid GTIN Check Digit | Invalid Date for AI (17)", rec.Warnings)
	assert.Empty(t, rec.ExpiryDate)
	assert.Empty(t, rec.Ndc)
}

func TestToScanView(t *testing.T) {
	res := decode("(01)09506000134352(17)251231")
	rec := ToScanRecord(res, "", time.Now())
	master := &model.ProductMaster{ProductName: "アムロジピン錠", Specification: "5mg"}

	view := ToScanView(rec, res, master, true)
	assert.Equal(t, "アムロジピン錠 5mg", view.ProductName)
	assert.True(t, view.IsExpired)
	assert.True(t, view.IsDuplicate)
	require.NotNil(t, view.DaysToExpiry)
	assert.Equal(t, []string{}, view.WarningList)
}

func TestToScanView_FromStoredRecord(t *testing.T) {
	rec := model.ScanRecord{Warnings: "A | B"}
	view := ToScanView(rec, nil, nil, false)
	assert.Equal(t, []string{"A", "B"}, view.WarningList)
	assert.Empty(t, view.ProductName)
}
