package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gs1scan/model"
)

// ErrInvalidDate は期間指定の日付が YYYYMMDD として読めないことを表します。
var ErrInvalidDate = errors.New("invalid date")

// TimeLayout は scan_history.scanned_at の保存形式です (UTC, ミリ秒固定長)。
const TimeLayout = "2006-01-02T15:04:05.000Z"

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

const scanColumns = `
	id, scanned_at, raw_data, barcode_type, gtin, expiry_date, batch_number,
	serial_number, ndc, product_code, success, warnings
`

// InsertScanRecord はスキャン履歴を1件保存します。
func InsertScanRecord(dbtx DBTX, rec model.ScanRecord) error {
	const q = `
		INSERT INTO scan_history (
			id, scanned_at, raw_data, barcode_type, gtin, expiry_date, batch_number,
			serial_number, ndc, product_code, success, warnings
		) VALUES (
			:id, :scanned_at, :raw_data, :barcode_type, :gtin, :expiry_date, :batch_number,
			:serial_number, :ndc, :product_code, :success, :warnings
		)
	`
	if _, err := dbtx.NamedExec(q, rec); err != nil {
		return fmt.Errorf("InsertScanRecord (ID: %s) failed: %w", rec.ID, err)
	}
	return nil
}

// FindRecentScan は since 以降に同じGTIN・シリアルで記録された最新の履歴を返します。
func FindRecentScan(dbtx DBTX, gtin, serial string, since time.Time) (*model.ScanRecord, error) {
	query := `SELECT ` + scanColumns + ` FROM scan_history
		WHERE gtin = ? AND serial_number = ? AND scanned_at >= ?
		ORDER BY scanned_at DESC LIMIT 1`
	return getScanRecord(dbtx, query, gtin, serial, FormatTime(since))
}

// FindRecentScanByRaw はGTINを含まないスキャン用に、生データの一致で検索します。
func FindRecentScanByRaw(dbtx DBTX, raw string, since time.Time) (*model.ScanRecord, error) {
	query := `SELECT ` + scanColumns + ` FROM scan_history
		WHERE raw_data = ? AND scanned_at >= ?
		ORDER BY scanned_at DESC LIMIT 1`
	return getScanRecord(dbtx, query, raw, FormatTime(since))
}

func getScanRecord(dbtx DBTX, query string, args ...interface{}) (*model.ScanRecord, error) {
	var rec model.ScanRecord
	if err := dbtx.Get(&rec, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get scan record: %w", err)
	}
	return &rec, nil
}

// GetScanRecordsByDate は YYYYMMDD 形式の期間(両端を含む, UTC)のスキャン履歴を古い順に返します。
func GetScanRecordsByDate(dbtx DBTX, startDate, endDate string) ([]model.ScanRecord, error) {
	start, err := time.Parse("20060102", startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date %s: %v", ErrInvalidDate, startDate, err)
	}
	end, err := time.Parse("20060102", endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date %s: %v", ErrInvalidDate, endDate, err)
	}

	var records []model.ScanRecord
	query := `SELECT ` + scanColumns + ` FROM scan_history
		WHERE scanned_at >= ? AND scanned_at < ?
		ORDER BY scanned_at, id`
	if err := dbtx.Select(&records, query, FormatTime(start), FormatTime(end.AddDate(0, 0, 1))); err != nil {
		return nil, fmt.Errorf("failed to select scan records: %w", err)
	}
	if records == nil {
		records = []model.ScanRecord{}
	}
	return records, nil
}
