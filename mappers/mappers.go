package mappers

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"gs1scan/barcode"
	"gs1scan/database"
	"gs1scan/model"
)

// WarningSeparator は scan_history.warnings に複数の警告を保存する際の区切り文字です。
const WarningSeparator = " | "

/**
 * ToScanRecord は、デコード結果を scan_history に保存する形に変換します。
 *
 * 存在しない項目(GTINなし等)は空文字で保存します。
 * productCode はカタログで一致した製品コードで、見つからなかった場合は空文字を渡します。
 */
func ToScanRecord(res *barcode.Result, productCode string, at time.Time) model.ScanRecord {
	return model.ScanRecord{
		ID:           uuid.NewString(),
		ScannedAt:    database.FormatTime(at),
		RawData:      res.RawData,
		BarcodeType:  string(res.Type),
		Gtin:         deref(res.GTIN),
		ExpiryDate:   deref(res.ExpiryDate),
		BatchNumber:  deref(res.BatchNumber),
		SerialNumber: deref(res.SerialNumber),
		Ndc:          deref(res.NDC),
		ProductCode:  productCode,
		Success:      res.Success,
		Warnings:     strings.Join(res.Warnings, WarningSeparator),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
