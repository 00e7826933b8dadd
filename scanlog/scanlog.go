package scanlog

import (
	"fmt"
	"time"

	"gs1scan/barcode"
	"gs1scan/database"
	"gs1scan/mappers"
	"gs1scan/model"
)

// Service はスキャン履歴の保存と重複スキャンの検出を行います。
// デコーダ自体は履歴を参照しないため、重複の判定はここで行います。
type Service struct {
	db     database.DBTX
	window time.Duration
}

func NewService(db database.DBTX, window time.Duration) *Service {
	return &Service{db: db, window: window}
}

// Annotate は直近 window 以内に同じ品目が記録されていれば、警告を追加したコピーを返します。
// シリアル番号付きのGTINは GTIN+シリアル、それ以外は生データの完全一致で判定します。
// 重複がなければ res をそのまま返します。
func (s *Service) Annotate(res *barcode.Result, at time.Time) (*barcode.Result, bool, error) {
	if s.window <= 0 || len(res.Elements) == 0 {
		return res, false, nil
	}
	since := at.Add(-s.window)

	var (
		prev *model.ScanRecord
		err  error
	)
	if res.GTIN != nil && res.SerialNumber != nil {
		prev, err = database.FindRecentScan(s.db, *res.GTIN, *res.SerialNumber, since)
	} else {
		prev, err = database.FindRecentScanByRaw(s.db, res.RawData, since)
	}
	if err != nil {
		return res, false, fmt.Errorf("duplicate check failed: %w", err)
	}
	if prev == nil {
		return res, false, nil
	}
	return res.WithWarning(fmt.Sprintf("Duplicate scan: already scanned at %s", prev.ScannedAt)), true, nil
}

// Record はデコード結果を履歴に保存します。
func (s *Service) Record(res *barcode.Result, productCode string, at time.Time) (model.ScanRecord, error) {
	rec := mappers.ToScanRecord(res, productCode, at)
	if err := database.InsertScanRecord(s.db, rec); err != nil {
		return rec, err
	}
	return rec, nil
}
