package export

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"gs1scan/database"
)

// ExportScansHandler は期間内のスキャン履歴をCSVでダウンロードさせます。
func ExportScansHandler(db *sqlx.DB, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startDate := r.URL.Query().Get("startDate")
		endDate := r.URL.Query().Get("endDate")
		encoding := r.URL.Query().Get("encoding")

		if startDate == "" || endDate == "" {
			http.Error(w, "startDate and endDate (YYYYMMDD) are required.", http.StatusBadRequest)
			return
		}

		records, err := database.GetScanRecordsByDate(db, startDate, endDate)
		if err != nil {
			if errors.Is(err, database.ErrInvalidDate) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("failed to get scan records", zap.Error(err))
			http.Error(w, "Failed to get scan records", http.StatusInternalServerError)
			return
		}

		// ヘッダー送信前にすべて書き出し、失敗時は 500 を返せるようにする
		var buf bytes.Buffer
		if err := WriteScanCSV(&buf, records, encoding); err != nil {
			log.Error("failed to write scan csv", zap.Error(err))
			http.Error(w, "Failed to write scan csv", http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("スキャン履歴_%s-%s.csv", startDate, endDate)
		charset := "utf-8"
		if IsShiftJIS(encoding) {
			charset = "shift_jis"
		}
		w.Header().Set("Content-Type", "text/csv;charset="+charset)
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
		w.Write(buf.Bytes())
	}
}
