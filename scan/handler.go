// C:\Users\wasab\OneDrive\デスクトップ\GS1SCAN\scan\handler.go
package scan

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"gs1scan/barcode"
	"gs1scan/config"
	"gs1scan/database"
	"gs1scan/mappers"
	"gs1scan/metrics"
	"gs1scan/model"
	"gs1scan/scanlog"
)

// clock はテストで差し替えられるよう変数にしています。
var clock = time.Now

type decodeRequest struct {
	Barcode string `json:"barcode"`
}

type DecodeResponse struct {
	Result  *barcode.Result          `json:"result"`
	Product *model.ProductMasterView `json:"product"`
	Scan    model.ScanView           `json:"scan"`
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

func duplicateWindow() time.Duration {
	return time.Duration(config.GetConfig().DuplicateWindowSeconds) * time.Second
}

// lookupProduct はカタログ検索の所要時間を計測します。
func lookupProduct(db *sqlx.DB, res *barcode.Result) (*model.ProductMaster, error) {
	start := time.Now()
	defer func() { metrics.LookupDuration.Observe(time.Since(start).Seconds()) }()
	return database.GetProductMasterForScan(db, res)
}

// DecodeHandler はスキャン文字列をデコードし、製品を検索して履歴に記録します。
func DecodeHandler(db *sqlx.DB, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		var req decodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, "リクエストが不正です。", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Barcode) == "" {
			writeJSONError(w, "barcode is required", http.StatusBadRequest)
			return
		}

		at := clock()
		res := barcode.NewDecoder(func() time.Time { return at }).Decode(req.Barcode)
		metrics.ObserveDecode(res)

		history := scanlog.NewService(db, duplicateWindow())
		annotated, duplicate, err := history.Annotate(res, at)
		if err != nil {
			log.Error("duplicate check failed", zap.Error(err))
			writeJSONError(w, "データベースエラーが発生しました", http.StatusInternalServerError)
			return
		}

		master, err := lookupProduct(db, res)
		if err != nil {
			log.Error("product lookup failed", zap.String("raw", res.RawData), zap.Error(err))
			writeJSONError(w, "データベースエラーが発生しました", http.StatusInternalServerError)
			return
		}

		productCode := ""
		var product *model.ProductMasterView
		if master != nil {
			productCode = master.ProductCode
			view := mappers.ToProductMasterView(master)
			product = &view
		}

		rec, err := history.Record(res, productCode, at)
		if err != nil {
			log.Error("failed to record scan", zap.Error(err))
			writeJSONError(w, "スキャン履歴の保存に失敗しました。", http.StatusInternalServerError)
			return
		}

		log.Debug("barcode decoded",
			zap.String("type", string(res.Type)),
			zap.Bool("success", res.Success),
			zap.Bool("duplicate", duplicate),
			zap.String("productCode", productCode))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(DecodeResponse{
			Result:  annotated,
			Product: product,
			Scan:    mappers.ToScanView(rec, annotated, master, duplicate),
		})
	}
}

// LookupHandler はバーコードに対応する製品マスタを返します。履歴には記録しません。
func LookupHandler(db *sqlx.DB, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawBarcode := strings.TrimPrefix(r.URL.Path, "/api/product/by_barcode/")
		if rawBarcode == "" {
			http.Error(w, "barcode is required", http.StatusBadRequest)
			return
		}

		res := barcode.NewDecoder(clock).Decode(rawBarcode)
		metrics.ObserveDecode(res)
		if res.GTIN != nil && !res.Elements["01"].IsValid {
			writeJSONError(w, "GTINのチェックデジットが正しくありません", http.StatusBadRequest)
			return
		}

		master, err := lookupProduct(db, res)
		if err != nil {
			log.Error("product lookup failed", zap.String("raw", rawBarcode), zap.Error(err))
			http.Error(w, "データベースエラーが発生しました", http.StatusInternalServerError)
			return
		}
		if master == nil {
			log.Info("product not found", zap.String("raw", rawBarcode))
			http.Error(w, "製品が見つかりませんでした", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(mappers.ToProductMasterView(master))
	}
}

// HistoryHandler は期間内のスキャン履歴を返します。
func HistoryHandler(db *sqlx.DB, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startDate := r.URL.Query().Get("startDate")
		endDate := r.URL.Query().Get("endDate")
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
			log.Error("failed to get scan history", zap.Error(err))
			http.Error(w, "データベースエラーが発生しました", http.StatusInternalServerError)
			return
		}

		views := make([]model.ScanView, 0, len(records))
		for _, rec := range records {
			views = append(views, mappers.ToScanView(rec, nil, nil, false))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(views)
	}
}
