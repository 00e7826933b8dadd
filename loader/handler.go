package loader

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"gs1scan/config"
)

// ReloadCatalogHandler は設定されたカタログCSVの再読み込みを行います。
// multipart の "file" が送られた場合はそちらを読み込みます。
func ReloadCatalogHandler(db *sqlx.DB, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		cfg := config.GetConfig()

		var (
			count int
			err   error
		)
		if file, _, formErr := r.FormFile("file"); formErr == nil {
			defer file.Close()
			encoding := r.FormValue("encoding")
			if encoding == "" {
				encoding = cfg.CatalogEncoding
			}
			count, err = LoadCatalog(db, file, encoding, log)
		} else {
			path := cfg.CatalogCSVPath
			if _, statErr := os.Stat(path); statErr != nil {
				msg := fmt.Sprintf("catalog file not found: %s", path)
				log.Warn(msg)
				http.Error(w, msg, http.StatusBadRequest)
				return
			}
			count, err = LoadCatalogCSV(db, path, cfg.CatalogEncoding, log)
		}
		if err != nil {
			log.Error("catalog reload failed", zap.Error(err))
			http.Error(w, "failed to reload catalog: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "製品カタログの更新が完了しました。",
			"count":   count,
		})
	}
}
