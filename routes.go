// C:\Users\wasab\OneDrive\デスクトップ\GS1SCAN\routes.go
package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"gs1scan/database"
	"gs1scan/export"
	"gs1scan/loader"
	"gs1scan/mappers"
	"gs1scan/metrics"
	"gs1scan/scan"
)

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB, log *zap.Logger) {
	mux.HandleFunc("/api/scan/decode", scan.DecodeHandler(dbConn, log))
	mux.HandleFunc("/api/product/by_barcode/", scan.LookupHandler(dbConn, log))
	mux.HandleFunc("/api/scans", scan.HistoryHandler(dbConn, log))
	mux.HandleFunc("/api/scans/export", export.ExportScansHandler(dbConn, log))

	mux.HandleFunc("/api/master/by_code/", func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimPrefix(r.URL.Path, "/api/master/by_code/")
		if code == "" {
			http.Error(w, "product code is required", http.StatusBadRequest)
			return
		}
		master, err := database.GetProductMasterByCode(dbConn, code)
		if err != nil {
			log.Error("failed to get master by code", zap.String("code", code), zap.Error(err))
			http.Error(w, "データベースエラーが発生しました", http.StatusInternalServerError)
			return
		}
		if master == nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(mappers.ToProductMasterView(master))
	})

	mux.HandleFunc("/api/catalog/reload", loader.ReloadCatalogHandler(dbConn, log))

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler(log)(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.Handle("/metrics", metrics.Handler())
}
