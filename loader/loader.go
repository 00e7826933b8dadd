package loader

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"gs1scan/database"
	"gs1scan/parsers"
)

//go:embed schema.sql
var schemaSQL string

// InitDatabase はデータベーススキーマを適用します。
func InitDatabase(db *sqlx.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// LoadCatalogCSV はカタログCSVファイルを読み込み、product_master に登録(または更新)します。
// encoding が "sjis" の場合は Shift-JIS として読み込みます。
func LoadCatalogCSV(db *sqlx.DB, path, encoding string, log *zap.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("could not open file %s: %w", path, err)
	}
	defer f.Close()

	return LoadCatalog(db, f, encoding, log)
}

// LoadCatalog は r からカタログCSVを読み込み、1トランザクションで登録します。
func LoadCatalog(db *sqlx.DB, r io.Reader, encoding string, log *zap.Logger) (count int, err error) {
	if strings.EqualFold(encoding, "sjis") || strings.EqualFold(encoding, "shift_jis") {
		r = transform.NewReader(r, japanese.ShiftJIS.NewDecoder())
	}

	records, err := parsers.ParseCatalogCSV(r, log)
	if err != nil {
		return 0, err
	}

	tx, err := db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			log.Warn("rolling back catalog load", zap.Error(err))
			tx.Rollback()
		} else {
			err = tx.Commit()
			if err != nil {
				count = 0
				err = fmt.Errorf("failed to commit catalog load: %w", err)
			}
		}
	}()

	for _, rec := range records {
		if err = database.UpsertProductMaster(tx, rec); err != nil {
			return 0, err
		}
		count++
	}

	log.Info("catalog loaded", zap.Int("rows", count))
	return count, nil
}
