// C:\Users\wasab\OneDrive\デスクトップ\GS1SCAN\database\product_master_query.go
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gs1scan/barcode"
	"gs1scan/model"
)

type DBTX interface {
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
	NamedExec(query string, arg interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Exec(query string, args ...interface{}) (sql.Result, error)
}

const SelectColumns = `
	product_code, gs1_code, yj_code, product_name, generic_name, maker_name,
	specification, package_form, nhi_price, origin
`

func GetProductMasterByCode(dbtx DBTX, code string) (*model.ProductMaster, error) {
	var master model.ProductMaster
	query := `SELECT ` + SelectColumns + ` FROM product_master WHERE product_code = ?`
	err := dbtx.Get(&master, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product master by code %s: %w", code, err)
	}
	return &master, nil
}

func GetProductMasterByGs1Code(dbtx DBTX, gs1Code string) (*model.ProductMaster, error) {
	var master model.ProductMaster
	query := `SELECT ` + SelectColumns + ` FROM product_master WHERE gs1_code = ? ORDER BY product_code LIMIT 1`
	err := dbtx.Get(&master, query, gs1Code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product master by gs1_code %s: %w", gs1Code, err)
	}
	return &master, nil
}

// GetProductMasterForScan はデコード結果から製品マスタを検索します。
// 正しいGTINがあれば gs1_code、次に先頭0を除いたJANコードで検索し、
// GTINがなければスキャン文字列そのものを製品コードとして検索します。
// 見つからない場合は (nil, nil) を返します。
func GetProductMasterForScan(dbtx DBTX, res *barcode.Result) (*model.ProductMaster, error) {
	if res.GTIN != nil {
		if !res.Elements["01"].IsValid {
			return nil, nil
		}
		gtin14 := *res.GTIN
		master, err := GetProductMasterByGs1Code(dbtx, gtin14)
		if err != nil || master != nil {
			return master, err
		}
		if strings.HasPrefix(gtin14, "0") {
			return GetProductMasterByCode(dbtx, gtin14[1:])
		}
		return nil, nil
	}

	code := strings.TrimSpace(res.RawData)
	if code == "" {
		return nil, nil
	}
	return GetProductMasterByCode(dbtx, code)
}

// UpsertProductMaster は製品マスタを挿入、または product_code が一致する行を更新します。
func UpsertProductMaster(dbtx DBTX, input model.ProductMasterInput) error {
	const q = `
		INSERT INTO product_master (
			product_code, gs1_code, yj_code, product_name, generic_name, maker_name,
			specification, package_form, nhi_price, origin
		) VALUES (
			:product_code, :gs1_code, :yj_code, :product_name, :generic_name, :maker_name,
			:specification, :package_form, :nhi_price, :origin
		)
		ON CONFLICT(product_code) DO UPDATE SET
			gs1_code = excluded.gs1_code,
			yj_code = excluded.yj_code,
			product_name = excluded.product_name,
			generic_name = excluded.generic_name,
			maker_name = excluded.maker_name,
			specification = excluded.specification,
			package_form = excluded.package_form,
			nhi_price = excluded.nhi_price,
			origin = excluded.origin
	`
	if _, err := dbtx.NamedExec(q, input); err != nil {
		return fmt.Errorf("UpsertProductMaster (Code: %s) failed: %w", input.ProductCode, err)
	}
	return nil
}

func CountProductMasters(dbtx DBTX) (int, error) {
	var count int
	if err := dbtx.Get(&count, `SELECT COUNT(*) FROM product_master`); err != nil {
		return 0, fmt.Errorf("failed to count product masters: %w", err)
	}
	return count, nil
}
