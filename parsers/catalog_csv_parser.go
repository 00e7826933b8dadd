package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"gs1scan/barcode"
	"gs1scan/model"
)

// ParseCatalogCSV は製品カタログCSV(ヘッダー付き)を解析します。
// gs1_code が13桁の場合は先頭に0を付けて14桁にし、チェックデジットが不正な行はスキップします。
func ParseCatalogCSV(r io.Reader, log *zap.Logger) ([]model.ProductMasterInput, error) {
	reader := csv.NewReader(SkipBOM(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSVファイルが空です")
	}
	if err != nil {
		return nil, fmt.Errorf("CSVヘッダーの読み取りに失敗: %w", err)
	}

	colIndex, err := getColIndex(header, []string{"product_code", "product_name"})
	if err != nil {
		return nil, err
	}

	var records []model.ProductMasterInput
	line := 1

	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn("catalog csv: unreadable row skipped", zap.Int("line", line), zap.Error(err))
			continue
		}

		get := func(key string) string {
			if idx, ok := colIndex[key]; ok && idx < len(rec) {
				return strings.TrimSpace(rec[idx])
			}
			return ""
		}

		input := model.ProductMasterInput{
			ProductCode:   get("product_code"),
			Gs1Code:       get("gs1_code"),
			YjCode:        get("yj_code"),
			ProductName:   get("product_name"),
			GenericName:   get("generic_name"),
			MakerName:     get("maker_name"),
			Specification: get("specification"),
			PackageForm:   get("package_form"),
			Origin:        get("origin"),
		}
		if input.ProductCode == "" || input.ProductName == "" {
			log.Warn("catalog csv: product_code or product_name is empty", zap.Int("line", line))
			continue
		}

		if price := get("nhi_price"); price != "" {
			if v, err := strconv.ParseFloat(price, 64); err == nil {
				input.NhiPrice = v
			}
		}

		if input.Gs1Code != "" {
			if len(input.Gs1Code) == 13 {
				input.Gs1Code = "0" + input.Gs1Code
			}
			if !barcode.ValidGTIN(input.Gs1Code) {
				log.Warn("catalog csv: invalid gs1_code check digit",
					zap.Int("line", line), zap.String("gs1Code", input.Gs1Code))
				continue
			}
		}
		if input.Origin == "" {
			input.Origin = "CSV"
		}

		records = append(records, input)
	}

	return records, nil
}
