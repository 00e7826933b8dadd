package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"gs1scan/model"
)

var scanCSVHeader = []string{
	"スキャン日時",
	"種別",
	"GTIN",
	"NDC",
	"有効期限",
	"ロット",
	"シリアル",
	"製品コード",
	"判定",
	"警告",
	"読取データ",
}

func quoteAll(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// printable は制御文字(FNC1など)を <GS> のような表記に置き換えます。
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 {
			return -1
		}
		return r
	}, strings.ReplaceAll(s, "\x1d", "<GS>"))
}

// IsShiftJIS は出力文字コードの指定が Shift-JIS かどうかを返します。
func IsShiftJIS(enc string) bool {
	return strings.EqualFold(enc, "sjis") || strings.EqualFold(enc, "shift_jis")
}

// WriteScanCSV はスキャン履歴を監査用CSVとして書き出します。
// enc が "sjis" の場合は Shift-JIS、それ以外はBOM付きUTF-8で出力します。
// Shift-JIS で表せない文字は置換文字に変換します。
func WriteScanCSV(w io.Writer, records []model.ScanRecord, enc string) error {
	var buf bytes.Buffer

	buf.WriteString(strings.Join(scanCSVHeader, ",") + "\r\n")
	for _, rec := range records {
		status := "OK"
		if !rec.Success {
			status = "NG"
		}
		row := []string{
			quoteAll(rec.ScannedAt),
			quoteAll(rec.BarcodeType),
			quoteAll(rec.Gtin),
			quoteAll(rec.Ndc),
			quoteAll(rec.ExpiryDate),
			quoteAll(rec.BatchNumber),
			quoteAll(rec.SerialNumber),
			quoteAll(rec.ProductCode),
			quoteAll(status),
			quoteAll(rec.Warnings),
			quoteAll(printable(rec.RawData)),
		}
		buf.WriteString(strings.Join(row, ",") + "\r\n")
	}

	if IsShiftJIS(enc) {
		sjis, _, err := transform.Bytes(encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder()), buf.Bytes())
		if err != nil {
			return fmt.Errorf("failed to encode csv as Shift_JIS: %w", err)
		}
		_, err = w.Write(sjis)
		return err
	}

	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
