package barcode

// DeriveNDC はGTINの3桁目から13桁目(11桁)を 5-4-2 形式に整形して返します。
// 公的なデータベースは参照しない近似値です。導出できない場合は空文字を返します。
func DeriveNDC(gtin string) string {
	if len(gtin) != 14 {
		return ""
	}
	s := gtin[2:13]
	if len(s) != 11 {
		return ""
	}
	return s[0:5] + "-" + s[5:9] + "-" + s[9:11]
}
