package barcode

import (
	"regexp"
	"strings"
)

// Symbology はスキャナが付加するシンボル識別子です。
type Symbology string

const (
	SymbologyNone       Symbology = ""
	SymbologyDataMatrix Symbology = "]d2"
	SymbologyGS1128     Symbology = "]C1"
)

var linearRegex = regexp.MustCompile(`^[0-9]{12,13}$`)

// StripSymbology は先頭のシンボル識別子を取り除き、残りの文字列と識別子を返します。
func StripSymbology(s string) (string, Symbology) {
	for _, sym := range []Symbology{SymbologyDataMatrix, SymbologyGS1128} {
		if strings.HasPrefix(s, string(sym)) {
			return s[len(sym):], sym
		}
	}
	return s, SymbologyNone
}

// linearGTIN は12桁(UPC-A)/13桁(EAN-13)の数字列を14桁に0埋めし、チェックデジットが正しければ返します。
func linearGTIN(s string) (string, Type, bool) {
	if !linearRegex.MatchString(s) {
		return "", TypeUnknown, false
	}
	gtin := padGTIN(s)
	if !ValidGTIN(gtin) {
		return "", TypeUnknown, false
	}
	if len(s) == 12 {
		return gtin, TypeUPCA, true
	}
	return gtin, TypeEAN13, true
}
