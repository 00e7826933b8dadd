package barcode

import "sort"

// FieldType はAIの値の意味上の型です。
type FieldType int

const (
	FieldString FieldType = iota
	FieldNumber
	FieldDate
)

// AIRule は1つのアプリケーション識別子(AI)の定義です。
// Fixed が true の場合 Length は固定長、false の場合は可変長の最大長を表します。
type AIRule struct {
	Label  string
	Fixed  bool
	Length int
	Type   FieldType
}

func fixed(label string, n int, t FieldType) AIRule {
	return AIRule{Label: label, Fixed: true, Length: n, Type: t}
}

func variable(label string, max int, t FieldType) AIRule {
	return AIRule{Label: label, Fixed: false, Length: max, Type: t}
}

// rules は対応しているAIの一覧です。起動後に変更してはいけません。
var rules = map[string]AIRule{
	"00":   fixed("SSCC", 18, FieldNumber),
	"01":   fixed("GTIN", 14, FieldNumber),
	"02":   fixed("CONTENT", 14, FieldNumber),
	"10":   variable("BATCH/LOT", 20, FieldString),
	"11":   fixed("PROD DATE", 6, FieldDate),
	"12":   fixed("DUE DATE", 6, FieldDate),
	"13":   fixed("PACK DATE", 6, FieldDate),
	"15":   fixed("BEST BEFORE", 6, FieldDate),
	"16":   fixed("SELL BY", 6, FieldDate),
	"17":   fixed("USE BY OR EXPIRY", 6, FieldDate),
	"20":   fixed("VARIANT", 2, FieldNumber),
	"21":   variable("SERIAL", 20, FieldString),
	"22":   variable("CPV", 20, FieldString),
	"235":  variable("TPX", 28, FieldString),
	"240":  variable("ADDITIONAL ID", 30, FieldString),
	"241":  variable("CUST. PART No.", 30, FieldString),
	"30":   variable("VAR. COUNT", 8, FieldNumber),
	"37":   variable("COUNT", 8, FieldNumber),
	"400":  variable("ORDER NUMBER", 30, FieldString),
	"7003": fixed("EXPIRY TIME", 10, FieldNumber),
	"710":  variable("NHRN PZN", 20, FieldString),
	"711":  variable("NHRN CIP", 20, FieldString),
	"712":  variable("NHRN CN", 20, FieldString),
	"713":  variable("NHRN DRN", 20, FieldString),
	"714":  variable("NHRN AIM", 20, FieldString),
	"8006": fixed("ITIP", 18, FieldNumber),
	"8020": variable("REF No.", 25, FieldString),
}

// Lookup はAIコードに対応するルールを返します。
func Lookup(ai string) (AIRule, bool) {
	r, ok := rules[ai]
	return r, ok
}

// labelFor は未登録のAIにも表示用ラベルを返します。
func labelFor(ai string) string {
	if r, ok := rules[ai]; ok {
		return r.Label
	}
	return "AI (" + ai + ")"
}

// sortedCodes はコードを長い順 (同じ長さなら辞書順) に並べて返します。
// 4桁のAIが同じ数字で始まる2桁/3桁のAIより先に試されるようにするためです。
func sortedCodes(table map[string]AIRule) []string {
	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if len(codes[i]) != len(codes[j]) {
			return len(codes[i]) > len(codes[j])
		}
		return codes[i] < codes[j]
	})
	return codes
}
