// C:\Users\wasab\OneDrive\デスクトップ\GS1SCAN\barcode\barcode.go
package barcode

import (
	"strings"
	"time"
)

// Decoder はGS1バーコード文字列のデコーダです。
// 状態を持たないため、複数の goroutine から同時に使えます。
type Decoder struct {
	now       func() time.Time
	tokenizer *Tokenizer
}

// NewDecoder は Decoder を作成します。now は有効期限の判定に使う時計で、nil の場合は time.Now を使います。
func NewDecoder(now func() time.Time) *Decoder {
	if now == nil {
		now = time.Now
	}
	return &Decoder{now: now, tokenizer: defaultTokenizer}
}

var defaultDecoder = NewDecoder(nil)

// Decode は現在時刻を基準にスキャン文字列をデコードします。
func Decode(raw string) *Result {
	return defaultDecoder.Decode(raw)
}

// Decode はスキャン文字列をデコードします。
// 不正な入力でもエラーは返さず、Success=false と警告を含む Result を返します。
func (d *Decoder) Decode(raw string) *Result {
	r := newResult(raw)

	input := strings.TrimSpace(raw)
	if input == "" {
		return r
	}

	now := d.now()
	body, sym := StripSymbology(input)
	r.Symbology = sym

	// 識別子やFNC1だけでデータ部がない
	if strings.Trim(body, GroupSeparator) == "" {
		r.Warnings = append(r.Warnings, (&UnparsedError{Segment: input}).Error())
		assemble(r, now)
		return r
	}

	// 12桁/13桁でチェックデジットが正しければ JAN/UPC として即座に返す
	if gtin, typ, ok := linearGTIN(body); ok {
		r.put(Element{
			AI:       "01",
			Label:    labelFor("01"),
			Value:    gtin,
			RawValue: body,
			IsValid:  true,
		})
		r.Type = typ
		assemble(r, now)
		return r
	}

	err := d.tokenizer.Tokenize(body, func(ai, value string) {
		processField(r, ai, value, now)
	})
	if err != nil {
		r.Warnings = append(r.Warnings, err.Error())
	}

	assemble(r, now)
	return r
}
