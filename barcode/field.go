package barcode

import (
	"fmt"
	"time"
)

const warnInvalidGTIN = "Invalid GTIN Check Digit"

// processField は1つの (AI, 値) を検証して Result に格納します。
// 検証に失敗しても要素は格納し、警告を追加します。
func processField(r *Result, ai, raw string, now time.Time) {
	el := Element{
		AI:       ai,
		Label:    labelFor(ai),
		Value:    raw,
		RawValue: raw,
		IsValid:  true,
	}

	rule, known := Lookup(ai)
	switch {
	case ai == "01":
		if !ValidGTIN(raw) {
			el.IsValid = false
			r.Warnings = append(r.Warnings, warnInvalidGTIN)
		}
	case known && rule.Type == FieldDate:
		d, ok := DecodeDate(raw, now)
		if !ok {
			el.IsValid = false
			r.Warnings = append(r.Warnings, fmt.Sprintf("Invalid Date for AI (%s)", ai))
			break
		}
		el.Value = d.ISO
	}

	r.put(el)
}
