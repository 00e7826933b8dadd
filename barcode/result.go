package barcode

import "time"

// Type は推定したバーコードの論理的な種別です。
type Type string

const (
	TypeDataMatrix Type = "GS1-DataMatrix"
	TypeGS1128     Type = "GS1-128"
	TypeEAN13      Type = "EAN-13"
	TypeUPCA       Type = "UPC-A"
	TypeUnknown    Type = "Unknown"
)

// Element は読み取った1つのAIフィールドです。
type Element struct {
	AI       string `json:"ai" yaml:"ai"`
	Label    string `json:"label" yaml:"label"`
	Value    string `json:"value" yaml:"value"`
	RawValue string `json:"rawValue" yaml:"rawValue"`
	IsValid  bool   `json:"isValid" yaml:"isValid"`
}

// Result はデコード結果です。Decode の呼び出しごとに新しく作られ、返却後は変更されません。
type Result struct {
	Success      bool               `json:"success" yaml:"success"`
	Type         Type               `json:"barcodeType" yaml:"barcodeType"`
	Symbology    Symbology          `json:"symbology,omitempty" yaml:"symbology,omitempty"`
	Elements     map[string]Element `json:"elements" yaml:"elements"`
	Order        []string           `json:"order" yaml:"order"`
	GTIN         *string            `json:"gtin,omitempty" yaml:"gtin,omitempty"`
	ExpiryDate   *string            `json:"expiryDate,omitempty" yaml:"expiryDate,omitempty"`
	BatchNumber  *string            `json:"batchNumber,omitempty" yaml:"batchNumber,omitempty"`
	SerialNumber *string            `json:"serialNumber,omitempty" yaml:"serialNumber,omitempty"`
	NDC          *string            `json:"ndc,omitempty" yaml:"ndc,omitempty"`
	IsExpired    bool               `json:"isExpired" yaml:"isExpired"`
	DaysToExpiry *int               `json:"daysToExpiry,omitempty" yaml:"daysToExpiry,omitempty"`
	Warnings     []string           `json:"warnings" yaml:"warnings"`
	RawData      string             `json:"rawData" yaml:"rawData"`
}

func newResult(raw string) *Result {
	return &Result{
		Type:     TypeUnknown,
		Elements: make(map[string]Element),
		Order:    []string{},
		Warnings: []string{},
		RawData:  raw,
	}
}

// put は要素を追加します。同じAIが既にあれば上書きし、並び順は最初の出現位置のままにします。
func (r *Result) put(el Element) {
	if _, exists := r.Elements[el.AI]; !exists {
		r.Order = append(r.Order, el.AI)
	}
	r.Elements[el.AI] = el
}

// ElementList は読み取った順に要素を返します。
func (r *Result) ElementList() []Element {
	list := make([]Element, 0, len(r.Order))
	for _, ai := range r.Order {
		list = append(list, r.Elements[ai])
	}
	return list
}

// Clone は Result の完全なコピーを返します。
func (r *Result) Clone() *Result {
	c := *r
	c.Elements = make(map[string]Element, len(r.Elements))
	for k, v := range r.Elements {
		c.Elements[k] = v
	}
	c.Order = append([]string{}, r.Order...)
	c.Warnings = append([]string{}, r.Warnings...)
	c.GTIN = cloneString(r.GTIN)
	c.ExpiryDate = cloneString(r.ExpiryDate)
	c.BatchNumber = cloneString(r.BatchNumber)
	c.SerialNumber = cloneString(r.SerialNumber)
	c.NDC = cloneString(r.NDC)
	if r.DaysToExpiry != nil {
		d := *r.DaysToExpiry
		c.DaysToExpiry = &d
	}
	return &c
}

// WithWarning は警告を1件追加したコピーを返します。元の Result は変更しません。
// 重複スキャンの通知など、呼び出し側の判断による警告に使います。
func (r *Result) WithWarning(msg string) *Result {
	c := r.Clone()
	c.Warnings = append(c.Warnings, msg)
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// assemble は収集した要素から GTIN や有効期限などの項目を導出し、種別と成否を確定します。
func assemble(r *Result, now time.Time) {
	if el, ok := r.Elements["01"]; ok {
		r.GTIN = cloneString(&el.Value)
		if el.IsValid {
			if ndc := DeriveNDC(el.Value); ndc != "" {
				r.NDC = &ndc
			}
		}
	}
	if el, ok := r.Elements["17"]; ok {
		if d, ok := DecodeDate(el.RawValue, now); ok {
			days := d.DaysToExpiry
			r.ExpiryDate = &d.ISO
			r.IsExpired = d.IsExpired
			r.DaysToExpiry = &days
		}
	}
	if el, ok := r.Elements["10"]; ok {
		r.BatchNumber = cloneString(&el.Value)
	}
	if el, ok := r.Elements["21"]; ok {
		r.SerialNumber = cloneString(&el.Value)
	}

	if r.Type == TypeUnknown {
		r.Type = classify(r)
	}
	r.Success = len(r.Elements) > 0 && len(r.Warnings) == 0
}

func classify(r *Result) Type {
	gtin, ok := r.Elements["01"]
	if !ok {
		return TypeUnknown
	}
	if gtin.IsValid {
		for _, v := range []*string{r.BatchNumber, r.SerialNumber, r.ExpiryDate} {
			if v != nil && *v != "" {
				return TypeDataMatrix
			}
		}
	}
	return TypeGS1128
}
