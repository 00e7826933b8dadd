package model

// ScanRecord はスキャン履歴の1件です。
// ScannedAt は "2006-01-02T15:04:05.000Z" 形式(UTC)で保存し、文字列比較で時刻順になるようにします。
type ScanRecord struct {
	ID           string `db:"id" json:"id"`
	ScannedAt    string `db:"scanned_at" json:"scannedAt"`
	RawData      string `db:"raw_data" json:"rawData"`
	BarcodeType  string `db:"barcode_type" json:"barcodeType"`
	Gtin         string `db:"gtin" json:"gtin"`
	ExpiryDate   string `db:"expiry_date" json:"expiryDate"`
	BatchNumber  string `db:"batch_number" json:"batchNumber"`
	SerialNumber string `db:"serial_number" json:"serialNumber"`
	Ndc          string `db:"ndc" json:"ndc"`
	ProductCode  string `db:"product_code" json:"productCode"`
	Success      bool   `db:"success" json:"success"`
	Warnings     string `db:"warnings" json:"warnings"`
}

// ScanView は画面表示用のスキャン結果です。
type ScanView struct {
	ScanRecord
	ProductName  string   `json:"productName"`
	IsExpired    bool     `json:"isExpired"`
	DaysToExpiry *int     `json:"daysToExpiry,omitempty"`
	WarningList  []string `json:"warningList"`
	IsDuplicate  bool     `json:"isDuplicate"`
}
