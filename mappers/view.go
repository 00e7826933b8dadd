// C:\Users\wasab\OneDrive\デスクトップ\GS1SCAN\mappers\view.go
package mappers

import (
	"strings"

	"gs1scan/barcode"
	"gs1scan/model"
)

// ToProductMasterView は、*model.ProductMaster を画面表示用の model.ProductMasterView に変換します。
func ToProductMasterView(master *model.ProductMaster) model.ProductMasterView {
	if master == nil {
		return model.ProductMasterView{}
	}

	displayName := master.ProductName
	if master.Specification != "" {
		displayName = master.ProductName + " " + master.Specification
	}

	return model.ProductMasterView{
		ProductMaster: *master,
		DisplayName:   displayName,
	}
}

// ToScanView は保存用レコードにデコード結果の表示項目を付け加えます。
func ToScanView(rec model.ScanRecord, res *barcode.Result, master *model.ProductMaster, duplicate bool) model.ScanView {
	view := model.ScanView{
		ScanRecord:  rec,
		WarningList: []string{},
		IsDuplicate: duplicate,
	}
	if res != nil {
		view.IsExpired = res.IsExpired
		view.DaysToExpiry = res.DaysToExpiry
		view.WarningList = append(view.WarningList, res.Warnings...)
	} else if rec.Warnings != "" {
		view.WarningList = strings.Split(rec.Warnings, WarningSeparator)
	}
	if master != nil {
		view.ProductName = ToProductMasterView(master).DisplayName
	}
	return view
}
