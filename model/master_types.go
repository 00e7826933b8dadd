// C:\Users\wasab\OneDrive\デスクトップ\GS1SCAN\model\master_types.go
package model

// ProductMaster は製品カタログの1品目です。
// ProductCode はJANコード(13桁)または自社管理コード、Gs1Code はGTIN-14です。
type ProductMaster struct {
	ProductCode   string  `db:"product_code" json:"productCode"`
	Gs1Code       string  `db:"gs1_code" json:"gs1Code"`
	YjCode        string  `db:"yj_code" json:"yjCode"`
	ProductName   string  `db:"product_name" json:"productName"`
	GenericName   string  `db:"generic_name" json:"genericName"`
	MakerName     string  `db:"maker_name" json:"makerName"`
	Specification string  `db:"specification" json:"specification"`
	PackageForm   string  `db:"package_form" json:"packageForm"`
	NhiPrice      float64 `db:"nhi_price" json:"nhiPrice"`
	Origin        string  `db:"origin" json:"origin"`
}

type ProductMasterInput struct {
	ProductCode   string  `db:"product_code" json:"productCode"`
	Gs1Code       string  `db:"gs1_code" json:"gs1Code"`
	YjCode        string  `db:"yj_code" json:"yjCode"`
	ProductName   string  `db:"product_name" json:"productName"`
	GenericName   string  `db:"generic_name" json:"genericName"`
	MakerName     string  `db:"maker_name" json:"makerName"`
	Specification string  `db:"specification" json:"specification"`
	PackageForm   string  `db:"package_form" json:"packageForm"`
	NhiPrice      float64 `db:"nhi_price" json:"nhiPrice"`
	Origin        string  `db:"origin" json:"origin"`
}

type ProductMasterView struct {
	ProductMaster
	DisplayName string `json:"displayName"`
}
