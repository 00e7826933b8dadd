package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseCatalogCSV(t *testing.T) {
	csvText := "\xEF\xBB\xBF" +
		"Product_Code,GS1_Code,product_name,maker_name,nhi_price,origin\n" +
		"9506000134352,9506000134352,サンプル錠10mg,サンプル製薬,15.7,\n" +
		"LOCAL-001,,院内製剤,,,MANUAL\n" +
		"BAD-GTIN,09506000134353,チェックデジット不正,,,\n" +
		",09506000134352,コードなし,,,\n" +
		"NO-NAME,,,,,\n"

	records, err := ParseCatalogCSV(strings.NewReader(csvText), zap.NewNop())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "9506000134352", records[0].ProductCode)
	assert.Equal(t, "09506000134352", records[0].Gs1Code)
	assert.Equal(t, "サンプル製薬", records[0].MakerName)
	assert.InDelta(t, 15.7, records[0].NhiPrice, 0.0001)
	assert.Equal(t, "CSV", records[0].Origin)

	assert.Equal(t, "LOCAL-001", records[1].ProductCode)
	assert.Empty(t, records[1].Gs1Code)
	assert.Equal(t, "MANUAL", records[1].Origin)
}

func TestParseCatalogCSV_MissingHeader(t *testing.T) {
	_, err := ParseCatalogCSV(strings.NewReader("gs1_code,product_name\n1,a\n"), zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product_code")
}

func TestParseCatalogCSV_Empty(t *testing.T) {
	_, err := ParseCatalogCSV(strings.NewReader(""), zap.NewNop())
	assert.Error(t, err)
}
