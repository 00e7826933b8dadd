package barcode

// ValidGTIN は14桁のGTINのチェックデジットを検証します。
// 14桁の数字以外は常に false を返します。
func ValidGTIN(s string) bool {
	if len(s) != 14 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return checkDigit(s[:13]) == int(s[13]-'0')
}

// checkDigit はチェックデジットを除いた数字列から期待されるチェックデジットを計算します。
// 末尾から数えて偶数番目(0始まり)に3、奇数番目に1の重みを掛けます。
func checkDigit(body string) int {
	sum := 0
	for i := 0; i < len(body); i++ {
		d := int(body[len(body)-1-i] - '0')
		if i%2 == 0 {
			sum += d * 3
		} else {
			sum += d
		}
	}
	return (10 - sum%10) % 10
}

// padGTIN は12桁/13桁のコードを先頭0埋めで14桁にします。
func padGTIN(code string) string {
	for len(code) < 14 {
		code = "0" + code
	}
	return code
}
