package barcode

import (
	"math"
	"time"
)

// Date はGS1の6桁日付(YYMMDD)を解析した結果です。
type Date struct {
	Time         time.Time // その日の終わり (23:59:59.999)
	ISO          string    // YYYY-MM-DD
	IsExpired    bool
	DaysToExpiry int
}

// pivotYear より大きい2桁年は1900年代として扱います。
const pivotYear = 70

// DecodeDate は "YYMMDD" を解析します。
// 日が "00" の場合はその月の末日とします。月や日が範囲外でも time.Date の正規化に任せ、エラーにはしません。
// 6文字未満、または先頭6文字に数字以外を含む場合は false を返します。
func DecodeDate(s string, now time.Time) (Date, bool) {
	if len(s) < 6 {
		return Date{}, false
	}
	yy, ok1 := atoi2(s[0:2])
	mm, ok2 := atoi2(s[2:4])
	dd, ok3 := atoi2(s[4:6])
	if !ok1 || !ok2 || !ok3 {
		return Date{}, false
	}

	year := 2000 + yy
	if yy > pivotYear {
		year = 1900 + yy
	}

	loc := now.Location()
	var t time.Time
	if dd == 0 {
		// 翌月の0日 = 当月末日
		t = time.Date(year, time.Month(mm)+1, 0, 23, 59, 59, int(999*time.Millisecond), loc)
	} else {
		t = time.Date(year, time.Month(mm), dd, 23, 59, 59, int(999*time.Millisecond), loc)
	}

	return Date{
		Time:         t,
		ISO:          t.Format("2006-01-02"),
		IsExpired:    t.Before(now),
		DaysToExpiry: daysBetween(now, t),
	}, true
}

// daysBetween は now から t までの日数を切り上げで返します。過去の場合は負になります。
func daysBetween(now, t time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

func atoi2(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
