package barcode

import (
	"fmt"
	"regexp"
	"strings"
)

// GroupSeparator はGS1の可変長フィールドを区切るFNC1 (ASCII 29) です。
const GroupSeparator = "\x1d"

// previewLength は警告に含める未解析部分の最大文字数です。
const previewLength = 20

var bracketRegex = regexp.MustCompile(`\((\d+)\)([^(]*)`)

// UnparsedError は解析を継続できない位置で Tokenizer が停止したことを表します。
type UnparsedError struct {
	Segment string
}

func (e *UnparsedError) Error() string {
	p := e.Segment
	if head, _, ok := splitRunes(p, previewLength); ok && len(head) < len(p) {
		p = head + "..."
	}
	return fmt.Sprintf("Unparsed segment: %q", p)
}

// splitRunes は s を先頭 n 文字 (rune 単位) と残りに分けます。n 文字に満たない場合は ok=false です。
func splitRunes(s string, n int) (head, rest string, ok bool) {
	count := 0
	for i := range s {
		if count == n {
			return s[:i], s[i:], true
		}
		count++
	}
	if count == n {
		return s, "", true
	}
	return s, "", false
}

// Tokenizer はGS1の文字列をAIと値の組に分解します。
type Tokenizer struct {
	rules map[string]AIRule
	codes []string
}

// NewTokenizer は与えられたAI定義を使う Tokenizer を作成します。
func NewTokenizer(table map[string]AIRule) *Tokenizer {
	return &Tokenizer{rules: table, codes: sortedCodes(table)}
}

var defaultTokenizer = NewTokenizer(rules)

// Tokenize は括弧付き形式か生データ形式かを判定して分解します。
func (t *Tokenizer) Tokenize(s string, emit func(ai, value string)) error {
	if strings.Contains(s, "(") {
		return t.Bracketed(s, emit)
	}
	return t.Raw(s, emit)
}

// Bracketed は "(01)0456...(17)251231" のような人間可読形式を分解します。
func (t *Tokenizer) Bracketed(s string, emit func(ai, value string)) error {
	matches := bracketRegex.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return &UnparsedError{Segment: s}
	}
	for _, m := range matches {
		emit(m[1], strings.Trim(m[2], GroupSeparator))
	}
	return nil
}

// Raw はFNC1区切りの生データを先頭から順に分解します。
// 一致するAIがない位置、または固定長フィールドの桁数が足りない位置で停止し、
// それ以降は解析しません。
func (t *Tokenizer) Raw(s string, emit func(ai, value string)) error {
	stream := s
	for {
		stream = strings.TrimLeft(stream, GroupSeparator)
		if stream == "" {
			return nil
		}
		ai, value, rest, ok := t.next(stream)
		if !ok {
			return &UnparsedError{Segment: stream}
		}
		emit(ai, value)
		stream = rest
	}
}

// next は stream の先頭にある1フィールドを取り出します。
func (t *Tokenizer) next(stream string) (ai, value, rest string, ok bool) {
	for _, code := range t.codes {
		if !strings.HasPrefix(stream, code) {
			continue
		}
		rule := t.rules[code]
		body := stream[len(code):]

		if rule.Fixed {
			head, tail, full := splitRunes(body, rule.Length)
			if !full {
				return "", "", "", false
			}
			return code, head, tail, true
		}

		parts := strings.Split(body, GroupSeparator)
		switch {
		case len(parts) > 1:
			value, rest = parts[0], strings.Join(parts[1:], GroupSeparator)
		default:
			// FNC1を省略するスキャナ向け: 最大長で切り、残りを次のフィールドとして扱う
			value, rest, _ = splitRunes(body, rule.Length)
		}
		if value == "" {
			return "", "", "", false
		}
		return code, value, rest, true
	}
	return "", "", "", false
}
