package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// PrintJSON 将任意值以美化（缩进）并带有简洁高亮的方式输出到 writer
//
// 入参支持:
//   - string / []byte: 视为原始 JSON 文本；会校验并缩进
//   - 其他任意 Go 值: 使用 json.MarshalIndent 编码后再渲染
func PrintJSON(w io.Writer, v any) error {
	pretty, err := FormatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, colorizeJSON(pretty))
	return err
}

// FormatJSON 返回美化（缩进）的 JSON 字符串，入参规则见 PrintJSON
func FormatJSON(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null\n", nil
	case string:
		return indentJSON([]byte(x))
	case []byte:
		return indentJSON(x)
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		if len(b) == 0 || b[len(b)-1] != '\n' {
			b = append(b, '\n')
		}
		return string(b), nil
	}
}

// indentJSON 校验并缩进原始 JSON 字节
func indentJSON(src []byte) (string, error) {
	src = bytes.TrimSpace(src)
	if len(src) == 0 {
		return "null\n", nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, src, "", "  "); err != nil {
		return "", err
	}
	if out.Len() == 0 || out.Bytes()[out.Len()-1] != '\n' {
		_ = out.WriteByte('\n')
	}
	return out.String(), nil
}

// colorizeJSON 对已缩进的 JSON 文本逐 token 轻量高亮：
// 键名用 AccentPrimary，数字用专用色，标点用暗色，字符串值保持默认
func colorizeJSON(s string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorJSONKey).Bold(true)
	numStyle := lipgloss.NewStyle().Foreground(ColorJSONNumber)
	punctStyle := lipgloss.NewStyle().Foreground(ColorJSONPunct)

	var b bytes.Buffer
	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == '"':
			token, next := readJSONString(s, i)
			// 向后看第一个非空白字符是否为冒号，是则为键名
			j := next
			for j < len(s) && unicode.IsSpace(rune(s[j])) {
				j++
			}
			if j < len(s) && s[j] == ':' {
				b.WriteString(keyStyle.Render(token))
			} else {
				b.WriteString(token)
			}
			i = next
		case ch == '{' || ch == '}' || ch == '[' || ch == ']' || ch == ',' || ch == ':':
			b.WriteString(punctStyle.Render(string(ch)))
			i++
		case ch == '-' || (ch >= '0' && ch <= '9'):
			j := readNumber(s, i)
			b.WriteString(numStyle.Render(s[i:j]))
			i = j
		default:
			b.WriteByte(ch)
			i++
		}
	}
	return b.String()
}

// readJSONString 从位置 i（指向起始引号）读取完整字符串 token
func readJSONString(s string, i int) (string, int) {
	j := i + 1
	escaped := false
	for j < len(s) {
		ch := s[j]
		if escaped {
			escaped = false
			j++
			continue
		}
		if ch == '\\' {
			escaped = true
			j++
			continue
		}
		if ch == '"' {
			j++
			break
		}
		j++
	}
	return s[i:j], j
}

// readNumber 返回从 i 开始的数字 token 的结束位置
func readNumber(s string, i int) int {
	j := i
	if j < len(s) && s[j] == '-' {
		j++
	}
	for j < len(s) {
		ch := s[j]
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == 'e' || ch == 'E' || ch == '+' || ch == '-' {
			j++
			continue
		}
		break
	}
	return j
}
