// Package style 提供多种样式化输出功能
package style

import "github.com/charmbracelet/lipgloss"

// 定义一套颜色，方便管理和修改
const (
	// 主题强调色，用于吸引注意力的元素，如表头
	ColorAccentPrimary = lipgloss.Color("#33A1FF")

	// 主要文本颜色，用于普通的数据行内容
	ColorText = lipgloss.Color("#E4E4E4")

	// 边框颜色，用于表格轮廓
	ColorBorder = lipgloss.Color("#444444")

	// JSON 高亮颜色
	ColorJSONKey    = lipgloss.Color("#55BCF4") // 键名
	ColorJSONNumber = lipgloss.Color("#D4EC19") // 数字
	ColorJSONPunct  = lipgloss.Color("#6B7280") // 标点
)
