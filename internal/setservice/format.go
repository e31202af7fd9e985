package setservice

import (
	"fmt"
	"strings"
	"time"
)

// FormatSetInfo 返回集合信息的格式化字符串表示
func FormatSetInfo(info SetInfo) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Set: %s\n", info.Name))
	sb.WriteString(fmt.Sprintf("Size: %d\n", info.Size))
	sb.WriteString(fmt.Sprintf("Content: %s\n", info.Rendered))
	if !info.CreatedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Created: %s\n", formatTimeAgo(info.CreatedAt)))
	}

	return sb.String()
}

// FormatOpRecord 返回操作历史记录的格式化字符串表示
func FormatOpRecord(rec OpRecord) string {
	return fmt.Sprintf("[%s] %s -> %s (%s)",
		shortID(rec.ID), rec.Command, rec.Outcome, formatTimeAgo(rec.At))
}

// shortID 截取uuid的前8位用于展示
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatTimeAgo 将时间格式化为人类可读的"多久之前"字符串
func formatTimeAgo(t time.Time) string {
	duration := time.Since(t)

	seconds := int(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%d seconds ago", seconds)
	}

	minutes := int(duration.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d minutes ago", minutes)
	}

	hours := int(duration.Hours())
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := int(duration.Hours() / 24)
	return fmt.Sprintf("%d days ago", days)
}
