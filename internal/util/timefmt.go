package util

import (
	"fmt"
	"time"
)

// 展示时间相关的纯函数，各个标签页共用同一套阈值

// ParseTimestamp 解析目录数据里的本地时间戳（无时区后缀）
func ParseTimestamp(value string) (time.Time, error) {
	return time.ParseInLocation(TimestampFormat, value, time.Local)
}

// IsOverdue 截止时间严格早于 now 才算过期，相等不算
func IsOverdue(dueDate string, now time.Time) bool {
	due, err := ParseTimestamp(dueDate)
	if err != nil {
		return false
	}
	return due.Before(now)
}

// RelativeTime 分桶格式化：<60m → "Nm ago"，<24h → "Nh ago"，
// <7d → "Nd ago"，更久远的直接给日期
func RelativeTime(timestamp string, now time.Time) string {
	t, err := ParseTimestamp(timestamp)
	if err != nil {
		return timestamp
	}

	diff := now.Sub(t)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	if mins < 60 {
		return fmt.Sprintf("%dm ago", mins)
	}
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	if days < 7 {
		return fmt.Sprintf("%dd ago", days)
	}
	return t.Format(DateDisplayFormat)
}

// DueLabel 作业列表的截止时间标签（短日期 + 过期标记）
func DueLabel(dueDate string, now time.Time) (string, bool) {
	due, err := ParseTimestamp(dueDate)
	if err != nil {
		return dueDate, false
	}
	return due.Format(DueShortFormat), due.Before(now)
}

// DueLabelWithTime 测验列表的截止时间标签，带具体时刻
func DueLabelWithTime(dueDate string, now time.Time) (string, bool) {
	due, err := ParseTimestamp(dueDate)
	if err != nil {
		return dueDate, false
	}
	return due.Format(DueLongFormat), due.Before(now)
}
