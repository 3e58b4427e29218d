package nodelist

import (
	"fmt"
	"strings"
)

// DumpChain 以v1-v2-v3的形式输出链表内容，用于日志与测试，
// 空表返回空串
func DumpChain[T any](l *NodeList[T]) string {
	if l.IsEmpty() {
		return ""
	}
	sb := strings.Builder{}
	for node := l.beforeStart.next; node != &l.pastEnd; node = node.next {
		if sb.Len() > 0 {
			sb.WriteRune('-')
		}
		sb.WriteString(fmt.Sprintf("%v", node.Value))
	}
	return sb.String()
}
