package utils

import (
	"strconv"
	"strings"
	"sync"

	"github.com/holdno/snowFlakeByGo"
)

var (
	// IdWorker 全局唯一id生成器实例
	idWorker *snowFlakeByGo.Worker
	idOnce   sync.Once
)

func SetupIDWorker(clusterID int64) {
	idOnce.Do(func() {
		idWorker, _ = snowFlakeByGo.NewWorker(clusterID)
	})
}

func GenSpecID() int64 {
	SetupIDWorker(1)
	return idWorker.GetId()
}

func GenSpecIDStr() string {
	return strconv.FormatInt(GenSpecID(), 10)
}

// HasPrefixFold reports whether s begins with prefix, ignoring case.
func HasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// Abbreviate cuts s to at most n runes for log lines.
func Abbreviate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
