/*
 * @Description: 构建版本信息
 * @Author: 安知鱼
 * @Date: 2025-07-20 10:12:40
 * @LastEditTime: 2026-10-18 10:06:52
 * @LastEditors: 安知鱼
 */
package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

// 通过 ldflags 注入，例如 -X .../internal/pkg/version.Version=v1.0.0
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

const unknown = "unknown"

// BuildInfo 是 /api/version 返回与启动横幅展示的构建信息
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

var (
	vcsOnce sync.Once
	vcsInfo BuildInfo
)

// readVCS 只读取一次 debug.BuildInfo 中的模块版本与 vcs 设置
func readVCS() BuildInfo {
	vcsOnce.Do(func() {
		vcsInfo = BuildInfo{Version: "dev", Commit: unknown, Date: unknown}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if v := info.Main.Version; v != "" && v != "(devel)" {
			vcsInfo.Version = v
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				vcsInfo.Commit = s.Value
				if len(s.Value) > 7 {
					vcsInfo.Commit = s.Value[:7]
				}
			case "vcs.time":
				vcsInfo.Date = s.Value
				if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
					vcsInfo.Date = t.Format("2006-01-02 15:04:05")
				}
			}
		}
	})
	return vcsInfo
}

// GetBuildInfo 合并 ldflags 注入值与编译器记录的 vcs 信息，注入值优先
func GetBuildInfo() BuildInfo {
	info := readVCS()
	if Version != "" {
		info.Version = Version
	}
	if Commit != "" {
		info.Commit = Commit
	}
	if Date != "" {
		info.Date = Date
	}
	info.GoVersion = runtime.Version()
	return info
}

// String 返回形如 "v1.0.0, commit abc1234, built at 2026-01-01 00:00:00" 的版本描述
func (b BuildInfo) String() string {
	parts := []string{b.Version}
	if b.Commit != unknown {
		parts = append(parts, "commit "+b.Commit)
	}
	if b.Date != unknown {
		parts = append(parts, "built at "+b.Date)
	}
	return strings.Join(parts, ", ")
}
