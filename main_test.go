package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunReturnsInitError(t *testing.T) {
	// 目录不是合法的配置文件，run 应返回错误而不是直接退出进程
	err := run(t.TempDir())
	assert.ErrorContains(t, err, "应用初始化失败")
}
