/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-06-28 00:21:55
 * @LastEditTime: 2026-10-14 17:31:40
 * @LastEditors: 安知鱼
 */
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/anzhiyu-c/anheyu-post/cmd/server"
	"github.com/anzhiyu-c/anheyu-post/pkg/config"
	"github.com/anzhiyu-c/anheyu-post/web"
)

func main() {
	// 解析命令行参数
	var configPath string
	var exportAssetsDir string
	flag.StringVar(&configPath, "config", config.DefaultConfigPath, "配置文件路径")
	flag.StringVar(&exportAssetsDir, "export-assets", "", "导出静态资源到指定目录（配合 Static.Dir 自定义样式）")
	flag.Parse()

	// 如果指定了导出静态资源的目录，则导出并退出
	if exportAssetsDir != "" {
		if err := exportAssets(exportAssetsDir); err != nil {
			log.Fatalf("导出静态资源失败: %v", err)
		}
		log.Printf("✅ 静态资源已成功导出到: %s", exportAssetsDir)
		log.Println("提示：修改导出的文件后，在配置中将 Static.Dir 指向该目录")
		return
	}

	if err := run(configPath); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

// run 构建并运行应用，返回前总会停止后台组件并释放连接
func run(configPath string) error {
	// 调用位于 cmd/server 包中的 NewApp 函数来构建整个应用
	app, cleanup, err := server.NewApp(web.Content, configPath)
	if err != nil {
		return fmt.Errorf("应用初始化失败: %w", err)
	}
	defer cleanup()
	defer app.Stop()

	app.PrintBanner()

	if err := app.Run(); err != nil {
		return fmt.Errorf("应用运行失败: %w", err)
	}
	return nil
}

// exportAssets 将嵌入的静态资源导出到指定目录
func exportAssets(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	subFS, err := fs.Sub(web.Content, "static")
	if err != nil {
		return fmt.Errorf("获取嵌入文件系统失败: %w", err)
	}

	var fileCount int
	err = fs.WalkDir(subFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		targetPath := filepath.Join(outputDir, path)
		if d.IsDir() {
			return os.MkdirAll(targetPath, 0755)
		}

		data, err := fs.ReadFile(subFS, path)
		if err != nil {
			return fmt.Errorf("读取文件 %s 失败: %w", path, err)
		}
		if err := os.WriteFile(targetPath, data, 0644); err != nil {
			return fmt.Errorf("写入文件 %s 失败: %w", targetPath, err)
		}

		fileCount++
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("📦 共导出 %d 个文件", fileCount)
	return nil
}
