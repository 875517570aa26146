/*
 * @Description: 博客文章提交模型
 * @Author: 安知鱼
 * @Date: 2026-10-12 11:02:16
 * @LastEditTime: 2026-10-12 11:02:16
 * @LastEditors: 安知鱼
 */
package model

import "time"

// Post 是一次成功提交所生成的文章记录。
// 写入仓储后不再修改，仓储按值保存和返回。
type Post struct {
	ID        uint64    `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Photo     string    `json:"photo"` // data:<mime>;base64,<payload>
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// PostDTO 是 JSON 接口返回给前端的文章结构，ID 使用公共ID
type PostDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Photo     string    `json:"photo"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
