/*
 * @Description: ID 生成和解码服务
 * @Author: 安知鱼
 * @Date: 2025-06-17 20:38:15
 * @LastEditTime: 2026-10-12 15:26:40
 * @LastEditors: 安知鱼
 */
package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand"
	"sync"

	"github.com/sqids/sqids-go"
)

// sqidsEncoder 是用于生成和解码短 ID 的 Sqids 编码器实例。
var (
	sqidsEncoder *sqids.Sqids
	sqidsMu      sync.RWMutex
)

// DefaultAlphabet 是默认的字母表
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EntityTypePost 文章实体的类型标识
const EntityTypePost uint64 = 1

// GenerateRandomSeed 生成一个随机的 16 字节种子（返回 32 字符的十六进制字符串）
func GenerateRandomSeed() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("生成随机种子失败: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// shuffleAlphabet 使用种子打乱字母表
func shuffleAlphabet(seed string) string {
	var seedInt int64
	for i, c := range seed {
		seedInt += int64(c) * int64(i+1)
	}

	// 使用确定性随机数生成器
	r := mrand.New(mrand.NewSource(seedInt))

	alphabet := []rune(DefaultAlphabet)
	r.Shuffle(len(alphabet), func(i, j int) {
		alphabet[i], alphabet[j] = alphabet[j], alphabet[i]
	})

	return string(alphabet)
}

// InitSqidsEncoder 初始化 Sqids 编码器（使用默认字母表）
func InitSqidsEncoder() error {
	return InitSqidsEncoderWithSeed("")
}

// InitSqidsEncoderWithSeed 使用种子初始化 Sqids 编码器。
// 如果 seed 为空字符串，则使用默认字母表
func InitSqidsEncoderWithSeed(seed string) error {
	alphabet := DefaultAlphabet
	if seed != "" {
		alphabet = shuffleAlphabet(seed)
	}

	s, err := sqids.New(
		sqids.Options{
			MinLength: 4,
			Alphabet:  alphabet,
		},
	)
	if err != nil {
		return fmt.Errorf("初始化 Sqids 编码器失败: %w", err)
	}
	sqidsMu.Lock()
	sqidsEncoder = s
	sqidsMu.Unlock()
	return nil
}

func encoder() (*sqids.Sqids, error) {
	sqidsMu.RLock()
	defer sqidsMu.RUnlock()
	if sqidsEncoder == nil {
		return nil, fmt.Errorf("Sqids 编码器未初始化")
	}
	return sqidsEncoder, nil
}

// GeneratePublicID 将内部数字 ID 编码为对外暴露的短 ID
func GeneratePublicID(id uint64, entityType uint64) (string, error) {
	enc, err := encoder()
	if err != nil {
		return "", err
	}

	publicID, err := enc.Encode([]uint64{id, entityType})
	if err != nil {
		return "", fmt.Errorf("编码公共ID失败: %w", err)
	}
	return publicID, nil
}

// DecodePublicID 解码公共 ID
func DecodePublicID(publicID string) (id uint64, entityType uint64, err error) {
	enc, err := encoder()
	if err != nil {
		return 0, 0, err
	}

	numbers := enc.Decode(publicID)
	if len(numbers) != 2 {
		return 0, 0, fmt.Errorf("无法从公共ID解码出预期数量的数字(期望2个，得到%d个)", len(numbers))
	}

	// Sqids 对同一组数字只有一个规范编码，拒绝非规范输入
	canonical, err := enc.Encode(numbers)
	if err != nil || canonical != publicID {
		return 0, 0, fmt.Errorf("公共ID '%s' 不是规范编码", publicID)
	}

	return numbers[0], numbers[1], nil
}
