package util

import (
	"path/filepath"
	"strconv"
	"time"
)

// GenerateUniqueFilename 为上传的图片生成存储文件名，原始名加
// 纳秒时间戳，扩展名保留。同一用户的 avatars/、posts/ 目录下
// 重名上传不会互相覆盖。
func GenerateUniqueFilename(originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	base := filepath.Base(originalFilename)
	base = base[:len(base)-len(ext)]

	timestamp := strconv.FormatInt(time.Now().UnixNano(), 10)
	return base + "_" + timestamp + ext
}
