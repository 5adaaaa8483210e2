package util

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// GenerateUniqueFilename 为上传的帖子图片生成不重复的文件名，保留原始扩展名
func GenerateUniqueFilename(originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	base := strings.TrimSuffix(filepath.Base(originalFilename), ext)

	return fmt.Sprintf("%s_%d%s", base, time.Now().UnixNano(), ext)
}
