package utils

import (
	"fmt"
	"path/filepath"
	"sefasevim-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateImageObjectName mirrors the admin panel's naming scheme:
// images/{type}-{unix timestamp}.{original extension}.
func GenerateImageObjectName(imageType, originalFileName string) string {
	extension := strings.ToLower(filepath.Ext(originalFileName))
	return fmt.Sprintf("images/%s-%d%s", imageType, time.Now().Unix(), extension)
}
