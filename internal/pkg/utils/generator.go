package utils

import (
	"fmt"
	"strings"
	"time"

	"mindfulness-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateFileName builds a unique object name such as
// reports/phq-9_<assessmentID>_20240102_150405.000000000.pdf
func GenerateFileName(folder, prefix, identifier, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s/%s_%s_%s%s", folder, prefix, identifier, timestamp, fileExtension)
}
