package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateFileSize rejects uploads above maxMB megabytes. Video and reel
// files are exempted by callers passing maxMB <= 0.
func ValidateFileSize(size int64, maxMB int64) error {
	if maxMB <= 0 {
		return nil
	}
	limit := maxMB * 1024 * 1024
	if size > limit {
		return fmt.Errorf("file too large: size should not exceed %d MB", maxMB)
	}
	return nil
}

// AllowedResumeExtensions for job application uploads
var AllowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ValidateResumeExtension checks the file name against the resume whitelist
func ValidateResumeExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !AllowedResumeExtensions[ext] {
		return fmt.Errorf("unsupported resume format %q: must be pdf, doc or docx", ext)
	}
	return nil
}

// TruncateUserAgent bounds a client user-agent string before it is stored
// on a view log row.
func TruncateUserAgent(ua string) string {
	return TruncateString(ua, 300)
}
