package respond

import (
	"regexp"
)

var (
	// データベースパスワードパターン（DSN内）
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

	// SMTP認証情報らしき token=... / password=... の形
	credentialPattern = regexp.MustCompile(`(?i)(password|passwd|token|secret)=\S+`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = credentialPattern.ReplaceAllString(msg, "$1=****")
	return msg
}
