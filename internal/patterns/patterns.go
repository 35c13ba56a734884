package patterns

import "strings"

// sensitiveTokens are the substrings that mark a variable name as likely to
// hold a secret. Matching is plain containment on the uppercased name; no
// word boundaries are applied, so e.g. MONKEY_COUNT matches on "KEY". That
// looseness is deliberate: encrypting a harmless value costs nothing, while
// missing a real secret does.
var sensitiveTokens = []string{
	"KEY",
	"SECRET",
	"PASSWORD",
	"TOKEN",
	"PRIVATE",
	"AUTH",
	"CREDENTIAL",
}

// ShouldEncrypt reports whether an environment variable name looks like it
// holds a sensitive value and should be stored encrypted.
//
//	ShouldEncrypt("API_KEY")      // true
//	ShouldEncrypt("github_token") // true
//	ShouldEncrypt("DATABASE_URL") // false
//	ShouldEncrypt("PORT")         // false
func ShouldEncrypt(key string) bool {
	upper := strings.ToUpper(key)
	for _, token := range sensitiveTokens {
		if strings.Contains(upper, token) {
			return true
		}
	}
	return false
}
