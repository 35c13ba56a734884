package patterns

import "testing"

func TestShouldEncrypt_SensitiveNames(t *testing.T) {
	sensitive := []string{
		"API_KEY",
		"SECRET_TOKEN",
		"DATABASE_PASSWORD",
		"PRIVATE_KEY",
		"AUTH_SECRET",
	}
	for _, key := range sensitive {
		if !ShouldEncrypt(key) {
			t.Errorf("ShouldEncrypt(%q) = false, want true", key)
		}
	}
}

func TestShouldEncrypt_PlainNames(t *testing.T) {
	plain := []string{
		"DATABASE_URL",
		"APP_NAME",
		"DEBUG",
		"PORT",
	}
	for _, key := range plain {
		if ShouldEncrypt(key) {
			t.Errorf("ShouldEncrypt(%q) = true, want false", key)
		}
	}
}

func TestShouldEncrypt_CaseInsensitive(t *testing.T) {
	if !ShouldEncrypt("github_token") {
		t.Error("Expected lowercase names to match")
	}
	if !ShouldEncrypt("StripeApiKey") {
		t.Error("Expected mixed-case names to match")
	}
}

func TestShouldEncrypt_SubstringMatch(t *testing.T) {
	// Matching is plain containment, no word boundaries. MONKEY_COUNT
	// contains KEY and is flagged; that false positive is accepted behavior.
	if !ShouldEncrypt("MONKEY_COUNT") {
		t.Error("Expected substring containment to match inside words")
	}
}
