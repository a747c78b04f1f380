package generate

import (
	"strings"

	"postcraft/internal/model"
	"postcraft/internal/platform"
)

// SuggestCTA selects a call-to-action from the platform's pool. Entries may
// reference {topic}, which is substituted before returning.
func SuggestCTA(id model.Platform, topic string, pick Picker) string {
	cta := pickOne(pick, platform.Lookup(id).CTAPool)
	return strings.ReplaceAll(cta, "{topic}", topic)
}
