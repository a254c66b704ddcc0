package youtube

import "strings"

// entityReplacer covers the fixed set of HTML entities YouTube embeds in
// caption fragments. Anything outside this table is left as-is.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&#x27;", "'",
	"&#x2F;", "/",
	"&#x60;", "`",
	"&#x3D;", "=",
)

// DecodeEntities replaces every occurrence of the known caption entities with
// their literal character. Pure and total: text without entities comes back
// unchanged.
func DecodeEntities(s string) string {
	return entityReplacer.Replace(s)
}
