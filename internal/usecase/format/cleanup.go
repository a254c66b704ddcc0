package format

import (
	"regexp"
	"strings"
)

// The normalizer is a fixed sequence of string rewrites over the combined
// completion text. Rule order matters: later rules assume earlier ones
// already ran. It is cosmetic only and makes no attempt to validate markdown.
var (
	// headers get a blank line above and below
	reHeaderAbove = regexp.MustCompile("([^\n])\n(#{1,6}[ \t])")
	reHeaderBelow = regexp.MustCompile("(?m)^(#{1,6}[ \t][^\n]*)\n([^\n])")

	// whitespace around bullet list lines
	reBulletTrim = regexp.MustCompile(`(?m)^[ \t]*([*-][ \t][^\n]*?)[ \t]*$`)

	// runs of blank lines
	reManyNewlines = regexp.MustCompile(`\n{3,}`)

	// spacing around sentence punctuation
	reSpaceBeforePunct  = regexp.MustCompile(`[ \t]+([.,!?:;])`)
	reNoSpaceAfterPunct = regexp.MustCompile(`([.,!?:;])([^\s.,!?:;/])`)

	// runs of spaces and tabs
	reSpaceRun = regexp.MustCompile(`[ \t]+`)

	// spaces touching newlines
	reSpaceBeforeNL = regexp.MustCompile(`[ \t]+\n`)
	reSpaceAfterNL  = regexp.MustCompile(`\n[ \t]+`)

	// bullets and fenced-code openers glued to preceding text
	reInlineFence  = regexp.MustCompile("([^\n])(```)")
	reInlineBullet = regexp.MustCompile(`([.:;!?])[ \t]+([*-][ \t])`)

	// per-line trim
	reLeadingWS  = regexp.MustCompile(`(?m)^[ \t]+`)
	reTrailingWS = regexp.MustCompile(`(?m)[ \t]+$`)
)

// Normalize cleans up the whitespace and markdown of combined completion text.
func Normalize(text string) string {
	// 1. blank line above and below markdown headers
	text = reHeaderAbove.ReplaceAllString(text, "$1\n\n$2")
	text = reHeaderBelow.ReplaceAllString(text, "$1\n\n$2")

	// 2. trim whitespace on list item lines
	text = reBulletTrim.ReplaceAllString(text, "$1")

	// 3. collapse 3+ consecutive newlines to exactly 2
	text = reManyNewlines.ReplaceAllString(text, "\n\n")

	// 4. no whitespace before punctuation, exactly one space after
	text = reSpaceBeforePunct.ReplaceAllString(text, "$1")
	text = reNoSpaceAfterPunct.ReplaceAllString(text, "$1 $2")

	// 5. collapse space/tab runs
	text = reSpaceRun.ReplaceAllString(text, " ")

	// 6. strip spaces adjacent to newlines
	text = reSpaceBeforeNL.ReplaceAllString(text, "\n")
	text = reSpaceAfterNL.ReplaceAllString(text, "\n")

	// 7. bullets and code fences start their own line
	text = reInlineFence.ReplaceAllString(text, "$1\n$2")
	text = reInlineBullet.ReplaceAllString(text, "$1\n$2")

	// 8. trim every line, then trim blank lines at the document edges
	text = reLeadingWS.ReplaceAllString(text, "")
	text = reTrailingWS.ReplaceAllString(text, "")
	return strings.Trim(text, "\n")
}
