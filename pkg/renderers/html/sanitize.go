package html

import (
	"fmt"
	stdhtml "html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-houseprint/pkg/document"
)

// PhotoPolicy returns the sanitizer applied to photo markup: a single img
// element with an absolute http(s) source.
func PhotoPolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowImages()
	policy.AllowAttrs("class").Matching(regexp.MustCompile(`^photo$`)).OnElements("img")
	policy.AllowURLSchemes("http", "https")
	policy.RequireParseableURLs(true)
	return policy
}

// photoHTML returns sanitized img markup for src, or "" when the URL does not
// survive the policy.
func photoHTML(policy *bluemonday.Policy, src string) string {
	src = strings.TrimSpace(src)
	if src == "" || policy == nil {
		return ""
	}
	raw := fmt.Sprintf(`<img src="%s" alt="%s" class="photo">`, stdhtml.EscapeString(src), document.PhotoAlt)
	clean := policy.Sanitize(raw)
	if !strings.Contains(clean, "src=") {
		return ""
	}
	return clean
}
