// Package notifier delivers activation links to newly signed-up users.
package notifier

import (
	"net/url"
	"strings"
)

// ActivationURL builds the link a user follows to redeem token.
func ActivationURL(appURL, token string) string {
	return strings.TrimRight(appURL, "/") + "/auth/signup/activate/" + url.PathEscape(token)
}
