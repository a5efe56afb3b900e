// Package templates carries the email templates compiled into the
// binary, so rendering does not depend on the working directory.
package templates

import "embed"

//go:embed quote_email.html
var FS embed.FS
