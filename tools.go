//go:build tools

package commons

import (
	_ "golang.org/x/tools/cmd/stringer"
)
