package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Product is the user agent product token sent with every catalog request.
const Product = "shopctl"

// ParseVersion parses a shopctl version as semver while ignoring
// pre-release and build metadata.
func ParseVersion(raw string) (*semver.Version, error) {
	core := strings.SplitN(strings.SplitN(raw, "+", 2)[0], ExtraSep, 2)[0]
	v, err := semver.NewVersion(core)
	if err != nil {
		return nil, fmt.Errorf("unexpected error parsing shopctl version %q", raw)
	}
	return v, nil
}

// UserAgent returns the User-Agent header value for the running build.
// Unparsable versions are reported as "dev".
func UserAgent() string {
	v, err := ParseVersion(GetVersion())
	if err != nil {
		return Product + "/dev"
	}
	return fmt.Sprintf("%s/%s", Product, v.String())
}
