package enums

import "fmt"

// BannerStyle selects the home-screen banner layout.
type BannerStyle string

const (
	BannerStyleSplit BannerStyle = "split"
	BannerStyleCover BannerStyle = "cover"
)

var validBannerStyles = []BannerStyle{BannerStyleSplit, BannerStyleCover}

// String implements fmt.Stringer.
func (b BannerStyle) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BannerStyle.
func (b BannerStyle) IsValid() bool {
	for _, candidate := range validBannerStyles {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBannerStyle converts raw input into a BannerStyle.
func ParseBannerStyle(value string) (BannerStyle, error) {
	for _, candidate := range validBannerStyles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid banner style %q", value)
}
