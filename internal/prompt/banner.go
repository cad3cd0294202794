package prompt

const (
	// BannerLine is repeated to draw the growing YES banner.
	BannerLine = "*** Y E S ***"
	// MaxBannerLines caps the banner height however often the user declines.
	MaxBannerLines = 5

	RetryMessage       = "No teleported to a new spot! Try again."
	CorrectiveMessage  = "Please type yes or no."
	CelebrationMessage = "YAY — you said YES! Thank you! <3"
)

// BannerLines returns how many banner lines to print for intensity,
// clamped to [1, MaxBannerLines].
func BannerLines(intensity int) int {
	return max(1, min(intensity, MaxBannerLines))
}
