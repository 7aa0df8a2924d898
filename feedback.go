package scrollbar

import (
	"errors"
	"log"

	"github.com/agiangrant/scrollbar/internal/haptics"
)

// Feedback produces the tactile pulse played when a dragged handle reaches
// either end of the track.
//
//go:generate mockgen -destination=feedback_mock.go -package=$GOPACKAGE github.com/agiangrant/scrollbar Feedback
type Feedback interface {
	// Prepare is called when a drag begins so the first pulse has no
	// latency.
	Prepare()

	// Pulse fires one light impact.
	Pulse()
}

// NoFeedback returns a Feedback that does nothing.
func NoFeedback() Feedback {
	return haptics.Nop{}
}

// FeedbackFromConfig loads the native haptic generator named in cfg. When
// no library is configured, or it cannot be loaded, it returns a no-op
// Feedback and logs why.
func FeedbackFromConfig(cfg HapticsConfig) Feedback {
	if cfg.Library == "" {
		return NoFeedback()
	}

	n, err := haptics.Open(cfg.Library, cfg.Symbol, haptics.ImpactLight)
	if err != nil {
		if errors.Is(err, haptics.ErrUnavailable) && !haptics.Supported() {
			log.Printf("scrollbar: no haptic hardware on this platform: %v", err)
		} else {
			log.Printf("scrollbar: haptics disabled: %v", err)
		}
		return NoFeedback()
	}
	return n
}
