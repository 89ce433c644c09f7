package events

const (
	// KindInterstitialShown identifies interstitial content being displayed.
	KindInterstitialShown Kind = "interstitial.shown"
	// KindInterstitialCleared identifies the interstitial dwell ending.
	KindInterstitialCleared Kind = "interstitial.cleared"
)

// InterstitialShown marks interstitial content displayed between rotations.
type InterstitialShown struct {
	Base
	Text  string
	Index int
}

// NewInterstitialShown creates an interstitial shown event.
func NewInterstitialShown(text string, index int) InterstitialShown {
	return InterstitialShown{Base: NewBase(KindInterstitialShown), Text: text, Index: index}
}

// InterstitialCleared marks the interstitial dwell ending.
type InterstitialCleared struct{ Base }

// NewInterstitialCleared creates an interstitial cleared event.
func NewInterstitialCleared() InterstitialCleared {
	return InterstitialCleared{Base: NewBase(KindInterstitialCleared)}
}
