package orchestration

import (
	"context"

	"github.com/koscakluka/dialogue-core/core/events"
)

// runInterstitial shows the next interstitial item, cycling through the
// configured set, for the dwell time. Independent of participant context.
func (s *Scheduler) runInterstitial(ctx context.Context) {
	s.mu.Lock()
	s.session.phase = PhaseInterstitial
	index := s.session.interstitialIndex
	s.session.interstitialIndex = (index + 1) % len(s.config.Interstitials)
	s.mu.Unlock()

	text := s.config.Interstitials[index]
	s.display.SetText(s.config.InterstitialSlotID, text)
	s.emit(events.NewInterstitialShown(text, index))

	_ = sleepFor(ctx, s.clock, s.config.InterstitialDwell)

	s.display.Clear(s.config.InterstitialSlotID)
	s.emit(events.NewInterstitialCleared())
}
