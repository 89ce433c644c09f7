// Package events defines the typed orchestration event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - session.*
//   - turn_state.*
//   - line.*
//   - capture.*
//   - interstitial.*
//   - decision.*
//
// Semantics used across the package:
//
//   - Updated: mutable point-in-time snapshot that can change over time.
//   - Final: terminal immutable text/state for the current turn phase.
//   - Resolved: the single outcome that closed a pending wait.
//
// session events
//
//   - SessionStarted (session.started): the scheduler began driving phases.
//   - SessionEnded (session.ended): terminal phase reached or the run was
//     cancelled; includes completed round count.
//
// turn_state events
//
//   - TurnStarted (turn_state.started): a participant's turn became current.
//   - TurnCountdown (turn_state.countdown): remaining time in the current
//     turn, emitted roughly once per second.
//   - TurnEnded (turn_state.ended): the current turn ended; includes the end
//     reason (completed, skipped or cancelled).
//
// line events
//
//   - LineRevealUpdated (line.reveal_updated): mutable partial line snapshot
//     produced by the typewriter reveal.
//   - LineFinal (line.final): the fully revealed line for the current turn.
//
// capture events
//
//   - CaptureOpened (capture.opened): an input window opened for a user
//     participant.
//   - CaptureDraftUpdated (capture.draft_updated): mutable draft snapshot.
//   - CaptureResolved (capture.resolved): the window closed; includes the
//     captured text and the completion reason.
//
// interstitial events
//
//   - InterstitialShown (interstitial.shown): interstitial content displayed
//     between rotations.
//   - InterstitialCleared (interstitial.cleared): interstitial dwell ended.
//
// decision events
//
//   - DecisionPrompted (decision.prompted): the session is awaiting a branch
//     choice.
//   - DecisionResolved (decision.resolved): a branch was chosen; includes its
//     narration text.
package events
