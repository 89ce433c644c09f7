// Package orchestration drives a multi-participant, turn-based dialogue
// session: participants take turns speaking (scripted, generated, or typed
// live) under a per-turn time budget, with interstitial content between
// rotations and a terminal branching decision.
//
// The Scheduler owns all session state and executes phases strictly
// sequentially; generation, input capture and typewriter reveals are
// suspension points that resolve to defined fallbacks on timeout and unblock
// immediately on skip or cancellation. Display and indicator sinks are pure
// side-effect receivers supplied by the caller.
package orchestration
