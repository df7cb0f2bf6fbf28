package listing

import "sync/atomic"

// Guard implements last-request-wins for refreshable views. A fetch
// calls Begin before going upstream and checks Current (or uses Commit)
// before applying its result; if a newer fetch started in the meantime,
// the older result is dropped instead of overwriting fresher data.
//
// This is not request cancellation: the older call still completes over
// the wire, its result is just never applied.
type Guard struct {
	gen atomic.Uint64
}

// Begin marks the start of a new fetch and returns its generation token.
// Starting a fetch invalidates every earlier in-flight fetch.
func (g *Guard) Begin() uint64 {
	return g.gen.Add(1)
}

// Current reports whether the token still belongs to the newest fetch.
func (g *Guard) Current(token uint64) bool {
	return g.gen.Load() == token
}

// Commit applies fn only when token is still current, and reports
// whether it ran.
func (g *Guard) Commit(token uint64, fn func()) bool {
	if !g.Current(token) {
		return false
	}
	fn()
	return true
}
