package sim

// pendingAction is a delayed artifact activation, queued by multicast
// stagger. Actions fire in submission order once due.
type pendingAction struct {
	remaining float64 // frames until the activation fires
	ctx       fireContext
}

// schedule queues an activation to fire after the given frame delay.
func (s *Sim) schedule(delayFrames float64, ctx fireContext) {
	s.pending = append(s.pending, pendingAction{remaining: delayFrames, ctx: ctx})
}

// tickPending counts every queued activation down and fires the due ones.
// The queue is drained front to back so same-tick activations keep their
// submission order.
func (s *Sim) tickPending(dt float64) {
	frames := dt * s.cfg.Engine.ReferenceTickRate

	keep := s.pending[:0]
	for i := range s.pending {
		a := s.pending[i]
		a.remaining -= frames
		if a.remaining <= 0 {
			s.fireArtifact(a.ctx)
			continue
		}
		keep = append(keep, a)
	}
	s.pending = keep
}
