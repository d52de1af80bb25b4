package sim

// activeEffect is an Effect card's logic tag in flight during a sweep,
// with its remaining influence count.
type activeEffect struct {
	logic     LogicTag
	influence int
}

// buffAccum holds the transient Buff multipliers accumulated since the
// last artifact. Artifacts consume and reset it; it never crosses sweeps.
type buffAccum struct {
	rangeMul float64
	speedMul float64
	freqMul  float64
}

func newBuffAccum() buffAccum {
	return buffAccum{rangeMul: 1, speedMul: 1, freqMul: 1}
}

// artifactState is the per-card-instance runtime state.
type artifactState struct {
	cooldown float64 // frames until ready; drains scaled by frequency
}

// sweepInventory walks the ordered card list once, front to back,
// accumulating active effects and buff multipliers and deciding for each
// artifact whether and how it fires. Order is the combo language: cards
// only ever influence cards to their right.
func (s *Sim) sweepInventory(dt float64) {
	frames := dt * s.cfg.Engine.ReferenceTickRate

	// Sweep against a stable snapshot so administrative removal between
	// ticks can never leave the walk referencing a vanished card.
	cards := append(s.cardScratch[:0], s.player.Inventory...)
	s.cardScratch = cards

	effects := s.effectScratch[:0]
	buffs := newBuffAccum()

	for id := range s.persistWanted {
		delete(s.persistWanted, id)
	}

	for i := range cards {
		c := &cards[i]
		prevActive := len(effects)

		switch c.Kind {
		case KindStat:
			// Applied at grant; never part of the instruction stream.
			continue

		case KindBuff:
			buffs.rangeMul += c.Buff.RangePct / 100
			buffs.speedMul += c.Buff.SpeedPct / 100
			buffs.freqMul += c.Buff.FrequencyPct / 100
			// Buffs neither consume nor decay active effects.
			continue

		case KindEffect:
			count := s.executionCount(effects)
			for j := 0; j < count; j++ {
				effects = append(effects, activeEffect{logic: c.Effect.Logic, influence: c.Effect.Influence})
			}

		case KindArtifact:
			s.resolveArtifact(c, effects, buffs, frames)
			buffs = newBuffAccum()
		}

		effects = decayEffects(effects, prevActive, c.Kind)
	}

	s.effectScratch = effects[:0]
	s.cullPersistent()
}

// executionCount is the multiplier from currently active double-cast
// effects: x2 per copy, capped.
func (s *Sim) executionCount(effects []activeEffect) int {
	count := 1
	for _, e := range effects {
		if e.logic == LogicDoubleCast {
			count *= 2
			if count >= s.cfg.Effects.DoubleCastCap {
				return s.cfg.Effects.DoubleCastCap
			}
		}
	}
	return count
}

// resolveArtifact advances one artifact's cooldown and fires it if due.
// Persistent archetypes are instead re-issued whenever fewer live
// instances than requested exist.
func (s *Sim) resolveArtifact(c *Card, effects []activeEffect, buffs buffAccum, frames float64) {
	art := c.Artifact

	if art.Archetype.persistent() {
		want := s.executionCount(effects)
		s.persistWanted[c.ID] = want

		live := s.countPersistent(c.ID)
		for dup := live; dup < want; dup++ {
			s.fireArtifact(fireContext{
				cardID:   c.ID,
				artifact: *art,
				effects:  snapshotEffects(effects),
				rangeMul: buffs.rangeMul,
				speedMul: buffs.speedMul,
				dupIndex: dup,
				dupTotal: want,
			})
		}
		return
	}

	st := s.artifactTimers[c.ID]
	if st == nil {
		st = &artifactState{}
		s.artifactTimers[c.ID] = st
	}

	// Frequency accelerates the countdown, never the reset baseline.
	st.cooldown -= frames * buffs.freqMul
	if st.cooldown > 0 {
		return
	}

	count := s.executionCount(effects)
	ctx := fireContext{
		cardID:   c.ID,
		artifact: *art,
		effects:  snapshotEffects(effects),
		rangeMul: buffs.rangeMul,
		speedMul: buffs.speedMul,
		dupTotal: count,
	}

	s.fireArtifact(ctx)
	for dup := 1; dup < count; dup++ {
		repeat := ctx
		repeat.dupIndex = dup
		s.schedule(float64(dup)*s.cfg.Effects.MulticastStaggerFrames, repeat)
	}

	st.cooldown = art.CooldownFrames
}

// decayEffects applies per-card influence decay to the effects that were
// active before the current card was processed. Double-cast pays one
// influence for every artifact or effect it crosses; all other tags pay
// only when an artifact consumes them. Exhausted entries are dropped;
// negative influence is clamped to removal.
func decayEffects(effects []activeEffect, prevActive int, kind CardKind) []activeEffect {
	if kind != KindEffect && kind != KindArtifact {
		return effects
	}

	out := effects[:0]
	for i := range effects {
		e := effects[i]
		if i < prevActive {
			if e.logic == LogicDoubleCast || kind == KindArtifact {
				e.influence--
			}
		}
		if e.influence > 0 {
			out = append(out, e)
		}
	}
	return out
}

// snapshotEffects copies the multiset so scheduled repeats keep the
// effects valid at schedule time.
func snapshotEffects(effects []activeEffect) []activeEffect {
	if len(effects) == 0 {
		return nil
	}
	snap := make([]activeEffect, len(effects))
	copy(snap, effects)
	return snap
}

// countPersistent counts live instances owned by a card.
func (s *Sim) countPersistent(id CardID) int {
	n := 0
	for _, p := range s.projectiles {
		if !p.dead && p.OwnerCard == id {
			n++
		}
	}
	return n
}

// cullPersistent despawns persistent weapons whose owning card no longer
// requests them: removed cards and shrunken execution counts both reap
// their extra instances on the next sweep.
func (s *Sim) cullPersistent() {
	for _, p := range s.projectiles {
		if p.dead || !p.Archetype.persistent() {
			continue
		}
		if p.DupIndex >= s.persistWanted[p.OwnerCard] {
			p.dead = true
		}
	}
}

// dropArtifactState forgets runtime state for cards that left the
// inventory, keeping the timer map from growing without bound.
func (s *Sim) dropArtifactState(id CardID) {
	delete(s.artifactTimers, id)
}
