package datetime

// ResolveLocal finds the offsets that map the reading to an instant. The
// rules are probed a day before, at and a day after the reading taken as
// UTC; a candidate offset is valid when the rules report it at the
// instant it produces. At most one transition is expected in that window.
func (z RegionZone) ResolveLocal(dt LocalDateTime, preferred *UtcOffset) (ZonedDateTime, error) {
	naive := dt.toEpochSeconds(ZeroOffset)

	early, err := z.offsetAtSeconds(naive - secondsPerDay)
	if err != nil {
		return ZonedDateTime{}, err
	}
	mid, err := z.offsetAtSeconds(naive)
	if err != nil {
		return ZonedDateTime{}, err
	}
	late, err := z.offsetAtSeconds(naive + secondsPerDay)
	if err != nil {
		return ZonedDateTime{}, err
	}

	candidates := []UtcOffset{early}
	for _, o := range []UtcOffset{mid, late} {
		if o != candidates[len(candidates)-1] && o != candidates[0] {
			candidates = append(candidates, o)
		}
	}

	valid := make([]UtcOffset, 0, len(candidates))
	for _, c := range candidates {
		actual, err := z.offsetAtSeconds(naive - int64(c.totalSeconds))
		if err != nil {
			return ZonedDateTime{}, err
		}
		if actual == c {
			valid = append(valid, c)
		}
	}

	switch len(valid) {
	case 1:
		return ZonedDateTime{DateTime: dt, Offset: valid[0], Zone: z}, nil
	case 0:
		return z.resolveGap(dt, naive, early)
	}

	if preferred != nil {
		for _, o := range valid {
			if o == *preferred {
				return ZonedDateTime{DateTime: dt, Offset: o, Zone: z}, nil
			}
		}
	}
	// the largest offset gives the earliest instant
	best := valid[0]
	for _, o := range valid[1:] {
		if o.totalSeconds > best.totalSeconds {
			best = o
		}
	}
	return ZonedDateTime{DateTime: dt, Offset: best, Zone: z}, nil
}

// resolveGap moves a reading that falls into a gap forward by the length
// of the gap. The moment is the reading at the offset before the gap.
func (z RegionZone) resolveGap(dt LocalDateTime, naive int64, before UtcOffset) (ZonedDateTime, error) {
	moment := naive - int64(before.totalSeconds)
	after, err := z.offsetAtSeconds(moment)
	if err != nil {
		return ZonedDateTime{}, err
	}
	transition := moment + int64(after.totalSeconds) - naive
	if transition <= 0 || transition > secondsPerDay {
		return ZonedDateTime{}, arithmetic(nil,
			"anomalously long timezone transition gap reported for %s at %s: %ds", z.id, dt, transition)
	}
	shifted, err := dt.plusSeconds(transition)
	if err != nil {
		return ZonedDateTime{}, asArithmetic(err, "resolving %s in %s", dt, z.id)
	}
	return ZonedDateTime{DateTime: shifted, Offset: after, Zone: z}, nil
}
