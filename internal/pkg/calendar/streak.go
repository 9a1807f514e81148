package calendar

// CurrentStreak counts consecutive checked-in days ending today. A streak
// that ended yesterday is still current, since today can still be checked in.
func CurrentStreak(checkIns []Date, today Date) int {
	set := make(map[Date]struct{}, len(checkIns))
	for _, d := range checkIns {
		set[d] = struct{}{}
	}

	day := today
	if _, ok := set[day]; !ok {
		day = day.AddDays(-1)
	}

	streak := 0
	for {
		if _, ok := set[day]; !ok {
			return streak
		}
		streak++
		day = day.AddDays(-1)
	}
}

// LongestStreak returns the longest run of consecutive checked-in days
func LongestStreak(checkIns []Date) int {
	set := make(map[Date]struct{}, len(checkIns))
	for _, d := range checkIns {
		set[d] = struct{}{}
	}

	longest := 0
	for d := range set {
		// only start counting at the first day of a run
		if _, ok := set[d.AddDays(-1)]; ok {
			continue
		}
		n := 0
		for cur := d; ; cur = cur.AddDays(1) {
			if _, ok := set[cur]; !ok {
				break
			}
			n++
		}
		if n > longest {
			longest = n
		}
	}
	return longest
}
