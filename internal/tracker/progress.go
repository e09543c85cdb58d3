package tracker

import "github.com/julianstephens/streak/internal/models"

// FrequencyProgress counts habits of one frequency
type FrequencyProgress struct {
	Total     int
	Completed int
}

// Progress summarizes how much of the current periods is done
type Progress struct {
	Total         int
	Completed     int
	ByFrequency   map[models.Frequency]FrequencyProgress
	LongestStreak int
	LongestHabit  string
}

// Summarize tallies reconciled habits
func Summarize(habits []models.Habit) Progress {
	p := Progress{
		ByFrequency: make(map[models.Frequency]FrequencyProgress, len(models.Frequencies)),
	}

	for _, h := range habits {
		fp := p.ByFrequency[h.Frequency]
		fp.Total++
		p.Total++
		if h.Completed {
			fp.Completed++
			p.Completed++
		}
		p.ByFrequency[h.Frequency] = fp

		if h.Streak > p.LongestStreak {
			p.LongestStreak = h.Streak
			p.LongestHabit = h.Name
		}
	}

	return p
}

// Percent returns the completed share as a whole percentage
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Completed * 100 / p.Total
}
