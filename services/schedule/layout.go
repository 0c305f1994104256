package schedule

import (
	"sort"
	"time"

	"glowdesk/models"
)

// LayoutDay computes render geometry for a day's appointments.
//
// Overlapping appointments are grouped into clusters and packed into the
// minimum number of side-by-side columns (first-fit over appointments
// sorted by start). Each column gets an even share of the day lane's
// width. Vertical geometry is anchored at dayStartOffsetMinutes:
// appointments starting before the visible window are omitted from the
// result, not clipped.
//
// Clustering is a greedy single pass: an appointment joins the first
// cluster containing any member it overlaps. This intentionally mirrors
// the calendar's historical behavior rather than a full
// connected-components grouping, so rendered column counts stay stable.
func LayoutDay(
	appointments []models.Appointment,
	dayStartOffsetMinutes int,
	slotIntervalMinutes int,
	slotHeightPx float64,
) []models.AppointmentLayout {
	var active []models.Appointment
	for _, a := range appointments {
		if a.Active() {
			active = append(active, a)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].Start.Before(active[j].Start)
	})

	var clusters [][]models.Appointment
	for _, a := range active {
		joined := false
		for ci := range clusters {
			for _, member := range clusters[ci] {
				if overlapsOpen(a, member) {
					clusters[ci] = append(clusters[ci], a)
					joined = true
					break
				}
			}
			if joined {
				break
			}
		}
		if !joined {
			clusters = append(clusters, []models.Appointment{a})
		}
	}

	var out []models.AppointmentLayout
	for _, cluster := range clusters {
		out = append(out, layoutCluster(cluster, dayStartOffsetMinutes, slotIntervalMinutes, slotHeightPx)...)
	}
	return out
}

// overlapsOpen is the open-interval overlap test: touching endpoints do
// not overlap.
func overlapsOpen(a, b models.Appointment) bool {
	return !(a.End.Before(b.Start) || a.End.Equal(b.Start) ||
		a.Start.After(b.End) || a.Start.Equal(b.End))
}

func layoutCluster(
	cluster []models.Appointment,
	dayStartOffsetMinutes int,
	slotIntervalMinutes int,
	slotHeightPx float64,
) []models.AppointmentLayout {
	// First-fit column packing: each column remembers the end of its
	// last-placed appointment. With the cluster sorted by start this
	// yields the minimum number of gapless side-by-side lanes.
	var columnEnds []time.Time
	columnOf := make([]int, len(cluster))

	for i, a := range cluster {
		placed := false
		for col, end := range columnEnds {
			if !end.After(a.Start) {
				columnEnds[col] = a.End
				columnOf[i] = col
				placed = true
				break
			}
		}
		if !placed {
			columnEnds = append(columnEnds, a.End)
			columnOf[i] = len(columnEnds) - 1
		}
	}

	totalColumns := len(columnEnds)
	layouts := make([]models.AppointmentLayout, 0, len(cluster))

	for i, a := range cluster {
		startMinutes := a.Start.Hour()*60 + a.Start.Minute()
		top := float64(startMinutes-dayStartOffsetMinutes) / float64(slotIntervalMinutes) * slotHeightPx
		if top < 0 {
			continue
		}

		height := float64(a.DurationMinutes()) / float64(slotIntervalMinutes) * slotHeightPx
		if height < slotHeightPx {
			height = slotHeightPx
		}

		layouts = append(layouts, models.AppointmentLayout{
			Appointment: a,
			Top:         top,
			Height:      height,
			Width:       100.0 / float64(totalColumns),
			Left:        float64(columnOf[i]) * 100.0 / float64(totalColumns),
		})
	}
	return layouts
}
