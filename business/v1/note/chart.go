package note

// Aggregate counts notes per date. Points come in the order each date is
// first seen in notes; they are not sorted.
func Aggregate(notes []Note) []ChartPoint {
	points := make([]ChartPoint, 0)
	index := make(map[string]int)
	for _, n := range notes {
		if i, ok := index[n.Date]; ok {
			points[i].Count++
			continue
		}
		index[n.Date] = len(points)
		points = append(points, ChartPoint{Date: n.Date, Count: 1})
	}
	return points
}
