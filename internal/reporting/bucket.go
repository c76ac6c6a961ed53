package reporting

import "api/internal/models"

const (
	dayLabelLayout   = "02/01/2006"
	monthLabelLayout = "01/2006"
	yearLabelLayout  = "2006"
)

// Group re-buckets a canonical revenue series into the requested
// granularity. Points must already be sorted ascending by date; the
// normalizer guarantees this and Group does not re-sort.
//
// Bucket order follows the first-seen chronological order of each
// partition key. Aggregation is lossless: revenue and order sums over
// the buckets equal the sums over the source points. The operation is
// pure, so repeated calls with the same input yield identical output.
func Group(points []models.RevenuePoint, granularity models.Granularity) []models.GroupedBucket {
	if len(points) == 0 {
		return nil
	}

	if granularity == models.GranularityDay {
		// Identity pass with relabeling, one bucket per point.
		buckets := make([]models.GroupedBucket, len(points))
		for i, p := range points {
			buckets[i] = models.GroupedBucket{
				Label:   p.Date.Format(dayLabelLayout),
				Revenue: p.Revenue,
				Orders:  p.Orders,
			}
		}
		return buckets
	}

	layout := monthLabelLayout
	if granularity == models.GranularityYear {
		layout = yearLabelLayout
	}

	var buckets []models.GroupedBucket
	index := make(map[string]int)
	for _, p := range points {
		label := p.Date.Format(layout)
		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, models.GroupedBucket{Label: label})
		}
		buckets[i].Revenue += p.Revenue
		buckets[i].Orders += p.Orders
	}

	return buckets
}
