package repository

// keeps bulk upserts under the postgres bind-parameter limit
const insertBatchSize = 1000

func batches[T any](items []T, size int) [][]T {
	out := [][]T{}
	for len(items) > 0 {
		n := size
		if len(items) < n {
			n = len(items)
		}
		out = append(out, items[:n])
		items = items[n:]
	}
	return out
}
