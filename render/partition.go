package render

// Assignment is the ordered set of rows one worker computes.
type Assignment struct {
	Worker int
	Rows   []int
}

// Partition interleaves height rows across threads workers: worker k owns
// rows k, k+threads, k+2*threads, ... so row y is the (y/threads)-th row of
// worker y%threads.
//
// Without truncate every row is owned and worker sizes differ by at most one.
// With truncate every worker gets exactly height/threads rows and the
// trailing height%threads rows belong to nobody.
func Partition(height, threads int, truncate bool) []Assignment {
	perWorker := height / threads
	as := make([]Assignment, threads)
	for k := range as {
		n := perWorker
		if !truncate && k < height%threads {
			n++
		}
		rows := make([]int, n)
		for j := range rows {
			rows[j] = j*threads + k
		}
		as[k] = Assignment{Worker: k, Rows: rows}
	}
	return as
}
