package render

import "testing"

func TestPartition(t *testing.T) {
	for height := 0; height <= 40; height++ {
		for threads := 1; threads <= 12; threads++ {
			as := Partition(height, threads, false)
			if len(as) != threads {
				t.Fatalf("Partition(%d,%d): %d assignments", height, threads, len(as))
			}
			seen := make([]bool, height)
			minRows, maxRows := height+1, -1
			for k, a := range as {
				if a.Worker != k {
					t.Fatalf("assignment %d has worker %d", k, a.Worker)
				}
				minRows = min(minRows, len(a.Rows))
				maxRows = max(maxRows, len(a.Rows))
				for j, y := range a.Rows {
					if y%threads != k || y/threads != j {
						t.Fatalf("Partition(%d,%d): worker %d row %d is %d", height, threads, k, j, y)
					}
					if seen[y] {
						t.Fatalf("Partition(%d,%d): row %d assigned twice", height, threads, y)
					}
					seen[y] = true
				}
			}
			for y, ok := range seen {
				if !ok {
					t.Fatalf("Partition(%d,%d): row %d unassigned", height, threads, y)
				}
			}
			if maxRows-minRows > 1 {
				t.Fatalf("Partition(%d,%d): sizes range %d..%d", height, threads, minRows, maxRows)
			}
		}
	}
}

func TestPartitionTruncate(t *testing.T) {
	as := Partition(10, 4, true)
	want := [][]int{{0, 4}, {1, 5}, {2, 6}, {3, 7}}
	for k, a := range as {
		if len(a.Rows) != len(want[k]) {
			t.Fatalf("worker %d rows = %v, want %v", k, a.Rows, want[k])
		}
		for j := range a.Rows {
			if a.Rows[j] != want[k][j] {
				t.Fatalf("worker %d rows = %v, want %v", k, a.Rows, want[k])
			}
		}
	}
}

func TestPartitionMoreThreadsThanRows(t *testing.T) {
	as := Partition(3, 5, false)
	for k, a := range as {
		want := 0
		if k < 3 {
			want = 1
		}
		if len(a.Rows) != want {
			t.Errorf("worker %d has %d rows, want %d", k, len(a.Rows), want)
		}
	}
}
