package bench

import (
	"strings"
	"testing"
)

func TestOps(t *testing.T) {
	t.Parallel()
	for _, parallel := range []bool{false, true} {
		parallel := parallel
		name := "serial"
		if parallel {
			name = "parallel"
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out := make(chan string)
			var lines []string
			done := make(chan struct{})
			go func() {
				defer close(done)
				for line := range out {
					lines = append(lines, line)
				}
			}()

			err := Ops(10_000, parallel, out)
			close(out)
			<-done
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			wantOps := []string{"parse", "set/unset", "algebra", "popcount", "shift", "magic index"}
			if len(lines) != len(wantOps) {
				t.Fatalf("unexpected number of report lines: got=%d want=%d", len(lines), len(wantOps))
			}
			for i, op := range wantOps {
				if !strings.Contains(lines[i], "op="+op+" ") {
					t.Errorf("unexpected report line: got=%q want op=%s", lines[i], op)
				}
			}
			for _, line := range lines {
				if !strings.Contains(line, "n=10,000") {
					t.Errorf("iteration count not localized: got=%q", line)
				}
			}
		})
	}
}
