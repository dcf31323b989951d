package bench

import (
	"fmt"
	"strings"
	"testing"
)

var games = []string{
	"f3 e5 g4 Qh4",
	"e4 d5 e5 f5 ef6",
	"1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. O-O Nf6",
	"7k/P7/8/8/8/8/8/K7 w - - 0 1; a8=Q+",
	"Nf3 a6 Nc3 a5 Ne4 h6 Ng5",
	"e5",
	"e4 Zz",
	"f3 e5 g4 Qh4 a3",
	"4k3/8/8/8/8/8/8/4K3 w - -; Ke2",
}

func collect(out chan string) (func() []string, chan struct{}) {
	var lines []string
	done := make(chan struct{})
	go func() {
		for line := range out {
			lines = append(lines, line)
		}
		close(done)
	}()
	return func() []string { return lines }, done
}

func TestValidate(t *testing.T) {
	t.Parallel()
	want := Result{
		Games:      9,
		Valid:      4,
		Halfmoves:  18,
		Captures:   1,
		EnPassants: 1,
		Castles:    1,
		Promotions: 1,
		Checks:     1,
		Checkmates: 1,
		Invalid:    2,
		Illegal:    1,
		Ambiguous:  1,
		AfterEnd:   1,
	}
	for _, parallel := range []bool{false, true} {
		parallel := parallel
		t.Run(fmt.Sprintf("parallel=%v", parallel), func(t *testing.T) {
			t.Parallel()
			out := make(chan string)
			lines, done := collect(out)
			got := Validate(games, parallel, true, out)
			close(out)
			<-done

			if got != want {
				t.Errorf("unexpected result: got=%+v want=%+v", got, want)
			}
			if n := len(lines()); n != len(games)+1 {
				t.Fatalf("unexpected lines: got=%d want=%d", n, len(games)+1)
			}
			summary := lines()[len(games)]
			if !strings.HasPrefix(summary, "games=9 valid=4 halfmoves=18") {
				t.Errorf("unexpected summary: %s", summary)
			}
		})
	}
}

func TestValidateQuiet(t *testing.T) {
	t.Parallel()
	out := make(chan string, 1)
	got := Validate(games[:2], false, false, out)
	if got.Valid != 2 {
		t.Errorf("unexpected valid: got=%d want=2", got.Valid)
	}
	if len(out) != 1 {
		t.Errorf("unexpected lines: got=%d want=1", len(out))
	}
}

func TestReadGames(t *testing.T) {
	t.Parallel()
	input := "# sample\ne4 e5\n\n  d4 d5  \n"
	got, err := ReadGames(strings.NewReader(input))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(got) != 2 || got[0] != "e4 e5" || got[1] != "d4 d5" {
		t.Errorf("unexpected games: %q", got)
	}
}
