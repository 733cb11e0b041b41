package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/asticode/go-astilog"
	"github.com/mattn/go-isatty"

	nucleo "github.com/helix-editor/nucleo/src"
)

func main() {
	filter := flag.String("f", "", "filter: print the items matching the query, best first")
	caseRespect := flag.Bool("s", false, "case-sensitive match")
	caseIgnore := flag.Bool("i", false, "case-insensitive match")
	normalize := flag.Bool("n", true, "normalize latin script letters")
	withScores := flag.Bool("scores", false, "prepend the score to each line")
	flag.Parse()

	caseMode := nucleo.CaseSmart
	if *caseRespect {
		caseMode = nucleo.CaseRespect
	} else if *caseIgnore {
		caseMode = nucleo.CaseIgnore
	}

	matcher := nucleo.New(0, nil, caseMode, *normalize, false)
	if err := matcher.SetPattern(*filter, false); err != nil {
		astilog.Fatal(err)
	}

	injector := matcher.Injector()
	reader := nucleo.NewReader(injector)
	go func() {
		defer injector.Close()
		if flag.NArg() > 0 {
			if err := reader.ReadFiles(flag.Arg(0)); err != nil {
				astilog.Error(err)
			}
		} else if !isatty.IsTerminal(os.Stdin.Fd()) {
			reader.ReadStream(os.Stdin)
		} else {
			if err := reader.ReadFiles("."); err != nil {
				astilog.Error(err)
			}
		}
	}()

	for {
		// Read before the tick so that every item pushed before the last
		// injector closed is covered by that tick
		closed := matcher.ActiveInjectors() == 0
		status := matcher.Tick(100 * time.Millisecond)
		if !status.Running {
			if closed {
				break
			}
			// The producers are still at work; wait for more items
			time.Sleep(10 * time.Millisecond)
		}
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	snapshot := matcher.Snapshot()
	for i := 0; i < snapshot.ItemCount(); i++ {
		match := snapshot.Get(i)
		if *withScores {
			fmt.Fprintf(out, "%d\t%s\n", match.Score(), match.Item().AsString())
		} else {
			fmt.Fprintln(out, match.Item().AsString())
		}
	}
}
