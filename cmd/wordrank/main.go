// Command wordrank counts the words of its input and prints them in
// sorted order, each with the number of times it was seen.
//
//	wordrank [-v] [-min N] [-reverse] [file ...]
//
// With no files it reads standard input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/homier/probemap"
	"github.com/homier/probemap/bstset"
)

type config struct {
	verbose  bool
	minCount int
	reverse  bool
	files    []string
}

func main() {
	var cfg config

	flag.BoolVar(&cfg.verbose, "v", false, "log table statistics to stderr")
	flag.IntVar(&cfg.minCount, "min", 1, "only print words seen at least this many times")
	flag.BoolVar(&cfg.reverse, "reverse", false, "print in descending order")
	flag.Parse()
	cfg.files = flag.Args()

	log := newLogger(cfg.verbose)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, os.Stdin, os.Stdout, log); err != nil {
		log.Errorw("wordrank failed", "error", err)
		fmt.Fprintln(os.Stderr, "wordrank:", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}

	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return l.Sugar().Named("wordrank")
}

func run(cfg config, stdin io.Reader, stdout io.Writer, log *zap.SugaredLogger) error {
	r := newRanker(log)

	if len(cfg.files) == 0 {
		if err := r.count(stdin); err != nil {
			return errors.Wrap(err, "failed to read stdin")
		}
	}

	for _, name := range cfg.files {
		if err := r.countFile(name); err != nil {
			return err
		}
	}

	stats := r.counts.Stats()
	log.Debugw("counted words",
		"distinct", stats.Size,
		"capacity", stats.Capacity,
		"loadFactor", stats.LoadFactor,
	)

	w := bufio.NewWriter(stdout)
	if err := r.report(w, cfg.minCount, cfg.reverse); err != nil {
		return err
	}

	return errors.Wrap(w.Flush(), "failed to write report")
}

type ranker struct {
	counts *probemap.HashMap[string, int]
	words  *bstset.Set[string]
	log    *zap.SugaredLogger
}

func newRanker(log *zap.SugaredLogger) *ranker {
	return &ranker{
		counts: probemap.New(probemap.WithHashFunc[string, int](probemap.XXHashFunc[string]())),
		words:  bstset.New[string](),
		log:    log,
	}
}

func (r *ranker) countFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrapf(err, "failed to open %q", name)
	}
	defer f.Close()

	r.log.Debugw("reading", "file", name)

	return errors.Wrapf(r.count(f), "failed to read %q", name)
}

func (r *ranker) count(in io.Reader) error {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	for sc.Scan() {
		word := normalize(sc.Text())
		if word == "" {
			continue
		}

		n, _ := r.counts.Find(word)
		if err := r.counts.Insert(word, n+1); err != nil {
			return err
		}

		if n == 0 {
			r.words.Insert(word)
		}
	}

	return sc.Err()
}

// report walks the ordered words from one end until the iterator runs out.
func (r *ranker) report(w io.Writer, minCount int, reverse bool) error {
	it, ok := r.words.Min()
	step := bstset.Iterator[string].Next
	if reverse {
		it, ok = r.words.Max()
		step = bstset.Iterator[string].Prev
	}

	for ok {
		word := it.Key()
		if n, _ := r.counts.Find(word); n >= minCount {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", n, word); err != nil {
				return errors.Wrap(err, "failed to write report")
			}
		}

		var err error
		if it, err = step(it); err != nil {
			if errors.Is(err, bstset.ErrOutOfBounds) {
				break
			}

			return err
		}
	}

	return nil
}

// normalize lower-cases a word and trims surrounding punctuation.
func normalize(word string) string {
	word = strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	return strings.ToLower(word)
}
