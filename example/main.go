package main

import (
	"bufio"
	"bytes"
	"cmp"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"time"
	"unicode"
	"unicode/utf8"

	counter "github.com/zmrl010/counter"
	"github.com/zmrl010/counter/hashbag"

	"github.com/go-errors/errors"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var (
	verbose = flag.Bool("v", false, "log at debug level")
	top     = flag.Int("top", 0, "print only the N most frequent words (0 prints all)")
)

type wordCount struct {
	word  string
	count int
}

func trimWord(word []byte) []byte {
	return bytes.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func countWords(r io.Reader, words *counter.Of[string, int], lengths *hashbag.HashBag[int]) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		word := bytes.ToLower(trimWord(scanner.Bytes()))

		if len(word) == 0 {
			continue
		}

		if !words.Contains(counter.Bytes(word).Borrow()) {
			slog.Debug("new word", "word", string(word))
		}

		counter.EntryOwned(words, counter.Bytes(word)).Add(1)
		hashbag.Insert(lengths, utf8.RuneCount(word))
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, 0)
	}

	return nil
}

func countFile(path string, words *counter.Of[string, int], lengths *hashbag.HashBag[int]) error {
	file, err := os.Open(path)

	if err != nil {
		return errors.Wrap(err, 0)
	}

	defer file.Close()

	start := time.Now()

	if err := countWords(file, words, lengths); err != nil {
		return err
	}

	slog.Debug("counted", "file", path, "distinct", words.Len(), "took", time.Since(start))

	return nil
}

func report(w io.Writer, words *counter.Of[string, int], lengths *hashbag.HashBag[int]) {
	total := words.Total()

	var sorted []wordCount
	for word, count := range words.Drain() {
		sorted = append(sorted, wordCount{word: word, count: count})
	}

	slices.SortFunc(sorted, func(a, b wordCount) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}

		return cmp.Compare(a.word, b.word)
	})

	if *top > 0 && len(sorted) > *top {
		sorted = sorted[:*top]
	}

	for _, wc := range sorted {
		fmt.Fprintf(w, "%7d %s\n", wc.count, wc.word)
	}

	fmt.Fprintf(w, "%7d total\n", total)

	byLength := lengths.IntoMap()
	for _, length := range slices.Sorted(maps.Keys(byLength)) {
		fmt.Fprintf(w, "length %3d: %d\n", length, byLength[length])
	}
}

func appMain() error {
	flag.Parse()

	w := os.Stderr
	level := slog.LevelInfo

	if *verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !isatty.IsTerminal(w.Fd()),
		}),
	))

	words := counter.From[string, int]()
	lengths := hashbag.New[int]()

	if flag.NArg() == 0 {
		if err := countWords(os.Stdin, words, lengths); err != nil {
			return err
		}
	}

	for _, path := range flag.Args() {
		if err := countFile(path, words, lengths); err != nil {
			return err
		}
	}

	report(os.Stdout, words, lengths)

	return nil
}

func main() {
	if err := appMain(); err != nil {
		slog.Error("wordcount failed", "error", err)

		if goErr, ok := err.(*errors.Error); ok {
			slog.Debug("stack", "trace", goErr.ErrorStack())
		}

		os.Exit(1)
	}
}
