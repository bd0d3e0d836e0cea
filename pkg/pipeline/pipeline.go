package pipeline

import (
	"io"
	"time"

	"dvorakwords/config"
	"dvorakwords/pkg/dvorak"
	"dvorakwords/pkg/index"
	"dvorakwords/pkg/matcher"
	"dvorakwords/pkg/wordlist"
)

// Run loads the word list, indexes it and writes every QWERTY to Dvorak match to w.
// Nothing is written unless all stages succeed.
func Run(cfg *config.Configuration, w io.Writer) error {
	tr, err := dvorak.New(dvorak.QwertyToDvorak(), dvorak.Excluded())
	if err != nil {
		return err
	}

	start := time.Now()
	words, err := wordlist.Load(cfg.Fs, cfg.WordList)
	if err != nil {
		return err
	}
	cfg.Log.Debugf("Loaded %d words from %s in %v", len(words), cfg.WordList, time.Since(start))

	start = time.Now()
	idx := index.New(words)
	cfg.Log.Debugf("Indexed %d distinct words in %v", idx.Len(), time.Since(start))

	start = time.Now()
	matches, err := matcher.New(idx, tr).Find(words)
	if err != nil {
		return err
	}
	cfg.Log.Debugf("Found %d matches in %v", len(matches), time.Since(start))

	return matcher.Write(w, matches)
}
