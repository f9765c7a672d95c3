package enigma

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/bgallie/enigma/cryptors"
)

// progressEvery is how many keys are tried between progress log records.
const progressEvery = 1000

// Result is the outcome of a successful key search.
type Result struct {
	Key       string
	Attempts  int // keys tried up to and including Key, in enumeration order
	Plaintext string
}

// Crack searches every key for the rotors, reflector, ring setting and
// plugboard in s (s.Key is ignored) and returns the first key, in Keyspace
// order, under which ciphertext deciphers to text ending in crib.  A fresh
// machine is built for every key.  cryptors.ErrNoMatchFound is returned when
// no key fits.
func Crack(ctx context.Context, s Settings, ciphertext, crib string) (Result, error) {
	ks, err := prepare(s, crib)
	if err != nil {
		return Result{}, err
	}

	for idx := 0; idx < ks.Len(); idx++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if idx%progressEvery == 0 {
			slog.DebugContext(ctx, "crib search", "attempts", idx, "key", ks.KeyAt(idx))
		}

		s.Key = ks.KeyAt(idx)
		m, err := New(s)
		if err != nil {
			return Result{}, err
		}
		if pt := m.Encipher(ciphertext); strings.HasSuffix(pt, crib) {
			slog.DebugContext(ctx, "crib matched", "key", s.Key, "attempts", idx+1)
			return Result{Key: s.Key, Attempts: idx + 1, Plaintext: pt}, nil
		}
	}

	return Result{}, fmt.Errorf("%w: %d keys tried for crib %q", cryptors.ErrNoMatchFound, ks.Len(), crib)
}

// CrackParallel is Crack spread over workers goroutines.  Worker w tries
// the keys w, w+workers, w+2*workers, ... and stops once it passes the
// lowest match found so far, so the result is the same as Crack's.
func CrackParallel(ctx context.Context, s Settings, ciphertext, crib string, workers int) (Result, error) {
	if workers <= 1 {
		return Crack(ctx, s, ciphertext, crib)
	}

	ks, err := prepare(s, crib)
	if err != nil {
		return Result{}, err
	}

	var best atomic.Int64
	best.Store(int64(ks.Len()))

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			settings := s
			for idx := w; idx < ks.Len() && int64(idx) < best.Load(); idx += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				settings.Key = ks.KeyAt(idx)
				m, err := New(settings)
				if err != nil {
					return err
				}
				if strings.HasSuffix(m.Encipher(ciphertext), crib) {
					for {
						cur := best.Load()
						if int64(idx) >= cur || best.CompareAndSwap(cur, int64(idx)) {
							break
						}
					}
					slog.DebugContext(gctx, "crib matched", "worker", w, "key", settings.Key)
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	idx := int(best.Load())
	if idx == ks.Len() {
		return Result{}, fmt.Errorf("%w: %d keys tried for crib %q", cryptors.ErrNoMatchFound, ks.Len(), crib)
	}

	s.Key = ks.KeyAt(idx)
	m, err := New(s)
	if err != nil {
		return Result{}, err
	}
	return Result{Key: s.Key, Attempts: idx + 1, Plaintext: m.Encipher(ciphertext)}, nil
}

// prepare checks that a machine can be built from s before any searching
// starts and returns the keyspace to search.
func prepare(s Settings, crib string) (Keyspace, error) {
	if crib == "" {
		return Keyspace{}, fmt.Errorf("%w: empty crib", cryptors.ErrInvalidConfig)
	}
	ks := NewKeyspace(s.catalogue().Alphabet(), len(s.Rotors))
	s.Key = ks.KeyAt(0)
	if _, err := New(s); err != nil {
		return Keyspace{}, err
	}
	return ks, nil
}
