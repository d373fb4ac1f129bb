package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/tutils/lcgrand/drawsrv"
	"github.com/tutils/lcgrand/lcg"
	"github.com/tutils/lcgrand/seed"
	"golang.org/x/term"
)

// drawer is satisfied by a local generator and a remote session
type drawer interface {
	NextInt(low, high int64) (int64, error)
	NextFloat() (float64, error)
	State() (int64, error)
	Close() error
}

type localDrawer struct {
	g *lcg.Generator
}

func (d *localDrawer) NextInt(low, high int64) (int64, error) { return d.g.NextInt(low, high) }
func (d *localDrawer) NextFloat() (float64, error) { return d.g.NextFloat(), nil }
func (d *localDrawer) State() (int64, error) { return d.g.State(), nil }
func (d *localDrawer) Close() error { return nil }

type drawConfig struct {
	seed    string
	label   string
	session string
	stream  int
	remote  string
	count   int
}

func loadDrawConfig() drawConfig {
	return drawConfig{
		seed:    viper.GetString("seed"),
		label:   viper.GetString("label"),
		session: viper.GetString("session"),
		stream:  viper.GetInt("stream"),
		remote:  viper.GetString("remote"),
		count:   viper.GetInt("count"),
	}
}

var errConflictingSeeds = errors.New("only one of --seed, --label, --session may be set")

// resolveSeed reports the configured seed, or false when the clock
// should seed the generator.
func resolveSeed(cfg drawConfig) (int64, bool, error) {
	var (
		v   int64
		set int
	)
	if cfg.seed != "" {
		n, err := seed.Parse(cfg.seed)
		if err != nil {
			return 0, false, err
		}
		v = n
		set++
	}
	if cfg.label != "" {
		v = seed.FromLabel(cfg.label)
		set++
	}
	if cfg.session != "" {
		id, err := uuid.Parse(cfg.session)
		if err != nil {
			return 0, false, fmt.Errorf("session: %w", err)
		}
		v = seed.FromUUID(id)
		set++
	}

	switch set {
	case 0:
		return 0, false, nil
	case 1:
	default:
		return 0, false, errConflictingSeeds
	}
	if cfg.stream >= 0 {
		v = seed.Derive(v, cfg.stream)
	}
	return v, true, nil
}

const dialTimeout = 10 * time.Second

func openDrawer(cfg drawConfig) (drawer, error) {
	if cfg.remote != "" {
		u, err := drawsrv.SessionURL(cfg.remote, drawsrv.SeedParams{
			Seed:    cfg.seed,
			Label:   cfg.label,
			Session: cfg.session,
			Stream:  cfg.stream,
		})
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
		defer cancel()
		c, err := drawsrv.Dial(ctx, u)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", cfg.remote, err)
		}
		return c, nil
	}

	v, ok, err := resolveSeed(cfg)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &localDrawer{g: lcg.New()}, nil
	}
	return &localDrawer{g: lcg.New(lcg.WithSeed(v))}, nil
}

// printer writes one value per line, decorated when w is a terminal
type printer struct {
	w   io.Writer
	tty bool
	n   int
}

func newPrinter(w io.Writer) *printer {
	p := &printer{w: w}
	if f, ok := w.(*os.File); ok {
		p.tty = term.IsTerminal(int(f.Fd()))
	}
	return p
}

func (p *printer) value(v interface{}) {
	p.n++
	if p.tty {
		fmt.Fprintf(p.w, "%4d  %v\n", p.n, v)
		return
	}
	fmt.Fprintln(p.w, v)
}

func (p *printer) state(d drawer) error {
	if !p.tty {
		return nil
	}
	st, err := d.State()
	if err != nil {
		return err
	}
	fmt.Fprintf(p.w, "state %d\n", st)
	return nil
}
