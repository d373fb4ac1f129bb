package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/tutils/lcgrand/lcg"
	"github.com/tutils/lcgrand/seed"
)

func TestParseOp(t *testing.T) {
	cases := []struct {
		in   string
		want op
		ok   bool
	}{
		{"float", op{float: true}, true},
		{"int:1:10", op{low: 1, high: 10}, true},
		{"int:-10:-5", op{low: -10, high: -5}, true},
		{"int:1", op{}, false},
		{"int:a:b", op{}, false},
		{"gauss", op{}, false},
	}
	for _, c := range cases {
		got, err := parseOp(c.in)
		if (err == nil) != c.ok {
			t.Errorf("parseOp(%q) err = %v", c.in, err)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("parseOp(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestCmdline(t *testing.T) {
	args := []string{"seq", "float", "int:1:10", "--seed=100"}
	s, err := encodeCmdline(args)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(s, "float") {
		t.Fatalf("token %q leaks arguments", s)
	}
	got, err := decodeCmdline(s)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(got, " ") != strings.Join(args, " ") {
		t.Fatalf("got %q, want %q", got, args)
	}

	if _, err := decodeCmdline("!!!"); err == nil {
		t.Fatal("garbage token decoded")
	}
}

func TestOpenDrawer(t *testing.T) {
	d, err := openDrawer(drawConfig{seed: "42", stream: -1, count: 1})
	if err != nil {
		t.Fatal(err)
	}
	if st, _ := d.State(); st != 42 {
		t.Fatalf("state %d, want 42", st)
	}

	d, err = openDrawer(drawConfig{seed: "42", stream: 2, count: 1})
	if err != nil {
		t.Fatal(err)
	}
	if st, _ := d.State(); st != seed.Derive(42, 2) {
		t.Fatalf("state %d, want derived seed", st)
	}
}

func TestRunOps(t *testing.T) {
	buf := &bytes.Buffer{}
	p := newPrinter(buf)
	d := &localDrawer{g: lcg.New(lcg.WithSeed(100))}
	ops := []op{{float: true}, {low: 1, high: 10}}
	if err := runOps(p, d, ops, 1); err != nil {
		t.Fatal(err)
	}
	want := "0.6932193518150598\n9\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}

	err := runOps(p, d, []op{{low: 5, high: 1}}, 1)
	if !errors.Is(err, lcg.ErrInvalidRange) {
		t.Fatalf("err = %v", err)
	}
}

// execute runs the root command with flags reset to their defaults.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestIntCommand(t *testing.T) {
	out, err := execute(t, "int", "1", "10", "--seed=42", "--count=3")
	if err != nil {
		t.Fatal(err)
	}
	if out != "6\n3\n2\n" {
		t.Fatalf("got %q", out)
	}
}

func TestSeedFlags(t *testing.T) {
	for _, name := range []string{"seed", "label", "session", "stream", "remote", "count"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing --%s", name)
		}
	}

	g := lcg.New(lcg.WithSeed(seed.FromLabel("camera-jitter")))
	v1, _ := g.NextInt(1, 10)
	v2, _ := g.NextInt(1, 10)
	want := fmt.Sprintf("%d\n%d\n", v1, v2)
	out, err := execute(t, "int", "1", "10", "--label=camera-jitter", "--count=2")
	if err != nil {
		t.Fatal(err)
	}
	if out != want {
		t.Fatalf("--label: got %q, want %q", out, want)
	}

	id := "00000000-0000-0001-0000-000000000003"
	g = lcg.New(lcg.WithSeed(2))
	want = fmt.Sprintf("%v\n", g.NextFloat())
	out, err = execute(t, "float", "--session="+id)
	if err != nil {
		t.Fatal(err)
	}
	if out != want {
		t.Fatalf("--session: got %q, want %q", out, want)
	}

	if _, err := execute(t, "float", "--seed=1", "--label=camera-jitter"); !errors.Is(err, errConflictingSeeds) {
		t.Fatalf("conflicting seeds: %v", err)
	}
	if _, err := execute(t, "float", "--seed=18446744073709551616"); !errors.Is(err, seed.ErrOutOfRange) {
		t.Fatalf("overflowing seed: %v", err)
	}
}

func TestResolveSeed(t *testing.T) {
	cases := []struct {
		cfg  drawConfig
		want int64
		ok   bool
	}{
		{drawConfig{stream: -1}, 0, false},
		{drawConfig{seed: "-7", stream: -1}, -7, true},
		{drawConfig{label: "level-3", stream: -1}, seed.FromLabel("level-3"), true},
		{drawConfig{session: "00000000-0000-0001-0000-000000000003", stream: -1}, 2, true},
		{drawConfig{label: "level", stream: 3}, seed.Derive(seed.FromLabel("level"), 3), true},
	}
	for _, c := range cases {
		v, ok, err := resolveSeed(c.cfg)
		if err != nil {
			t.Fatalf("%+v: %v", c.cfg, err)
		}
		if v != c.want || ok != c.ok {
			t.Errorf("%+v: got (%d, %v), want (%d, %v)", c.cfg, v, ok, c.want, c.ok)
		}
	}

	if _, _, err := resolveSeed(drawConfig{session: "nope", stream: -1}); err == nil {
		t.Fatal("bad session accepted")
	}
}
