package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"go.lepak.sg/avl/parallel"
	"go.lepak.sg/avl/tree"
	"go.lepak.sg/avl/tree/avl"
)

var log = logrus.New()

func main() {
	app := cli.NewApp()
	app.Name = "stress"
	app.Usage = "run random insert/remove trials and verify every tree after every step"
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "trials, t",
			Value: 1000,
			Usage: " number of `TRIALS`, each on its own tree",
		},
		cli.IntFlag{
			Name:  "size, n",
			Value: 500,
			Usage: " operations per trial `COUNT`",
		},
		cli.IntFlag{
			Name:  "workers, w",
			Value: runtime.NumCPU(),
			Usage: " trials run at once `COUNT`",
		},
		cli.Int64Flag{
			Name:   "seed, s",
			EnvVar: "AVL_SEED",
			Usage:  " base `SEED` (default current unix time in ns)",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log every trial",
		},
	}
	app.Action = run

	log.Out = os.Stderr
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("stress failed")
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}

	base := c.Int64("seed")
	if base == 0 {
		base = time.Now().UnixNano()
	}
	size := c.Int("size")

	seeds := make([]int64, c.Int("trials"))
	for i := range seeds {
		seeds[i] = base + int64(i)
	}

	log.WithFields(logrus.Fields{
		"seed": base, "trials": len(seeds), "size": size, "workers": c.Int("workers"),
	}).Info("starting")
	start := time.Now()

	heights, err := parallel.MapBounded(context.Background(), seeds,
		func(ctx context.Context, i int, seed int64) (int, error) {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			h, err := trial(seed, size)
			if err != nil {
				return 0, fmt.Errorf("trial %d (seed %d): %w", i, seed, err)
			}
			log.WithFields(logrus.Fields{"trial": i, "seed": seed, "height": h}).Debug("passed")
			return h, nil
		}, c.Int("workers"))
	if err != nil {
		return err
	}

	tallest := 0
	for _, h := range heights {
		if h > tallest {
			tallest = h
		}
	}
	log.WithFields(logrus.Fields{
		"trials": len(seeds), "tallest": tallest, "elapsed": time.Since(start),
	}).Info("all trials passed")

	return nil
}

// trial inserts and removes random keys on a fresh tree, checking it
// after every step, and returns the tallest height it reached.
func trial(seed int64, size int) (tallest int, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*tree.Fault)
			if !ok {
				panic(r)
			}
			err = f
		}
	}()

	rd := rand.New(rand.NewSource(seed))
	tr := avl.New()

	var handles []*tree.Node
	for step := 0; step < size; step++ {
		if len(handles) > 0 && rd.Intn(5) < 2 {
			j := rd.Intn(len(handles))
			tr.Remove(handles[j])
			handles[j] = handles[len(handles)-1]
			handles = handles[:len(handles)-1]
		} else {
			handles = append(handles, tr.Insert(rd.Intn(size+1)))
		}

		if err := tr.Check(); err != nil {
			return tallest, fmt.Errorf("step %d: %w", step, err)
		}

		h := tr.Height()
		if bound := 1.44 * math.Log2(float64(tr.Len()+2)); float64(h) > bound {
			return tallest, fmt.Errorf("step %d: height %d over %.2f", step, h, bound)
		}
		if h > tallest {
			tallest = h
		}
	}

	for _, h := range handles {
		tr.Remove(h)
	}
	if !tr.IsEmpty() {
		return tallest, fmt.Errorf("%d nodes left after removing every handle", tr.Len())
	}

	return tallest, nil
}
