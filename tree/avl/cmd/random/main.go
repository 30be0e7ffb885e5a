package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"go.lepak.sg/avl/tree/avl"
)

var log = logrus.New()

func main() {
	app := cli.NewApp()
	app.Name = "random"
	app.Usage = "build a random AVL tree and remove some of it"
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.Int64Flag{
			Name:   "seed, s",
			EnvVar: "AVL_SEED",
			Usage:  " random `SEED` (default current unix time in ns)",
		},
		cli.IntFlag{
			Name:  "num, n",
			Value: 10,
			Usage: " number of `NODES` in the tree",
		},
		cli.IntFlag{
			Name:  "remove, r",
			Value: 0,
			Usage: " number of `NODES` to remove afterwards",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log every removal",
		},
	}
	app.Action = run

	log.Out = os.Stderr
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("random failed")
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	num, remove := c.Int("num"), c.Int("remove")
	if num < 0 || remove < 0 || remove > num {
		return fmt.Errorf("cannot remove %d of %d nodes", remove, num)
	}

	log.WithFields(logrus.Fields{
		"seed": seed, "num": num, "remove": remove,
	}).Debug("building tree")

	tr, handles := avl.BuildRandom(num, seed)
	rd := rand.New(rand.NewSource(seed))
	for _, k := range rd.Perm(num)[:remove] {
		log.WithFields(logrus.Fields{"key": k}).Debug("removing")
		tr.Remove(handles[k])
	}

	w := c.App.Writer
	co := tr.InOrderCoroutine(context.Background())
	defer co.Stop()

	inorder := make([]int, 0, tr.Len())
	for k := range co.Items() {
		inorder = append(inorder, k)
	}

	fmt.Fprintln(w, "seed:", seed)
	fmt.Fprintln(w, "inorder:", inorder)
	fmt.Fprintln(w, "tree:")
	fmt.Fprint(w, tr.String())

	bound := 1.44 * math.Log2(float64(tr.Len()+2))
	fmt.Fprintf(w, "height: %d bound: %.2f\n", tr.Height(), bound)

	if err := tr.Check(); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	fmt.Fprintln(w, "check: ok")

	return nil
}
