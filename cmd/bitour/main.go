// Command bitour computes optimal bitonic tours of planar point sets.
//
//	bitour demo
//	bitour solve [--layout=packed] [--format=yaml] points.yaml more.yaml
//	bitour random --n=200 --count=8 --seed=3
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var (
	cmdSet *subcmd.CommandSet

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

type commonFlags struct {
	Layout      string `subcmd:"layout,dense,table layout: dense or packed"`
	Format      string `subcmd:"format,text,output format: text or yaml"`
	Concurrency int    `subcmd:"concurrency,4,number of point sets solved in parallel"`
	MaxPoints   int    `subcmd:"max-points,0,reject point sets with more points than this (0 for no limit)"`
	LogLevel    string `subcmd:"log-level,warn,slog level: debug or info or warn or error"`
}

type solveFlags struct {
	commonFlags
}

type randomFlags struct {
	commonFlags
	N     int  `subcmd:"n,20,number of points per set"`
	Count int  `subcmd:"count,1,number of sets to generate"`
	Seed  int  `subcmd:"seed,0,base seed; each set derives its own stream from it"`
	Emit  bool `subcmd:"emit,false,write the generated sets as YAML instead of solving them"`
}

type demoFlags struct {
	commonFlags
}

func init() {
	solveCmd := subcmd.NewCommand("solve",
		subcmd.MustRegisterFlagStruct(&solveFlags{}, nil, nil),
		solve, subcmd.AtLeastNArguments(1))
	solveCmd.Document(`solve every point set in the given YAML or JSON files.`, "<file>...")

	randomCmd := subcmd.NewCommand("random",
		subcmd.MustRegisterFlagStruct(&randomFlags{}, nil, nil),
		random, subcmd.WithoutArguments())
	randomCmd.Document(`generate point sets with distinct x-coordinates and solve them.`)

	demoCmd := subcmd.NewCommand("demo",
		subcmd.MustRegisterFlagStruct(&demoFlags{}, nil, nil),
		demo, subcmd.WithoutArguments())
	demoCmd.Document(`solve the four-point instance (0,0) (10,5) (12,-5) (22,0).`)

	cmdSet = subcmd.NewCommandSet(solveCmd, randomCmd, demoCmd)
	cmdSet.Document(`compute optimal bitonic tours.

A bitonic tour visits every point once and splits at its leftmost and
rightmost points into two chains that are monotone in x. No two points
may share an x-coordinate.`)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
