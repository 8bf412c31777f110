package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/MixinNetwork/fraction/rpc"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "fraction"
	app.Usage = "Exact rational arithmetic on 64 bit fractions, with a calculator service and a named fraction store."
	app.Version = config.BuildVersion
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:   "calc",
			Usage:  "Calculate two fractions with an operator",
			Action: calcCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "a",
					Usage:    "the left `FRACTION` like 3/4",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "b",
					Usage: "the right `FRACTION`, not needed for neg and inv",
				},
				&cli.StringFlag{
					Name:  "op",
					Value: "+",
					Usage: "the operator, one of + - * / == != < <= > >= neg inv",
				},
			},
		},
		{
			Name:   "fromfloat",
			Usage:  "Convert a decimal number to a fraction with 3 decimal digits",
			Action: fromFloatCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Usage:    "the decimal `NUMBER`",
					Required: true,
				},
			},
		},
		{
			Name:   "scan",
			Usage:  "Read whitespace separated fractions from stdin and print them in canonical form",
			Action: scanCmd,
		},
		{
			Name:    "serve",
			Aliases: []string{"s"},
			Usage:   "Start the fraction RPC service",
			Action:  serveCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "dir",
					Aliases: []string{"d"},
					Usage:   "the data directory",
				},
				&cli.IntFlag{
					Name:    "port",
					Aliases: []string{"p"},
					Value:   config.DefaultRPCPort,
					Usage:   "the RPC port to listen",
				},
				&cli.IntFlag{
					Name:    "log",
					Aliases: []string{"l"},
					Value:   logger.INFO,
					Usage:   "the log level",
				},
				&cli.StringFlag{
					Name:  "filter",
					Usage: "the RE2 regex pattern to filter log",
				},
			},
		},
		{
			Name:   "put",
			Usage:  "Store a named fraction",
			Action: putCmd,
			Flags: []cli.Flag{
				dirFlag(),
				&cli.StringFlag{
					Name:     "name",
					Usage:    "the fraction name",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "value",
					Usage:    "the `FRACTION` like 3/4",
					Required: true,
				},
			},
		},
		{
			Name:   "get",
			Usage:  "Read a named fraction",
			Action: getCmd,
			Flags: []cli.Flag{
				dirFlag(),
				&cli.StringFlag{
					Name:     "name",
					Usage:    "the fraction name",
					Required: true,
				},
			},
		},
		{
			Name:   "remove",
			Usage:  "Remove a named fraction",
			Action: removeCmd,
			Flags: []cli.Flag{
				dirFlag(),
				&cli.StringFlag{
					Name:     "name",
					Usage:    "the fraction name",
					Required: true,
				},
			},
		},
		{
			Name:   "list",
			Usage:  "List the named fractions",
			Action: listCmd,
			Flags: []cli.Flag{
				dirFlag(),
				&cli.StringFlag{
					Name:  "prefix",
					Usage: "the name prefix",
				},
			},
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func dirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "dir",
		Aliases:  []string{"d"},
		Usage:    "the data directory",
		Required: true,
	}
}

func serveCmd(c *cli.Context) error {
	runtime.GOMAXPROCS(runtime.NumCPU())

	custom, err := loadConfig(c.String("dir"))
	if err != nil {
		return err
	}
	if c.IsSet("log") {
		custom.Log.Level = c.Int("log")
	}
	if c.IsSet("filter") {
		custom.Log.Filter = c.String("filter")
	}
	if c.IsSet("port") {
		custom.RPC.Port = c.Int("port")
	}
	logger.SetLevel(custom.Log.Level)
	logger.SetLimiter(custom.Log.Limiter)
	err = logger.SetFilter(custom.Log.Filter)
	if err != nil {
		return err
	}

	store, err := openStore(custom, c.String("dir"))
	if err != nil {
		return err
	}
	defer store.Close()

	server := rpc.NewServer(custom, store)
	logger.Printf("RPC %s listening on %s\n", config.BuildVersion, server.Addr)
	return server.ListenAndServe()
}
