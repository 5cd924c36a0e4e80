// Command bip21 builds a BIP 21 payment URI and prints it to stdout.
//
// Usage:
//
//	bip21 [--network mainnet] [--amount SAT | --btc DEC] [--label L] [--message M]
//	      [--param key=value]... [--compact] [--raw] ADDRESS
//
// Environment:
//
//	BIP21_NETWORK     default network for address decoding
//	BIP21_LOG_LEVEL   log level (debug, info, warn, error)
//	BIP21_LOG_FORMAT  log format (console, dev, json, text, none)
package main

//go:generate go tool errtrace -w .

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/urfave/cli/v3"

	"github.com/paycodes/bip21/internal/errorutil"
	"github.com/paycodes/bip21/internal/grammar"
	"github.com/paycodes/bip21/internal/log"
	"github.com/paycodes/bip21/uri"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		logger: log.New(stderr, "console", slog.LevelInfo),
	}
	if err := a.command().Run(ctx, args); err != nil {
		a.logger.ErrorContext(ctx, "failed to build payment URI", slog.Any("error", err))
		return 1
	}
	return 0
}

var networks = map[string]*chaincfg.Params{
	"mainnet":  &chaincfg.MainNetParams,
	"testnet":  &chaincfg.TestNet3Params,
	"testnet3": &chaincfg.TestNet3Params,
	"signet":   &chaincfg.SigNetParams,
	"regtest":  &chaincfg.RegressionNetParams,
}

type app struct {
	stdout, stderr io.Writer
	logger         *slog.Logger
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:                      "bip21",
		Usage:                     "build a bitcoin: payment URI",
		ArgsUsage:                 "ADDRESS",
		Writer:                    a.stdout,
		ErrWriter:                 a.stderr,
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "network",
				Aliases: []string{"n"},
				Value:   "mainnet",
				Usage:   "network of the address: mainnet, testnet3, signet or regtest",
				Sources: cli.EnvVars("BIP21_NETWORK"),
			},
			&cli.Int64Flag{
				Name:  "amount",
				Usage: "amount to pay in satoshi",
			},
			&cli.StringFlag{
				Name:  "btc",
				Usage: "amount to pay in BTC, e.g. 0.015",
			},
			&cli.StringFlag{
				Name:  "label",
				Usage: "label of the receiver",
			},
			&cli.StringFlag{
				Name:  "message",
				Usage: "message describing the payment",
			},
			&cli.StringSliceFlag{
				Name:  "param",
				Usage: "extra parameter as key=value, can be repeated",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "render the QR-code-optimized form",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "use the address as is, without decoding",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level: debug, info, warn or error",
				Sources: cli.EnvVars("BIP21_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "console",
				Usage:   "log format: console, dev, json, text or none",
				Sources: cli.EnvVars("BIP21_LOG_FORMAT"),
			},
		},
		Before: a.before,
		Action: a.action,
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	lvl, err := log.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return ctx, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	a.logger = log.New(a.stderr, cmd.String("log-format"), lvl)
	return ctx, nil
}

func (a *app) action(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("expected exactly one ADDRESS argument, got %d", cmd.Args().Len()))
	}

	addr, err := a.parseAddress(cmd)
	if err != nil {
		return errtrace.Wrap(err)
	}
	amt, err := parseAmount(cmd)
	if err != nil {
		return errtrace.Wrap(err)
	}
	extras, err := parseParams(cmd.StringSlice("param"))
	if err != nil {
		return errtrace.Wrap(err)
	}

	u := uri.WithExtras(addr, extras)
	u.Amount = amt
	if cmd.IsSet("label") {
		u.Label = uri.StringParam(cmd.String("label"))
	}
	if cmd.IsSet("message") {
		u.Message = uri.StringParam(cmd.String("message"))
	}
	if err := u.Validate(); err != nil {
		return errtrace.Wrap(err)
	}

	opts := &uri.RenderOptions{Compact: cmd.Bool("compact")}
	a.logger.DebugContext(ctx, "render payment URI",
		slog.Any("address", addr),
		slog.Any("amount", amt),
		slog.Any("extras", log.FmtValue(extras, false)),
		slog.Any("options", log.FmtValue(opts, false)),
	)

	if _, err := u.RenderTo(a.stdout, opts); err != nil {
		return errtrace.Wrap(err)
	}
	_, err = io.WriteString(a.stdout, "\n")
	return errtrace.Wrap(err)
}

func (a *app) parseAddress(cmd *cli.Command) (uri.Address, error) {
	s := cmd.Args().First()
	if cmd.Bool("raw") {
		a.logger.Debug("raw address", slog.Any("address", log.StringValue(s)))
		return uri.Addr(s), nil
	}

	name := strings.ToLower(cmd.String("network"))
	net, ok := networks[name]
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown network %q", name))
	}
	addr, err := uri.ParseBTCAddress(s, net)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	a.logger.Debug("address decoded", slog.String("network", net.Name), slog.Any("address", addr.Address))
	return addr, nil
}

func parseAmount(cmd *cli.Command) (*btcutil.Amount, error) {
	switch {
	case cmd.IsSet("amount") && cmd.IsSet("btc"):
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("flags --amount and --btc are mutually exclusive"))
	case cmd.IsSet("amount"):
		return uri.Sat(cmd.Int64("amount")), nil
	case cmd.IsSet("btc"):
		f, err := strconv.ParseFloat(cmd.String("btc"), 64)
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
		}
		amt, err := btcutil.NewAmount(f)
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
		}
		return &amt, nil
	default:
		return nil, nil
	}
}

// parseParams splits each value on the first "=", so keys never contain it.
func parseParams(vals []string) (uri.KVs, error) {
	var (
		kvs  uri.KVs
		errs []error
	)
	for _, v := range vals {
		key, val, ok := strings.Cut(v, "=")
		if !ok {
			errs = append(errs, errorutil.NewInvalidArgumentError("param %q: expected key=value", v))
			continue
		}
		if !grammar.IsParamKey(key) {
			errs = append(errs, errorutil.NewInvalidArgumentError("param %q: invalid key %q", v, key))
			continue
		}
		kvs = append(kvs, uri.KV{Key: key, Value: val})
	}
	if len(errs) > 0 {
		return nil, errtrace.Wrap(errorutil.JoinPrefix("invalid params:", errs...))
	}
	return kvs, nil
}
