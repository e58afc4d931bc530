// b2bcli is a small console for poking the Magnit B2B gateway with the
// credentials from the environment. It exists to smoke-test integrations,
// not to be a full product surface.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"magnitb2b/b2b"
	"magnitb2b/internal/config"
	"magnitb2b/internal/logging"
	"magnitb2b/internal/telemetry"
)

const usage = `usage: b2bcli <command> [args]

commands:
  token                 authenticate and print the token response
  shops                 list seller shops (Magnit Market)
  categories            list marketplace categories (Magnit Market)
  pickup-points [city]  list Magnit Post pickup points
  order-status <id>     print the status of an order
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceEnv,
	)

	otelShutdown, err := telemetry.Setup(ctx, cfg.Observability, logger)
	if err != nil {
		logger.Error("failed to setup telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown telemetry", "error", err)
		}
	}()

	client, err := b2b.NewFromConfig(cfg.B2B, logger)
	if err != nil {
		logger.Error("failed to build client", "error", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(ctx, client, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *b2b.Client, command string, args []string) error {
	switch command {
	case "token":
		tok, err := client.Authenticate(ctx)
		if err != nil {
			return err
		}
		return printJSON(tok)

	case "shops":
		res, err := client.GetShops(ctx)
		if err != nil {
			return err
		}
		return printJSON(res)

	case "categories":
		res, err := client.GetCategories(ctx)
		if err != nil {
			return err
		}
		return printJSON(res)

	case "pickup-points":
		q := b2b.PickupPointsQuery{}
		if len(args) > 0 {
			q.City = args[0]
		}
		res, err := client.GetPickupPoints(ctx, q)
		if err != nil {
			return err
		}
		return printJSON(res)

	case "order-status":
		if len(args) < 1 {
			return fmt.Errorf("order-status needs an order id")
		}
		res, err := client.GetOrderStatus(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(res)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
