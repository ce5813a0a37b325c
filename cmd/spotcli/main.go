// spotcli is a small demonstration binary: it connects the WebSocket
// API client, runs a few public queries, and shuts down cleanly on
// SIGINT/SIGTERM.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tradewire/binance-spot/auth"
	"github.com/tradewire/binance-spot/config"
	"github.com/tradewire/binance-spot/types/requests"
	"github.com/tradewire/binance-spot/ws"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (optional)")
	symbol := flag.String("symbol", "BTCUSDT", "Symbol to query")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var signer auth.Signer
	if cfg.Auth != nil && cfg.Auth.APIKey != "" {
		signer = auth.NewHMACSigner(cfg.Auth.APIKey, cfg.Auth.APISecret)
		log.Info().Msg("authentication configured")
	}

	client := ws.Connect(cfg, signer)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := client.WaitForConnection(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to establish websocket connection")
	}
	log.Info().Stringer("status", client.Status()).Msg("connected")

	if err := client.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("ping failed")
	}

	if st, err := client.ServerTime(ctx); err != nil {
		log.Error().Err(err).Msg("server time query failed")
	} else {
		log.Info().Int64("server_time", st.ServerTime).Msg("server time")
	}

	if book, err := client.OrderBook(ctx, requests.OrderBook{Symbol: *symbol, Limit: 5}); err != nil {
		log.Error().Err(err).Str("symbol", *symbol).Msg("depth query failed")
	} else if len(book.Bids) > 0 && len(book.Asks) > 0 {
		log.Info().
			Str("symbol", *symbol).
			Str("best_bid", book.Bids[0].Price.String()).
			Str("best_ask", book.Asks[0].Price.String()).
			Msg("depth snapshot")
	}

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	log.Info().Msg("running, press ctrl-c to exit")
	<-stopCh

	if err := client.Close(); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	} else {
		log.Info().Msg("shutdown complete")
	}
}
