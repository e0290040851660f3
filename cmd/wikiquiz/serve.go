package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	wikigin "github.com/fwojciec/wikiquiz/gin"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := wikigin.NewServer(deps.Service,
		wikigin.WithAddr(c.Addr),
		wikigin.WithLogger(deps.Logger),
	)
	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to start server on %q: %w", c.Addr, err)
	}
	defer server.Close()

	fmt.Fprintf(deps.Stdout, "wikiquiz listening on %s\n", server.Addr())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sig:
	case <-deps.Ctx.Done():
	}

	fmt.Fprintln(deps.Stdout, "shutting down")
	return server.Close()
}
