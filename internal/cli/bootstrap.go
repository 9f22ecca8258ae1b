package cli

import (
	"context"
	"fmt"

	"github.com/habitlab/habitlab/internal/bootstrap"
	"github.com/habitlab/habitlab/internal/keyring"
	"github.com/habitlab/habitlab/internal/logger"
)

type BootstrapCmd struct {
	URL string `help:"Override the bootstrap endpoint."`
}

// Run performs the first-run routing check. A stored token, or a response
// that parses as token#link, routes to the content view; any failure falls
// back to the habit tracker. The decision never touches habit data.
func (c *BootstrapCmd) Run(ctx *Context) error {
	if keyring.HasToken() {
		fmt.Println("Route: content view (token already stored)")
		return nil
	}

	client := bootstrap.NewClient(c.URL)
	response, err := client.Fetch(context.Background())
	if err != nil {
		logger.Warn("Bootstrap fetch failed", "error", err)
		fmt.Println("Route: main app")
		return nil
	}

	token, link, ok := bootstrap.Parse(response)
	if !ok {
		fmt.Println("Route: main app")
		return nil
	}

	if err := keyring.SetToken(token); err != nil {
		return err
	}
	if err := ctx.Prefs.SetServerLink(link); err != nil {
		return err
	}

	fmt.Println("Route: content view")
	return nil
}
