package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sdb-client/internal/adapters/sdbhttp"
	"sdb-client/internal/config"
	"sdb-client/internal/domain"
	"sdb-client/internal/platform/obs"
)

// genericFailure is shown for transport failures, which carry no message
// meant for the user.
const genericFailure = "Could not reach the SDB backend. Please try again."

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	warnMark = color.New(color.FgYellow).Sprint("!")
	failMark = color.New(color.FgRed).Sprint("✗")
)

// connect loads config and builds a client, honoring --base-url.
func connect(cmd *cobra.Command) (*sdbhttp.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if u, _ := cmd.Flags().GetString("base-url"); u != "" {
		cfg.BaseURL = u
	}

	c, err := sdbhttp.NewClient(cfg.BaseURL)
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}

// commandContext tags log lines of one invocation with the command path.
func commandContext(cmd *cobra.Command) context.Context {
	id := fmt.Sprintf("%s-%d", cmd.Name(), time.Now().UnixNano())
	return obs.WithRequestID(cmd.Context(), id)
}

// userError turns a contract error into the message a user should see.
// Domain and validation messages are printed verbatim.
func userError(action string, err error) error {
	msg := domain.UserMessage(err, genericFailure)
	if domain.Classify(err) == domain.TransportFailure {
		fmt.Fprintf(os.Stderr, "%s %s failed: %v\n", warnMark, action, err)
	}
	return fmt.Errorf("%s %s: %s", failMark, action, msg)
}
