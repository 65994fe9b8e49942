package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vkondratev/pocket-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKeyPath string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so others can play over the network.

Every connection gets its own session with the full menu. Progress is
shared through the server's save database.

Examples:
  arcade serve
  arcade serve --ssh :2222
  arcade serve --host-key ./host_key --idle-timeout 10m

Connect with: ssh -p 23235 <host>`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.DBPath = flagDBPath
		cfg.LevelsPath = flagLevels
		cfg.FPS = flagFPS
		if flagHostKeyPath != "" {
			cfg.HostKeyPath = flagHostKeyPath
		}
		if flagIdleTimeout > 0 {
			cfg.IdleTimeout = flagIdleTimeout
		}

		srv, err := tui.NewSSHServer(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := srv.ListenAndServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKeyPath, "host-key", "", "Path to the SSH host key (generated when missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Disconnect idle sessions after this duration")
	serveCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a custom level catalog (YAML)")
}
