package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/0xtito/xr-hand/internal/app"
	"github.com/0xtito/xr-hand/internal/config"
)

var (
	flagConfig   string
	flagMatching string
	flagHands    string
	flagHeadless bool
	flagDuration time.Duration
)

func main() {
	root := &cobra.Command{
		Use:   "xrhand",
		Short: "Hand-presence physics playground",
		Long: "xrhand maps tracked hand-joint poses onto dynamic rigid bodies\n" +
			"using velocity matching, so virtual hands push and collide instead\n" +
			"of clipping through the scene.",
		RunE: run,
	}
	root.Flags().StringVarP(&flagConfig, "config", "c", "", "path to a YAML config file")
	root.Flags().StringVarP(&flagMatching, "matching", "m", "", "matching mode: velocity or position")
	root.Flags().StringVar(&flagHands, "hands", "", "hands to simulate: both, left or right")
	root.Flags().BoolVar(&flagHeadless, "headless", false, "run without a window")
	root.Flags().DurationVar(&flagDuration, "duration", 10*time.Second, "headless run length")

	root.AddCommand(configCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	if flagConfig == "" {
		return config.Default(), nil
	}
	return config.Load(flagConfig)
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagMatching != "" {
		cfg.Matching = flagMatching
	}
	if flagHands != "" {
		cfg.Hands = flagHands
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}

	log.Printf("xrhand: matching=%s hands=%s timestep=%v", cfg.Matching, cfg.Hands, cfg.Timestep)
	if flagHeadless {
		a.RunHeadless(flagDuration)
		return nil
	}
	a.Run()
	return nil
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration helpers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "xrhand.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			fmt.Printf("%+v\n", cfg)
			return nil
		},
	})
	return cmd
}
