package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nlradio/nl80211"
)

var (
	cfgFile   string
	ifaceName string
	timeout   time.Duration
	outputFmt string
	verbose   bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wifictl",
	Short: "A WiFi telemetry CLI built on nl80211",
	Long: `wifictl reads WiFi interface, scan result and peer station telemetry
from the kernel's nl80211 subsystem.

Examples:
  # List WiFi interfaces
  wifictl interfaces

  # Show known access points for an interface
  wifictl scan -i wlan0

  # Trigger a fresh scan first
  wifictl scan -i wlan0 --trigger

  # Show statistics for associated stations
  wifictl station -i wlan0`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logger
		logLevel := slog.LevelInfo
		if verbose {
			logLevel = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))

		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wifictl.yaml)")
	rootCmd.PersistentFlags().StringVarP(&ifaceName, "interface", "i", "", "WiFi interface name")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Bind flags to viper
	viper.BindPFlag("interface", rootCmd.PersistentFlags().Lookup("interface"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(interfacesCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(stationCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".wifictl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("WIFICTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}

	if ifaceName == "" {
		ifaceName = viper.GetString("interface")
	}
}

// createClient dials a client with the current configuration.
func createClient() (*nl80211.Client, error) {
	c, err := nl80211.New()
	if err != nil {
		return nil, fmt.Errorf("dial nl80211: %w", err)
	}

	if err := c.SetDeadline(time.Now().Add(timeout)); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	return c, nil
}

// findInterface returns the interface selected by the --interface flag, or
// the first interface that has a name when the flag is unset.
func findInterface(c *nl80211.Client) (*nl80211.Interface, error) {
	ifis, err := c.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}

	for _, ifi := range ifis {
		if ifi.Name == nil {
			continue
		}
		if ifaceName == "" || *ifi.Name == ifaceName {
			return ifi, nil
		}
	}

	if ifaceName != "" {
		return nil, fmt.Errorf("interface %q not found", ifaceName)
	}

	return nil, fmt.Errorf("no WiFi interfaces found")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("wifictl version 1.0.0")
	},
}
