package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List WiFi interfaces",
	Long: `Interfaces lists every WiFi interface known to nl80211.

Examples:
  # List all interfaces
  wifictl interfaces

  # Machine readable output
  wifictl interfaces -o json`,

	RunE: runInterfaces,
}

func runInterfaces(cmd *cobra.Command, args []string) error {
	client, err := createClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ifis, err := client.Interfaces()
	if err != nil {
		return fmt.Errorf("list interfaces: %w", err)
	}

	logger.Debug("listed interfaces", "count", len(ifis))

	f := NewFormatter(outputFmt)
	if f.JSON() {
		return f.PrintJSON(ifis)
	}

	headers := []string{"NAME", "INDEX", "MAC", "SSID", "FREQ", "PHY"}
	rows := make([][]string, 0, len(ifis))
	for _, ifi := range ifis {
		mac := "-"
		if ifi.HardwareAddr != nil {
			mac = ifi.HardwareAddr.String()
		}

		rows = append(rows, []string{
			cell(ifi.Name, func(s string) string { return s }),
			cell(ifi.Index, func(v uint32) string { return fmt.Sprintf("%d", v) }),
			mac,
			cell(ifi.SSID, func(s string) string { return s }),
			cell(ifi.Frequency, func(v uint32) string { return fmt.Sprintf("%d MHz", v) }),
			cell(ifi.PHY, func(v uint32) string { return fmt.Sprintf("%d", v) }),
		})
	}

	f.PrintTable(headers, rows)
	return nil
}
