package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nlradio/nl80211"
)

var (
	scanTrigger bool
	scanTimeout time.Duration
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Show access points known to an interface",
	Long: `Scan lists the BSS entries from the interface's scan result cache.

Examples:
  # Show cached scan results
  wifictl scan -i wlan0

  # Trigger a fresh scan and wait for its results first
  wifictl scan -i wlan0 --trigger

  # Trigger with an extended wait
  wifictl scan -i wlan0 --trigger --scan-timeout 30s`,

	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanTrigger, "trigger", false, "Trigger a new scan before reading results")
	scanCmd.Flags().DurationVar(&scanTimeout, "scan-timeout", 15*time.Second, "How long to wait for triggered scan results")
}

func runScan(cmd *cobra.Command, args []string) error {
	client, err := createClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ifi, err := findInterface(client)
	if err != nil {
		return err
	}

	if scanTrigger {
		fmt.Fprintln(os.Stderr, "Scanning for access points...")

		ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
		defer cancel()

		if err := client.Scan(ctx, ifi); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
	}

	bsss, err := client.AccessPoints(ifi)
	if err != nil {
		return fmt.Errorf("read scan results: %w", err)
	}

	logger.Debug("read scan results", "interface", ifaceName, "count", len(bsss))

	if len(bsss) == 0 {
		fmt.Println("No access points found")
		return nil
	}

	f := NewFormatter(outputFmt)
	if f.JSON() {
		return f.PrintJSON(bsss)
	}

	headers := []string{"BSSID", "FREQ", "CHANNEL", "SIGNAL", "LAST SEEN", "ASSOCIATED"}
	rows := make([][]string, 0, len(bsss))
	for _, bss := range bsss {
		bssid := "-"
		if bss.BSSID != nil {
			bssid = bss.BSSID.String()
		}

		channel := "-"
		if bss.Frequency != nil {
			channel = fmt.Sprintf("%d", nl80211.FrequencyToChannel(int(*bss.Frequency)))
		}

		associated := ""
		if bss.Status != nil && *bss.Status {
			associated = "*"
		}

		rows = append(rows, []string{
			bssid,
			cell(bss.Frequency, func(v uint32) string { return fmt.Sprintf("%d MHz", v) }),
			channel,
			cell(bss.Signal, func(v int32) string { return fmt.Sprintf("%g dBm", float64(v)/100) }),
			cell(bss.LastSeen, func(v uint32) string { return fmt.Sprintf("%d ms", v) }),
			associated,
		})
	}

	f.PrintTable(headers, rows)
	fmt.Printf("\nFound %d access point(s)\n", len(bsss))
	return nil
}
