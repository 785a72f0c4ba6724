package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stationCmd = &cobra.Command{
	Use:   "station",
	Short: "Show statistics for associated stations",
	Long: `Station lists statistics about each peer station associated with the
interface: the access point in station mode, or clients in AP mode.

Examples:
  # Show station statistics
  wifictl station -i wlan0

  # Machine readable output
  wifictl station -i wlan0 -o json`,

	RunE: runStation,
}

func runStation(cmd *cobra.Command, args []string) error {
	client, err := createClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ifi, err := findInterface(client)
	if err != nil {
		return err
	}

	stations, err := client.StationInfo(ifi)
	if err != nil {
		return fmt.Errorf("read station info: %w", err)
	}

	logger.Debug("read station info", "interface", ifaceName, "count", len(stations))

	if len(stations) == 0 {
		fmt.Println("No stations found")
		return nil
	}

	f := NewFormatter(outputFmt)
	if f.JSON() {
		return f.PrintJSON(stations)
	}

	headers := []string{"MAC", "CONNECTED", "SIGNAL", "AVG SIGNAL", "RX RATE", "TX RATE", "RX PKTS", "TX PKTS", "RETRIES", "FAILED"}
	rows := make([][]string, 0, len(stations))
	for _, st := range stations {
		mac := "-"
		if st.HardwareAddr != nil {
			mac = st.HardwareAddr.String()
		}

		rows = append(rows, []string{
			mac,
			cell(st.ConnectedTime, func(v uint32) string { return fmt.Sprintf("%.1f min", float64(v)/60) }),
			cell(st.Signal, func(v int8) string { return fmt.Sprintf("%d dBm", v) }),
			cell(st.SignalAverage, func(v int8) string { return fmt.Sprintf("%d dBm", v) }),
			cell(st.ReceiveBitrate, func(v uint32) string { return fmt.Sprintf("%d.%d Mb/s", v/10, v%10) }),
			cell(st.TransmitBitrate, func(v uint32) string { return fmt.Sprintf("%d.%d Mb/s", v/10, v%10) }),
			cell(st.ReceivedPackets, func(v uint32) string { return fmt.Sprintf("%d", v) }),
			cell(st.TransmittedPackets, func(v uint32) string { return fmt.Sprintf("%d", v) }),
			cell(st.TransmitRetries, func(v uint32) string { return fmt.Sprintf("%d", v) }),
			cell(st.TransmitFailed, func(v uint32) string { return fmt.Sprintf("%d", v) }),
		})
	}

	f.PrintTable(headers, rows)
	return nil
}
