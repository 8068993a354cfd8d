package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/courier/config"
	"github.com/wesleyorama2/courier/http"
	"github.com/wesleyorama2/courier/metrics"
)

var runCmd = &cobra.Command{
	Use:   "run CONFIG REQUEST",
	Short: "Run a named request from a YAML config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, reqName := args[0], args[1]
		envName, _ := cmd.Flags().GetString("env")
		repeat, _ := cmd.Flags().GetInt("repeat")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if errs := config.Validate(cfg); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "config: %s\n", e)
			}
			return fmt.Errorf("invalid config %s", configPath)
		}

		formatter := newFormatter(cmd)
		client := http.NewClient(http.WithTimeout(timeout))
		recorder := metrics.NewRecorder()

		for i := 0; i < repeat; i++ {
			// Each iteration builds a fresh description so executions
			// stay independent.
			req, err := cfg.BuildRequest(envName, reqName)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			resp, err := client.Do(ctx, req)
			cancel()
			if err != nil {
				recorder.ObserveFailure()
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			recorder.Observe(resp)

			if repeat == 1 {
				fmt.Print(formatter.FormatResponse(resp))
			}
		}

		if repeat > 1 {
			printSummary(recorder.Snapshot())
		}
		return nil
	},
}

func printSummary(snap metrics.Snapshot) {
	fmt.Printf("Requests: %d (%d ok, %d failed)\n", snap.Count, snap.Success, snap.Failures)
	if snap.Count == 0 {
		return
	}
	fmt.Printf("Latency:  min=%v mean=%v p50=%v p90=%v p99=%v max=%v\n",
		snap.Min, snap.Mean, snap.P50, snap.P90, snap.P99, snap.Max)
}

func init() {
	runCmd.Flags().StringP("env", "e", "default", "environment name from the config file")
	runCmd.Flags().IntP("repeat", "n", 1, "number of times to run the request")
	runCmd.Flags().DurationP("timeout", "t", 30*time.Second, "per-request timeout")
}
