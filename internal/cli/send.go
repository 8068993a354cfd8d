package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/courier/http"
	"github.com/wesleyorama2/courier/modifier"
)

var sendCmd = &cobra.Command{
	Use:   "send METHOD URL",
	Short: "Send a single HTTP request and print its timed response",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, target := strings.ToUpper(args[0]), args[1]
		headers, _ := cmd.Flags().GetStringArray("header")
		params, _ := cmd.Flags().GetStringArray("param")
		form, _ := cmd.Flags().GetBool("form")
		bearer, _ := cmd.Flags().GetString("bearer")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		req := http.NewRequest(http.Method(method), "").WithBaseURL(target)
		for _, header := range headers {
			parts := strings.SplitN(header, ":", 2)
			if len(parts) != 2 {
				return fmt.Errorf("invalid header %q, want key:value", header)
			}
			req.WithHeader(http.Header{
				Key:   strings.TrimSpace(parts[0]),
				Value: strings.TrimSpace(parts[1]),
			})
		}
		for _, param := range params {
			parts := strings.SplitN(param, "=", 2)
			if len(parts) != 2 {
				return fmt.Errorf("invalid param %q, want key=value", param)
			}
			req.WithParam(parts[0], parts[1])
		}
		if form {
			req.WithEncoding(http.EncodingForm)
		}

		var builders []http.RequestBuilder
		if bearer != "" {
			builders = append(builders, modifier.BearerAuth(bearer))
		}
		desc := http.ApplyBuilders(req, builders...)

		formatter := newFormatter(cmd)
		fmt.Print(formatter.FormatRequest(desc, target))

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		client := http.NewClient(http.WithTimeout(timeout))
		resp, err := client.Do(ctx, desc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}

		fmt.Print(formatter.FormatResponse(resp))
		return nil
	},
}

func init() {
	sendCmd.Flags().StringArrayP("header", "H", nil, "request header (key:value, repeatable)")
	sendCmd.Flags().StringArrayP("param", "p", nil, "body parameter (key=value, repeatable)")
	sendCmd.Flags().Bool("form", false, "encode parameters as a URL-encoded form instead of JSON")
	sendCmd.Flags().String("bearer", "", "bearer token for the Authorization header")
	sendCmd.Flags().DurationP("timeout", "t", 30*time.Second, "request timeout")
}
