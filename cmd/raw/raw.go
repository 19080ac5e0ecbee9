package raw

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/cli"
	"github.com/billboardhub/bbadmin/internal/format"
)

// RawCmd represents the raw command
var RawCmd = &cobra.Command{
	Use:   "raw <method> <path>",
	Short: "Send a request to any backend endpoint",
	Long: `Send a request to any backend endpoint through the configured client.

The session cookie, retries and error extraction apply as for every other
command. With --list the body is normalized as a paginated listing and
the resolved envelope kind is reported.`,
	Example: `  bbadmin raw GET /category --param page=1 --param pageSize=5 --list
  bbadmin raw PATCH /category/42 --data '{"name":"Digital"}'`,
	Args: cobra.ExactArgs(2),
	RunE: runRaw,
}

func runRaw(cmd *cobra.Command, args []string) error {
	sess := cli.Session()
	method := strings.ToUpper(args[0])

	params, _ := cmd.Flags().GetStringArray("param")
	query := url.Values{}
	for _, p := range params {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return fmt.Errorf("invalid --param %q, want key=value", p)
		}
		if v != "" {
			query.Add(k, v)
		}
	}

	req := api.Request{Method: method, Path: args[1], Query: query}
	if data, _ := cmd.Flags().GetString("data"); data != "" {
		var body interface{}
		if err := json.Unmarshal([]byte(data), &body); err != nil {
			return fmt.Errorf("--data is not valid JSON: %w", err)
		}
		req.Body = body
	}

	resp, err := sess.Client().Do(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, args[1], err)
	}

	if list, _ := cmd.Flags().GetBool("list"); list {
		env, err := api.ParseEnvelope(resp.Body)
		if err != nil {
			return err
		}
		res, err := api.Normalize[map[string]interface{}](resp.Body)
		if err != nil {
			return err
		}
		if err := format.Print(res.Data); err != nil {
			return err
		}
		if !format.IsStructured(cli.OutputFormat()) {
			format.PrintInfo("%s, %d rows, total %d", env.Kind, len(res.Data), res.Total)
		}
		return nil
	}

	if len(resp.Body) == 0 {
		format.PrintSuccess("✓ %d", resp.StatusCode)
		return nil
	}
	var body interface{}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		fmt.Println(string(resp.Body))
		return nil
	}
	return format.Print(body)
}

func init() {
	RawCmd.Flags().StringArrayP("param", "p", nil, "Query parameter key=value (repeatable, empty values are dropped)")
	RawCmd.Flags().StringP("data", "d", "", "JSON request body")
	RawCmd.Flags().Bool("list", false, "Normalize the body as a paginated listing")
}
