package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/internal/api"
	appConfig "github.com/billboardhub/bbadmin/internal/config"
	"github.com/billboardhub/bbadmin/internal/format"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "CLI configuration commands",
	Long: `CLI configuration commands for bbadmin.

This command group reads and writes the settings stored in the config
file: backend URL and timeout, output defaults and list defaults.`,
}

// getCmd prints one setting
var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

// setCmd stores one setting
var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long:  "Change a setting, e.g. 'bbadmin config set server.url https://api.example.com/api'",
	Args:  cobra.ExactArgs(2),
	RunE:  runSet,
}

// listCmd prints every setting
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	RunE:  runList,
}

// pathCmd prints the config file location
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(appConfig.Path())
		return nil
	},
}

// settable lists the keys set accepts, with a parser for their values
var settable = map[string]func(string) (interface{}, error){
	"server.url":        parseString,
	"server.timeout":    parseDuration,
	"server.retries":    parseInt,
	"format.default":    parseFormat,
	"format.colors":     parseBool,
	"format.timestamps": parseBool,
	"list.page_size":    parsePageSize,
	"list.toast_delay":  parseDuration,
}

func runGet(cmd *cobra.Command, args []string) error {
	value := appConfig.Value(args[0])
	if value == nil {
		return fmt.Errorf("unknown setting: %s", args[0])
	}
	if args[0] == "auth.cookie" {
		value = redact(fmt.Sprint(value))
	}
	fmt.Println(value)
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	parse, ok := settable[args[0]]
	if !ok {
		return fmt.Errorf("setting %s cannot be changed with config set", args[0])
	}
	value, err := parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", args[0], err)
	}

	if err := appConfig.Set(args[0], value); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	format.PrintSuccess("✓ %s set to %v", args[0], value)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	all := appConfig.All()
	if auth, ok := all["auth"].(map[string]interface{}); ok {
		if cookie, ok := auth["cookie"].(string); ok {
			auth["cookie"] = redact(cookie)
		}
	}
	return format.Print(flatten("", all))
}

// flatten turns nested settings into dotted keys
func flatten(prefix string, m map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{}
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			for nk, nv := range flatten(key, nested) {
				out[nk] = nv
			}
			continue
		}
		out[key] = v
	}
	return out
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}

func parseString(s string) (interface{}, error) { return s, nil }

func parseBool(s string) (interface{}, error) { return strconv.ParseBool(s) }

func parseInt(s string) (interface{}, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("want a non-negative integer")
	}
	return n, nil
}

func parseDuration(s string) (interface{}, error) {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return nil, fmt.Errorf("want a positive duration such as 30s or 2.5s")
	}
	return s, nil
}

func parsePageSize(s string) (interface{}, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !api.ValidPageSize(n) {
		return nil, fmt.Errorf("want one of %v", api.PageSizes)
	}
	return n, nil
}

func parseFormat(s string) (interface{}, error) {
	for _, f := range format.Formats {
		if f == s {
			return s, nil
		}
	}
	return nil, fmt.Errorf("want one of %v", format.Formats)
}

func init() {
	// Add subcommands
	ConfigCmd.AddCommand(getCmd)
	ConfigCmd.AddCommand(setCmd)
	ConfigCmd.AddCommand(listCmd)
	ConfigCmd.AddCommand(pathCmd)
}
