package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hookd/pkg/types"
)

// buildRootCmd constructs the Cobra command tree for the hookd dev CLI.
func buildRootCmd() *cobra.Command {
	defaultAddr := "http://127.0.0.1:8080"
	if v := os.Getenv("HOOKD_ADDR"); v != "" {
		if !strings.HasPrefix(v, "http") {
			v = "http://127.0.0.1" + v
		}
		defaultAddr = v
	}

	var addr string
	root := &cobra.Command{
		Use:           "hookctl",
		Short:         "Dev utilities for a running hookd daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&addr, "addr", defaultAddr, "Base URL of the hookd daemon (defaults HOOKD_ADDR)")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint(addr + "/status")
		},
	}

	entitiesCmd := &cobra.Command{Use: "entities", Short: "Inspect and create entities"}
	entitiesList := &cobra.Command{
		Use:   "list",
		Short: "List entities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint(addr + "/entities")
		},
	}
	var createFields string
	entitiesCreate := &cobra.Command{
		Use:     "create <id>",
		Short:   "Create an entity",
		Example: "  hookctl entities create article-42 --fields '{\"title\":\"hi\"}'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseJSONMap(createFields)
			if err != nil {
				return fmt.Errorf("--fields: %w", err)
			}
			req := types.CreateEntityRequest{ID: args[0], Fields: fields}
			return postAndPrint(addr+"/entities", req)
		},
	}
	entitiesCreate.Flags().StringVar(&createFields, "fields", "", "Initial fields as a JSON object")
	entitiesCmd.AddCommand(entitiesList, entitiesCreate)

	var attachConfig string
	attachCmd := &cobra.Command{
		Use:     "attach <entity> <behavior>",
		Short:   "Attach a behavior to an entity",
		Example: "  hookctl attach article-42 audit --config '{\"events\":[\"beforeSave\"]}'",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseJSONMap(attachConfig)
			if err != nil {
				return fmt.Errorf("--config: %w", err)
			}
			req := types.AttachRequest{Name: args[1], Config: cfg}
			return postAndPrint(addr+"/entities/"+args[0]+"/behaviors", req)
		},
	}
	attachCmd.Flags().StringVar(&attachConfig, "config", "", "Behavior configuration as a JSON object")

	detachCmd := &cobra.Command{
		Use:   "detach <entity> <behavior>",
		Short: "Detach a behavior from an entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doAndPrint(http.MethodDelete, addr+"/entities/"+args[0]+"/behaviors/"+args[1], nil)
		},
	}

	var triggerData string
	triggerCmd := &cobra.Command{
		Use:     "trigger <entity> <event>",
		Short:   "Trigger an event on an entity",
		Example: "  hookctl trigger article-42 beforeSave --data '{\"title\":\"new\"}'",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseJSONMap(triggerData)
			if err != nil {
				return fmt.Errorf("--data: %w", err)
			}
			return postAndPrint(addr+"/entities/"+args[0]+"/events/"+args[1], data)
		},
	}
	triggerCmd.Flags().StringVar(&triggerData, "data", "", "Event payload as a JSON object")

	var saveFields string
	saveCmd := &cobra.Command{
		Use:   "save <entity>",
		Short: "Save fields on an entity (fires beforeSave/afterSave)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseJSONMap(saveFields)
			if err != nil {
				return fmt.Errorf("--fields: %w", err)
			}
			req := types.SaveFieldsRequest{Fields: fields}
			return doAndPrint(http.MethodPut, addr+"/entities/"+args[0]+"/fields", req)
		},
	}
	saveCmd.Flags().StringVar(&saveFields, "fields", "", "Fields as a JSON object")

	root.AddCommand(statusCmd, entitiesCmd, attachCmd, detachCmd, triggerCmd, saveCmd)
	return root
}

func parseJSONMap(s string) (map[string]any, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func getAndPrint(url string) error {
	return doAndPrint(http.MethodGet, url, nil)
}

func postAndPrint(url string, body any) error {
	return doAndPrint(http.MethodPost, url, body)
}

func doAndPrint(method, url string, body any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(out) > 0 {
		fmt.Println(strings.TrimSpace(string(out)))
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: %s", method, url, resp.Status)
	}
	return nil
}
