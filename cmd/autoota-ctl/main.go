/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autoota-ctl",
	Short: "AutoOTA Control Utility",
}

func main() {
	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "Schedule an update probe on the next scheduler iteration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execPost("/probe")
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Print general information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execGet("/info")
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Print the agent state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execGet("/status")
		},
	}

	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Print agent log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execGet("/log")
		},
	}

	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func execGet(path string) error {
	res, err := http.Get(buildURL(path))
	if err != nil {
		return err
	}

	return printResponse(res)
}

func execPost(path string) error {
	res, err := http.Post(buildURL(path), "application/json", nil)
	if err != nil {
		return err
	}

	return printResponse(res)
}

func printResponse(res *http.Response) error {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return err
	}

	output, _ := prettyjson.Marshal(data)
	fmt.Println(string(output))

	return nil
}

func buildURL(path string) string {
	return fmt.Sprintf("http://localhost:8571/%s", path[1:])
}
