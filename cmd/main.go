package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"clinic-manager/cmd/bootstrap"
	"clinic-manager/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "clinic-manager",
		Short: "Clinic records manager backed by the clinic API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(configPath)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".env", "path to the .env configuration file")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(dashboardCmd(&configPath))
	rootCmd.AddCommand(deleteDoctorCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(*configPath)
		},
	}
}

func dashboardCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print the doctors, patients and enriched appointments as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			dashboard, err := app.Dashboard.Load(cmd.Context(), "")
			if err != nil {
				return fmt.Errorf("load dashboard: %w", err)
			}
			return printJSON(dashboard)
		},
	}
}

func deleteDoctorCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-doctor <id>",
		Short: "Delete a doctor together with its appointments and patients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doctorID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || doctorID <= 0 {
				return fmt.Errorf("invalid doctor id %q", args[0])
			}

			app, err := bootstrap.New(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			report, err := app.Dashboard.DeleteRecord(cmd.Context(), entity.CollectionDoctors, doctorID)
			if printErr := printJSON(report); printErr != nil {
				app.Log.Warnf("Failed to print cascade result: %v", printErr)
			}
			return err
		},
	}
}

func runServer(configPath string) error {
	app, err := bootstrap.New(configPath)
	if err != nil {
		logrus.Errorf("Failed to initialize application: %v", err)
		return err
	}

	app.Run()
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
