// Command live-check exercises the client against a real Home Assistant
// instance. It is a manual smoke test for schema drift between releases,
// not part of the automated test suite.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	homeassistant "github.com/StefanBossbaly/home-assistant-rest"
)

var (
	baseURL     = flag.String("url", os.Getenv("HASS_URL"), "Home Assistant base URL (or use HASS_URL env)")
	token       = flag.String("token", os.Getenv("HASS_TOKEN"), "long-lived access token (or use HASS_TOKEN env)")
	diagnostics = flag.Bool("diagnostics", true, "enable field-path decode errors")
)

type checkResult struct {
	Endpoint string
	Success  bool
	Error    string
	Detail   string
	Duration time.Duration
}

func main() {
	flag.Parse()

	if *baseURL == "" {
		log.Fatal("Base URL is required. Use -url flag or HASS_URL environment variable")
	}
	if *token == "" {
		log.Fatal("Token is required. Use -token flag or HASS_TOKEN environment variable")
	}

	client, err := homeassistant.NewWithConfig(&homeassistant.ClientConfig{
		BaseURL:     *baseURL,
		Token:       *token,
		Diagnostics: *diagnostics,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	fmt.Printf("Checking %s...\n", *baseURL)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	results := []checkResult{
		run("GET /api/", func() (string, error) {
			status, err := client.Status(ctx)
			if err != nil {
				return "", err
			}
			return status.Message, nil
		}),
		run("GET /api/config", func() (string, error) {
			cfg, err := client.GetConfig(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s, version %s", cfg.LocationName, cfg.Version), nil
		}),
		run("GET /api/events", func() (string, error) {
			events, err := client.Events(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d event types", len(events)), nil
		}),
		run("GET /api/services", func() (string, error) {
			domains, err := client.Services(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d domains", len(domains)), nil
		}),
		run("GET /api/states", func() (string, error) {
			states, err := client.States(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d entities", len(states)), nil
		}),
		run("GET /api/history/period", func() (string, error) {
			entries, err := client.History(ctx, homeassistant.HistoryParams{
				StartTime: time.Now().Add(-time.Hour),
			})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d entities with changes", len(entries)), nil
		}),
		run("GET /api/logbook", func() (string, error) {
			entries, err := client.Logbook(ctx, homeassistant.LogbookParams{
				StartTime: time.Now().Add(-time.Hour),
			})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d entries", len(entries)), nil
		}),
		run("GET /api/calendars", func() (string, error) {
			calendars, err := client.Calendars(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d calendars", len(calendars)), nil
		}),
		run("POST /api/template", func() (string, error) {
			return client.RenderTemplate(ctx, "{{ now() }}")
		}),
		run("GET /api/error_log", func() (string, error) {
			logText, err := client.ErrorLog(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d bytes", len(logText)), nil
		}),
		run("POST /api/config/core/check_config", func() (string, error) {
			check, err := client.CheckConfig(ctx)
			if err != nil {
				return "", err
			}
			return check.Result, nil
		}),
	}

	fmt.Println()
	fmt.Println("Summary")
	fmt.Println(strings.Repeat("=", 60))

	failed := 0
	for _, result := range results {
		status := "ok  "
		if !result.Success {
			status = "FAIL"
			failed++
		}

		fmt.Printf("%s %-40s %v\n", status, result.Endpoint, result.Duration)
		if result.Error != "" {
			fmt.Printf("     %s\n", result.Error)
		} else if result.Detail != "" {
			fmt.Printf("     %s\n", result.Detail)
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d endpoints failed\n", failed, len(results))
		os.Exit(1)
	}
	fmt.Printf("\nAll %d endpoints passed\n", len(results))
}

func run(endpoint string, check func() (string, error)) checkResult {
	fmt.Printf("-> %s\n", endpoint)

	start := time.Now()
	detail, err := check()
	duration := time.Since(start)

	if err != nil {
		return checkResult{Endpoint: endpoint, Error: err.Error(), Duration: duration}
	}
	return checkResult{Endpoint: endpoint, Success: true, Detail: detail, Duration: duration}
}
