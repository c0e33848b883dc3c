package main

import (
	"fmt"
	"os"

	"github.com/marcelsud/jira-relay/config"
)

/* validate-config - Standalone CLI tool to validate the relay configuration
 * Usage: go run ./cmd/validate-config [path/to/.env]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	envFile := config.DefaultFile
	if len(os.Args) > 1 {
		envFile = os.Args[1]
	}

	fmt.Printf("Validating configuration: %s + environment\n", envFile)
	fmt.Println("--------------------------------------------------")

	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "VALIDATION FAILED\n\nError: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "VALIDATION FAILED\n\nError: %v\n", err)
		os.Exit(1)
	}

	masked := cfg.Masked()
	fmt.Printf("VALIDATION PASSED\n\n")
	fmt.Printf("   Jira server:     %s\n", masked.JiraServer)
	fmt.Printf("   Jira user:       %s\n", masked.JiraUser)
	fmt.Printf("   Jira API token:  %s\n", masked.JiraAPIToken)
	fmt.Printf("   Project / type:  %s / %s\n", masked.JiraProjectKey, masked.JiraIssueType)
	fmt.Printf("   Due in:          %d day(s)\n", masked.JiraDueDays)
	fmt.Printf("   Trigger keyword: %s\n", masked.TriggerKeyword)
	fmt.Printf("   Webhook secret:  %s\n", masked.GitHubWebhookSecret)
	fmt.Printf("   GitHub token:    %s\n", masked.GitHubToken)
	fmt.Printf("   Redis:           %s db=%d\n", cfg.RedisAddr(), masked.RedisDB)
	fmt.Printf("   Dedup TTL:       %s\n", cfg.DedupTTL())
	fmt.Printf("   Log file:        %s\n", masked.LogFile)
	fmt.Printf("   Port:            %s\n", masked.Port)
	fmt.Printf("   Debug:           %t\n", masked.Debug)
	os.Exit(0)
}
