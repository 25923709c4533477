package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stockledger-cli",
		Short: "Stock ledger CLI tool",
		Long:  `A command line interface for interacting with the stock ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the stock ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Movement commands
	movementCmd := &cobra.Command{
		Use:   "movement",
		Short: "Movement ledger operations",
	}

	var (
		recordLocation  string
		recordReference string
		recordOperator  string
		recordReason    string
	)

	recordCmd := &cobra.Command{
		Use:   "record <item> <in|out|return> <quantity>",
		Short: "Record a stock movement",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			recordMovement(args[0], args[1], args[2], recordLocation, recordReference, recordOperator, recordReason)
		},
	}
	recordCmd.Flags().StringVar(&recordLocation, "location", "", "Storage location")
	recordCmd.Flags().StringVar(&recordReference, "reference", "", "Order or document reference")
	recordCmd.Flags().StringVar(&recordOperator, "operator", "", "Operator name")
	recordCmd.Flags().StringVar(&recordReason, "reason", "", "Movement reason")

	movementCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(movementCmd)

	// Stock commands
	stockCmd := &cobra.Command{
		Use:   "stock",
		Short: "Stock level operations",
	}

	var (
		levelsStatus   string
		levelsCategory string
	)

	levelsCmd := &cobra.Command{
		Use:   "levels",
		Short: "List projected stock levels",
		Run: func(cmd *cobra.Command, args []string) {
			listLevels(levelsStatus, levelsCategory)
		},
	}
	levelsCmd.Flags().StringVar(&levelsStatus, "status", "", "Filter by status (Healthy, Low, Critical)")
	levelsCmd.Flags().StringVar(&levelsCategory, "category", "", "Filter by category")

	stockCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(stockCmd)

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify ledger balance chains",
		Run: func(cmd *cobra.Command, args []string) {
			verifyLedger()
		},
	}

	ledgerCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(ledgerCmd)

	// Report commands
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Reporting operations",
	}

	dashboardCmd := &cobra.Command{
		Use:   "dashboard <facts.json>",
		Short: "Build a KPI dashboard from a period facts file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			buildDashboard(args[0])
		},
	}

	reportCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func recordMovement(item, movementType, quantity, location, reference, operator, reason string) {
	payload, err := json.Marshal(map[string]any{
		"item":      item,
		"type":      movementType,
		"quantity":  json.Number(quantity),
		"location":  location,
		"reference": reference,
		"operator":  operator,
		"reason":    reason,
	})
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/movements/", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("Record FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Movement recorded\n")
	fmt.Printf("ID: %v\n", result["id"])
	fmt.Printf("Balance: %v -> %v\n", result["balanceBefore"], result["balanceAfter"])
}

func listLevels(status, category string) {
	client := &http.Client{Timeout: timeout}

	url := baseURL + "/api/v1/stock/levels"
	sep := "?"
	if status != "" {
		url += sep + "status=" + status
		sep = "&"
	}
	if category != "" {
		url += sep + "category=" + category
	}

	resp, err := client.Get(url)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Listing FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var levels []map[string]any
	if err := json.Unmarshal(body, &levels); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, level := range levels {
		fmt.Printf("%v\t%v\t%v/%v %v\t%v\n",
			level["id"], level["item"], level["currentStock"], level["maxStock"], level["unit"], level["status"])
	}
}

func buildDashboard(factsPath string) {
	payload, err := os.ReadFile(factsPath)
	if err != nil {
		fmt.Printf("Failed to read facts file: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/reports/dashboard", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Dashboard FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}

	fmt.Println(pretty.String())
}

func verifyLedger() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/ledger/verify")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Verification FAILED (Status: %d)\n", resp.StatusCode)
		fmt.Printf("Broken items: %v\n", result["brokenItems"])
		os.Exit(1)
	}

	fmt.Printf("Verification PASSED\n")
	fmt.Printf("Items checked: %v\n", result["itemsChecked"])
	fmt.Printf("Movements: %v\n", result["movementCount"])
}
