package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	baseURL string
	timeout time.Duration

	// Swappable for tests.
	bcryptGenerate = bcrypt.GenerateFromPassword
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stockledger-cli",
		Short: "Stockledger CLI tool",
		Long:  `A command line interface for interacting with the Stockledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Stockledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	productCmd := &cobra.Command{
		Use:   "product",
		Short: "Product operations",
	}

	productCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List products",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/products/")
		},
	})

	productCmd.AddCommand(&cobra.Command{
		Use:   "get <product-id>",
		Short: "Show a single product",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/products/" + args[0])
		},
	})

	stockCmd := &cobra.Command{
		Use:   "stock <product-id>",
		Short: "Show current stock for a product",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/products/" + args[0] + "/stock")
		},
	}

	feedCmd := &cobra.Command{
		Use:   "feed <product-id>",
		Short: "Show the inventory feed for a product",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showFeed(args[0])
		},
	}

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/ready")
		},
	}

	rootCmd.AddCommand(productCmd, stockCmd, feedCmd, healthCmd, hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// hashPasswordCmd hashes a password for seeding users directly in the
// database.
func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a password with bcrypt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}

func getJSON(path string) {
	body := fetch(path)

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)
}

func showFeed(productID string) {
	body := fetch("/api/v1/products/" + productID + "/inventories")

	var rows []struct {
		ID       string    `json:"id"`
		Quantity int64     `json:"quantity"`
		Type     string    `json:"type"`
		Date     time.Time `json:"date"`
		Unit     string    `json:"unit"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-28s %-10s %10s %12s  %s\n", "ID", "TYPE", "QTY", "UNIT", "DATE")
	for _, row := range rows {
		fmt.Printf("%-28s %-10s %10d %12s  %s\n",
			truncate(row.ID, 28), row.Type, row.Quantity, row.Unit,
			row.Date.Format(time.RFC3339))
	}
}

func fetch(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
