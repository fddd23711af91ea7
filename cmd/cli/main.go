package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/infrastructure/auth"
)

var (
	baseURL string
	token   string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "treasury-cli",
		Short: "Treasury CLI tool",
		Long:  `A command line interface for interacting with the club treasury API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the treasury API")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated endpoints")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	treasuryCmd := &cobra.Command{
		Use:   "treasury",
		Short: "Treasury operations",
	}
	treasuryCmd.AddCommand(fundCmd(), consistencyCmd())

	rootCmd.AddCommand(treasuryCmd, entriesCmd(), tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func fundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund",
		Short: "Show the cash fund snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiGet("/api/v1/treasury/fund")
			if err != nil {
				return err
			}

			return printRawJSON(body)
		},
	}
}

func consistencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consistency",
		Short: "Check cash fund consistency against the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiGet("/api/v1/treasury/fund/consistency")
			if err != nil {
				return err
			}

			var result struct {
				StoredBalance   string `json:"stored_balance"`
				ComputedBalance string `json:"computed_balance"`
				Difference      string `json:"difference"`
				Consistent      bool   `json:"consistent"`
			}
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			if result.Consistent {
				fmt.Println("Consistency check PASSED")
			} else {
				fmt.Println("Consistency check FAILED")
			}
			fmt.Printf("Stored:   %s\n", result.StoredBalance)
			fmt.Printf("Computed: %s\n", result.ComputedBalance)
			fmt.Printf("Diff:     %s\n", result.Difference)

			if !result.Consistent {
				os.Exit(1)
			}
			return nil
		},
	}
}

func entriesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List recent ledger entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiGet(fmt.Sprintf("/api/v1/entries?limit=%d", limit))
			if err != nil {
				return err
			}

			var entries []struct {
				ID            string `json:"id"`
				OperationType string `json:"operation_type"`
				Amount        string `json:"amount"`
				Description   string `json:"description"`
				OperationAt   string `json:"operation_at"`
			}
			if err := json.Unmarshal(body, &entries); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			for _, e := range entries {
				fmt.Printf("%s  %-12s  %10s  %s\n", e.OperationAt, e.OperationType, e.Amount, truncate(e.Description, 40))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of entries to show")
	return cmd
}

// tokenCmd mints a club-scoped token locally, for operators bootstrapping a
// fresh club. The secret must match the server's JWT_SECRET.
func tokenCmd() *cobra.Command {
	var (
		secret string
		userID string
		clubID string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate a club-scoped access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := domain.Role(role)
			if !r.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}

			manager := auth.NewJWTManager(secret, ttl)
			signed, err := manager.Generate(domain.Principal{UserID: userID, ClubID: clubID, Role: r})
			if err != nil {
				return err
			}

			fmt.Println(signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "JWT signing secret")
	cmd.Flags().StringVar(&userID, "user", "", "Acting user ID")
	cmd.Flags().StringVar(&clubID, "club", "", "Club ID the token is scoped to")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleTreasurer), "Role (member, treasurer, admin)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("club")

	return cmd
}

func apiGet(path string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func printRawJSON(body []byte) error {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	printJSON(v)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render json: %v\n", err)
		return
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
