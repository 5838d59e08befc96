// Command validate smoke-tests a running CAsense server by hitting every API
// surface and checking status codes and response content.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type check struct {
	method   string
	path     string
	body     string
	status   int
	contains []string
}

var checks = []check{
	{method: "GET", path: "/api/health", status: http.StatusOK, contains: []string{`"status":"ok"`}},

	// Records
	{method: "GET", path: "/api/clients", status: http.StatusOK, contains: []string{`"clients"`}},
	{method: "GET", path: "/api/transactions", status: http.StatusOK, contains: []string{`"transactions"`}},
	{method: "GET", path: "/api/invoices", status: http.StatusOK, contains: []string{`"invoices"`}},
	{method: "GET", path: "/api/categories", status: http.StatusOK, contains: []string{`"categories"`}},
	{method: "GET", path: "/api/categories?type=income", status: http.StatusOK, contains: []string{"Service Revenue"}},

	// Analysis
	{method: "GET", path: "/api/dashboard?period=month", status: http.StatusOK, contains: []string{`"metrics"`}},
	{method: "GET", path: "/api/reports/pl?from=2024-01-01&to=2024-12-31", status: http.StatusOK, contains: []string{`"profitLoss"`}},
	{method: "GET", path: "/api/reports/balance-sheet?from=2024-01-01&to=2024-12-31", status: http.StatusOK, contains: []string{`"balanceSheet"`}},
	{method: "GET", path: "/api/reports/pl", status: http.StatusBadRequest},
	{method: "GET", path: "/api/insights?category=profit", status: http.StatusOK, contains: []string{`"insights"`}},
	{method: "GET", path: "/api/compliance", status: http.StatusOK, contains: []string{"GSTR-3B"}},

	// Calculators
	{method: "POST", path: "/api/tax/gst", body: `{"amount":1000,"rate":18}`, status: http.StatusOK, contains: []string{`"gstAmount":180`}},
	{method: "POST", path: "/api/tax/income", body: `{"annualIncome":700000,"regime":"new"}`, status: http.StatusOK, contains: []string{`"totalTax"`}},
}

func main() {
	base := flag.String("url", "http://localhost:8080", "Base URL of the server to validate")
	verbose := flag.Bool("v", false, "Verbose output")
	timeout := flag.Int("timeout", 10, "Request timeout in seconds")
	flag.Parse()

	client := &http.Client{Timeout: time.Duration(*timeout) * time.Second}

	fmt.Printf("Validating %s (%d checks)\n\n", *base, len(checks))

	failed := 0
	for _, c := range checks {
		start := time.Now()
		err := run(client, *base, c)
		if err != nil {
			failed++
			fmt.Printf("FAIL %-4s %s: %v\n", c.method, c.path, err)
			continue
		}
		if *verbose {
			fmt.Printf("ok   %-4s %s (%v)\n", c.method, c.path, time.Since(start).Round(time.Millisecond))
		}
	}

	fmt.Printf("\n%d/%d checks passed\n", len(checks)-failed, len(checks))
	if failed > 0 {
		os.Exit(1)
	}
}

func run(client *http.Client, base string, c check) error {
	var reqBody io.Reader
	if c.body != "" {
		reqBody = strings.NewReader(c.body)
	}
	req, err := http.NewRequest(c.method, base+c.path, reqBody)
	if err != nil {
		return err
	}
	if c.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != c.status {
		return fmt.Errorf("status %d, want %d", resp.StatusCode, c.status)
	}
	if !json.Valid(body) {
		return fmt.Errorf("response is not valid JSON")
	}
	for _, needle := range c.contains {
		if !strings.Contains(string(body), needle) {
			return fmt.Errorf("response missing %q", needle)
		}
	}
	return nil
}
