// Package bugcheck drives a running storefront API over HTTP and reports which
// of the seeded defects it can observe.
package bugcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Bug struct {
	ID          string    `json:"bug_id"`
	Description string    `json:"description"`
	Result      string    `json:"test_result"`
	Timestamp   time.Time `json:"timestamp"`
}

type Report struct {
	Timestamp   time.Time `json:"timestamp"`
	TestsPassed int       `json:"tests_passed"`
	TestsTotal  int       `json:"tests_total"`
	SuccessRate string    `json:"success_rate"`
	BugsFound   []Bug     `json:"bugs_found"`
}

type Runner struct {
	baseURL    string
	httpClient *http.Client
	out        io.Writer
	now        func() time.Time
	// marks the cart item this run adds so cleanup never touches real carts
	runID string

	testsRun    int
	testsPassed int
	bugs        []Bug
}

type response struct {
	status int
	body   []byte
}

func (r *response) decode(v any) error {
	return json.Unmarshal(r.body, v)
}

// NewRunner targets baseURL, the server root without the /api prefix.
func NewRunner(baseURL string, httpClient *http.Client, out io.Writer) *Runner {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if out == nil {
		out = io.Discard
	}

	return &Runner{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		out:        out,
		now:        time.Now,
		runID:      uuid.NewString(),
	}
}

func (r *Runner) Run(ctx context.Context) *Report {
	r.testsRun, r.testsPassed, r.bugs = 0, 0, nil

	fmt.Fprintf(r.out, "Starting bug challenge API checks against %s\n", r.baseURL)

	r.checkBasicEndpoints(ctx)
	r.checkLoginCaseSensitivity(ctx)
	r.checkCategorySwap(ctx)
	r.checkPriceSort(ctx)
	r.checkCartSwap(ctx)

	report := &Report{
		Timestamp:   r.now(),
		TestsPassed: r.testsPassed,
		TestsTotal:  r.testsRun,
		SuccessRate: successRate(r.testsPassed, r.testsRun),
		BugsFound:   append([]Bug{}, r.bugs...),
	}

	fmt.Fprintf(r.out, "\nSUMMARY\nTests run: %d\nTests passed: %d\nSuccess rate: %s\n",
		report.TestsTotal, report.TestsPassed, report.SuccessRate)
	fmt.Fprintf(r.out, "\nBUGS FOUND: %d\n", len(report.BugsFound))
	for _, bug := range report.BugsFound {
		fmt.Fprintf(r.out, "  - %s: %s\n", bug.ID, bug.Description)
	}

	return report
}

func (r *Runner) logBug(id, description string) {
	r.bugs = append(r.bugs, Bug{
		ID:          id,
		Description: description,
		Result:      "CONFIRMED",
		Timestamp:   r.now(),
	})
	fmt.Fprintf(r.out, "BUG CONFIRMED: %s\n", description)
}

// runTest performs one request and counts it as passed when the status matches.
// A transport failure counts as a failed test and yields a nil response.
func (r *Runner) runTest(ctx context.Context, name, method, path string, query url.Values, expectedStatus int, body any) (bool, *response) {
	r.testsRun++
	fmt.Fprintf(r.out, "\nTesting %s...\n", name)

	resp, err := r.do(ctx, method, path, query, body)
	if err != nil {
		fmt.Fprintf(r.out, "Failed - Error: %v\n", err)
		return false, nil
	}

	if resp.status != expectedStatus {
		fmt.Fprintf(r.out, "Failed - Expected %d, got %d\n", expectedStatus, resp.status)
		fmt.Fprintf(r.out, "Response: %s\n", truncate(string(resp.body), 200))
		return false, resp
	}

	r.testsPassed++
	fmt.Fprintf(r.out, "Passed - Status: %d\n", resp.status)
	return true, resp
}

// endpoint resolves path below the /api prefix of the base URL.
func (r *Runner) endpoint(path string, query url.Values) (string, error) {
	target, err := url.JoinPath(r.baseURL, "api", path)
	if err != nil {
		return "", fmt.Errorf("build url: %w", err)
	}
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target, nil
}

func (r *Runner) do(ctx context.Context, method, path string, query url.Values, body any) (*response, error) {
	target, err := r.endpoint(path, query)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &response{status: resp.StatusCode, body: raw}, nil
}

func (r *Runner) checkBasicEndpoints(ctx context.Context) {
	section(r.out, "BASIC API FUNCTIONALITY TESTS")

	r.runTest(ctx, "Valid login user1", http.MethodPost, "auth/login", nil, http.StatusOK,
		map[string]string{"username": "user1", "password": "user@1"})
	r.runTest(ctx, "Invalid login", http.MethodPost, "auth/login", nil, http.StatusUnauthorized,
		map[string]string{"username": "invalid", "password": "wrong"})

	if ok, resp := r.runTest(ctx, "Get all products", http.MethodGet, "products", nil, http.StatusOK, nil); ok {
		var products []product
		if err := resp.decode(&products); err == nil {
			fmt.Fprintf(r.out, "Total products: %d\n", len(products))
		}
	}

	r.runTest(ctx, "Get specific product", http.MethodGet, "products/prod1", nil, http.StatusOK, nil)
	r.runTest(ctx, "Get non-existent product", http.MethodGet, "products/nonexistent", nil, http.StatusNotFound, nil)
	r.runTest(ctx, "Search products", http.MethodGet, "products",
		url.Values{"search": {"Air"}}, http.StatusOK, nil)
}

func (r *Runner) checkLoginCaseSensitivity(ctx context.Context) {
	section(r.out, "BUG TEST #1: Case-Sensitive Username")

	r.runTest(ctx, "Login with lowercase 'user1'", http.MethodPost, "auth/login", nil, http.StatusOK,
		map[string]string{"username": "user1", "password": "user@1"})

	ok, _ := r.runTest(ctx, "Login with uppercase 'USER1'", http.MethodPost, "auth/login", nil, http.StatusUnauthorized,
		map[string]string{"username": "USER1", "password": "user@1"})
	if ok {
		r.logBug("BUG-001", "Username login is case-sensitive (should be case-insensitive)")
	}
}

func (r *Runner) checkCategorySwap(ctx context.Context) {
	section(r.out, "BUG TEST #6: Men/Women Category Swap")

	probes := []struct {
		bugID, filter, got, description string
	}{
		{"BUG-006", "men", "women", "Men filter returns women's products (categories swapped)"},
		{"BUG-006-B", "women", "men", "Women filter returns men's products (categories swapped)"},
	}

	for _, p := range probes {
		ok, resp := r.runTest(ctx, "Get products with "+p.filter+" filter", http.MethodGet,
			"products", url.Values{"category": {p.filter}}, http.StatusOK, nil)
		if !ok {
			continue
		}

		var products []product
		if err := resp.decode(&products); err != nil {
			fmt.Fprintf(r.out, "Cannot decode products: %v\n", err)
			continue
		}

		if len(products) > 0 && allCategory(products, p.got) {
			r.logBug(p.bugID, p.description)
		}
	}
}

func (r *Runner) checkPriceSort(ctx context.Context) {
	section(r.out, "BUG TEST #7: String Price Sorting")

	ok, resp := r.runTest(ctx, "Get products sorted by price ascending", http.MethodGet,
		"products", url.Values{"sort": {"price-asc"}}, http.StatusOK, nil)
	if !ok {
		return
	}

	var products []product
	if err := resp.decode(&products); err != nil {
		fmt.Fprintf(r.out, "Cannot decode products: %v\n", err)
		return
	}

	prices := make([]float64, len(products))
	texts := make([]string, len(products))
	for i, p := range products {
		prices[i] = p.Price
		texts[i] = strconv.FormatFloat(p.Price, 'f', -1, 64)
	}
	fmt.Fprintf(r.out, "Prices returned: %v\n", prices)

	if slices.IsSorted(texts) && !slices.IsSorted(prices) {
		r.logBug("BUG-007", "Price sorting uses string comparison instead of numeric")
	}
}

func (r *Runner) checkCartSwap(ctx context.Context) {
	section(r.out, "BUG TEST #21: Session Isolation - Cart Mix-up")

	marker := "Bug check " + r.runID
	ok, _ := r.runTest(ctx, "Add item to user1's cart", http.MethodPost, "cart/add", nil, http.StatusOK, map[string]any{
		"userId":    "user1",
		"productId": "prod1",
		"name":      marker,
		"price":     100,
		"quantity":  1,
		"size":      "M",
		"image":     "test.jpg",
	})
	if !ok {
		return
	}

	var addedID string
	defer func() {
		if addedID == "" {
			fmt.Fprintf(r.out, "Added item not found, nothing to clean up\n")
			return
		}
		r.runTest(ctx, "Remove added item", http.MethodDelete, "cart/"+addedID, nil, http.StatusOK, nil)
	}()

	if items, ok := r.readCart(ctx, "user1", "Get user1's cart (expecting user2's due to bug)"); ok {
		if item := findMarked(items, marker); item != nil {
			addedID = item.ID
		}
	}

	items, ok := r.readCart(ctx, "user2", "Get user2's cart (expecting user1's due to bug)")
	if !ok {
		return
	}

	item := findMarked(items, marker)
	if item == nil {
		return
	}
	addedID = item.ID

	r.logBug("BUG-021", "User1 and User2 cart sessions are swapped")
}

func (r *Runner) readCart(ctx context.Context, userID, name string) ([]cartItem, bool) {
	ok, resp := r.runTest(ctx, name, http.MethodGet, "cart/"+userID, nil, http.StatusOK, nil)
	if !ok {
		return nil, false
	}

	var items []cartItem
	if err := resp.decode(&items); err != nil {
		fmt.Fprintf(r.out, "Cannot decode cart: %v\n", err)
		return nil, false
	}
	fmt.Fprintf(r.out, "Items returned for %s: %d\n", userID, len(items))

	return items, true
}

type product struct {
	ID       string  `json:"id"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type cartItem struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// findMarked returns the item this run added, identified by its name.
func findMarked(items []cartItem, marker string) *cartItem {
	for i := range items {
		if items[i].UserID == "user1" && items[i].Name == marker {
			return &items[i]
		}
	}
	return nil
}

func allCategory(products []product, category string) bool {
	for _, p := range products {
		if p.Category != category {
			return false
		}
	}
	return true
}

func successRate(passed, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(passed)/float64(total)*100)
}

func section(out io.Writer, title string) {
	line := strings.Repeat("=", 50)
	fmt.Fprintf(out, "\n%s\n%s\n%s\n", line, title, line)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
