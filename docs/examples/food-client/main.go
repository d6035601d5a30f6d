// Alimenta Food Lookup Example
//
// This is a minimal example of how to authenticate against Alimenta and
// query the food catalog.
//
// Usage:
//   export ALIMENTA_EMAIL="you@example.com"
//   export ALIMENTA_PASSWORD="your-password"
//   go run main.go Arroz
//
// The account is registered on first run; later runs reuse it.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

// FoodItem mirrors one entry of the catalog response
type FoodItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"nome"`
	Calories float64 `json:"calorias"`
	Protein  float64 `json:"proteina"`
	Carbs    float64 `json:"carboidrato"`
	Fat      float64 `json:"gordura"`
}

var client = &http.Client{Timeout: 10 * time.Second}

func main() {
	baseURL := os.Getenv("ALIMENTA_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	email := os.Getenv("ALIMENTA_EMAIL")
	password := os.Getenv("ALIMENTA_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ALIMENTA_EMAIL and ALIMENTA_PASSWORD environment variables are required")
	}

	term := ""
	if len(os.Args) > 1 {
		term = os.Args[1]
	}

	if err := register(baseURL, email, password); err != nil {
		log.Fatalf("Register failed: %v", err)
	}

	token, err := login(baseURL, email, password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	log.Println("✓ Authenticated")

	items, err := search(baseURL, token, term)
	if err != nil {
		log.Fatalf("Food lookup failed: %v", err)
	}

	if term == "" {
		log.Printf("✓ Catalog has %d food item(s)", len(items))
	} else {
		log.Printf("✓ Found %d food item(s) matching %q", len(items), term)
	}
	for _, item := range items {
		log.Printf("  %-28s %6.1f kcal  P %5.1fg  C %5.1fg  G %5.1fg",
			item.Name, item.Calories, item.Protein, item.Carbs, item.Fat)
	}
}

// register creates the account. An already registered email is fine;
// the server answers 409 and login still works.
func register(baseURL, email, password string) error {
	payload := map[string]string{
		"nome":      "Example",
		"sobrenome": "Client",
		"email":     email,
		"password":  password,
	}

	status, body, err := postJSON(baseURL+"/api/usuario", payload)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusOK:
		log.Printf("✓ Registered %s", email)
		return nil
	case http.StatusConflict:
		log.Printf("✓ %s is already registered", email)
		return nil
	default:
		return fmt.Errorf("unexpected status %d: %s", status, body)
	}
}

func login(baseURL, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}

	status, body, err := postJSON(baseURL+"/api/auth", payload)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", status, body)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("parse login response: %w", err)
	}
	return resp.Token, nil
}

func search(baseURL, token, term string) ([]FoodItem, error) {
	endpoint := baseURL + "/api/alimentos"
	if term != "" {
		endpoint += "?nome=" + url.QueryEscape(term)
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var items []FoodItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("parse food response: %w", err)
	}
	return items, nil
}

func postJSON(endpoint string, payload any) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(data))
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}
