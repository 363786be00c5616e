// +build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"time"
)

func main() {
	baseURL := flag.String("base", "http://localhost:8080", "API base URL")
	code := flag.String("code", "fr", "country code to exercise")
	flag.Parse()

	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Fatalf("Failed to create cookie jar: %v", err)
	}
	client := &http.Client{
		Jar:     jar,
		Timeout: 30 * time.Second,
	}

	// 1. Каталог с фильтрами
	get(client, *baseURL+"/api/v1/countries?search=united&sort_by=population&sort_order=desc")

	// 2. Детальная страница
	get(client, *baseURL+"/api/v1/countries/"+*code)

	// 3. Без логина избранное должно вернуть 401
	resp, err := client.Get(*baseURL + "/api/v1/favorites")
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	resp.Body.Close()
	fmt.Printf("GET /api/v1/favorites (anonymous): %d\n", resp.StatusCode)

	// 4. Логин
	body, _ := json.Marshal(map[string]string{
		"username": "demo",
		"password": "demo",
	})
	resp, err = client.Post(*baseURL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	dump("POST /api/v1/auth/login", resp)

	// 5. Избранное: toggle, заметка, недавние, экспорт
	post(client, *baseURL+"/api/v1/favorites/"+*code+"/toggle")
	put(client, *baseURL+"/api/v1/favorites/"+*code+"/note", `{"note":"smoke test"}`)
	get(client, *baseURL+"/api/v1/favorites/recent?limit=3")
	get(client, *baseURL+"/api/v1/favorites/export")

	// 6. Logout — избранное снова закрыто
	post(client, *baseURL+"/api/v1/auth/logout")
	resp, err = client.Get(*baseURL + "/api/v1/favorites")
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	resp.Body.Close()
	fmt.Printf("GET /api/v1/favorites (after logout): %d\n", resp.StatusCode)

	fmt.Println("Smoke test finished")
}

func get(client *http.Client, url string) {
	resp, err := client.Get(url)
	if err != nil {
		log.Fatalf("GET %s failed: %v", url, err)
	}
	dump("GET "+url, resp)
}

func post(client *http.Client, url string) {
	resp, err := client.Post(url, "application/json", nil)
	if err != nil {
		log.Fatalf("POST %s failed: %v", url, err)
	}
	dump("POST "+url, resp)
}

func put(client *http.Client, url, body string) {
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBufferString(body))
	if err != nil {
		log.Fatalf("PUT %s failed: %v", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("PUT %s failed: %v", url, err)
	}
	dump("PUT "+url, resp)
}

func dump(label string, resp *http.Response) {
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	if len(data) > 300 {
		data = append(data[:300], []byte("...")...)
	}
	fmt.Printf("%s: %d %s\n", label, resp.StatusCode, data)
}
