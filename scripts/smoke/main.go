// Command smoke probes a running storefront API instance and verifies that
// every public endpoint answers with a well-formed envelope. It is meant for
// post-deploy checks; a failing critical probe exits non-zero.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type probe struct {
	Name       string
	Path       string
	WantStatus int
	Critical   bool
	// Envelope probes must decode as {"data": ..., "meta": ...} with no error.
	Envelope bool
}

type result struct {
	Probe    probe
	Status   int
	Duration time.Duration
	Err      error
}

func main() {
	var (
		base    string
		date    string
		timeout time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&date, "date", time.Now().Format("2006-01-02"), "date used for slot and day probes (YYYY-MM-DD)")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	probes := []probe{
		{Name: "health", Path: "/health", WantStatus: http.StatusOK, Critical: true},
		{Name: "ready", Path: "/ready", WantStatus: http.StatusOK, Critical: true},
		{Name: "status", Path: "/api/v1/status", WantStatus: http.StatusOK, Critical: true, Envelope: true},
		{Name: "day", Path: "/api/v1/days/" + date, WantStatus: http.StatusOK, Critical: true, Envelope: true},
		{Name: "slots", Path: "/api/v1/slots?date=" + date, WantStatus: http.StatusOK, Critical: true, Envelope: true},
		{Name: "slots-csv", Path: "/api/v1/slots/export?date=" + date, WantStatus: http.StatusOK},
		{Name: "next-opening", Path: "/api/v1/next-opening", WantStatus: http.StatusOK, Critical: true, Envelope: true},
		{Name: "schedule", Path: "/api/v1/schedule", WantStatus: http.StatusOK, Envelope: true},
		{Name: "slots-bad-date", Path: "/api/v1/slots?date=nope", WantStatus: http.StatusBadRequest},
		{Name: "metrics", Path: "/metrics", WantStatus: http.StatusOK},
	}

	client := &http.Client{Timeout: timeout}
	var failures int
	results := make([]result, 0, len(probes))
	for _, p := range probes {
		res := run(client, base, p)
		if res.Err != nil && p.Critical {
			failures++
		}
		results = append(results, res)
	}

	report(results)
	if failures > 0 {
		log.Printf("%d critical probe(s) failed", failures)
		os.Exit(1)
	}
}

func run(client *http.Client, base string, p probe) result {
	res := result{Probe: p}
	url := strings.TrimRight(base, "/") + p.Path

	start := time.Now()
	resp, err := client.Get(url)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		return res
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	if resp.StatusCode != p.WantStatus {
		res.Err = fmt.Errorf("status %d, want %d", resp.StatusCode, p.WantStatus)
		return res
	}
	if !p.Envelope {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return res
	}

	var envelope struct {
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		res.Err = fmt.Errorf("decode envelope: %w", err)
		return res
	}
	if envelope.Error != nil {
		res.Err = fmt.Errorf("api error %s: %s", envelope.Error.Code, envelope.Error.Message)
	}
	return res
}

func report(results []result) {
	fmt.Println("Storefront Smoke Report")
	fmt.Println("=======================")
	for _, res := range results {
		status := "OK"
		if res.Err != nil {
			status = "FAIL"
		}
		fmt.Printf("[%s] %-14s %s (%d, %s)\n", status, res.Probe.Name, res.Probe.Path, res.Status, res.Duration)
		if res.Err != nil {
			fmt.Printf("  %v\n", res.Err)
		}
	}
}
