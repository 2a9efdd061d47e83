// Command smoke runs a signup/unregister round trip against a running
// activities server and verifies the roster after each step.
//
// Usage:
//
//	smoke [-base http://localhost:8000] [-activity "Basketball"]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
)

type activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func main() {
	base := flag.String("base", "http://localhost:8000", "server base URL")
	name := flag.String("activity", "Basketball", "activity to exercise")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	email := fmt.Sprintf("smoke-%s@mergington.edu", uuid.NewString()[:8])

	steps := []struct {
		desc string
		run  func() error
	}{
		{"list activities", func() error {
			acts, err := fetchActivities(client, *base)
			if err != nil {
				return err
			}
			if _, ok := acts[*name]; !ok {
				return fmt.Errorf("activity %q not in registry", *name)
			}
			return nil
		}},
		{"signup", func() error {
			return post(client, *base, *name, "signup", email, http.StatusOK)
		}},
		{"roster includes student", func() error {
			return rosterHas(client, *base, *name, email, true)
		}},
		{"duplicate signup rejected", func() error {
			return post(client, *base, *name, "signup", email, http.StatusBadRequest)
		}},
		{"unregister", func() error {
			return post(client, *base, *name, "unregister", email, http.StatusOK)
		}},
		{"roster excludes student", func() error {
			return rosterHas(client, *base, *name, email, false)
		}},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", step.desc, err)
			os.Exit(1)
		}
		fmt.Printf("ok   %s\n", step.desc)
	}
	fmt.Println("smoke test passed")
}

func fetchActivities(client *http.Client, base string) (map[string]activity, error) {
	resp, err := client.Get(base + "/activities")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET /activities returned %d", resp.StatusCode)
	}
	var acts map[string]activity
	if err := json.NewDecoder(resp.Body).Decode(&acts); err != nil {
		return nil, err
	}
	return acts, nil
}

func post(client *http.Client, base, name, action, email string, want int) error {
	target := fmt.Sprintf("%s/activities/%s/%s?email=%s",
		base, url.PathEscape(name), action, url.QueryEscape(email))
	resp, err := client.Post(target, "application/json", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return fmt.Errorf("POST %s returned %d, want %d", action, resp.StatusCode, want)
	}
	return nil
}

func rosterHas(client *http.Client, base, name, email string, want bool) error {
	acts, err := fetchActivities(client, base)
	if err != nil {
		return err
	}
	found := false
	for _, p := range acts[name].Participants {
		if p == email {
			found = true
			break
		}
	}
	if found != want {
		return fmt.Errorf("roster membership for %s is %v, want %v", email, found, want)
	}
	return nil
}
