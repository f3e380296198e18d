package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"
)

const apiBase = "http://localhost:8080/api/v1"

type User struct {
	Name   string
	Email  string
	Token  string
	UserID string
}

type RegisterResponse struct {
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
	Token string `json:"token"`
}

type Post struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func registerUser(name, email, password string) (*User, error) {
	body, _ := json.Marshal(map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})

	resp, err := http.Post(apiBase+"/users", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("registration failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result RegisterResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	return &User{
		Name:   result.User.Name,
		Email:  result.User.Email,
		Token:  result.Token,
		UserID: result.User.ID,
	}, nil
}

func authedPost(token, path string, payload interface{}) error {
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			return err
		}
	}

	req, _ := http.NewRequest("POST", apiBase+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-auth-token", token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("POST %s failed (%d): %s", path, resp.StatusCode, string(bodyBytes))
	}

	return nil
}

func createPost(token, text string) (*Post, error) {
	body, _ := json.Marshal(map[string]string{"text": text})

	req, _ := http.NewRequest("POST", apiBase+"/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-auth-token", token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("create post failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result Post
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	return &result, nil
}

func likePost(token, postID string) error {
	req, _ := http.NewRequest("PUT", apiBase+"/posts/"+postID+"/like", nil)
	req.Header.Set("x-auth-token", token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("like failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}

func generateEmail(index int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	random := make([]byte, 4)
	for i := range random {
		random[i] = letters[rand.Intn(len(letters))]
	}
	return fmt.Sprintf("demo_%d_%d_%s@example.com", index, time.Now().Unix(), string(random))
}

func main() {
	rand.Seed(time.Now().UnixNano())

	fmt.Println("Seeding demo data...")

	password := "demopassword123"
	names := []string{"Ada Park", "Brian Osei", "Carla Mendes", "Dinesh Rao", "Elise Navarro"}
	statuses := []string{"Backend Developer", "Frontend Developer", "Full Stack Developer", "DevOps Engineer", "Student"}

	var users []*User

	fmt.Println("\nRegistering users...")
	for i, name := range names {
		user, err := registerUser(name, generateEmail(i), password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register %s: %v\n", name, err)
			os.Exit(1)
		}
		users = append(users, user)
		fmt.Printf("  ✓ %s (%s)\n", user.Name, user.Email)
	}

	fmt.Println("\nCreating profiles...")
	for i, user := range users {
		profile := map[string]interface{}{
			"status": statuses[i%len(statuses)],
			"skills": []string{"Go", "PostgreSQL", "Docker"},
			"bio":    fmt.Sprintf("Demo profile for %s", user.Name),
		}
		if err := authedPost(user.Token, "/profile", profile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create profile for %s: %v\n", user.Name, err)
			os.Exit(1)
		}
		fmt.Printf("  ✓ %s\n", user.Name)
	}

	fmt.Println("\nCreating posts with likes and comments...")
	for i, user := range users {
		post, err := createPost(user.Token, fmt.Sprintf("Hello from %s! Post #%d in the demo feed.", user.Name, i+1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create post for %s: %v\n", user.Name, err)
			os.Exit(1)
		}

		// Every other user likes and comments on this post
		for j, other := range users {
			if j == i {
				continue
			}
			if err := likePost(other.Token, post.ID); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to like post: %v\n", err)
				os.Exit(1)
			}
			comment := map[string]string{"text": fmt.Sprintf("Nice one, %s!", user.Name)}
			if err := authedPost(other.Token, "/posts/"+post.ID+"/comments", comment); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to comment: %v\n", err)
				os.Exit(1)
			}
		}
		fmt.Printf("  ✓ Post by %s (%d likes, %d comments)\n", user.Name, len(users)-1, len(users)-1)
	}

	fmt.Println("\n============================================================")
	fmt.Println("DEMO DATA SEEDED")
	fmt.Println("============================================================")
	fmt.Printf("\n%d users registered (password: %s)\n", len(users), password)
	for _, user := range users {
		fmt.Printf("  %s — %s\n", user.Name, user.Email)
	}
}
