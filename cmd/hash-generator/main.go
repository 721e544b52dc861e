// Command hash-generator prints bcrypt hashes for seeding users directly
// into the database. It uses the same hasher and cost as the API server.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/service/auth"
)

func main() {
	cost := flag.Int("cost", 0, "bcrypt cost (default: auth.bcrypt_cost from configuration)")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *cost, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "hash-generator: %v\n", err)
		os.Exit(1)
	}
}

// run hashes each password argument, or each line of in when no arguments
// are given.
func run(in io.Reader, out io.Writer, cost int, passwords []string) error {
	if cost == 0 {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cost = cfg.Auth.BcryptCost
	}

	hasher, err := auth.NewBcryptHasher(cost)
	if err != nil {
		return err
	}

	if len(passwords) == 0 {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				passwords = append(passwords, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read passwords: %w", err)
		}
	}

	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if _, err := fmt.Fprintln(out, hash); err != nil {
			return err
		}
	}
	return nil
}
