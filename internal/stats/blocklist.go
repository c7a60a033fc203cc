package stats

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Blocklist is the set of users who opted out of corrections, one name per line on disk
type Blocklist struct {
	path  string
	mu    sync.RWMutex
	users map[string]bool
}

// LoadBlocklist reads the blocklist at path; a missing file is an empty list.
func LoadBlocklist(path string) (*Blocklist, error) {
	b := &Blocklist{
		path:  path,
		users: make(map[string]bool),
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open blocklist: %w", err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if user := strings.TrimSpace(scanner.Text()); user != "" {
			b.users[user] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan blocklist: %w", err)
	}

	return b, nil
}

// Contains reports whether user opted out
func (b *Blocklist) Contains(user string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.users[user]
}

// Len returns the number of opted-out users
func (b *Blocklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.users)
}

// Add records an opt-out and appends it to the file. Adding a user twice is a no-op.
func (b *Blocklist) Add(user string) error {
	user = strings.TrimSpace(user)
	if user == "" {
		return errors.New("empty user name")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.users[user] {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return fmt.Errorf("create blocklist dir: %w", err)
	}

	f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open blocklist: %w", err)
	}
	if _, err := f.WriteString(user + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("append blocklist: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close blocklist: %w", err)
	}

	b.users[user] = true
	return nil
}
