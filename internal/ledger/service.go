package ledger

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

// ErrNotFound is returned when a transaction ID is not in the log.
var ErrNotFound = errors.New("transaction not found")

// Service owns the transaction log: month-sharded CSV files under
// <root>/YYYY/MM/transactions.csv. Transactions are append-only; the
// only mutations are removal by ID and bulk removal by month.
type Service struct {
	root string
}

// NewService creates a ledger Service rooted at root.
func NewService(root string) *Service {
	return &Service{root: root}
}

// Append validates the transaction minimally and appends it to its
// month's file, creating the file (with header) if needed.
func (s *Service) Append(t model.Transaction) error {
	if t.ID == "" {
		return errors.New("transaction has no ID")
	}
	if t.AmountPrimary.IsNegative() {
		return fmt.Errorf("negative amount %s", t.AmountPrimary)
	}
	if len(t.Date) != 10 {
		return fmt.Errorf("date %q is not fixed-width YYYY-MM-DD", t.Date)
	}

	path := s.monthPath(t.MonthKey())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating month dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening month file: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendTransactions(f, []model.Transaction{t}); err != nil {
		return fmt.Errorf("appending transaction: %w", err)
	}
	return nil
}

// List returns every transaction in the log, ordered by month then by
// insertion order within the month. Callers receive a fresh slice each
// time; the engine treats it as an immutable snapshot.
func (s *Service) List() ([]model.Transaction, error) {
	months, err := s.monthFiles()
	if err != nil {
		return nil, err
	}

	var all []model.Transaction
	for _, path := range months {
		txns, err := s.readFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, txns...)
	}
	return all, nil
}

// Month returns the transactions recorded under one month key.
func (s *Service) Month(monthKey string) ([]model.Transaction, error) {
	return s.readFile(s.monthPath(monthKey))
}

// Remove deletes a transaction by ID, rewriting its month file. The
// month file itself is removed once its last transaction goes.
func (s *Service) Remove(id string) error {
	months, err := s.monthFiles()
	if err != nil {
		return err
	}

	for _, path := range months {
		txns, err := s.readFile(path)
		if err != nil {
			return err
		}

		kept := txns[:0]
		found := false
		for _, t := range txns {
			if t.ID == id {
				found = true
				continue
			}
			kept = append(kept, t)
		}
		if !found {
			continue
		}

		if len(kept) == 0 {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("removing empty month file: %w", err)
			}
			return nil
		}
		return s.writeFile(path, kept)
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// RemoveMonth deletes every transaction for a month key. Removing a
// month with no file is a no-op.
func (s *Service) RemoveMonth(monthKey string) error {
	path := s.monthPath(monthKey)
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("removing month %s: %w", monthKey, err)
	}
	return nil
}

// Version fingerprints the current log contents from file metadata. Any
// append or removal changes it, so derived views memoized under the old
// version are never served stale.
func (s *Service) Version() (string, error) {
	months, err := s.monthFiles()
	if err != nil {
		return "", err
	}

	h := fnv.New64a()
	for _, path := range months {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
		fmt.Fprintf(h, "%s|%d|%d\n", path, info.Size(), info.ModTime().UnixNano())
	}
	return fmt.Sprintf("%x", h.Sum64()), nil
}

func (s *Service) readFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return txns, nil
}

func (s *Service) writeFile(path string, txns []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rewriting %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteTransactions(f, txns); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// monthFiles lists existing month files in ascending month order, which
// the fixed-width YYYY/MM layout makes a plain path sort.
func (s *Service) monthFiles() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() && d.Name() == "transactions.csv" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning ledger: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *Service) monthPath(monthKey string) string {
	year, month := "0000", "00"
	if len(monthKey) >= 7 {
		year, month = monthKey[:4], monthKey[5:7]
	}
	return filepath.Join(s.root, year, month, "transactions.csv")
}
